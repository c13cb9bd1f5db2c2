// Package render provides the output sinks for moored-frame models.
//
// # Overview
//
//   - Simulation input documents (in [simxml] subpackage)
//   - Plan and side view previews (in [nodelink] subpackage)
//   - Generic format conversion (SVG to PDF/PNG)
//
// # Simulation XML
//
// The [simxml] subpackage appends the model's joints and components to a
// template document supplied by the structural-simulation tool:
//
//	out, err := simxml.Render(template, m, simxml.Options{Seed: 42})
//
// # Previews
//
// The [nodelink] subpackage draws the model with every joint pinned at its
// computed position, for a quick visual check before a simulation run:
//
//	dot := nodelink.ToDOT(m, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
// [simxml]: github.com/matzehuels/amoor/pkg/render/simxml
// [nodelink]: github.com/matzehuels/amoor/pkg/render/nodelink
package render
