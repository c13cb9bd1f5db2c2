// Package nodelink renders moored-frame models as node-link previews using
// Graphviz.
//
// Every joint is emitted with a pinned position (pos="x,y!") taken from the
// model geometry, so the neato engine draws the model to scale instead of
// computing its own layout.
//
// # Usage
//
//	dot := nodelink.ToDOT(m, nodelink.Options{View: nodelink.ViewPlan})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Views
//
//   - ViewPlan: looking down, x to the right and y up (default)
//   - ViewSide: looking along y, x to the right and depth downward
//
// Frame components are drawn in blue, chains in grey and ropes dashed.
// Seabed anchor points are drawn as filled squares. Bridles and slings have
// no joint geometry and are left out.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG export go through [render.ToPDF] and [render.ToPNG].
package nodelink
