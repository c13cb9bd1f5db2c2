// Package pkg provides the core libraries for amoor moored-frame models.
//
// # Overview
//
// amoor turns a frame definition (grid size, spacing, depth, course and an
// anchor table) into the complete structural model of a moored fish farm
// and writes it into the XML input of a structural-simulation tool. The pkg
// directory is organized into these areas:
//
//  1. [model] and [geom] - Domain logic (topology, ids, geometry)
//  2. [config] - Frame definitions in TOML or YAML
//  3. [render/simxml] and [render/nodelink] - Output (simulation XML, previews)
//  4. [pipeline] - Orchestration (load → build → serialize)
//  5. [cache], [observability], [errors] - Infrastructure shared by CLI and API
//
// # Architecture
//
// The typical data flow:
//
//	frame.toml / frame.yaml
//	         ↓
//	    [config] package (decode, validate, anchor table)
//	         ↓
//	    [model] package (frame grid, rigging, anchor lines, ids)
//	         ↓
//	    [render/simxml] package (append to the simulation template)
//	         ↓
//	    model.xml
//
// # Quick Start
//
//	f, err := config.Load("frame.toml")
//	if err != nil {
//	    return err
//	}
//	anchors, err := f.AnchorTable()
//	if err != nil {
//	    return err
//	}
//	m, err := model.Build(f.Grid(), anchors)
//	if err != nil {
//	    return err
//	}
//	doc, err := simxml.Render(pipeline.DefaultTemplate, m, simxml.Options{})
//
// Most callers use the pipeline instead, which adds caching and hooks:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{ConfigPath: "frame.toml"})
//
// # Main Packages
//
// [model] - Builds the complete topology: frame joints and edges, per-cage
// bridles and slings, and three-segment anchor lines. Assigns the node and
// edge ids the simulation tool references.
//
// [geom] - Rotation, polar offsets and the number format of the simulation
// schema.
//
// [config] - Loads frame definitions with env expansion, strict decoding
// and validation, and converts the anchor table to [model.Anchor] values.
//
// [render/simxml] - Appends nodes and trusses to a simulation template,
// leaving the template's other sections untouched.
//
// [render/nodelink] - Plan and side previews through Graphviz.
//
// [io] - JSON export of a built model.
//
// [pipeline] - Complete pipeline used by CLI and API so both produce
// identical documents for equal inputs.
//
// [cache] - Document cache keyed by content hash: file (CLI), Redis (API)
// and null backends.
//
// [api] - HTTP routes over the pipeline.
//
// # Testing
//
//	go test ./pkg/...
//	AMOOR_TEST_REDIS_URL=redis://localhost:6379/15 go test ./pkg/cache/
//
// [model]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/model
// [geom]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/geom
// [config]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/config
// [render/simxml]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/render/simxml
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/errors
// [api]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/api
// [model.Anchor]: https://pkg.go.dev/github.com/matzehuels/amoor/pkg/model#Anchor
package pkg
