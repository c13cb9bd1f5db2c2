// Package simxml writes a moored-frame model into the XML input document of
// the structural-simulation tool.
//
// The tool supplies a template document whose root has exactly three child
// sections, in this order:
//
//	<model>
//	  <nodes/>       section 0: one <node> per joint is appended here
//	  <...>          section 1: owned by the tool, never touched
//	  <components/>  section 2: one <truss> per component is appended here
//	</model>
//
// # Nodes
//
// Each joint becomes a <node> with its id, its key as tagname and its
// coordinates, plus a <dof6> child. Rotations are always free. Translations
// are free for free joints and locked for the seabed anchor points.
//
// # Components
//
// Each edge becomes a <truss> carrying the fixed default attribute blocks
// (see [DefaultMooring], [DefaultExtra], [DefaultLoadModel],
// [DefaultDescription]) and a display color. Edges with endpoints also get an
// <elements> block. Its StartNode_ID is the id of the edge's To joint and its
// EndNode_ID the id of the From joint: the tool draws lines from the far end
// back toward the frame.
//
// # Determinism
//
// Colors are drawn from [Options.Colors]. Leave it nil to use a PCG source
// seeded from [Options.Seed]; equal seeds give byte-identical documents.
package simxml
