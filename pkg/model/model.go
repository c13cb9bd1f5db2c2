package model

import (
	"slices"

	"github.com/matzehuels/amoor/pkg/geom"
)

// Category classifies an edge. The string value is the suffix of the edge
// name written to the simulation tool.
type Category string

// Edge categories, in the order Build creates them.
const (
	CategoryFrame       Category = "Ramme"
	CategoryBridle      Category = "Hanefot"
	CategorySling       Category = "Slings"
	CategoryTopChain    Category = "Toppkjetting"
	CategoryRope        Category = "Tau"
	CategoryBottomChain Category = "Bunnkjetting"
)

// Categories lists every edge category in creation order.
var Categories = []Category{
	CategoryFrame,
	CategoryBridle,
	CategorySling,
	CategoryTopChain,
	CategoryRope,
	CategoryBottomChain,
}

// anchorCategories are the three segments of an anchor line, from the frame
// corner outward. Edge ids are assigned in this order across all anchors.
var anchorCategories = [3]Category{CategoryTopChain, CategoryRope, CategoryBottomChain}

// Node is a structural joint.
type Node struct {
	Key   Key
	Label string // tagname written to the simulation tool
	Pos   geom.Vec3
	ID    int
	Free  bool // false only for the seabed point of each anchor line
}

// Edge is a physical component. Rigging edges have zero From and To keys.
type Edge struct {
	Key      Key
	Category Category
	From, To Key
	ID       int
}

// HasEnds reports whether the edge records its endpoint joints.
func (e Edge) HasEnds() bool {
	return !e.From.IsZero()
}

// Model is a complete moored-frame topology. Build is the only constructor;
// a Model is read-only afterwards.
type Model struct {
	grid    Grid
	anchors []Anchor

	nodes     map[Key]*Node
	edges     map[Key]*Edge
	nodeOrder []Key
	edgeOrder []Key
}

func newModel(g Grid, anchors []Anchor) *Model {
	return &Model{
		grid:    g,
		anchors: slices.Clone(anchors),
		nodes:   make(map[Key]*Node),
		edges:   make(map[Key]*Edge),
	}
}

// Grid returns the grid parameters the model was built from.
func (m *Model) Grid() Grid { return m.grid }

// Anchors returns a copy of the anchor table the model was built from.
func (m *Model) Anchors() []Anchor { return slices.Clone(m.anchors) }

// NodeCount returns the number of nodes.
func (m *Model) NodeCount() int { return len(m.nodeOrder) }

// EdgeCount returns the number of edges.
func (m *Model) EdgeCount() int { return len(m.edgeOrder) }

// Node returns the node with key k.
func (m *Model) Node(k Key) (Node, bool) {
	n, ok := m.nodes[k]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Edge returns the edge with key k.
func (m *Model) Edge(k Key) (Edge, bool) {
	e, ok := m.edges[k]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// Nodes returns all nodes in creation order, which is also id order.
func (m *Model) Nodes() []Node {
	out := make([]Node, len(m.nodeOrder))
	for i, k := range m.nodeOrder {
		out[i] = *m.nodes[k]
	}
	return out
}

// Edges returns all edges in creation order. Anchor-line edges appear per
// anchor (top chain, rope, bottom chain), so ids are not monotonic in this
// order; use [Model.EdgesByID] for id order.
func (m *Model) Edges() []Edge {
	out := make([]Edge, len(m.edgeOrder))
	for i, k := range m.edgeOrder {
		out[i] = *m.edges[k]
	}
	return out
}

// EdgesByID returns all edges sorted by id.
func (m *Model) EdgesByID() []Edge {
	out := m.Edges()
	slices.SortFunc(out, func(a, b Edge) int { return a.ID - b.ID })
	return out
}

// SortedNodeKeys returns all node keys in [Key.Compare] order.
func (m *Model) SortedNodeKeys() []Key {
	keys := slices.Clone(m.nodeOrder)
	slices.SortFunc(keys, Key.Compare)
	return keys
}

// EdgesOf returns the edges of category c in creation order.
func (m *Model) EdgesOf(c Category) []Edge {
	var out []Edge
	for _, k := range m.edgeOrder {
		if e := m.edges[k]; e.Category == c {
			out = append(out, *e)
		}
	}
	return out
}

// Stats summarizes a model by component category.
type Stats struct {
	FrameNodes  int
	AnchorNodes int
	FixedNodes  int
	Cages       int
	RiggedCages int
	Edges       map[Category]int
}

// Stats counts the nodes and edges of m.
func (m *Model) Stats() Stats {
	s := Stats{
		Cages:       m.grid.Cages(),
		RiggedCages: m.grid.RiggedCages(),
		Edges:       make(map[Category]int, len(Categories)),
	}
	for _, k := range m.nodeOrder {
		n := m.nodes[k]
		switch k.Kind() {
		case KindFrame:
			s.FrameNodes++
		case KindAnchor:
			s.AnchorNodes++
		}
		if !n.Free {
			s.FixedNodes++
		}
	}
	for _, k := range m.edgeOrder {
		s.Edges[m.edges[k].Category]++
	}
	return s
}

// AnchorLine is the chain from a frame corner to the seabed for one anchor.
type AnchorLine struct {
	Anchor Anchor
	Corner Node
	Nodes  [3]Node // top-chain end, rope end, seabed point
	Edges  [3]Edge // top chain, rope, bottom chain
}

// AnchorLine returns the line of the anchor with the given index.
func (m *Model) AnchorLine(index int) (AnchorLine, bool) {
	i := slices.IndexFunc(m.anchors, func(a Anchor) bool { return a.Index == index })
	if i < 0 {
		return AnchorLine{}, false
	}
	line := AnchorLine{Anchor: m.anchors[i]}
	for j, c := range anchorCategories {
		e, ok := m.Edge(anchorEdgeKey(index, c))
		if !ok {
			return AnchorLine{}, false
		}
		line.Edges[j] = e
		line.Nodes[j], _ = m.Node(e.To)
		if j == 0 {
			line.Corner, _ = m.Node(e.From)
		}
	}
	return line, true
}
