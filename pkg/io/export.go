package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/amoor/pkg/model"
)

// Graph is the JSON form of a model.
type Graph struct {
	Grid  Grid   `json:"grid"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Grid holds the frame parameters of the exported model.
type Grid struct {
	Rows         int     `json:"rows"`
	Cols         int     `json:"cols"`
	LengthLong   float64 `json:"length_long"`
	LengthAcross float64 `json:"length_across"`
	FrameDepth   float64 `json:"frame_depth"`
	Heading      float64 `json:"heading"`
}

// Node is an exported joint.
type Node struct {
	ID    int     `json:"id"`
	Label string  `json:"label"`
	Kind  string  `json:"kind"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Fixed bool    `json:"fixed"`
}

// Edge is an exported component. From and To are node ids, zero for rigging.
type Edge struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	From     int    `json:"from,omitempty"`
	To       int    `json:"to,omitempty"`
}

// FromModel converts m to its JSON form.
func FromModel(m *model.Model) Graph {
	g := m.Grid()
	out := Graph{
		Grid: Grid{
			Rows:         g.Rows,
			Cols:         g.Cols,
			LengthLong:   g.LengthLong,
			LengthAcross: g.LengthAcross,
			FrameDepth:   g.FrameDepth,
			Heading:      g.Heading,
		},
		Nodes: make([]Node, 0, m.NodeCount()),
		Edges: make([]Edge, 0, m.EdgeCount()),
	}

	for _, n := range m.Nodes() {
		out.Nodes = append(out.Nodes, Node{
			ID:    n.ID,
			Label: n.Label,
			Kind:  n.Key.Kind().String(),
			X:     n.Pos.X,
			Y:     n.Pos.Y,
			Z:     n.Pos.Z,
			Fixed: !n.Free,
		})
	}
	for _, e := range m.EdgesByID() {
		ex := Edge{ID: e.ID, Name: e.Key.String(), Category: string(e.Category)}
		if e.HasEnds() {
			from, _ := m.Node(e.From)
			to, _ := m.Node(e.To)
			ex.From, ex.To = from.ID, to.ID
		}
		out.Edges = append(out.Edges, ex)
	}
	return out
}

// WriteJSON encodes m as indented JSON and writes it to w.
// The output can be read back with [ReadJSON].
func WriteJSON(m *model.Model, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromModel(m)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes m to a JSON file at path.
func ExportJSON(m *model.Model, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(m, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
