package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/amoor/pkg/errors"
)

// ReadJSON decodes an exported model from r and checks its consistency:
// node and edge ids are unique and positive, and every edge endpoint names
// an existing node. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Graph, error) {
	var g Graph
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&g); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode model JSON")
	}

	nodes := make(map[int]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.ID <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "node %q: id must be positive, got %d", n.Label, n.ID)
		}
		if nodes[n.ID] {
			return nil, errors.New(errors.ErrCodeDuplicateKey, "node id %d appears twice", n.ID)
		}
		nodes[n.ID] = true
	}

	edges := make(map[int]bool, len(g.Edges))
	for _, e := range g.Edges {
		if e.ID <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "edge %q: id must be positive, got %d", e.Name, e.ID)
		}
		if edges[e.ID] {
			return nil, errors.New(errors.ErrCodeDuplicateKey, "edge id %d appears twice", e.ID)
		}
		edges[e.ID] = true
		if (e.From == 0) != (e.To == 0) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "edge %q: endpoints must be both set or both empty", e.Name)
		}
		for _, end := range []int{e.From, e.To} {
			if end != 0 && !nodes[end] {
				return nil, errors.New(errors.ErrCodeMissingKey, "edge %q references unknown node %d", e.Name, end)
			}
		}
	}
	return &g, nil
}

// ImportJSON reads an exported model from the file at path.
func ImportJSON(path string) (*Graph, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadJSON(f)
}
