// Package io provides a JSON export of a built model and a reader for it.
//
// # Overview
//
// The simulation document is the primary output of amoor; this package
// writes the same topology as plain JSON for scripts, notebooks and other
// external tools that do not read the simulation schema.
//
// # JSON Format
//
//	{
//	  "grid": {"rows": 1, "cols": 1, "length_long": 20, "length_across": 20,
//	           "frame_depth": 5, "heading": 0},
//	  "nodes": [
//	    {"id": 1, "label": "301", "kind": "frame", "x": 0, "y": 0, "z": -5, "fixed": false}
//	  ],
//	  "edges": [
//	    {"id": 7, "name": "1_Toppkjetting", "category": "Toppkjetting", "from": 1, "to": 5}
//	  ]
//	}
//
// Nodes and edges are listed in id order. Edges reference nodes by id, not
// by label, because anchor labels are display strings that may repeat.
// Rigging edges have no endpoints and omit "from" and "to".
//
// # Usage
//
//	if err := io.WriteJSON(m, os.Stdout); err != nil {
//	    return err
//	}
//
//	g, err := io.ReadJSON(r) // validates ids and endpoint references
package io
