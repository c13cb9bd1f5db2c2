// Package model builds the topology of a moored fish-farm frame.
//
// A model is a labeled graph: nodes are structural joints, edges are the
// physical components joining them. [Build] derives the whole graph from a
// [Grid] (cage rows and columns, spacing, submersion depth, heading) and a
// table of [Anchor] lines.
//
// # Construction Stages
//
// Build runs four stages in a fixed order. Each stage may reference keys
// created by an earlier one, so they never run out of order:
//
//  1. Frame nodes: one joint per grid intersection, rotated by the heading.
//  2. Frame edges: a vertical pass then a horizontal pass joining neighbours.
//  3. Rigging: one bridle ([CategoryBridle]) and one sling ([CategorySling])
//     per cage. These carry no endpoints; the solver places them.
//  4. Anchor lines: three nodes and three edges (top chain, rope, bottom
//     chain) per anchor, running from a frame corner to the seabed.
//
// # Identifiers
//
// Every node and edge gets a positive integer id from its own counter, both
// starting at 1. Node ids follow creation order. Edge ids follow creation
// order too, except for anchor lines: all top chains come first, then all
// ropes, then all bottom chains, each group in anchor-table order. The
// simulation tool groups components this way.
//
// Nodes and edges are looked up by [Key], a single comparable type covering
// frame joints, anchor-line joints and named components.
//
// # Immutability
//
// A [Model] returned by Build is never modified afterwards. Accessors return
// copies, so a model can be shared between readers freely.
package model
