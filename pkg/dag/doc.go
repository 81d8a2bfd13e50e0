// Package dag provides the small, immutable directed graph that dagsvg renders.
//
// # Overview
//
// A [Graph] is a plain value: an ordered list of node IDs and an ordered list
// of directed [Edge] values. It carries no layout or traversal algorithms;
// the renderer only needs to enumerate nodes and edges in a stable order.
//
// # Basic Usage
//
// Build a graph with [New]. Node IDs must be unique and non-empty, and every
// edge must connect two known nodes. Duplicate edges are permitted:
//
//	g, err := dag.New(
//	    []string{"A", "B"},
//	    []dag.Edge{{From: "A", To: "B"}},
//	)
//
// [Example] returns the fixed five-node graph drawn by the dagsvg command.
//
// # Immutability
//
// [Graph.Nodes] and [Graph.Edges] return copies, so callers cannot mutate a
// graph after construction. A Graph is therefore safe to share between
// goroutines.
package dag
