package dag

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [New] when a node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [New] when two nodes share an ID.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [New] when an edge's From node
	// is not in the node list.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [New] when an edge's To node
	// is not in the node list.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Edge is a directed connection from one node to another.
type Edge struct {
	From string // Source node ID
	To   string // Target node ID
}

// String returns the edge in "from->to" form.
func (e Edge) String() string { return e.From + "->" + e.To }

// Graph is an immutable directed graph. The zero value is an empty graph.
type Graph struct {
	nodes []string
	edges []Edge
	index map[string]int
}

// New builds a graph from nodes and edges. Both slices are copied, so later
// changes by the caller do not affect the graph. Insertion order is kept.
func New(nodes []string, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes: slices.Clone(nodes),
		edges: slices.Clone(edges),
		index: make(map[string]int, len(nodes)),
	}
	for i, id := range g.nodes {
		if id == "" {
			return nil, ErrInvalidNodeID
		}
		if _, exists := g.index[id]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNodeID, id)
		}
		g.index[id] = i
	}
	for _, e := range g.edges {
		if !g.HasNode(e.From) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSourceNode, e)
		}
		if !g.HasNode(e.To) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTargetNode, e)
		}
	}
	return g, nil
}

// Must is like [New] but panics on error. It is meant for fixed graphs
// declared in code.
func Must(nodes []string, edges []Edge) *Graph {
	g, err := New(nodes, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// Nodes returns a copy of the node IDs in insertion order.
func (g *Graph) Nodes() []string { return slices.Clone(g.nodes) }

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Example returns the fixed graph drawn by the dagsvg command:
// A and B both point to C, which fans out to D and E.
func Example() *Graph {
	return Must(
		[]string{"A", "B", "C", "D", "E"},
		[]Edge{
			{From: "A", To: "C"},
			{From: "B", To: "C"},
			{From: "C", To: "D"},
			{From: "C", To: "E"},
		},
	)
}
