package dag

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []string
		edges   []Edge
		wantErr error
	}{
		{"empty", nil, nil, nil},
		{"single node", []string{"A"}, nil, nil},
		{"simple edge", []string{"A", "B"}, []Edge{{"A", "B"}}, nil},
		{"duplicate edges allowed", []string{"A", "B"}, []Edge{{"A", "B"}, {"A", "B"}}, nil},
		{"self loop allowed", []string{"A"}, []Edge{{"A", "A"}}, nil},
		{"empty id", []string{"A", ""}, nil, ErrInvalidNodeID},
		{"duplicate id", []string{"A", "A"}, nil, ErrDuplicateNodeID},
		{"unknown source", []string{"A"}, []Edge{{"X", "A"}}, ErrUnknownSourceNode},
		{"unknown target", []string{"A"}, []Edge{{"A", "X"}}, ErrUnknownTargetNode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.nodes, tt.edges)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if g.NodeCount() != len(tt.nodes) {
				t.Errorf("NodeCount() = %d, want %d", g.NodeCount(), len(tt.nodes))
			}
			if g.EdgeCount() != len(tt.edges) {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), len(tt.edges))
			}
		})
	}
}

func TestGraphIsImmutable(t *testing.T) {
	nodes := []string{"A", "B"}
	edges := []Edge{{From: "A", To: "B"}}
	g := Must(nodes, edges)

	nodes[0] = "Z"
	edges[0].To = "Z"
	if got := g.Nodes()[0]; got != "A" {
		t.Errorf("node changed through input slice: got %q", got)
	}
	if got := g.Edges()[0].To; got != "B" {
		t.Errorf("edge changed through input slice: got %q", got)
	}

	out := g.Nodes()
	out[1] = "Y"
	if got := g.Nodes()[1]; got != "B" {
		t.Errorf("node changed through returned slice: got %q", got)
	}
}

func TestZeroGraph(t *testing.T) {
	var g Graph
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("zero graph has %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
	if g.HasNode("A") {
		t.Error("zero graph reports node A")
	}
}

func TestMustPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Must did not panic on invalid graph")
		}
	}()
	Must([]string{"A"}, []Edge{{From: "A", To: "B"}})
}

func TestExample(t *testing.T) {
	g := Example()
	want := []string{"A", "B", "C", "D", "E"}
	got := g.Nodes()
	if len(got) != len(want) {
		t.Fatalf("Nodes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Nodes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d, want 4", g.EdgeCount())
	}
	if e := g.Edges()[0]; e.String() != "A->C" {
		t.Errorf("first edge = %s, want A->C", e)
	}
}
