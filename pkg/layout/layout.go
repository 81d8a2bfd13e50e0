// Package layout holds fixed node placements in layout space.
//
// Layout space is an abstract, origin-centered plane with y growing upward.
// It is independent of pixel dimensions; the svg renderer maps it onto a
// canvas.
package layout

import (
	"github.com/matzehuels/dagsvg/pkg/dag"
	"github.com/matzehuels/dagsvg/pkg/errors"
)

// Point is a coordinate in layout space.
type Point struct {
	X, Y float64
}

// Positions maps node IDs to layout-space points.
type Positions map[string]Point

// Validate checks that every node and every edge endpoint of g has a
// position. IDs without one are reported in graph order, each at most once,
// as an [errors.ErrCodeMissingPosition] error.
func (p Positions) Validate(g *dag.Graph) error {
	var missing []string
	seen := make(map[string]bool)
	check := func(id string) {
		if _, ok := p[id]; ok || seen[id] {
			return
		}
		seen[id] = true
		missing = append(missing, id)
	}
	for _, id := range g.Nodes() {
		check(id)
	}
	for _, e := range g.Edges() {
		check(e.From)
		check(e.To)
	}
	if len(missing) > 0 {
		return errors.MissingPosition(missing)
	}
	return nil
}

// Example returns the placements for [dag.Example]: A and B on top,
// C in the middle, D and E below.
func Example() Positions {
	return Positions{
		"A": {X: -1, Y: 1},
		"B": {X: 1, Y: 1},
		"C": {X: 0, Y: 0},
		"D": {X: -1, Y: -1},
		"E": {X: 1, Y: -1},
	}
}
