package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/aocpath/traverse"
)

// Step advances the grid by one two-phase simulation step.
//
//  1. Accumulation: every value is incremented by one.
//  2. Propagation: each cell above rule.Threshold fires once, is pinned to
//     rule.Reset, and increments every neighbor that has not fired yet.
//     Neighbors pushed over the threshold fire in turn.
//
// A fired cell is never incremented again within the step, so the fired set
// does not depend on firing order. Neighbors follow the grid's connectivity.
// An error from the propagation walk is returned wrapped; the accumulation
// phase has already been applied by then.
func (g *Grid) Step(rule StepRule) (StepResult, error) {
	var seeds []Point
	for i := range g.values {
		g.values[i]++
		if g.values[i] > rule.Threshold {
			seeds = append(seeds, g.point(i))
		}
	}
	if len(seeds) == 0 {
		return StepResult{}, nil
	}

	fired := make([]bool, len(g.values))
	cascade := func(p Point) []Point {
		var next []Point
		for _, d := range g.conn.Offsets() {
			q := p.Add(d)
			if !g.InBounds(q) {
				continue
			}
			i := g.index(q)
			if fired[i] {
				continue
			}
			g.values[i]++
			if g.values[i] > rule.Threshold {
				next = append(next, q)
			}
		}
		return next
	}
	fire := func(p Point, _ int64) error {
		i := g.index(p)
		fired[i] = true
		g.values[i] = rule.Reset
		return nil
	}

	res, err := traverse.FloodFill(seeds, cascade, traverse.WithOnVisit(fire))
	if err != nil {
		return StepResult{}, fmt.Errorf("gridgraph: step: %w", err)
	}

	return StepResult{Fired: res.Order, Count: len(res.Order)}, nil
}

// Synchronized reports whether every cell holds v.
func (g *Grid) Synchronized(v int) bool {
	for _, x := range g.values {
		if x != v {
			return false
		}
	}
	return true
}
