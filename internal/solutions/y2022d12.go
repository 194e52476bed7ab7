package solutions

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aocpath/answer"
	"github.com/katalvlaran/aocpath/gridgraph"
	"github.com/katalvlaran/aocpath/traverse"
)

func init() { register(2022, 12, "Hill Climbing Algorithm", hillClimbing) }

// hillClimbing: part 1 is the fewest steps from S to E climbing at most one
// letter per step, part 2 the fewest steps from any 'a'. Part 2 searches
// backwards once from E with the climb rule reversed.
func hillClimbing(ctx context.Context, lines []string) (answer.Answer, error) {
	g, err := gridgraph.FromRunes(lines)
	if err != nil {
		return answer.Answer{}, err
	}
	start, okS := g.Find('S')
	end, okE := g.Find('E')
	if !okS || !okE {
		return answer.Answer{}, fmt.Errorf("%w: hill map needs S and E", gridgraph.ErrMalformedInput)
	}
	if err = g.Set(start, 'a'); err != nil {
		return answer.Answer{}, err
	}
	if err = g.Set(end, 'z'); err != nil {
		return answer.Answer{}, err
	}

	up := func(from, to gridgraph.Cell) bool { return to.Value <= from.Value+1 }
	down := func(from, to gridgraph.Cell) bool { return from.Value <= to.Value+1 }

	fwd, err := traverse.ShortestPath([]gridgraph.Point{start},
		traverse.Unit(g.NeighborFunc(gridgraph.Conn4, up)),
		traverse.WithContext[gridgraph.Point](ctx),
		traverse.WithTargetNode(end))
	if err != nil {
		return answer.Answer{}, err
	}
	steps, ok := fwd.Distance(end)
	if !ok {
		return answer.Answer{}, fmt.Errorf("2022/12: %w: E from S", traverse.ErrUnreachable)
	}

	back, err := traverse.ShortestPath([]gridgraph.Point{end},
		traverse.Unit(g.NeighborFunc(gridgraph.Conn4, down)),
		traverse.WithContext[gridgraph.Point](ctx))
	if err != nil {
		return answer.Answer{}, err
	}
	var fromA []int64
	for c := range g.Cells() {
		if c.Value == 'a' {
			d, _ := back.Distance(c.Point())
			fromA = append(fromA, d)
		}
	}
	best, err := answer.MinCost(fromA, traverse.Unreachable)
	if err != nil {
		return answer.Answer{}, err
	}

	return answer.Answer{Part1: steps, Part2: best}, nil
}
