package solutions

import (
	"context"

	"github.com/katalvlaran/aocpath/answer"
	"github.com/katalvlaran/aocpath/gridgraph"
)

func init() { register(2021, 9, "Smoke Basin", smokeBasin) }

// smokeBasin: part 1 sums 1+height over the low points, part 2 multiplies
// the sizes of the three largest basins. Height 9 belongs to no basin.
func smokeBasin(_ context.Context, lines []string) (answer.Answer, error) {
	g, err := gridgraph.FromDigits(lines)
	if err != nil {
		return answer.Answer{}, err
	}

	risk := answer.SumFunc(g.LowPoints(gridgraph.Conn4), func(c gridgraph.Cell) int64 {
		return int64(c.Value + 1)
	})

	basins, err := g.ConnectedComponents(func(c gridgraph.Cell) bool { return c.Value != 9 })
	if err != nil {
		return answer.Answer{}, err
	}
	sizes := make([]int64, len(basins))
	for i, b := range basins {
		sizes[i] = int64(len(b))
	}

	return answer.Answer{Part1: risk, Part2: answer.Product(answer.TopN(sizes, 3))}, nil
}
