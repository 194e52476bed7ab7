package solutions

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aocpath/answer"
	"github.com/katalvlaran/aocpath/gridgraph"
)

func init() { register(2021, 11, "Dumbo Octopus", dumboOctopus) }

const (
	octopusSteps    = 100
	octopusMaxSteps = 1_000_000
)

var octopusFlash = gridgraph.StepRule{Threshold: 9, Reset: 0}

// dumboOctopus: part 1 counts flashes over 100 steps, part 2 finds the first
// step on which every octopus flashes.
func dumboOctopus(ctx context.Context, lines []string) (answer.Answer, error) {
	g, err := gridgraph.FromDigits(lines, gridgraph.WithConnectivity(gridgraph.Conn8))
	if err != nil {
		return answer.Answer{}, err
	}

	var a answer.Answer
	sim := g.Clone()
	for i := 0; i < octopusSteps; i++ {
		res, err := sim.Step(octopusFlash)
		if err != nil {
			return answer.Answer{}, err
		}
		a.Part1 += int64(res.Count)
	}

	sim = g.Clone()
	for step := 1; step <= octopusMaxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return answer.Answer{}, err
		}
		res, err := sim.Step(octopusFlash)
		if err != nil {
			return answer.Answer{}, err
		}
		if res.Count == sim.Len() {
			a.Part2 = int64(step)
			return a, nil
		}
	}

	return answer.Answer{}, fmt.Errorf("2021/11: %w: no synchronized flash within %d steps",
		answer.ErrNoAnswer, octopusMaxSteps)
}
