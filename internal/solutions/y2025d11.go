package solutions

import (
	"context"

	"github.com/katalvlaran/aocpath/answer"
	"github.com/katalvlaran/aocpath/core"
	"github.com/katalvlaran/aocpath/pathcount"
)

func init() { register(2025, 11, "Reactor", reactor) }

// reactor: part 1 counts you→out paths, part 2 svr→out paths through both
// dac and fft.
func reactor(_ context.Context, lines []string) (answer.Answer, error) {
	c, err := reactorCounter(lines)
	if err != nil {
		return answer.Answer{}, err
	}

	var a answer.Answer
	if a.Part1, err = c.Count("you", "out"); err != nil {
		return answer.Answer{}, err
	}
	if a.Part2, err = c.Through("svr", "out", "dac", "fft"); err != nil {
		return answer.Answer{}, err
	}

	return a, nil
}

// reactorCounter parses "name: out1 out2" lines into a path Counter.
func reactorCounter(lines []string) (*pathcount.Counter, error) {
	g, err := core.ParseAdjacency(lines)
	if err != nil {
		return nil, err
	}
	return pathcount.NewCounter(g)
}
