package solutions

import (
	"context"
	"fmt"
	"unicode"

	"github.com/katalvlaran/aocpath/answer"
	"github.com/katalvlaran/aocpath/core"
	"github.com/katalvlaran/aocpath/traverse"
)

func init() { register(2021, 12, "Passage Pathing", passagePathing) }

func bigCave(name string) bool { return unicode.IsUpper([]rune(name)[0]) }

// passagePathing counts start→end routes. Big caves may be revisited freely;
// in part 1 small caves at most once, in part 2 one small cave other than
// start or end may be visited twice.
func passagePathing(ctx context.Context, lines []string) (answer.Answer, error) {
	g, err := core.ParseEdgeList(lines, "-")
	if err != nil {
		return answer.Answer{}, err
	}
	for _, n := range []string{"start", "end"} {
		if !g.HasNode(n) {
			return answer.Answer{}, fmt.Errorf("%w: cave %q missing", core.ErrMalformedInput, n)
		}
	}

	// two adjacent big caves form an unbounded loop of routes
	for _, n := range g.Nodes() {
		if !bigCave(n) {
			continue
		}
		nbrs, err := g.Neighbors(n)
		if err != nil {
			return answer.Answer{}, err
		}
		for _, m := range nbrs {
			if bigCave(m) {
				return answer.Answer{}, fmt.Errorf("%w: big caves %s and %s are adjacent", core.ErrMalformedInput, n, m)
			}
		}
	}

	isEnd := func(n string) bool { return n == "end" }
	endpoint := func(n string) bool { return n == "start" || n == "end" }
	opts := []traverse.Option[string]{
		traverse.WithContext[string](ctx),
		traverse.WithUnlimited(bigCave),
	}

	var a answer.Answer
	if a.Part1, err = traverse.CountPaths("start", isEnd, traverse.FromGraph(g),
		traverse.SimplePaths[string](), opts...); err != nil {
		return answer.Answer{}, err
	}
	if a.Part2, err = traverse.CountPaths("start", isEnd, traverse.FromGraph(g),
		traverse.OneRepeat(endpoint), opts...); err != nil {
		return answer.Answer{}, err
	}

	return a, nil
}
