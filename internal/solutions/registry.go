// Package solutions holds the puzzle solutions and the registry the runner
// dispatches through. Each solution file registers itself from init.
package solutions

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/aocpath/answer"
)

// ErrUnknownPuzzle is returned by Lookup for an unregistered (year, day).
var ErrUnknownPuzzle = errors.New("solutions: no solution registered")

// Key identifies a puzzle.
type Key struct {
	Year, Day int
}

func (k Key) String() string { return fmt.Sprintf("%d/%02d", k.Year, k.Day) }

// Solver computes both parts of a puzzle from its input lines.
type Solver func(ctx context.Context, lines []string) (answer.Answer, error)

// Puzzle is a registered solution.
type Puzzle struct {
	Key
	Title string
	Solve Solver
}

var registry = map[Key]Puzzle{}

func register(year, day int, title string, solve Solver) {
	k := Key{year, day}
	if _, dup := registry[k]; dup {
		panic("solutions: duplicate registration for " + k.String())
	}
	registry[k] = Puzzle{Key: k, Title: title, Solve: solve}
}

// Lookup returns the puzzle registered for (year, day).
func Lookup(year, day int) (Puzzle, error) {
	p, ok := registry[Key{year, day}]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %s", ErrUnknownPuzzle, Key{year, day})
	}
	return p, nil
}

// All returns every registered puzzle ordered by year, then day.
func All() []Puzzle {
	out := make([]Puzzle, 0, len(registry))
	for _, p := range registry {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Puzzle) int {
		return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.Day, b.Day))
	})

	return out
}
