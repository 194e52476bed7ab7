// Package answer reduces traversal results to the scalar answers a puzzle
// prints.
package answer

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"

	"golang.org/x/exp/constraints"
)

// ErrNoAnswer is returned by MinCost when every candidate is unreachable.
var ErrNoAnswer = errors.New("answer: no reachable candidate")

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds vals; the empty sum is 0.
func Sum[T Number](vals []T) T {
	var s T
	for _, v := range vals {
		s += v
	}
	return s
}

// SumFunc adds f(item) over items.
func SumFunc[E any, T Number](items []E, f func(E) T) T {
	var s T
	for _, it := range items {
		s += f(it)
	}
	return s
}

// Product multiplies vals; the empty product is 1.
func Product[T Number](vals []T) T {
	p := T(1)
	for _, v := range vals {
		p *= v
	}
	return p
}

// Count returns how many items satisfy pred.
func Count[E any](items []E, pred func(E) bool) int {
	n := 0
	for _, it := range items {
		if pred(it) {
			n++
		}
	}
	return n
}

// TopN returns the n largest values in descending order. vals is not
// modified; fewer than n values are all returned.
func TopN[T cmp.Ordered](vals []T, n int) []T {
	s := slices.Clone(vals)
	slices.SortFunc(s, func(a, b T) int { return cmp.Compare(b, a) })
	if n < len(s) {
		s = s[:max(n, 0)]
	}
	return s
}

// MinCost returns the smallest cost other than unreachable (for traversal
// distances, traverse.Unreachable). ErrNoAnswer when none is left.
func MinCost[T constraints.Integer](costs []T, unreachable T) (T, error) {
	var best T
	found := false
	for _, c := range costs {
		if c == unreachable {
			continue
		}
		if !found || c < best {
			best, found = c, true
		}
	}
	if !found {
		return 0, ErrNoAnswer
	}

	return best, nil
}

// Answer holds both parts of a puzzle's result.
type Answer struct {
	Part1 int64
	Part2 int64
}

func (a Answer) String() string {
	return fmt.Sprintf("part1=%d part2=%d", a.Part1, a.Part2)
}

// Fprint writes each part on its own line.
func (a Answer) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%d\n%d\n", a.Part1, a.Part2)
	return err
}
