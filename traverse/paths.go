package traverse

import (
	"fmt"
	"slices"
)

// PathState is the current DFS path as seen by a VisitPolicy.
type PathState[K comparable] struct {
	path      []K
	counts    map[K]int
	repeats   int
	unlimited func(K) bool
}

func newPathState[K comparable](unlimited func(K) bool) *PathState[K] {
	return &PathState[K]{counts: make(map[K]int), unlimited: unlimited}
}

func (s *PathState[K]) free(k K) bool { return s.unlimited != nil && s.unlimited(k) }

func (s *PathState[K]) enter(k K) {
	s.path = append(s.path, k)
	if s.free(k) {
		return
	}
	s.counts[k]++
	if s.counts[k] > 1 {
		s.repeats++
	}
}

func (s *PathState[K]) leave() {
	k := s.path[len(s.path)-1]
	s.path = s.path[:len(s.path)-1]
	if s.free(k) {
		return
	}
	if s.counts[k] > 1 {
		s.repeats--
	}
	s.counts[k]--
	if s.counts[k] == 0 {
		delete(s.counts, k)
	}
}

// Count is how many times k occurs on the current path. Nodes marked
// WithUnlimited always report 0.
func (s *PathState[K]) Count(k K) int { return s.counts[k] }

// Repeats is the number of extra visits on the current path, summed over nodes.
func (s *PathState[K]) Repeats() int { return s.repeats }

// Len is the number of nodes on the current path.
func (s *PathState[K]) Len() int { return len(s.path) }

// Path returns a copy of the current path.
func (s *PathState[K]) Path() []K { return slices.Clone(s.path) }

// VisitPolicy decides whether next may be entered from the current path.
type VisitPolicy[K comparable] func(s *PathState[K], next K) bool

// SimplePaths admits each node at most once per path.
func SimplePaths[K comparable]() VisitPolicy[K] {
	return func(s *PathState[K], next K) bool { return s.Count(next) == 0 }
}

// OneRepeat admits a single node twice on a path; every other node at most
// once. Nodes for which never returns true are not eligible for the repeat.
func OneRepeat[K comparable](never func(K) bool) VisitPolicy[K] {
	return func(s *PathState[K], next K) bool {
		switch s.Count(next) {
		case 0:
			return true
		case 1:
			return s.Repeats() == 0 && (never == nil || !never(next))
		default:
			return false
		}
	}
}

// MaxVisits admits each node up to n times per path.
func MaxVisits[K comparable](n int) VisitPolicy[K] {
	return func(s *PathState[K], next K) bool { return s.Count(next) < n }
}

// frame is one DFS level: the node and the cursor into its neighbor list.
type frame[K comparable] struct {
	node K
	next []K
	i    int
}

// walkPaths drives the explicit-stack DFS and hands every complete path to emit.
// The slice passed to emit is only valid for the duration of the call.
func walkPaths[K comparable](start K, terminal func(K) bool, nbrs Neighbors[K], policy VisitPolicy[K], opts []Option[K], emit func([]K)) error {
	if nbrs == nil {
		return ErrNilNeighbors
	}
	if terminal == nil {
		return ErrNilTerminal
	}
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	if policy == nil {
		policy = SimplePaths[K]()
	}

	state := newPathState(o.Unlimited)
	state.enter(start)
	if err = o.OnVisit(start, 0); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %v: %w", start, err)
	}
	if terminal(start) {
		emit(state.path)
		return nil
	}

	var st stack[frame[K]]
	st.push(frame[K]{node: start, next: nbrs(start)})
	steps := 0
	for st.len() > 0 {
		select {
		case <-o.Ctx.Done():
			return o.Ctx.Err()
		default:
		}

		f := st.top()
		if f.i >= len(f.next) {
			st.pop()
			state.leave()
			continue
		}
		from, to := f.node, f.next[f.i]
		f.i++

		if !o.Filter(from, to) || !policy(state, to) {
			continue
		}
		depth := int64(state.Len())
		if o.MaxCost > 0 && depth > o.MaxCost {
			continue
		}
		steps++
		if o.MaxIterations > 0 && steps > o.MaxIterations {
			return fmt.Errorf("%w: %d", ErrIterationLimit, o.MaxIterations)
		}

		state.enter(to)
		if err = o.OnVisit(to, depth); err != nil {
			return fmt.Errorf("traverse: OnVisit error at %v: %w", to, err)
		}
		if terminal(to) {
			emit(state.path)
			state.leave()
			continue
		}
		st.push(frame[K]{node: to, next: nbrs(to)})
	}

	return nil
}

// Paths enumerates every path from start that ends on the first node
// satisfying terminal. A terminal node is never expanded further. policy
// decides re-entry (nil means SimplePaths); parallel edges in nbrs yield
// distinct paths.
//
// WithMaxCost bounds the number of steps per path and WithMaxIterations the
// total number of steps taken; use one of them when unlimited nodes can form a
// cycle.
func Paths[K comparable](start K, terminal func(K) bool, nbrs Neighbors[K], policy VisitPolicy[K], opts ...Option[K]) ([][]K, error) {
	var out [][]K
	err := walkPaths(start, terminal, nbrs, policy, opts, func(p []K) {
		out = append(out, slices.Clone(p))
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// CountPaths is Paths without materializing the paths.
func CountPaths[K comparable](start K, terminal func(K) bool, nbrs Neighbors[K], policy VisitPolicy[K], opts ...Option[K]) (int64, error) {
	var n int64
	err := walkPaths(start, terminal, nbrs, policy, opts, func([]K) { n++ })
	if err != nil {
		return 0, err
	}

	return n, nil
}

// SortPaths orders paths lexicographically by cmp, in place.
func SortPaths[K comparable](paths [][]K, cmp func(a, b K) int) {
	slices.SortFunc(paths, func(a, b []K) int { return slices.CompareFunc(a, b, cmp) })
}
