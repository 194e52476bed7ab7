package traverse

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for traversal execution.
var (
	// ErrNoSources is returned when no start node is supplied.
	ErrNoSources = errors.New("traverse: no start nodes")

	// ErrNilNeighbors is returned when the neighbor function is nil.
	ErrNilNeighbors = errors.New("traverse: neighbor function is nil")

	// ErrNilTerminal is returned by Paths when the terminal predicate is nil.
	ErrNilTerminal = errors.New("traverse: terminal predicate is nil")

	// ErrNegativeCost is returned when a step reports a negative cost.
	ErrNegativeCost = errors.New("traverse: negative step cost")

	// ErrIterationLimit is returned when WithMaxIterations is exceeded.
	ErrIterationLimit = errors.New("traverse: iteration limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traverse: invalid option supplied")

	// ErrUnreachable is returned by Result.PathTo for nodes never reached.
	ErrUnreachable = errors.New("traverse: target unreachable")
)

// Unreachable is the distance reported for nodes a traversal never reached.
const Unreachable int64 = math.MaxInt64

// Neighbors lists the nodes one unit step away from a node.
type Neighbors[K comparable] func(K) []K

// Edge is a weighted step to To.
type Edge[K comparable] struct {
	To   K
	Cost int64
}

// WeightedNeighbors lists the weighted steps leaving a node.
type WeightedNeighbors[K comparable] func(K) []Edge[K]

// Unit lifts an unweighted neighbor function to cost-1 steps.
func Unit[K comparable](nbrs Neighbors[K]) WeightedNeighbors[K] {
	if nbrs == nil {
		return nil
	}
	return func(k K) []Edge[K] {
		next := nbrs(k)
		out := make([]Edge[K], len(next))
		for i, n := range next {
			out[i] = Edge[K]{To: n, Cost: 1}
		}

		return out
	}
}

// Option configures traversal behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// traversal is invoked.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks shared by every traversal mode.
type Options[K comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is taken off the frontier (ShortestPath,
	// FloodFill) or entered on the current path (Paths). cost is the
	// accumulated cost, or the path depth for Paths. A non-nil error aborts.
	OnVisit func(node K, cost int64) error

	// Filter skips the step from→to when it returns false.
	Filter func(from, to K) bool

	// Target, when set, stops ShortestPath/FloodFill as soon as a node
	// satisfying it is visited.
	Target func(K) bool

	// MaxCost, if > 0, stops expansion beyond this accumulated cost
	// (path depth for Paths). 0 means no limit.
	MaxCost int64

	// MaxIterations, if > 0, bounds frontier pops (stack steps for Paths).
	MaxIterations int

	// Unlimited marks nodes that Paths never visit-counts.
	Unlimited func(K) bool

	err error
}

// DefaultOptions returns Options with a background context and no hooks,
// filters or limits.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:     context.Background(),
		OnVisit: func(K, int64) error { return nil },
		Filter:  func(_, _ K) bool { return true },
	}
}

func buildOptions[K comparable](opts []Option[K]) (Options[K], error) {
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook; returning an error aborts the traversal.
func WithOnVisit[K comparable](fn func(node K, cost int64) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilter skips steps for which fn(from, to) is false.
func WithFilter[K comparable](fn func(from, to K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithTarget stops the search once a node satisfying fn is visited.
func WithTarget[K comparable](fn func(K) bool) Option[K] {
	return func(o *Options[K]) {
		o.Target = fn
	}
}

// WithTargetNode is WithTarget for a single node.
func WithTargetNode[K comparable](target K) Option[K] {
	return WithTarget(func(k K) bool { return k == target })
}

// WithMaxCost stops expansion beyond cost c.
//
//	c > 0:  limit to c
//	c == 0: explicit no limit
//	c < 0:  invalid option → ErrOptionViolation
func WithMaxCost[K comparable](c int64) Option[K] {
	return func(o *Options[K]) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithMaxIterations aborts with ErrIterationLimit after n steps (n > 0).
// n == 0 disables the bound; n < 0 is an ErrOptionViolation.
func WithMaxIterations[K comparable](n int) Option[K] {
	return func(o *Options[K]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithUnlimited marks nodes Paths may enter any number of times.
func WithUnlimited[K comparable](fn func(K) bool) Option[K] {
	return func(o *Options[K]) {
		o.Unlimited = fn
	}
}

// Result holds the outcome of ShortestPath or FloodFill:
//   - Order: nodes in visit sequence.
//   - Dist: accumulated cost per reached node (hop count for FloodFill).
//     After a ShortestPath early exit it holds settled nodes only.
//   - Parent: predecessor of each reached non-source node.
//   - Found/Target: the node that satisfied WithTarget, if any.
type Result[K comparable] struct {
	Order  []K
	Dist   map[K]int64
	Parent map[K]K
	Found  bool
	Target K
}

func newResult[K comparable](hint int) *Result[K] {
	return &Result[K]{
		Order:  make([]K, 0, hint),
		Dist:   make(map[K]int64, hint),
		Parent: make(map[K]K, hint),
	}
}

// Distance returns the cost of k, or Unreachable and false when k was never reached.
func (r *Result[K]) Distance(k K) (int64, bool) {
	d, ok := r.Dist[k]
	if !ok {
		return Unreachable, false
	}

	return d, true
}

// Reached reports whether k was reached.
func (r *Result[K]) Reached(k K) bool {
	_, ok := r.Dist[k]
	return ok
}

// PathTo reconstructs the path from its source to dest.
// Returns ErrUnreachable if dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, dest)
	}
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
