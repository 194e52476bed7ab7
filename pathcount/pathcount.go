package pathcount

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/aocpath/core"
	"github.com/katalvlaran/aocpath/traverse"
)

// ErrOverflow indicates a path count larger than math.MaxInt64.
var ErrOverflow = errors.New("pathcount: path count overflows int64")

// Counter answers repeated path-count queries over one DAG using a single
// topological order. The graph must not change while the Counter is in use.
type Counter struct {
	order *core.TopoOrder
	preds map[string][]string
}

// NewCounter computes the topological order of g and snapshots every node's
// predecessors.
func NewCounter(g *core.Graph) (*Counter, error) {
	order, err := g.TopologicalOrder()
	if err != nil {
		return nil, err
	}
	preds := make(map[string][]string, len(order.Nodes))
	for _, name := range order.Nodes {
		p, err := g.Predecessors(name)
		if err != nil {
			return nil, err
		}
		preds[name] = p
	}

	return &Counter{order: order, preds: preds}, nil
}

// Order exposes the topological order the Counter works over.
func (c *Counter) Order() *core.TopoOrder { return c.order }

func (c *Counter) check(names ...string) error {
	for _, n := range names {
		if _, ok := c.order.Position(n); !ok {
			return fmt.Errorf("pathcount: %w: %q", core.ErrNodeNotFound, n)
		}
	}
	return nil
}

// Count returns the number of distinct directed paths from start to end.
func (c *Counter) Count(start, end string) (int64, error) {
	if err := c.check(start, end); err != nil {
		return 0, err
	}
	if start == end {
		return 1, nil
	}
	between := c.order.Between(start, end)
	if len(between) == 0 {
		return 0, nil
	}

	counts := make(map[string]int64, len(between)+1)
	counts[start] = 1
	for _, n := range between {
		var sum int64
		for _, p := range c.preds[n] {
			var err error
			if sum, err = add(sum, counts[p]); err != nil {
				return 0, fmt.Errorf("%w: at %q", err, n)
			}
		}
		counts[n] = sum
	}

	return counts[end], nil
}

// Through returns the number of start→end paths that visit every waypoint,
// summed over each ordering of the waypoints. A waypoint named more than once
// is required once.
func (c *Counter) Through(start, end string, waypoints ...string) (int64, error) {
	if err := c.check(append([]string{start, end}, waypoints...)...); err != nil {
		return 0, err
	}
	waypoints = slices.Compact(slices.Sorted(slices.Values(waypoints)))

	type seg struct{ from, to string }
	memo := make(map[seg]int64)
	segment := func(from, to string) (int64, error) {
		k := seg{from, to}
		if n, ok := memo[k]; ok {
			return n, nil
		}
		n, err := c.Count(from, to)
		if err != nil {
			return 0, err
		}
		memo[k] = n
		return n, nil
	}

	var total int64
	var err error
	permute(waypoints, func(route []string) bool {
		product := int64(1)
		prev := start
		for i := 0; i <= len(route) && product != 0; i++ {
			next := end
			if i < len(route) {
				next = route[i]
			}
			var n int64
			if n, err = segment(prev, next); err != nil {
				return false
			}
			if product, err = mul(product, n); err != nil {
				return false
			}
			prev = next
		}
		total, err = add(total, product)
		return err == nil
	})
	if err != nil {
		return 0, err
	}

	return total, nil
}

// Count is NewCounter(g).Count(start, end).
func Count(g *core.Graph, start, end string) (int64, error) {
	c, err := NewCounter(g)
	if err != nil {
		return 0, err
	}
	return c.Count(start, end)
}

// Through is NewCounter(g).Through(start, end, waypoints...).
func Through(g *core.Graph, start, end string, waypoints ...string) (int64, error) {
	c, err := NewCounter(g)
	if err != nil {
		return 0, err
	}
	return c.Through(start, end, waypoints...)
}

// BruteForce counts start→end paths by enumerating them. Intended for
// cross-checking Count on small graphs.
func BruteForce(g *core.Graph, start, end string) (int64, error) {
	for _, n := range []string{start, end} {
		if !g.HasNode(n) {
			return 0, fmt.Errorf("pathcount: %w: %q", core.ErrNodeNotFound, n)
		}
	}

	return traverse.CountPaths(start, func(n string) bool { return n == end },
		traverse.FromGraph(g), traverse.SimplePaths[string]())
}

func add(a, b int64) (int64, error) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

func mul(a, b int64) (int64, error) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, ErrOverflow
	}
	return a * b, nil
}

// permute calls fn with every ordering of items (Heap's algorithm) until fn
// returns false. The slice passed to fn is reused between calls.
func permute(items []string, fn func([]string) bool) {
	a := append([]string(nil), items...)
	c := make([]int, len(a))
	if !fn(a) {
		return
	}
	for i := 1; i < len(a); {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			if !fn(a) {
				return
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
}
