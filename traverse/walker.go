package traverse

import (
	"context"
	"fmt"
)

// walker encapsulates mutable state for ShortestPath and FloodFill.
//
// relax selects the expansion rule:
//   - true  (priority frontier): a node is final when popped; neighbors are
//     pushed whenever their cost strictly improves, stale entries are skipped.
//   - false (fifo frontier): a node is final when first pushed; every later
//     discovery is ignored.
type walker[K comparable] struct {
	opts    Options[K]
	ctx     context.Context
	nbrs    WeightedNeighbors[K]
	front   frontier[K]
	relax   bool
	settled map[K]bool
	res     *Result[K]
}

func newWalker[K comparable](sources []K, nbrs WeightedNeighbors[K], front frontier[K], relax bool, opts []Option[K]) (*walker[K], error) {
	if nbrs == nil {
		return nil, ErrNilNeighbors
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	w := &walker[K]{
		opts:    o,
		ctx:     o.Ctx,
		nbrs:    nbrs,
		front:   front,
		relax:   relax,
		settled: make(map[K]bool),
		res:     newResult[K](len(sources)),
	}
	for _, s := range sources {
		if _, seen := w.res.Dist[s]; seen {
			continue
		}
		w.res.Dist[s] = 0
		w.front.push(item[K]{node: s})
	}

	return w, nil
}

// run processes the frontier until empty, target reached, error, or cancellation.
func (w *walker[K]) run() error {
	iterations := 0
	for w.front.len() > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		it := w.front.pop()
		if w.relax {
			if w.settled[it.node] || it.cost > w.res.Dist[it.node] {
				continue // stale entry
			}
			w.settled[it.node] = true
		}

		iterations++
		if w.opts.MaxIterations > 0 && iterations > w.opts.MaxIterations {
			return fmt.Errorf("%w: %d", ErrIterationLimit, w.opts.MaxIterations)
		}

		if err := w.visit(it); err != nil {
			return err
		}
		if w.opts.Target != nil && w.opts.Target(it.node) {
			w.res.Found, w.res.Target = true, it.node
			w.dropTentative()
			return nil
		}
		if err := w.expand(it); err != nil {
			return err
		}
	}

	return nil
}

// dropTentative removes costs and parents of nodes pushed but never settled,
// so an early exit reports only final distances. FIFO costs are final on push.
func (w *walker[K]) dropTentative() {
	if !w.relax {
		return
	}
	for k := range w.res.Dist {
		if !w.settled[k] {
			delete(w.res.Dist, k)
			delete(w.res.Parent, k)
		}
	}
}

// visit records the node in Order and calls OnVisit.
func (w *walker[K]) visit(it item[K]) error {
	w.res.Order = append(w.res.Order, it.node)
	if err := w.opts.OnVisit(it.node, it.cost); err != nil {
		return fmt.Errorf("traverse: OnVisit error at %v: %w", it.node, err)
	}

	return nil
}

// expand applies Filter and MaxCost and pushes every improved neighbor.
func (w *walker[K]) expand(it item[K]) error {
	for _, e := range w.nbrs(it.node) {
		if !w.opts.Filter(it.node, e.To) {
			continue
		}
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, it.node, e.To, e.Cost)
		}
		next := it.cost + e.Cost
		if w.opts.MaxCost > 0 && next > w.opts.MaxCost {
			continue
		}
		if w.relax {
			if w.settled[e.To] {
				continue
			}
			if d, ok := w.res.Dist[e.To]; ok && next >= d {
				continue
			}
		} else if _, seen := w.res.Dist[e.To]; seen {
			continue
		}
		w.res.Dist[e.To] = next
		w.res.Parent[e.To] = it.node
		w.front.push(item[K]{node: e.To, cost: next})
	}

	return nil
}

// ShortestPath computes least-cost distances from every source using a
// priority frontier (Dijkstra with lazy decrease-key). With Unit costs it is
// the unit-weight BFS shortest path.
//
// Sources start at cost 0 and have no Parent. Nodes never reached are absent
// from Result.Dist; Result.Distance reports them as Unreachable.
func ShortestPath[K comparable](sources []K, nbrs WeightedNeighbors[K], opts ...Option[K]) (*Result[K], error) {
	w, err := newWalker(sources, nbrs, &priority[K]{}, true, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.run()
}

// FloodFill visits every node reachable from the sources through nbrs (and
// WithFilter) exactly once, in breadth-first order. Result.Dist holds hop
// counts.
func FloodFill[K comparable](sources []K, nbrs Neighbors[K], opts ...Option[K]) (*Result[K], error) {
	w, err := newWalker(sources, Unit(nbrs), &fifo[K]{}, false, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.run()
}

// Components partitions nodes into connected components. Each node of nodes
// not yet covered seeds a FloodFill; components appear in seed order and each
// lists its nodes in visit order. nbrs should be symmetric for the result to
// be a true partition.
func Components[K comparable](nodes []K, nbrs Neighbors[K], opts ...Option[K]) ([][]K, error) {
	seen := make(map[K]bool, len(nodes))
	var comps [][]K
	for _, n := range nodes {
		if seen[n] {
			continue
		}
		res, err := FloodFill([]K{n}, nbrs, opts...)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		comps = append(comps, res.Order)
	}

	return comps, nil
}
