// File: topological.go
// Role: Kahn's algorithm over a directed Graph.
//
// TopologicalOrder computes a linear ordering of nodes such that for every
// edge u→v, u appears before v. Nodes with zero remaining in-degree are
// released smallest-name first, so the order is deterministic.
//
// Complexity:
//
//   - Time:   O((V + E) log V) (heap of ready nodes)
//   - Memory: O(V)

package core

import (
	"container/heap"
	"fmt"
	"sort"
)

// TopoOrder is the result of TopologicalOrder.
type TopoOrder struct {
	// Nodes lists every node in topological order.
	Nodes []string

	// Inbound maps each node to its in-degree before any removal,
	// parallel edges counted.
	Inbound map[string]int

	index map[string]int
}

// Position returns the index of name within Nodes.
func (o *TopoOrder) Position(name string) (int, bool) {
	i, ok := o.index[name]
	return i, ok
}

// Before reports whether a strictly precedes b in the order.
// Unknown names are never before anything.
func (o *TopoOrder) Before(a, b string) bool {
	ia, okA := o.index[a]
	ib, okB := o.index[b]

	return okA && okB && ia < ib
}

// Between returns the nodes strictly after from, up to and including to.
// It is empty when to does not come after from.
func (o *TopoOrder) Between(from, to string) []string {
	i, okI := o.index[from]
	j, okJ := o.index[to]
	if !okI || !okJ || j <= i {
		return nil
	}

	return o.Nodes[i+1 : j+1]
}

// TopologicalOrder computes a topological ordering of all nodes in g by
// repeatedly removing nodes whose inbound count has dropped to zero.
// Returns ErrUndirected for undirected graphs and ErrCycleDetected when some
// nodes can never be released.
func (g *Graph) TopologicalOrder() (*TopoOrder, error) {
	if !g.directed {
		return nil, ErrUndirected
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	// 1) Snapshot inbound counts
	n := len(g.nodes)
	inbound := make(map[string]int, n)
	remaining := make(map[string]int, n)
	ready := make(nameHeap, 0, n)
	for name, node := range g.nodes {
		inbound[name] = len(node.in)
		remaining[name] = len(node.in)
		if len(node.in) == 0 {
			ready = append(ready, name)
		}
	}
	heap.Init(&ready)

	// 2) Release zero-inbound nodes, decrementing their successors
	order := &TopoOrder{
		Nodes:   make([]string, 0, n),
		Inbound: inbound,
		index:   make(map[string]int, n),
	}
	for ready.Len() > 0 {
		name := heap.Pop(&ready).(string)
		order.index[name] = len(order.Nodes)
		order.Nodes = append(order.Nodes, name)
		for _, e := range g.nodes[name].out {
			remaining[e.To]--
			if remaining[e.To] == 0 {
				heap.Push(&ready, e.To)
			}
		}
	}

	// 3) Anything left sits on or behind a cycle
	if len(order.Nodes) < n {
		stuck := make([]string, 0, n-len(order.Nodes))
		for name, c := range remaining {
			if c > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)

		return nil, fmt.Errorf("%w: %d nodes unresolved, first %q", ErrCycleDetected, len(stuck), stuck[0])
	}

	return order, nil
}

// nameHeap is a min-heap of node names.
type nameHeap []string

func (h nameHeap) Len() int           { return len(h) }
func (h nameHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h nameHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *nameHeap) Push(x any)        { *h = append(*h, x.(string)) }
func (h *nameHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}
