// File: methods_nodes.go
// Role: Node lifecycle and node-centric queries.
// Determinism:
//   - Nodes() returns names sorted lexicographically.
//   - Neighbors()/Predecessors() follow adjacency order (sorted on insert).

package core

import (
	"fmt"
	"slices"
	"sort"
)

// AddNode inserts a new node with the given name into the Graph.
// Returns ErrEmptyNodeName if name is empty.
// If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string) error {
	if name == "" {
		return ErrEmptyNodeName
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(name)

	return nil
}

// ensureNode returns the node for name, creating it when absent.
// Caller must hold g.mu for writing.
func (g *Graph) ensureNode(name string) *Node {
	n, ok := g.nodes[name]
	if !ok {
		n = &Node{Name: name}
		g.nodes[name] = n
	}

	return n
}

// HasNode reports whether a node with the given name exists.
// Complexity: O(1).
func (g *Graph) HasNode(name string) bool {
	if name == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[name]

	return ok
}

// Nodes returns all node names sorted lexicographically.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		out = append(out, name)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// lookup fetches a node under the read lock, validating the name.
func (g *Graph) lookup(name string) (*Node, error) {
	if name == "" {
		return nil, ErrEmptyNodeName
	}
	n, ok := g.nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, name)
	}

	return n, nil
}

// Neighbors returns the names reachable over one outgoing edge from name.
// Parallel edges repeat the neighbor once per edge; a multigraph caller that
// wants unique names should use NeighborSet.
// Complexity: O(d).
func (g *Graph) Neighbors(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, err := g.lookup(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(n.out))
	for i, e := range n.out {
		out[i] = e.To
	}

	return out, nil
}

// NeighborSet returns the unique outgoing neighbor names of name, sorted.
// Complexity: O(d).
func (g *Graph) NeighborSet(name string) ([]string, error) {
	all, err := g.Neighbors(name)
	if err != nil {
		return nil, err
	}

	return slices.Compact(all), nil
}

// Predecessors returns the names with an edge into name, repeated once per
// parallel edge. For undirected graphs this equals Neighbors.
// Complexity: O(d).
func (g *Graph) Predecessors(name string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, err := g.lookup(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(n.in))
	for i, e := range n.in {
		out[i] = e.From
	}

	return out, nil
}

// OutDegree returns the number of outgoing edges of name (parallel edges counted).
func (g *Graph) OutDegree(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, err := g.lookup(name)
	if err != nil {
		return 0, err
	}

	return len(n.out), nil
}

// InDegree returns the number of incoming edges of name (parallel edges counted).
func (g *Graph) InDegree(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, err := g.lookup(name)
	if err != nil {
		return 0, err
	}

	return len(n.in), nil
}
