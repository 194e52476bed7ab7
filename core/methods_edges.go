// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddWeightedEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Adjacency slices are kept sorted (out by To, in by From) on insertion.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"slices"
	"strings"
)

// AddEdge adds a unit-weight edge from→to, creating missing nodes on demand
// unless the graph was built WithDeclaredNodes.
//
// Without WithMultiEdges a second AddEdge for the same pair is a no-op; with
// it, the pair gains one more parallel edge.
//
// Errors: ErrEmptyNodeName, ErrLoopNotAllowed, ErrMalformedInput (declared mode).
// Complexity: O(d) for the sorted insert, where d is the endpoint degree.
func (g *Graph) AddEdge(from, to string) error {
	return g.addEdge(from, to, DefaultWeight)
}

// AddWeightedEdge adds an edge with an explicit weight.
// Unweighted graphs accept only DefaultWeight (else ErrBadWeight).
func (g *Graph) AddWeightedEdge(from, to string, weight int64) error {
	if !g.weighted && weight != DefaultWeight {
		return fmt.Errorf("%w: %s→%s weight=%d", ErrBadWeight, from, to, weight)
	}

	return g.addEdge(from, to, weight)
}

func (g *Graph) addEdge(from, to string, weight int64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyNodeName
	}
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Endpoints: created on demand, or required in declared mode
	if g.declared {
		for _, name := range []string{from, to} {
			if _, ok := g.nodes[name]; !ok {
				return fmt.Errorf("%w: edge %s→%s references undefined node %q: %w",
					ErrMalformedInput, from, to, name, ErrNodeNotFound)
			}
		}
	}
	src := g.ensureNode(from)
	dst := g.ensureNode(to)

	// 3) Dedupe unless parallel edges are kept
	if !g.allowMulti && hasOut(src, to) {
		return nil
	}

	// 4) Link, mirroring undirected edges (loops are stored once)
	e := Edge{From: from, To: to, Weight: weight}
	src.out = insertOut(src.out, e)
	dst.in = insertIn(dst.in, e)
	if !g.directed && from != to {
		m := Edge{From: to, To: from, Weight: weight}
		dst.out = insertOut(dst.out, m)
		src.in = insertIn(src.in, m)
	}
	g.edgeCount++

	return nil
}

// hasOut reports whether n already has an outgoing edge to name.
func hasOut(n *Node, name string) bool {
	_, found := slices.BinarySearchFunc(n.out, name, func(e Edge, t string) int {
		return strings.Compare(e.To, t)
	})

	return found
}

// insertOut places e after any existing edges with the same To, keeping
// parallel edges in insertion order.
func insertOut(list []Edge, e Edge) []Edge {
	i, _ := slices.BinarySearchFunc(list, e.To, func(x Edge, t string) int {
		if x.To <= t {
			return -1
		}
		return 1
	})

	return slices.Insert(list, i, e)
}

func insertIn(list []Edge, e Edge) []Edge {
	i, _ := slices.BinarySearchFunc(list, e.From, func(x Edge, f string) int {
		if x.From <= f {
			return -1
		}
		return 1
	})

	return slices.Insert(list, i, e)
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways.
// Complexity: O(log d).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[from]
	if !ok {
		return false
	}

	return hasOut(n, to)
}

// Edges returns a copy of the outgoing edges of name, sorted by To.
func (g *Graph) Edges(name string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, err := g.lookup(name)
	if err != nil {
		return nil, err
	}

	return slices.Clone(n.out), nil
}

// EdgeCount returns the number of logical edges (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
