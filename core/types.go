// Package core defines the central Graph, Node, and Edge types and the
// sentinel errors shared by the construction and query methods.
//
// All core APIs guard state with a single sync.RWMutex, so a built graph can be
// read from several goroutines while traversals run over it.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeName indicates that the provided node name is empty.
	ErrEmptyNodeName = errors.New("core: node name is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates a non-unit weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMalformedInput indicates unparsable input or an edge that references
	// an undeclared node. Construction fails fast with it.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrCycleDetected indicates a topological order was requested on a cyclic graph.
	ErrCycleDetected = errors.New("core: cycle detected")

	// ErrUndirected indicates a directed-only operation on an undirected graph.
	ErrUndirected = errors.New("core: operation requires a directed graph")
)

// DefaultWeight is the cost of an edge added through AddEdge.
const DefaultWeight int64 = 1

// Edge is one directed connection between two nodes.
//
// Undirected graphs store every edge twice, once per direction, so callers
// always see Edge.From equal to the node they asked about.
type Edge struct {
	// From is the source node name.
	From string

	// To is the destination node name.
	To string

	// Weight is the traversal cost; DefaultWeight on unweighted graphs.
	Weight int64
}

// Node is a named vertex. The Graph owns every Node through its name-keyed
// map; adjacency slices hold edges, never Node pointers.
type Node struct {
	// Name uniquely identifies this Node within its Graph.
	Name string

	out []Edge // outgoing, sorted by To
	in  []Edge // incoming, sorted by From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether new edges are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows edge weights other than DefaultWeight.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges keeps every parallel edge between the same endpoints.
// Without it a duplicate AddEdge is a no-op.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithDeclaredNodes requires both endpoints of an edge to exist before the
// edge is added. A dangling reference returns ErrMalformedInput.
func WithDeclaredNodes() GraphOption {
	return func(g *Graph) { g.declared = true }
}

// Graph is the name-keyed, in-memory graph data structure.
//
// mu guards nodes and edgeCount; configuration flags are immutable after
// NewGraph returns.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed   bool // one-way edges
	weighted   bool // allow non-unit weights
	allowMulti bool // keep parallel edges
	allowLoops bool // allow self-loops
	declared   bool // edges must reference existing nodes

	// Storage
	nodes     map[string]*Node
	edgeCount int // logical edges; an undirected edge counts once
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected, unweighted, without loops or parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-unit weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }

// Multigraph reports whether parallel edges are kept.
func (g *Graph) Multigraph() bool { return g.allowMulti }
