// Package core provides the name-keyed Graph used by every traversal in this
// module, with a minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unit-cost edges (WithWeighted)
//   - Parallel edges (WithMultiEdges). Without it a repeated AddEdge(from,to)
//     is an idempotent no-op; with it every call adds one more parallel edge,
//     which path counting treats as a distinct route.
//   - Self-loops (WithLoops)
//   - Declared-node mode (WithDeclaredNodes): edges may only reference nodes
//     added through AddNode, so a dangling reference fails at construction.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(name string) error          // O(1), idempotent
//	HasNode(name string) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string) error                      // unit weight
//	AddWeightedEdge(from, to string, weight int64) error // weighted graphs only
//
//	// Query
//	Nodes() []string                      // sorted
//	Neighbors(name string) ([]string, error)    // sorted, parallel edges repeated
//	Predecessors(name string) ([]string, error) // sorted, parallel edges repeated
//	Edges(name string) ([]Edge, error)          // outgoing, sorted by To
//	InDegree / OutDegree / NodeCount / EdgeCount
//
//	// Ordering
//	TopologicalOrder() (*TopoOrder, error) // Kahn's algorithm
//
//	// Parsing
//	ParseEdgeList(lines, sep, opts...)  // "a-b" lines
//	ParseAdjacency(lines, opts...)      // "a: b c d" lines
//
// Determinism:
//
//	Adjacency lists are kept sorted by neighbor name on insertion, so every
//	query and every traversal built on top of them is reproducible.
//
// Errors:
//
//	ErrEmptyNodeName   – zero-length node name
//	ErrNodeNotFound    – missing node (wrapped in ErrMalformedInput for dangling edges)
//	ErrBadWeight       – non-unit weight on an unweighted graph
//	ErrLoopNotAllowed  – self-loop when loops are disabled
//	ErrMalformedInput  – unparsable line or dangling reference
//	ErrCycleDetected   – TopologicalOrder on a cyclic graph
//	ErrUndirected      – TopologicalOrder on an undirected graph
package core
