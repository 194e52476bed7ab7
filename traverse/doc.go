// Package traverse is the traversal engine shared by every grid and graph
// puzzle: shortest paths, flood fill / connected components, and DFS path
// enumeration, all driven by a caller-supplied neighbor function.
//
// What
//
//   - ShortestPath: multi-source Dijkstra over non-negative costs. With Unit
//     costs this is the unit-weight BFS shortest path. Frontier: priority queue
//     keyed by accumulated cost; a neighbor is pushed only when strictly improved.
//   - FloodFill / Components: FIFO frontier; every neighbor accepted by the
//     neighbor function (and WithFilter) is visited exactly once.
//   - Paths / CountPaths: explicit-stack DFS enumerating every path from start
//     to a terminal node, with a VisitPolicy deciding which nodes may be
//     re-entered on the current path.
//
// ShortestPath and FloodFill share one frontier loop (walker.run); only the
// frontier and the relaxation rule differ.
//
// Node identity
//
//	The engine is generic over K comparable. Grids use gridgraph.Point, named
//	graphs use string (see FromGraph / WeightedFromGraph). The engine only holds
//	keys, never the underlying grid or graph, and must not outlive them.
//
// Failure semantics
//
//	An unreachable target is a normal result: Result.Distance reports
//	Unreachable and false. Result.PathTo returns ErrUnreachable for callers
//	who want an error. Errors are reserved for invalid options, negative costs,
//	cancelled contexts, hook failures and the iteration bound.
//
// Ordering
//
//	Shortest-path distances do not depend on the order of equal-cost frontier
//	entries. Visit Order and path enumeration order follow the neighbor
//	function's order; callers that depend on enumeration order should sort the
//	result (SortPaths) rather than rely on it.
//
// Options
//
//   - WithContext(ctx):        cancellation, checked once per frontier pop.
//   - WithOnVisit(fn):         hook per visited node; an error aborts.
//   - WithFilter(fn):          skip from→to steps when fn returns false.
//   - WithTarget(fn):          stop once a node satisfying fn is settled.
//   - WithMaxCost(c):          do not expand beyond accumulated cost c (c > 0).
//   - WithMaxIterations(n):    abort with ErrIterationLimit after n pops.
//   - WithUnlimited(fn):       Paths only; nodes that are never visit-counted.
//
// Complexity
//
//   - ShortestPath: O((V + E) log V), FloodFill: O(V + E).
//   - Paths: proportional to the number of enumerated path prefixes.
package traverse
