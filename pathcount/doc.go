// Package pathcount counts distinct directed paths in a DAG without
// enumerating them.
//
// What:
//
//   - Count / Counter.Count: number of start→end paths in O(V + E), by
//     dynamic programming over a topological order. counts[start] = 1, then
//     every node after start, up to and including end, takes the sum of its
//     predecessors' counts. Predecessors are always final first because they
//     come earlier in the order.
//   - Through: paths that visit every waypoint, summed over waypoint
//     orderings. Each ordering contributes the product of its segment counts;
//     segments are composed by integer arithmetic, never by re-traversal.
//   - BruteForce: the same number by DFS enumeration (traverse.CountPaths),
//     exponential, for verification on small graphs.
//
// Parallel edges count as distinct paths. A start that does not precede end
// in the order has zero paths to it; start == end has exactly one.
//
// Errors:
//
//   - core.ErrUndirected, core.ErrCycleDetected: from the topological order.
//   - core.ErrNodeNotFound: start, end or a waypoint is not in the graph.
//   - ErrOverflow: a count does not fit in int64.
package pathcount
