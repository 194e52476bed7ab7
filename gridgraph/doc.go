// Package gridgraph treats a rectangular grid of integer cells as a graph
// for the traversal engine.
//
// What:
//
//   - Grid wraps a row-major []int with fixed Height×Width. Build it from
//     [][]int (New), digit lines (FromDigits) or character lines (FromRunes).
//   - Neighbors returns only in-bounds cells under Conn4 or Conn8; nothing
//     wraps and no sentinel padding is returned.
//   - Cells and Points are lazy, restartable row-major sequences.
//   - NeighborFunc adapts the grid to traverse.Neighbors[Point]; ToCoreGraph
//     converts it to a *core.Graph with "row,col" node names.
//   - ConnectedComponents, LowPoints and Step cover flood-fill basins and
//     cascading two-phase simulations.
//
// Complexity:
//
//   - Neighbors: O(d), d = 4 or 8.
//   - ConnectedComponents, Step: O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph: O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - WithConnectivity(Conn4|Conn8): default connectivity for Step and
//     ConnectedComponents.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, non-digit input: all wrap ErrMalformedInput.
//   - ErrOutOfBounds: CellAt or Set outside the grid.
package gridgraph
