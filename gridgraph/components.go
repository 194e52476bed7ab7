package gridgraph

import "github.com/katalvlaran/aocpath/traverse"

// ConnectedComponents finds all contiguous regions of cells accepted by
// include, according to the grid's connectivity. Components are listed in
// row-major order of their first cell; each holds its cells in BFS order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(include func(Cell) bool) ([][]Point, error) {
	var seeds []Point
	for c := range g.Cells() {
		if include(c) {
			seeds = append(seeds, c.Point())
		}
	}
	nbrs := g.NeighborFunc(g.conn, func(_, to Cell) bool { return include(to) })

	return traverse.Components(seeds, nbrs)
}

// LowPoints returns every cell strictly lower than all of its neighbors
// under conn, in row-major order.
func (g *Grid) LowPoints(conn Connectivity) []Cell {
	var low []Cell
	for c := range g.Cells() {
		isLow := true
		for _, n := range g.Neighbors(c.Point(), conn) {
			if n.Value <= c.Value {
				isLow = false
				break
			}
		}
		if isLow {
			low = append(low, c)
		}
	}

	return low
}
