package gridgraph

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/aocpath/core"
	"github.com/katalvlaran/aocpath/traverse"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input so later changes to values do not leak in.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts ...Option) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &Grid{height: h, width: w, values: make([]int, 0, h*w), conn: o.Conn}
	for _, row := range values {
		g.values = append(g.values, row...)
	}

	return g, nil
}

// FromDigits builds a Grid whose values are the decimal digits of lines.
// A non-digit byte is ErrMalformedInput.
func FromDigits(lines []string, opts ...Option) (*Grid, error) {
	values := make([][]int, len(lines))
	for r, line := range lines {
		values[r] = make([]int, len(line))
		for c := 0; c < len(line); c++ {
			b := line[c]
			if b < '0' || b > '9' {
				return nil, fmt.Errorf("%w: gridgraph: non-digit %q at %d,%d", ErrMalformedInput, b, r, c)
			}
			values[r][c] = int(b - '0')
		}
	}

	return New(values, opts...)
}

// FromRunes builds a Grid whose values are the rune codes of lines.
func FromRunes(lines []string, opts ...Option) (*Grid, error) {
	values := make([][]int, len(lines))
	for r, line := range lines {
		values[r] = make([]int, 0, utf8.RuneCountInString(line))
		for _, ch := range line {
			values[r] = append(values[r], int(ch))
		}
	}

	return New(values, opts...)
}

// Height is the number of rows.
func (g *Grid) Height() int { return g.height }

// Width is the number of columns.
func (g *Grid) Width() int { return g.width }

// Len is the number of cells.
func (g *Grid) Len() int { return len(g.values) }

// Connectivity is the grid's default connectivity.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// index maps p to its row-major index; p must be in bounds.
func (g *Grid) index(p Point) int { return p.Row*g.width + p.Col }

// point converts a row-major index back to a Point.
func (g *Grid) point(i int) Point { return Point{i / g.width, i % g.width} }

func (g *Grid) cell(i int) Cell {
	return Cell{Row: i / g.width, Col: i % g.width, Value: g.values[i]}
}

// CellAt returns the cell at (row, col), or ErrOutOfBounds.
func (g *Grid) CellAt(row, col int) (Cell, error) {
	p := Point{row, col}
	if !g.InBounds(p) {
		return Cell{}, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, row, col, g.height, g.width)
	}

	return g.cell(g.index(p)), nil
}

// Value returns the value at p and whether p is in bounds.
func (g *Grid) Value(p Point) (int, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.values[g.index(p)], true
}

// Set overwrites the value at p.
func (g *Grid) Set(p Point, v int) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	g.values[g.index(p)] = v

	return nil
}

// Neighbors returns the in-bounds cells adjacent to p under conn, in offset
// order. Edges and corners simply have fewer neighbors; nothing wraps.
// An out-of-bounds p has none.
func (g *Grid) Neighbors(p Point, conn Connectivity) []Cell {
	if !g.InBounds(p) {
		return nil
	}
	offs := conn.Offsets()
	out := make([]Cell, 0, len(offs))
	for _, d := range offs {
		q := p.Add(d)
		if g.InBounds(q) {
			out = append(out, g.cell(g.index(q)))
		}
	}

	return out
}

// Cells yields every cell in row-major order. Each range over the sequence
// starts again from (0,0).
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i := range g.values {
			if !yield(g.cell(i)) {
				return
			}
		}
	}
}

// Points yields every coordinate in row-major order.
func (g *Grid) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range g.values {
			if !yield(g.point(i)) {
				return
			}
		}
	}
}

// Find returns the first point, row-major, holding value.
func (g *Grid) Find(value int) (Point, bool) {
	for i, v := range g.values {
		if v == value {
			return g.point(i), true
		}
	}
	return Point{}, false
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.values = append([]int(nil), g.values...)

	return &c
}

// String renders values 0..9 as digits and anything else as the rune it encodes.
func (g *Grid) String() string {
	var sb strings.Builder
	for i, v := range g.values {
		if i > 0 && i%g.width == 0 {
			sb.WriteByte('\n')
		}
		if v >= 0 && v <= 9 {
			sb.WriteByte(byte('0' + v))
		} else {
			sb.WriteRune(rune(v))
		}
	}

	return sb.String()
}

// NeighborFunc adapts g to traverse.Neighbors. allow, when non-nil, filters
// each step by the cells' values at call time.
func (g *Grid) NeighborFunc(conn Connectivity, allow func(from, to Cell) bool) traverse.Neighbors[Point] {
	return func(p Point) []Point {
		if !g.InBounds(p) {
			return nil
		}
		from := g.cell(g.index(p))
		var out []Point
		for _, to := range g.Neighbors(p, conn) {
			if allow == nil || allow(from, to) {
				out = append(out, to.Point())
			}
		}

		return out
	}
}

// ToCoreGraph converts the grid into an undirected *core.Graph.
// Each cell becomes a node named "row,col"; unit edges join neighbors under conn.
// Complexity: O(W×H×d) time and memory.
func (g *Grid) ToCoreGraph(conn Connectivity) (*core.Graph, error) {
	cg := core.NewGraph()
	for i := range g.values {
		p := g.point(i)
		if err := cg.AddNode(p.String()); err != nil {
			return nil, err
		}
		for _, n := range g.Neighbors(p, conn) {
			if err := cg.AddEdge(p.String(), n.Point().String()); err != nil {
				return nil, err
			}
		}
	}

	return cg, nil
}
