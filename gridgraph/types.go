// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/aocpath.
package gridgraph

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/aocpath/core"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrMalformedInput is core.ErrMalformedInput; every construction error wraps it.
	ErrMalformedInput = core.ErrMalformedInput
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("gridgraph: input grid must have at least one row and one column: %w", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("gridgraph: all rows must have the same length: %w", ErrMalformedInput)
	// ErrOutOfBounds indicates coordinates outside [0,Height)×[0,Width).
	ErrOutOfBounds = errors.New("gridgraph: coordinates out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// (row, col) offsets, clockwise from north.
var (
	offsets4 = []Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = []Point{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Offsets returns the neighbor offsets for c. The slice must not be modified.
func (c Connectivity) Offsets() []Point {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Point identifies a cell by row and column.
type Point struct {
	Row, Col int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point { return Point{p.Row + d.Row, p.Col + d.Col} }

// String formats p as "row,col", the node name used by ToCoreGraph.
func (p Point) String() string {
	return strconv.Itoa(p.Row) + "," + strconv.Itoa(p.Col)
}

// Cell is a grid position together with its current value.
type Cell struct {
	Row, Col int
	Value    int
}

// Point returns the identity of c.
func (c Cell) Point() Point { return Point{c.Row, c.Col} }

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn is the connectivity used by Step and ConnectedComponents.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn4}
}

// Option customizes GridOptions at construction.
type Option func(*GridOptions)

// WithConnectivity sets the grid's default connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(o *GridOptions) { o.Conn = c }
}

// Grid is a rectangular grid of integer cells stored row-major.
// Dimensions and neighbor offsets are fixed at construction; values change
// only through Set and Step.
type Grid struct {
	height, width int
	values        []int
	conn          Connectivity
}

// StepRule parameterizes a two-phase simulation step.
type StepRule struct {
	// Threshold: a cell whose value exceeds it fires.
	Threshold int
	// Reset is the value a fired cell is pinned to for the rest of the step.
	Reset int
}

// StepResult reports the cells that fired during one Step, in firing order.
type StepResult struct {
	Fired []Point
	Count int
}
