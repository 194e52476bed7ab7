package gridgraph_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocpath/gridgraph"
)

func TestNew_Validation(t *testing.T) {
	_, err := gridgraph.New(nil)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	assert.ErrorIs(t, err, gridgraph.ErrMalformedInput)

	_, err = gridgraph.New([][]int{{}})
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.New([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
	assert.ErrorIs(t, err, gridgraph.ErrMalformedInput)

	_, err = gridgraph.FromDigits([]string{"12", "3x"})
	assert.ErrorIs(t, err, gridgraph.ErrMalformedInput)
}

func TestNew_CopiesInput(t *testing.T) {
	src := [][]int{{1, 2}, {3, 4}}
	g, err := gridgraph.New(src)
	require.NoError(t, err)
	src[0][0] = 99

	c, err := g.CellAt(0, 0)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Cell{Row: 0, Col: 0, Value: 1}, c)
}

func TestCellAt_Bounds(t *testing.T) {
	g, err := gridgraph.FromDigits([]string{"123", "456"})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 3, g.Width())

	c, err := g.CellAt(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, c.Value)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err = g.CellAt(p[0], p[1])
		assert.ErrorIs(t, err, gridgraph.ErrOutOfBounds, "%v", p)
	}
	assert.ErrorIs(t, g.Set(gridgraph.Point{Row: 5, Col: 5}, 1), gridgraph.ErrOutOfBounds)
}

func TestNeighbors_CountsStayInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 30; trial++ {
		h, w := 2+rng.Intn(6), 2+rng.Intn(6)
		values := make([][]int, h)
		for r := range values {
			values[r] = make([]int, w)
		}
		g, err := gridgraph.New(values)
		require.NoError(t, err)

		for p := range g.Points() {
			n4 := g.Neighbors(p, gridgraph.Conn4)
			n8 := g.Neighbors(p, gridgraph.Conn8)
			assert.True(t, len(n4) >= 2 && len(n4) <= 4, "conn4 %v in %dx%d: %d", p, h, w, len(n4))
			assert.True(t, len(n8) >= 3 && len(n8) <= 8, "conn8 %v in %dx%d: %d", p, h, w, len(n8))
			for _, c := range append(n4, n8...) {
				assert.True(t, g.InBounds(c.Point()))
				assert.NotEqual(t, p, c.Point())
			}
		}
	}
}

func TestNeighbors_OrderAndOutside(t *testing.T) {
	g, err := gridgraph.FromDigits([]string{"123", "456", "789"})
	require.NoError(t, err)

	var vals []int
	for _, c := range g.Neighbors(gridgraph.Point{Row: 1, Col: 1}, gridgraph.Conn4) {
		vals = append(vals, c.Value)
	}
	assert.Equal(t, []int{2, 6, 8, 4}, vals)

	vals = vals[:0]
	for _, c := range g.Neighbors(gridgraph.Point{Row: 1, Col: 1}, gridgraph.Conn8) {
		vals = append(vals, c.Value)
	}
	assert.Equal(t, []int{2, 3, 6, 9, 8, 7, 4, 1}, vals)

	assert.Nil(t, g.Neighbors(gridgraph.Point{Row: 3, Col: 0}, gridgraph.Conn4))
}

func TestCells_Restartable(t *testing.T) {
	g, err := gridgraph.FromDigits([]string{"12", "34"})
	require.NoError(t, err)

	first := slices.Collect(g.Cells())
	second := slices.Collect(g.Cells())
	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 0, Value: 3}, first[2])

	// early break leaves nothing behind
	for c := range g.Cells() {
		if c.Value == 2 {
			break
		}
	}
	assert.Equal(t, first, slices.Collect(g.Cells()))
}

func TestFindCloneString(t *testing.T) {
	g, err := gridgraph.FromRunes([]string{"Sab", "cdE"})
	require.NoError(t, err)

	p, ok := g.Find('E')
	require.True(t, ok)
	assert.Equal(t, gridgraph.Point{Row: 1, Col: 2}, p)
	_, ok = g.Find('z')
	assert.False(t, ok)

	c := g.Clone()
	require.NoError(t, c.Set(p, 'z'))
	assert.Equal(t, "Sab\ncdE", g.String())
	assert.Equal(t, "Sab\ncdz", c.String())
}

func TestToCoreGraph(t *testing.T) {
	g, err := gridgraph.FromDigits([]string{"123", "456"})
	require.NoError(t, err)

	cg, err := g.ToCoreGraph(gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 6, cg.NodeCount())
	assert.Equal(t, 7, cg.EdgeCount())
	assert.True(t, cg.HasEdge("0,0", "1,0"))
	assert.True(t, cg.HasEdge("1,0", "0,0"))
	assert.False(t, cg.HasEdge("0,0", "1,1"))

	cg8, err := g.ToCoreGraph(gridgraph.Conn8)
	require.NoError(t, err)
	assert.Equal(t, 11, cg8.EdgeCount())
	assert.True(t, cg8.HasEdge("0,0", "1,1"))
}
