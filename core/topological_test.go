package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aocpath/core"
)

// TestTopo_Undirected ensures TopologicalOrder rejects undirected graphs.
func TestTopo_Undirected(t *testing.T) {
	g := core.NewGraph()
	_, err := g.TopologicalOrder()
	assert.ErrorIs(t, err, core.ErrUndirected)
}

// TestTopo_Empty covers a directed graph with no nodes.
func TestTopo_Empty(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Empty(t, order.Nodes)
}

// TestTopo_Chain verifies A→B→C yields [A B C] with inbound counts.
func TestTopo_Chain(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("A", "B"))

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order.Nodes)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1}, order.Inbound)
	assert.True(t, order.Before("A", "C"))
	assert.False(t, order.Before("C", "A"))
	assert.Equal(t, []string{"B", "C"}, order.Between("A", "C"))
	assert.Empty(t, order.Between("C", "A"))

	pos, ok := order.Position("B")
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
}

// TestTopo_ParallelInbound counts parallel edges in the inbound map.
func TestTopo_ParallelInbound(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "B"))

	order, err := g.TopologicalOrder()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, order.Nodes)
	assert.Equal(t, 2, order.Inbound["B"])
}

// TestTopo_Cycle ensures cycles are reported with ErrCycleDetected.
func TestTopo_Cycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("S", "A"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("C", "A"))

	order, err := g.TopologicalOrder()
	assert.Nil(t, order)
	assert.ErrorIs(t, err, core.ErrCycleDetected)
	assert.Contains(t, err.Error(), `"A"`)
}

// TestTopo_RandomDAGsRespectEdges checks the permutation property on random DAGs.
func TestTopo_RandomDAGsRespectEdges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		n := 2 + rng.Intn(11)
		g := core.NewGraph(core.WithDirected(true))
		type pair struct{ u, v string }
		var edges []pair
		for i := 0; i < n; i++ {
			require.NoError(t, g.AddNode(fmt.Sprintf("n%02d", i)))
			for j := i + 1; j < n; j++ {
				if rng.Intn(3) == 0 {
					u, v := fmt.Sprintf("n%02d", i), fmt.Sprintf("n%02d", j)
					require.NoError(t, g.AddEdge(u, v))
					edges = append(edges, pair{u, v})
				}
			}
		}

		order, err := g.TopologicalOrder()
		require.NoError(t, err)
		assert.ElementsMatch(t, g.Nodes(), order.Nodes)
		for _, e := range edges {
			assert.True(t, order.Before(e.u, e.v), "trial %d: %s must precede %s", trial, e.u, e.v)
		}
	}
}
