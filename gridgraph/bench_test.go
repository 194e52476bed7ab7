package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/aocpath/gridgraph"
)

func randomGrid(b *testing.B, h, w int, opts ...gridgraph.Option) *gridgraph.Grid {
	rng := rand.New(rand.NewSource(42))
	values := make([][]int, h)
	for r := range values {
		values[r] = make([]int, w)
		for c := range values[r] {
			values[r][c] = rng.Intn(10)
		}
	}
	g, err := gridgraph.New(values, opts...)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

// BenchmarkConnectedComponents measures basin discovery on a 200×200 grid.
func BenchmarkConnectedComponents(b *testing.B) {
	g := randomGrid(b, 200, 200)
	notNine := func(c gridgraph.Cell) bool { return c.Value != 9 }
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ConnectedComponents(notNine)
	}
}

// BenchmarkStep measures cascading steps on a 100×100 Conn8 grid.
func BenchmarkStep(b *testing.B) {
	g := randomGrid(b, 100, 100, gridgraph.WithConnectivity(gridgraph.Conn8))
	rule := gridgraph.StepRule{Threshold: 9, Reset: 0}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Step(rule); err != nil {
			b.Fatal(err)
		}
	}
}
