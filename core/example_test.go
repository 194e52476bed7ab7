package core_test

import (
	"fmt"

	"github.com/katalvlaran/aocpath/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// Undirected by default; AddEdge creates nodes on demand.
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	nb, _ := g.Neighbors("B")
	fmt.Println("Nodes:", g.Nodes())
	fmt.Println("Neighbors of B:", nb)
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// Output:
	// Nodes: [A B C]
	// Neighbors of B: [A C]
	// Edge B→A exists? true
}

// ExampleGraph_TopologicalOrder shows Kahn ordering on a small DAG.
func ExampleGraph_TopologicalOrder() {
	g, _ := core.ParseAdjacency([]string{
		"svr: aaa bbb",
		"aaa: fft",
		"bbb: fft",
		"fft: out",
	})
	order, err := g.TopologicalOrder()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order.Nodes)
	fmt.Println("inbound fft:", order.Inbound["fft"])

	// Output:
	// [svr aaa bbb fft out]
	// inbound fft: 2
}
