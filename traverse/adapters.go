package traverse

import "github.com/katalvlaran/aocpath/core"

// FromGraph adapts g's adjacency to a Neighbors function. Parallel edges
// appear once per edge. Unknown nodes have no neighbors.
func FromGraph(g *core.Graph) Neighbors[string] {
	return func(name string) []string {
		nb, err := g.Neighbors(name)
		if err != nil {
			return nil
		}

		return nb
	}
}

// WeightedFromGraph adapts g's outgoing edges to a WeightedNeighbors function
// using the stored edge weights.
func WeightedFromGraph(g *core.Graph) WeightedNeighbors[string] {
	return func(name string) []Edge[string] {
		edges, err := g.Edges(name)
		if err != nil {
			return nil
		}
		out := make([]Edge[string], len(edges))
		for i, e := range edges {
			out[i] = Edge[string]{To: e.To, Cost: e.Weight}
		}

		return out
	}
}
