package bounds

import (
	"math/rand"

	"github.com/arboris-go/treewidth/graph"
	"github.com/arboris-go/treewidth/rng"
)

// StochasticMinFill runs min(n, 100) independent min-fill passes (each
// seeded from an independently-derived RNG stream so passes never share
// tie-break state), alternating the plain and sparsest-subgraph tie-break
// rules across iterations, and keeps the best-width permutation seen.
func StochasticMinFill(g *graph.Graph, base *rand.Rand) ([]int, int) {
	n := g.N()
	passes := n
	if passes > 100 {
		passes = 100
	}
	if passes == 0 {
		return nil, -1
	}

	var bestPerm []int
	bestWidth := -1
	for i := 0; i < passes; i++ {
		stream := rng.Derive(base, uint64(i))
		sparsest := i%2 == 1
		perm, width := MinFill(g, stream, sparsest)
		if bestWidth == -1 || width < bestWidth {
			bestWidth = width
			bestPerm = perm
		}
	}
	return bestPerm, bestWidth
}
