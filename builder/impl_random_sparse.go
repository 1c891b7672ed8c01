package builder

import (
	"fmt"

	"github.com/arboris-go/treewidth/graph"
)

const minRandomSparseVertices = 1

// RandomSparse builds an Erdos-Renyi-style graph over n vertices: every
// unordered pair {i,j}, i<j, is sampled independently as an edge with
// probability p. Trial order is fixed (i asc, then j asc), so outcomes
// are deterministic for a fixed RNG stream.
//
// An RNG is required unless p is 0 or 1, in which case the result is
// already fully determined (the empty graph or the complete graph) and
// no sampling actually happens.
func RandomSparse(n int, p float64, opts ...BuilderOption) (*graph.Graph, error) {
	if n < minRandomSparseVertices {
		return nil, fmt.Errorf("RandomSparse: n=%d < %d: %w", n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%g not in [0,1]: %w", p, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
	}

	g := graph.NewWithCapacity(n)
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			include := p == 1 || (cfg.rng != nil && p > 0 && cfg.rng.Float64() < p)
			if !include {
				continue
			}
			if err := g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
