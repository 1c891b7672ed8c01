package builder

import (
	"fmt"

	"github.com/arboris-go/treewidth/graph"
)

const minPathVertices = 1

// Path builds the simple path P_n: vertices 0..n-1 connected i to i+1.
// n must be at least 1 (a single isolated vertex is a degenerate path).
func Path(n int) (*graph.Graph, error) {
	if n < minPathVertices {
		return nil, fmt.Errorf("Path: n=%d < %d: %w", n, minPathVertices, ErrTooFewVertices)
	}
	g := graph.NewWithCapacity(n)
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(i, i+1); err != nil {
			return nil, err
		}
	}
	return g, nil
}
