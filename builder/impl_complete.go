package builder

import (
	"fmt"

	"github.com/arboris-go/treewidth/graph"
)

const minCompleteVertices = 1

// Complete builds the complete graph K_n: every pair of vertices 0..n-1
// joined by an edge, emitted in ascending (i,j) order with i<j.
func Complete(n int) (*graph.Graph, error) {
	if n < minCompleteVertices {
		return nil, fmt.Errorf("Complete: n=%d < %d: %w", n, minCompleteVertices, ErrTooFewVertices)
	}
	g := graph.NewWithCapacity(n)
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(i, j); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}
