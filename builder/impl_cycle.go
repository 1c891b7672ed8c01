package builder

import (
	"fmt"

	"github.com/arboris-go/treewidth/graph"
)

const minCycleVertices = 3

// Cycle builds the simple cycle C_n: vertices 0..n-1 connected i to i+1,
// wrapping n-1 back to 0. n must be at least 3; smaller values collapse
// into a multi-edge or self-loop, which this module's graphs forbid.
func Cycle(n int) (*graph.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("Cycle: n=%d < %d: %w", n, minCycleVertices, ErrTooFewVertices)
	}
	g := graph.NewWithCapacity(n)
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for i := 0; i < n; i++ {
		if err := g.AddEdge(i, (i+1)%n); err != nil {
			return nil, err
		}
	}
	return g, nil
}
