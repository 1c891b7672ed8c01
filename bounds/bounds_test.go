package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arboris-go/treewidth/graph"
	"github.com/arboris-go/treewidth/rng"
)

func cycle(n int) (*graph.Graph, []int) {
	g := graph.New()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(ids[i], ids[(i+1)%n])
	}
	return g, ids
}

func clique(n int) *graph.Graph {
	g := graph.New()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(ids[i], ids[j])
		}
	}
	return g
}

func TestMinWidthOnCycle(t *testing.T) {
	g, _ := cycle(6)
	r := rng.FromSeed(42)
	perm, width := MinWidth(g, r)
	require.Len(t, perm, 6)
	assert.Equal(t, 2, width)
}

func TestMinFillOnClique(t *testing.T) {
	g := clique(5)
	r := rng.FromSeed(7)
	_, width := MinFill(g, r, false)
	assert.Equal(t, 4, width)
}

func TestStochasticMinFillNeverWorseThanSingle(t *testing.T) {
	g, _ := cycle(8)
	r := rng.FromSeed(1)
	_, width := StochasticMinFill(g, r)
	assert.LessOrEqual(t, width, 2)
}

func TestMinorMinWidthLowerBoundsClique(t *testing.T) {
	g := clique(4)
	r := rng.FromSeed(3)
	bound := MinorMinWidth(g, r, LeastCommonNeighbors)
	assert.LessOrEqual(t, bound, 3)
	assert.Greater(t, bound, 0)
}

func TestDegeneracyOnCycleIsTwo(t *testing.T) {
	g, _ := cycle(5)
	assert.Equal(t, 2, Degeneracy(g))
}

func TestImproveNeighborhoodAddsEdges(t *testing.T) {
	// Two hubs sharing three leaves: hubs have 3 common neighbors, so
	// k=2 should connect them.
	g := graph.New()
	h1, h2 := g.AddVertex(), g.AddVertex()
	for i := 0; i < 3; i++ {
		leaf := g.AddVertex()
		_ = g.AddEdge(h1, leaf)
		_ = g.AddEdge(h2, leaf)
	}
	assert.False(t, g.HasEdge(h1, h2))
	improved := ImproveNeighborhood(g, 2)
	assert.True(t, improved.HasEdge(h1, h2))
}

func TestLocalSearchImproveNeverWorsensWidth(t *testing.T) {
	g, ids := cycle(6)
	perm := append([]int(nil), ids...)
	before := WidthOfPermutation(g, perm)
	after, width := LocalSearchImprove(g, perm, DefaultLocalSearchOptions())
	require.Len(t, after, 6)
	assert.LessOrEqual(t, width, before)
}
