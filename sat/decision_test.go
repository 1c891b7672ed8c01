package sat

import (
	"testing"

	"github.com/arboris-go/treewidth/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cycle(n int) *graph.Graph {
	g := graph.New()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(ids[i], ids[(i+1)%n])
	}
	return g
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

func TestDecideCycleHasWidthTwo(t *testing.T) {
	g := cycle(6)
	order, width := Decide(g, 5, 0, NewGiniOracle(), Base)
	require.NotNil(t, order)
	assert.Equal(t, 2, width)
	assert.ElementsMatch(t, g.Vertices(), order)
}

func TestDecideCliqueHasWidthNMinusOne(t *testing.T) {
	g := clique(5)
	order, width := Decide(g, 4, 0, NewGiniOracle(), Base)
	require.NotNil(t, order)
	assert.Equal(t, 4, width)
	assert.ElementsMatch(t, g.Vertices(), order)
}

func TestAscendingWitnessMatchesDescendingDecide(t *testing.T) {
	g := cycle(5)
	descOrder, descWidth := Decide(g, 4, 0, NewGiniOracle(), Base)
	ascOrder, ascWidth := AscendingWitness(g, 0, 4, NewGiniOracle(), Base)
	require.NotNil(t, descOrder)
	require.NotNil(t, ascOrder)
	assert.Equal(t, descWidth, ascWidth)
}

func TestDecideWithImprovedAndLadderVariantsAgree(t *testing.T) {
	g := cycle(6)
	_, baseWidth := Decide(g, 5, 0, NewGiniOracle(), Base)
	_, improvedWidth := Decide(g, 5, 0, NewGiniOracle(), Improved)
	_, ladderWidth := Decide(g, 5, 0, NewGiniOracle(), Ladder)
	assert.Equal(t, baseWidth, improvedWidth)
	assert.Equal(t, baseWidth, ladderWidth)
}

func TestDecideEmptyGraph(t *testing.T) {
	g := graph.New()
	order, width := Decide(g, 0, 0, NewGiniOracle(), Base)
	assert.Nil(t, order)
	assert.Equal(t, -1, width)
}
