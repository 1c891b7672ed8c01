package bnb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arboris-go/treewidth/bounds"
	"github.com/arboris-go/treewidth/graph"
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

func TestSolveCycleWidthTwo(t *testing.T) {
	g := cycle(6)
	e := New()
	perm, width := e.Solve(g, 0)
	require.Len(t, perm, 6)
	assert.Equal(t, 2, width)
	assert.Equal(t, width, bounds.WidthOfPermutation(g, perm))
}

func TestSolveCliqueShortCircuits(t *testing.T) {
	g := clique(5)
	e := New()
	perm, width := e.Solve(g, 0)
	require.Len(t, perm, 5)
	assert.Equal(t, 4, width)
}

func TestSolveEmptyGraph(t *testing.T) {
	g := graph.New()
	e := New()
	perm, width := e.Solve(g, 0)
	assert.Empty(t, perm)
	assert.Equal(t, -1, width)
}

func TestCurrentSolutionMatchesSolve(t *testing.T) {
	g := cycle(5)
	e := New()
	perm, width := e.Solve(g, 0)
	curPerm, curWidth := e.CurrentSolution()
	assert.Equal(t, perm, curPerm)
	assert.Equal(t, width, curWidth)
}
