package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arboris-go/treewidth/decomp"
	"github.com/arboris-go/treewidth/graph"
)

func TestReduceStripsIsolatedVertex(t *testing.T) {
	g := graph.New()
	a := g.AddVertex()
	b, c := g.AddVertex(), g.AddVertex()
	_ = g.AddEdge(b, c)

	eng := New(0)
	kernel, stack := eng.Reduce(g)

	// a goes first as Isolated; the Leaf rule then strips b, leaving c
	// isolated, so the kernel ends up empty.
	assert.Equal(t, 3, len(stack))
	assert.Equal(t, Isolated, stack[0].Kind)
	assert.Equal(t, a, stack[0].Vertex)
	assert.True(t, Fully(kernel))
}

func TestReduceStripsPathFully(t *testing.T) {
	g := graph.New()
	ids := make([]int, 5)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	for i := 0; i+1 < len(ids); i++ {
		_ = g.AddEdge(ids[i], ids[i+1])
	}

	eng := New(0)
	kernel, stack := eng.Reduce(g)
	assert.True(t, Fully(kernel))
	assert.NotEmpty(t, stack)
}

func TestReduceStripsCliqueViaSimplicial(t *testing.T) {
	g := graph.New()
	ids := make([]int, 4)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			_ = g.AddEdge(ids[i], ids[j])
		}
	}
	eng := New(3)
	kernel, stack := eng.Reduce(g)
	assert.True(t, Fully(kernel))
	// Simplicial removes the first vertex; the triangle left behind is
	// then stripped by the low-degree queue.
	kinds := make([]Kind, len(stack))
	for i, s := range stack {
		kinds[i] = s.Kind
	}
	assert.Equal(t, []Kind{Simplicial, Series, Leaf, Isolated}, kinds)
}

func TestGlueReconstructsValidDecomposition(t *testing.T) {
	g := graph.New()
	ids := make([]int, 6)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	// a small tree-shaped graph: central triangle with two pendants
	_ = g.AddEdge(ids[0], ids[1])
	_ = g.AddEdge(ids[1], ids[2])
	_ = g.AddEdge(ids[0], ids[2])
	_ = g.AddEdge(ids[2], ids[3])
	_ = g.AddEdge(ids[3], ids[4])
	_ = g.AddEdge(ids[1], ids[5])

	eng := New(2)
	kernel, stack := eng.Reduce(g)

	var tree *decomp.Tree
	if kernel.N() > 0 {
		perm := kernel.Vertices()
		var err error
		tree, err = decomp.FromPermutation(kernel, perm)
		require.NoError(t, err)
	} else {
		tree = decomp.New()
	}

	Glue(tree, stack)
	assert.NoError(t, tree.Verify(g))
}
