package graph

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cycle builds a simple cycle C_n (n >= 3) and returns its vertex ids in
// creation order.
func cycle(n int) (*Graph, []int) {
	g := New()
	ids := make([]int, n)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	for i := 0; i < n; i++ {
		_ = g.AddEdge(ids[i], ids[(i+1)%n])
	}
	return g, ids
}

func snapshot(g *Graph) (alive []bool, edges map[[2]int]bool, eIN []int) {
	alive = append([]bool(nil), g.alive...)
	eIN = append([]int(nil), g.edgesInNeighborhood...)
	edges = make(map[[2]int]bool)
	for _, v := range g.Vertices() {
		for u := range g.adj[v] {
			a, b := v, u
			if a > b {
				a, b = b, a
			}
			edges[[2]int{a, b}] = true
		}
	}
	return
}

func TestEliminateDeEliminateRoundTrip(t *testing.T) {
	g, ids := cycle(6)
	// add a chord to create some fill-in structure
	_ = g.AddEdge(ids[0], ids[2])

	beforeAlive, beforeEdges, beforeEIN := snapshot(g)

	info, err := g.EliminateVertex(ids[3])
	require.NoError(t, err)
	g.DeEliminateVertex(info)

	afterAlive, afterEdges, afterEIN := snapshot(g)
	assert.Equal(t, beforeAlive, afterAlive)
	assert.Equal(t, beforeEdges, afterEdges)
	assert.Equal(t, beforeEIN, afterEIN)
}

func TestEliminateCliquesNeighborhood(t *testing.T) {
	g, ids := cycle(5)
	v := ids[0]
	neighBefore := g.Neighbors(v)
	require.Len(t, neighBefore, 2)

	_, err := g.EliminateVertex(v)
	require.NoError(t, err)

	assert.False(t, g.Alive(v))
	assert.True(t, g.HasEdge(neighBefore[0], neighBefore[1]))
}

func TestFillInAndSimplicial(t *testing.T) {
	g := New()
	a, b, c, d := g.AddVertex(), g.AddVertex(), g.AddVertex(), g.AddVertex()
	// star centered at a: a is simplicial trivially once deg<=1, but make
	// a genuine triangle-plus-pendant to exercise FillIn>0.
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(a, c)
	_ = g.AddEdge(a, d)
	_ = g.AddEdge(b, c)
	// N(a) = {b,c,d}; edges among them: only {b,c}. fill-in(a) = 3-1=2.
	assert.Equal(t, 2, g.FillIn(a))
	assert.False(t, g.IsSimplicial(a))

	_ = g.AddEdge(b, d)
	_ = g.AddEdge(c, d)
	assert.Equal(t, 0, g.FillIn(a))
	assert.True(t, g.IsSimplicial(a))
}

func TestSimplicialVertexOnClique(t *testing.T) {
	g := New()
	ids := make([]int, 4)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			_ = g.AddEdge(ids[i], ids[j])
		}
	}
	for _, v := range ids {
		assert.True(t, g.IsSimplicial(v))
	}
}

func TestAlmostSimplicialVertex(t *testing.T) {
	g := New()
	v := g.AddVertex()
	w := g.AddVertex()
	x := g.AddVertex()
	y := g.AddVertex()
	z := g.AddVertex()
	// N(v) = {w,x,y,z}; x,y,z form a clique, w is adjacent to none of
	// them. Removing w (and only w) leaves {x,y,z}, a clique.
	_ = g.AddEdge(v, w)
	_ = g.AddEdge(v, x)
	_ = g.AddEdge(v, y)
	_ = g.AddEdge(v, z)
	_ = g.AddEdge(x, y)
	_ = g.AddEdge(y, z)
	_ = g.AddEdge(x, z)

	got, witness, ok := g.AlmostSimplicialVertex(nil)
	require.True(t, ok)
	assert.Equal(t, v, got)
	assert.Equal(t, w, witness)
}

func TestTwinDecompositionFalseTwins(t *testing.T) {
	g := New()
	hub1, hub2 := g.AddVertex(), g.AddVertex()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	for _, leaf := range []int{a, b, c} {
		_ = g.AddEdge(hub1, leaf)
		_ = g.AddEdge(hub2, leaf)
	}
	classes := g.TwinDecomposition(false)
	require.Len(t, classes, 2)
	var sizes []int
	for _, cl := range classes {
		sizes = append(sizes, len(cl.Vertices))
	}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 3}, sizes)
}

func TestTwinDecompositionTrueTwins(t *testing.T) {
	g := New()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(a, c)
	_ = g.AddEdge(b, c)
	classes := g.TwinDecomposition(true)
	require.Len(t, classes, 1)
	assert.ElementsMatch(t, []int{a, b, c}, classes[0].Vertices)
}

func TestConnectedComponents(t *testing.T) {
	g := New()
	a, b := g.AddVertex(), g.AddVertex()
	_ = g.AddEdge(a, b)
	c := g.AddVertex() // isolated

	comps := g.ConnectedComponents()
	require.Len(t, comps, 2)
	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 2}, sizes)
	_ = c
}

func TestMinimalSeparatorOnGrid(t *testing.T) {
	// 3x3 grid; separator between opposite corners must have size >= 2.
	g := New()
	ids := make([][]int, 3)
	for r := range ids {
		ids[r] = make([]int, 3)
		for c := range ids[r] {
			ids[r][c] = g.AddVertex()
		}
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if c+1 < 3 {
				_ = g.AddEdge(ids[r][c], ids[r][c+1])
			}
			if r+1 < 3 {
				_ = g.AddEdge(ids[r][c], ids[r+1][c])
			}
		}
	}
	sep, err := g.MinimalSeparator(ids[0][0], ids[2][2])
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(sep), 2)

	// Removing the separator must disconnect the two corners.
	excluded := make(map[int]bool, len(sep))
	for _, v := range sep {
		excluded[v] = true
	}
	comps := g.ComponentsExcluding(excluded)
	sameComp := false
	for _, comp := range comps {
		hasS, hasT := false, false
		for _, v := range comp {
			if v == ids[0][0] {
				hasS = true
			}
			if v == ids[2][2] {
				hasT = true
			}
		}
		if hasS && hasT {
			sameComp = true
		}
	}
	assert.False(t, sameComp)
}

func TestMinimalSeparatorAdjacentError(t *testing.T) {
	g, ids := cycle(4)
	_, err := g.MinimalSeparator(ids[0], ids[1])
	assert.ErrorIs(t, err, ErrAdjacent)
}

func TestContractDeduplicatesParallelEdges(t *testing.T) {
	g := New()
	a, b, c := g.AddVertex(), g.AddVertex(), g.AddVertex()
	_ = g.AddEdge(a, b)
	_ = g.AddEdge(a, c)
	_ = g.AddEdge(b, c)
	require.NoError(t, g.Contract(a, b))
	assert.False(t, g.Alive(b))
	assert.True(t, g.HasEdge(a, c))
	assert.Equal(t, 1, g.Degree(a))
}
