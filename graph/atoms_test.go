package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// twoTrianglesSharingAVertex builds two triangles glued at one shared
// vertex: a clique separator of size one sits between them.
func twoTrianglesSharingAVertex() (*Graph, int) {
	g := New()
	hub := g.AddVertex()
	a1, a2 := g.AddVertex(), g.AddVertex()
	b1, b2 := g.AddVertex(), g.AddVertex()
	_ = g.AddEdge(hub, a1)
	_ = g.AddEdge(hub, a2)
	_ = g.AddEdge(a1, a2)
	_ = g.AddEdge(hub, b1)
	_ = g.AddEdge(hub, b2)
	_ = g.AddEdge(b1, b2)
	return g, hub
}

func TestAtomsSplitsAtSharedVertex(t *testing.T) {
	g, hub := twoTrianglesSharingAVertex()
	atoms := g.Atoms()
	if assert.Len(t, atoms, 2) {
		for _, atom := range atoms {
			assert.Len(t, atom, 3)
			assert.Contains(t, atom, hub)
		}
	}
}

func TestAtomsOnCliqueIsSingleAtom(t *testing.T) {
	g := New()
	ids := make([]int, 5)
	for i := range ids {
		ids[i] = g.AddVertex()
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			_ = g.AddEdge(ids[i], ids[j])
		}
	}
	atoms := g.Atoms()
	assert.Len(t, atoms, 1)
	assert.ElementsMatch(t, ids, atoms[0])
}

func TestAtomsOnCycleIsSingleAtom(t *testing.T) {
	g, ids := cycle(5)
	atoms := g.Atoms()
	assert.Len(t, atoms, 1)
	assert.ElementsMatch(t, ids, atoms[0])
}
