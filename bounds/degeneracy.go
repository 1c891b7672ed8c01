package bounds

import "github.com/arboris-go/treewidth/graph"

// Degeneracy repeatedly removes a minimum-degree vertex and returns the
// maximum degree ever observed at removal time: a simple, fast lower
// bound on treewidth (every graph's degeneracy lower-bounds its
// treewidth).
func Degeneracy(g *graph.Graph) int {
	work := g.Clone()
	bound := 0

	for work.N() > 0 {
		v := minDegreeVertex(work)
		if d := work.Degree(v); d > bound {
			bound = d
		}
		_ = work.RemoveVertex(v)
	}
	return bound
}

func minDegreeVertex(g *graph.Graph) int {
	verts := g.Vertices()
	best := verts[0]
	for _, v := range verts[1:] {
		if g.Degree(v) < g.Degree(best) {
			best = v
		}
	}
	return best
}
