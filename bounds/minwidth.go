package bounds

import (
	"math/rand"

	"github.com/arboris-go/treewidth/graph"
	"github.com/arboris-go/treewidth/rng"
)

// MinWidth repeatedly eliminates a vertex of minimum current degree,
// breaking ties uniformly at random. The induced width of the resulting
// permutation is an upper bound on treewidth.
func MinWidth(g *graph.Graph, r *rand.Rand) ([]int, int) {
	work := g.Clone()
	perm := make([]int, 0, work.N())
	width := -1

	for work.N() > 0 {
		v := pickMinDegree(work, r)
		if d := work.Degree(v); d > width {
			width = d
		}
		perm = append(perm, v)
		_, _ = work.EliminateVertex(v)
	}
	return perm, width
}

func pickMinDegree(g *graph.Graph, r *rand.Rand) int {
	verts := g.Vertices()
	best := verts[0]
	bestDeg := g.Degree(best)
	var tied []int
	for _, v := range verts {
		d := g.Degree(v)
		switch {
		case d < bestDeg:
			best, bestDeg = v, d
			tied = tied[:0]
			tied = append(tied, v)
		case d == bestDeg:
			tied = append(tied, v)
		}
	}
	if len(tied) > 0 {
		return rng.PickUniform(tied, r)
	}
	return best
}
