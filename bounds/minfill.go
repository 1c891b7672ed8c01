package bounds

import (
	"math/rand"

	"github.com/arboris-go/treewidth/graph"
	"github.com/arboris-go/treewidth/rng"
)

// MinFill repeatedly eliminates a vertex of minimum fill-in, breaking ties
// uniformly at random. When sparsest is true, ties are instead broken by
// the fewest edges already present in N(v) (the "sparsest-subgraph"
// variant), falling back to random choice among any still-tied vertices.
func MinFill(g *graph.Graph, r *rand.Rand, sparsest bool) ([]int, int) {
	work := g.Clone()
	perm := make([]int, 0, work.N())
	width := -1

	for work.N() > 0 {
		v := pickMinFill(work, r, sparsest)
		if d := work.Degree(v); d > width {
			width = d
		}
		perm = append(perm, v)
		_, _ = work.EliminateVertex(v)
	}
	return perm, width
}

func pickMinFill(g *graph.Graph, r *rand.Rand, sparsest bool) int {
	verts := g.Vertices()
	bestFill := g.FillIn(verts[0])
	var tied []int
	for _, v := range verts {
		f := g.FillIn(v)
		switch {
		case f < bestFill:
			bestFill = f
			tied = tied[:0]
			tied = append(tied, v)
		case f == bestFill:
			tied = append(tied, v)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	if sparsest {
		tied = filterSparsest(g, tied)
		if len(tied) == 1 {
			return tied[0]
		}
	}
	return rng.PickUniform(tied, r)
}

// filterSparsest narrows candidates to those with the fewest edges already
// present among N(v) (edgesInNeighborhood, exposed via FillIn's complement:
// deg*(deg-1)/2 - FillIn).
func filterSparsest(g *graph.Graph, candidates []int) []int {
	best := -1
	var out []int
	for _, v := range candidates {
		d := g.Degree(v)
		existing := d*(d-1)/2 - g.FillIn(v)
		switch {
		case best == -1 || existing < best:
			best = existing
			out = []int{v}
		case existing == best:
			out = append(out, v)
		}
	}
	return out
}
