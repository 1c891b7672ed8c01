package sat

import (
	"sort"

	"github.com/arboris-go/treewidth/graph"
)

// BreakCliqueSymmetry finds a clique by a greedy degree-ordered heuristic
// and asserts a fixed relative elimination order among its members: any
// two orderings that only permute a clique's vertices among themselves
// produce the same width, since clique members are pairwise adjacent and
// always occupy one another's closed neighborhoods, so forcing one fixed
// relative order removes that symmetry from the search without excluding
// any optimal width. Returns the clique vertices used (nil if none).
func BreakCliqueSymmetry(g *graph.Graph, enc *OrderingEncoder, f *Formula) []int {
	clique := greedyClique(g)
	if len(clique) < 2 {
		return clique
	}
	sort.Ints(clique)
	for i := 0; i+1 < len(clique); i++ {
		a, b := enc.index[clique[i]], enc.index[clique[i+1]]
		f.AddClause(enc.Before(a, b))
	}
	return clique
}

// greedyClique grows a clique by repeatedly adding the highest-degree
// vertex still adjacent to every vertex already chosen.
func greedyClique(g *graph.Graph) []int {
	verts := append([]int(nil), g.Vertices()...)
	sort.Slice(verts, func(i, j int) bool {
		return len(g.Neighbors(verts[i])) > len(g.Neighbors(verts[j]))
	})
	var clique []int
	for _, v := range verts {
		fits := true
		for _, c := range clique {
			if !hasNeighbor(g, v, c) {
				fits = false
				break
			}
		}
		if fits {
			clique = append(clique, v)
		}
	}
	return clique
}

func hasNeighbor(g *graph.Graph, v, target int) bool {
	for _, u := range g.Neighbors(v) {
		if u == target {
			return true
		}
	}
	return false
}

// BreakTwinSymmetry partitions g's vertices into twin-equivalence classes
// (identical open or closed neighborhoods) and asserts a fixed relative
// elimination order within each class: twins are interchangeable in any
// elimination order without affecting width, so one representative
// ordering per class is enough to cover every optimum.
func BreakTwinSymmetry(g *graph.Graph, enc *OrderingEncoder, f *Formula) {
	for _, trueTwins := range []bool{true, false} {
		for _, class := range g.TwinDecomposition(trueTwins) {
			members := append([]int(nil), class.Vertices...)
			sort.Ints(members)
			for i := 0; i+1 < len(members); i++ {
				a, b := enc.index[members[i]], enc.index[members[i+1]]
				f.AddClause(enc.Before(a, b))
			}
		}
	}
}
