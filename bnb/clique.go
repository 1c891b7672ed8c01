package bnb

import "github.com/arboris-go/treewidth/graph"

// greedyMaxClique computes a maximal (not necessarily maximum) clique by
// starting from the highest-degree vertex and repeatedly adding whichever
// remaining candidate is adjacent to every clique member so far, breaking
// ties by vertex id for determinism. Used once per search as the
// symmetry-breaking set C: its members are always eliminated last.
func greedyMaxClique(g *graph.Graph) map[int]bool {
	verts := g.Vertices()
	if len(verts) == 0 {
		return map[int]bool{}
	}
	best := verts[0]
	for _, v := range verts[1:] {
		if g.Degree(v) > g.Degree(best) {
			best = v
		}
	}

	clique := []int{best}
	cliqueSet := map[int]bool{best: true}
	for _, v := range verts {
		if cliqueSet[v] {
			continue
		}
		adjacentToAll := true
		for _, c := range clique {
			if !g.HasEdge(v, c) {
				adjacentToAll = false
				break
			}
		}
		if adjacentToAll {
			clique = append(clique, v)
			cliqueSet[v] = true
		}
	}
	return cliqueSet
}
