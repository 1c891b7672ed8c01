package bounds

import "github.com/arboris-go/treewidth/graph"

// ImproveNeighborhood returns a copy of g with an edge added between every
// non-adjacent pair (u,v) sharing at least k+1 common neighbors. If k is a
// valid treewidth lower bound, the improved graph has the same treewidth
// as g, so re-running a base lower bound against it can only tighten the
// bound, never invalidate it.
func ImproveNeighborhood(g *graph.Graph, k int) *graph.Graph {
	h := g.Clone()
	verts := h.Vertices()
	var toAdd [][2]int
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			u, v := verts[i], verts[j]
			if h.HasEdge(u, v) {
				continue
			}
			if commonNeighborCount(h, u, v) >= k+1 {
				toAdd = append(toAdd, [2]int{u, v})
			}
		}
	}
	for _, e := range toAdd {
		_ = h.AddEdge(e[0], e[1])
	}
	return h
}

// ImprovePaths is the path-improved variant: it adds an edge between every
// non-adjacent pair with at least k+1 vertex-disjoint paths between them,
// computed via a unit-capacity vertex-disjoint flow capped at k+1.
func ImprovePaths(g *graph.Graph, k int) *graph.Graph {
	h := g.Clone()
	verts := h.Vertices()
	var toAdd [][2]int
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			u, v := verts[i], verts[j]
			if h.HasEdge(u, v) {
				continue
			}
			count, err := h.VertexDisjointPaths(u, v, k)
			if err != nil {
				continue
			}
			if count >= k+1 {
				toAdd = append(toAdd, [2]int{u, v})
			}
		}
	}
	for _, e := range toAdd {
		_ = h.AddEdge(e[0], e[1])
	}
	return h
}

// IterateImprove repeatedly improves g against the given base lower-bound
// function and re-runs it, stopping when the bound stops increasing or
// maxRounds is reached. The bounds computed across rounds form a monotone
// non-decreasing sequence; the last of them is returned.
func IterateImprove(g *graph.Graph, baseLowerBound func(*graph.Graph) int, usePaths bool, maxRounds int) int {
	cur := g
	bound := baseLowerBound(cur)
	for i := 0; i < maxRounds; i++ {
		var improved *graph.Graph
		if usePaths {
			improved = ImprovePaths(cur, bound)
		} else {
			improved = ImproveNeighborhood(cur, bound)
		}
		next := baseLowerBound(improved)
		if next <= bound {
			break
		}
		bound = next
		cur = improved
	}
	return bound
}
