package graph

// Atoms recursively splits g at clique minimal separators, returning the
// vertex sets of the resulting atoms. Each atom includes the separator it
// was split on, so it overlaps its siblings exactly in that separator — a
// treewidth-preserving decomposition of the original problem into smaller
// independent ones (Tarjan's clique-separator decomposition). A graph with
// no clique separator comes back as a single atom containing every vertex.
//
// Each level tries one separator only: the minimum separator between the
// first non-adjacent pair found. When that separator is not a clique the
// vertex set is returned whole, so a returned set can still contain some
// other clique separator.
func (g *Graph) Atoms() [][]int {
	return atomsRec(g, g.Vertices())
}

func atomsRec(g *Graph, verts []int) [][]int {
	if len(verts) <= 2 {
		return [][]int{verts}
	}
	sub, toOriginal := g.InducedSubgraph(verts)
	s, t, found := findNonAdjacentPair(sub)
	if !found {
		return [][]int{verts}
	}
	sep, err := sub.MinimalSeparator(s, t)
	if err != nil || !isCliqueSet(sub, sep) {
		return [][]int{verts}
	}
	excluded := make(map[int]bool, len(sep))
	for _, v := range sep {
		excluded[v] = true
	}
	comps := sub.ComponentsExcluding(excluded)
	if len(comps) < 2 {
		return [][]int{verts}
	}

	var atoms [][]int
	for _, comp := range comps {
		atomLocal := append(append([]int(nil), sep...), comp...)
		atomOriginal := mapIDsAtom(atomLocal, toOriginal)
		atoms = append(atoms, atomsRec(g, atomOriginal)...)
	}
	return atoms
}

// findNonAdjacentPair returns any two live, non-adjacent vertices of g.
func findNonAdjacentPair(g *Graph) (int, int, bool) {
	verts := g.Vertices()
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			u, v := verts[i], verts[j]
			if !g.HasEdge(u, v) {
				return u, v, true
			}
		}
	}
	return 0, 0, false
}

func isCliqueSet(g *Graph, verts []int) bool {
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if !g.HasEdge(verts[i], verts[j]) {
				return false
			}
		}
	}
	return true
}

func mapIDsAtom(ids []int, toOriginal map[int]int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = toOriginal[id]
	}
	return out
}
