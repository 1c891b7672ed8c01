package decomp

import "github.com/arboris-go/treewidth/graph"

// Flatten removes every bag that is redundant: a bag B with a neighbor C
// such that B.Vertices is a subset of C.Vertices contributes nothing to
// the decomposition's width or correctness, so B is deleted and its other
// neighbors are rewired directly to C. Repeats to a fixpoint.
func (t *Tree) Flatten() {
	for {
		removed := false
		for _, id := range t.BagIDs() {
			b, ok := t.Bag(id)
			if !ok {
				continue
			}
			for _, nbID := range t.Neighbors(id) {
				nb, ok := t.Bag(nbID)
				if !ok {
					continue
				}
				if isSubset(b.Vertices, nb.Vertices) {
					for _, other := range t.Neighbors(id) {
						if other == nbID {
							continue
						}
						t.RemoveEdge(id, other)
						_ = t.AddEdge(other, nbID)
					}
					t.RemoveBag(id)
					removed = true
					break
				}
			}
			if removed {
				break
			}
		}
		if !removed {
			return
		}
	}
}

func isSubset(small, big []int) bool {
	for _, v := range small {
		if !contains(big, v) {
			return false
		}
	}
	return true
}

// WidthImprove attempts to reduce the decomposition's width by splitting
// its widest bag across a minimum vertex separator of that bag's induced
// subgraph in g. It returns true if a split was applied. Callers typically
// loop WidthImprove until it returns false or a width budget is met.
//
// The split only fires when every other bag touching the widest bag has an
// overlap that lies entirely on one side of the separator (plus the
// separator itself); this is what guarantees the running intersection
// property survives the rewrite without a full re-verification pass. When
// that condition fails the widest bag is left untouched and WidthImprove
// tries the next-widest bag instead.
func (t *Tree) WidthImprove(g *graph.Graph) bool {
	for _, id := range t.widestBagsDescending() {
		if t.trySplitBag(g, id) {
			return true
		}
	}
	return false
}

func (t *Tree) widestBagsDescending() []int {
	ids := t.BagIDs()
	// simple selection sort by bag size descending; decomposition bag
	// counts are small relative to graph size so this is not a bottleneck.
	sizes := make(map[int]int, len(ids))
	for _, id := range ids {
		b, _ := t.Bag(id)
		sizes[id] = len(b.Vertices)
	}
	for i := 0; i < len(ids); i++ {
		best := i
		for j := i + 1; j < len(ids); j++ {
			if sizes[ids[j]] > sizes[ids[best]] {
				best = j
			}
		}
		ids[i], ids[best] = ids[best], ids[i]
	}
	return ids
}

func (t *Tree) trySplitBag(g *graph.Graph, id int) bool {
	b, ok := t.Bag(id)
	if !ok || len(b.Vertices) < 3 {
		return false
	}

	sub, toOriginal := g.InducedSubgraph(b.Vertices)
	s, tt, found := findNonAdjacentPair(sub)
	if !found {
		return false // bag induces a clique, already tight
	}

	sepLocal, err := sub.MinimalSeparator(s, tt)
	if err != nil {
		return false
	}
	if len(sepLocal) >= len(b.Vertices)-1 {
		return false // no improvement possible
	}

	excluded := make(map[int]bool, len(sepLocal))
	for _, v := range sepLocal {
		excluded[v] = true
	}
	comps := sub.ComponentsExcluding(excluded)
	if len(comps) < 2 {
		return false
	}

	sep := mapIDs(sepLocal, toOriginal)
	// One bag per residual connected component, each sep union component.
	compBags := make([][]int, len(comps))
	for i, comp := range comps {
		compBags[i] = append(append([]int(nil), sep...), mapIDs(comp, toOriginal)...)
	}

	// Every neighbor's overlap with the old bag must fit entirely within a
	// single component bag for the rewrite to preserve the running
	// intersection property; bail out otherwise.
	neighborComp := make(map[int]int, len(t.Neighbors(id)))
	for _, nbID := range t.Neighbors(id) {
		nb, _ := t.Bag(nbID)
		overlap := intersect(nb.Vertices, b.Vertices)
		assigned := -1
		for i, cb := range compBags {
			if isSubset(overlap, cb) {
				assigned = i
				break
			}
		}
		if assigned == -1 {
			return false
		}
		neighborComp[nbID] = assigned
	}

	neighbors := t.Neighbors(id)
	newIDs := make([]int, len(compBags))
	for i, cb := range compBags {
		newIDs[i] = t.AddBag(cb)
	}
	// Star the component bags through the first one: every pair shares at
	// least sep, so the star keeps every sep vertex's occurrences connected.
	for i := 1; i < len(newIDs); i++ {
		_ = t.AddEdge(newIDs[0], newIDs[i])
	}
	for _, nbID := range neighbors {
		_ = t.AddEdge(newIDs[neighborComp[nbID]], nbID)
	}
	t.RemoveBag(id)
	return true
}

func findNonAdjacentPair(g *graph.Graph) (int, int, bool) {
	verts := g.Vertices()
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			if !g.HasEdge(verts[i], verts[j]) {
				return verts[i], verts[j], true
			}
		}
	}
	return 0, 0, false
}

func intersect(a, b []int) []int {
	var out []int
	for _, v := range a {
		if contains(b, v) {
			out = append(out, v)
		}
	}
	return out
}

func mapIDs(ids []int, toOriginal map[int]int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = toOriginal[id]
	}
	return out
}
