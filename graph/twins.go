package graph

import (
	"sort"
	"strconv"
	"strings"
)

// TwinClass is a maximal group of mutually twin vertices: vertices with
// the same open neighborhood (false twins, pairwise non-adjacent) or the
// same closed neighborhood (true twins, pairwise adjacent).
type TwinClass struct {
	Vertices []int
}

// signature encodes a sorted neighbor list into a comparable string key.
// Vertices sharing a signature share the corresponding neighborhood
// exactly, since the input is already canonicalized (sorted, deduplicated
// by virtue of being a set).
func signature(ids []int) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

// TwinDecomposition groups all live vertices into twin classes. Singleton
// classes (a vertex with no twin) are omitted from the result, since only
// groups of size >= 2 are useful to its caller (the SAT encoder's
// lexicographic twin ordering).
//
// Classes merge via union-find keyed by neighborhood signature: this is
// the same disjoint-set primitive lvlath's Kruskal used for spanning-tree
// components, repurposed here for equivalence-class bookkeeping — hence
// "partition refinement" in spec.md's component table.
//
// Complexity: O(n * deg log deg) to build signatures + O(n) union-find
// operations.
func (g *Graph) TwinDecomposition(trueTwins bool) []TwinClass {
	ids := g.Vertices()
	if len(ids) == 0 {
		return nil
	}

	maxID := g.MaxID()
	ds := newDisjointSet(maxID)
	bucket := make(map[string]int, len(ids)) // signature -> representative id

	for _, v := range ids {
		var key []int
		if trueTwins {
			key = g.ClosedNeighborhood(v)
		} else {
			key = g.Neighbors(v)
		}
		sig := signature(key)
		if rep, ok := bucket[sig]; ok {
			ds.union(rep, v)
		} else {
			bucket[sig] = v
		}
	}

	groups := make(map[int][]int)
	for _, v := range ids {
		root := ds.find(v)
		groups[root] = append(groups[root], v)
	}

	classes := make([]TwinClass, 0, len(groups))
	for _, vs := range groups {
		if len(vs) < 2 {
			continue
		}
		sort.Ints(vs)
		classes = append(classes, TwinClass{Vertices: vs})
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].Vertices[0] < classes[j].Vertices[0] })
	return classes
}
