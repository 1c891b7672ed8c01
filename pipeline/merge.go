package pipeline

import (
	"errors"
	"sort"

	"github.com/arboris-go/treewidth/decomp"
)

// ErrSeparatorBagMissing is returned by MergeOnSeparator when either
// decomposition being merged has no bag covering the full separator — it
// should never fire for a separator the atom splitter itself produced,
// since every clique is guaranteed to share a common bag in any valid
// tree decomposition of a graph containing it.
var ErrSeparatorBagMissing = errors.New("pipeline: no bag covers the merge separator")

// unionInto copies every bag and edge of other into into, returning a map
// from other's bag ids to the freshly minted ids in into.
func unionInto(into *decomp.Tree, other *decomp.Tree) map[int]int {
	idMap := make(map[int]int, other.NumBags())
	for _, id := range other.BagIDs() {
		b, _ := other.Bag(id)
		idMap[id] = into.AddBag(b.Vertices)
	}
	for _, id := range other.BagIDs() {
		for _, nb := range other.Neighbors(id) {
			_ = into.AddEdge(idMap[id], idMap[nb])
		}
	}
	return idMap
}

// findSupersetBag returns the first bag of t whose vertex set contains
// every vertex of sep. Any valid tree decomposition has one, since sep is
// always a clique when it comes from the atom splitter, and every clique
// of a graph shares a common bag in any of its tree decompositions.
func findSupersetBag(t *decomp.Tree, sep []int) (int, bool) {
	for _, id := range t.BagIDs() {
		b, _ := t.Bag(id)
		if containsAll(b.Vertices, sep) {
			return id, true
		}
	}
	return 0, false
}

func containsAll(set, subset []int) bool {
	index := make(map[int]bool, len(set))
	for _, v := range set {
		index[v] = true
	}
	for _, v := range subset {
		if !index[v] {
			return false
		}
	}
	return true
}

// MergeOnSeparator folds other into into, connecting the subtree at a bag
// of into that covers sep to a bag of other that covers sep. Mutates into
// in place; other is left unmodified (it has already been copied in).
func MergeOnSeparator(into *decomp.Tree, other *decomp.Tree, sep []int) error {
	sorted := append([]int(nil), sep...)
	sort.Ints(sorted)

	anchorInto, ok := findSupersetBag(into, sorted)
	if !ok {
		return ErrSeparatorBagMissing
	}
	idMap := unionInto(into, other)
	anchorOther, ok := findSupersetBag(other, sorted)
	if !ok {
		return ErrSeparatorBagMissing
	}
	if err := into.AddEdge(anchorInto, idMap[anchorOther]); err != nil {
		return err
	}
	into.Flatten()
	return nil
}

// MergeDisjoint folds other into into with no shared vertices (two
// independent connected components, or a graph with no edges at all),
// joining the two forests with a single arbitrary edge so the result
// remains one tree. Width and validity are unaffected since no vertex
// appears on both sides.
func MergeDisjoint(into *decomp.Tree, other *decomp.Tree) {
	anchorCandidates := into.BagIDs()
	idMap := unionInto(into, other)
	if len(anchorCandidates) == 0 || other.NumBags() == 0 {
		return
	}
	otherIDs := other.BagIDs()
	_ = into.AddEdge(anchorCandidates[0], idMap[otherIDs[0]])
}

// remapTree rebuilds t with every bag's vertices translated through
// toOriginal, preserving bag structure and edges. Used whenever a solve
// ran against a re-numbered induced subgraph (InducedSubgraph always
// starts a fresh 0-based id space) and the result must be expressed in
// the ids of the graph it was cut from.
func remapTree(t *decomp.Tree, toOriginal map[int]int) *decomp.Tree {
	out := decomp.New()
	idMap := make(map[int]int, t.NumBags())
	for _, id := range t.BagIDs() {
		b, _ := t.Bag(id)
		mapped := make([]int, len(b.Vertices))
		for i, v := range b.Vertices {
			mapped[i] = toOriginal[v]
		}
		idMap[id] = out.AddBag(mapped)
	}
	for _, id := range t.BagIDs() {
		for _, nb := range t.Neighbors(id) {
			_ = out.AddEdge(idMap[id], idMap[nb])
		}
	}
	return out
}

// intersectSorted returns the sorted intersection of two already-sorted
// id slices.
func intersectSorted(a, b []int) []int {
	set := make(map[int]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	var out []int
	for _, v := range a {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

// unionSorted returns the sorted, deduplicated union of two id slices.
func unionSorted(a, b []int) []int {
	set := make(map[int]bool, len(a)+len(b))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		set[v] = true
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
