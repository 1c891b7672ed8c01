package reduce

import "github.com/arboris-go/treewidth/decomp"

// Glue attaches every step of a bag stack back onto a tree decomposition
// of the kernel the stack was produced against, mutating tree in place.
// Each bag is attached adjacent to any existing bag that already contains
// all but at most one of its vertices (the "at most one" is always the
// vertex the step itself reintroduces); if no such bag exists it is
// attached as a fresh leaf instead.
//
// Steps are processed in reverse order: the vertex removed last from the
// original graph had, at the moment of its removal, a neighborhood
// entirely contained in the kernel, so it is glued first; every earlier
// step's neighborhood is a subset of the kernel plus vertices removed
// after it; by the time its turn comes those are already glued, so an
// anchor bag is always available.
func Glue(tree *decomp.Tree, stack []Step) {
	for i := len(stack) - 1; i >= 0; i-- {
		step := stack[i]
		anchor, found := findAnchorBag(tree, step.Bag)
		newID := tree.AddBag(step.Bag)
		if found {
			_ = tree.AddEdge(newID, anchor)
			continue
		}
		for _, id := range tree.BagIDs() {
			if id != newID {
				_ = tree.AddEdge(newID, id)
				break
			}
		}
	}
}

func findAnchorBag(tree *decomp.Tree, bag []int) (int, bool) {
	for _, id := range tree.BagIDs() {
		b, ok := tree.Bag(id)
		if !ok {
			continue
		}
		missing := 0
		for _, v := range bag {
			if !containsInt(b.Vertices, v) {
				missing++
				if missing > 1 {
					break
				}
			}
		}
		if missing <= 1 {
			return id, true
		}
	}
	return 0, false
}

func containsInt(sorted []int, v int) bool {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		if sorted[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(sorted) && sorted[lo] == v
}
