package decomp

import "github.com/arboris-go/treewidth/graph"

// FromPermutation builds a tree decomposition from an elimination
// permutation by running the standard elimination-game construction: each
// vertex's bag is its closed neighborhood at the moment it is eliminated,
// and a bag is wired to the bag of whichever of its neighbors is next to
// be eliminated. That neighbor's own elimination turns the rest of the
// current bag into a subset of its bag, which is exactly what keeps the
// running-intersection property intact without any separate repair pass.
//
// g is never mutated: FromPermutation clones it before eliminating.
func FromPermutation(g *graph.Graph, perm []int) (*Tree, error) {
	work := g.Clone()
	t := New()

	pos := make(map[int]int, len(perm))
	for i, v := range perm {
		pos[v] = i
	}

	bagOf := make(map[int]int, len(perm))
	parentOf := make(map[int]int, len(perm))

	for i, v := range perm {
		if !work.Alive(v) {
			return nil, graph.ErrVertexNotFound
		}

		closed := work.ClosedNeighborhood(v)
		bagOf[v] = t.AddBag(closed)

		neighbors := work.Neighbors(v)
		parent, parentPos := -1, -1
		for _, u := range neighbors {
			if up := pos[u]; up > i && (parent == -1 || up < parentPos) {
				parent, parentPos = u, up
			}
		}
		if parent != -1 {
			parentOf[v] = parent
		}

		if _, err := work.EliminateVertex(v); err != nil {
			return nil, err
		}
	}

	for v, p := range parentOf {
		if err := t.AddEdge(bagOf[v], bagOf[p]); err != nil {
			return nil, err
		}
	}

	// A permutation of a disconnected graph produces one elimination tree
	// per component; stitch the roots together so the result is a single
	// tree, matching the convention that a Tree always has one component.
	roots := make([]int, 0)
	for v := range bagOf {
		if _, ok := parentOf[v]; !ok {
			roots = append(roots, bagOf[v])
		}
	}
	for i := 1; i < len(roots); i++ {
		if err := t.AddEdge(roots[0], roots[i]); err != nil {
			return nil, err
		}
	}

	return t, nil
}
