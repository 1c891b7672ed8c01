package decomp

import "github.com/arboris-go/treewidth/graph"

// Verify checks the three defining invariants of a tree decomposition of g:
// every vertex is covered by some bag, every edge has a bag containing
// both endpoints, and for each vertex the bags containing it induce a
// connected subtree (the running intersection property). It also checks
// that the bag adjacency itself is a tree (connected, |edges| = |bags|-1).
func (t *Tree) Verify(g *graph.Graph) error {
	if err := t.checkIsTree(); err != nil {
		return err
	}

	occursIn := make(map[int][]int) // original vertex -> bag ids containing it
	for _, id := range t.BagIDs() {
		b := t.bags[id]
		for _, v := range b.Vertices {
			occursIn[v] = append(occursIn[v], id)
		}
	}

	for _, v := range g.Vertices() {
		if len(occursIn[v]) == 0 {
			return ErrMissingVertex
		}
	}

	for _, v := range g.Vertices() {
		for _, u := range g.Neighbors(v) {
			if u < v {
				continue // visit each edge once
			}
			if !t.shareABag(v, u) {
				return ErrMissingEdge
			}
		}
	}

	for _, bagIDs := range occursIn {
		if !t.inducesConnectedSubtree(bagIDs) {
			return ErrDisconnectedVertex
		}
	}

	return nil
}

func (t *Tree) shareABag(u, v int) bool {
	for _, id := range t.BagIDs() {
		b := t.bags[id]
		if contains(b.Vertices, u) && contains(b.Vertices, v) {
			return true
		}
	}
	return false
}

// checkIsTree verifies the bag-adjacency graph is connected and acyclic.
func (t *Tree) checkIsTree() error {
	ids := t.BagIDs()
	if len(ids) == 0 {
		return nil
	}
	visited := make(map[int]bool, len(ids))
	edgeCount := 0
	queue := []int{ids[0]}
	visited[ids[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range t.Neighbors(cur) {
			edgeCount++
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	if len(visited) != len(ids) {
		return ErrNotATree
	}
	if edgeCount/2 != len(ids)-1 {
		return ErrNotATree
	}
	return nil
}

// inducesConnectedSubtree reports whether bagIDs induce a connected
// subgraph of the tree (BFS restricted to the given id set).
func (t *Tree) inducesConnectedSubtree(bagIDs []int) bool {
	if len(bagIDs) == 0 {
		return true
	}
	allowed := make(map[int]bool, len(bagIDs))
	for _, id := range bagIDs {
		allowed[id] = true
	}
	visited := make(map[int]bool, len(bagIDs))
	queue := []int{bagIDs[0]}
	visited[bagIDs[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range t.Neighbors(cur) {
			if allowed[nb] && !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return len(visited) == len(bagIDs)
}
