package graph

// AddVertex allocates and returns a fresh vertex id. Ids freed by a prior
// RemoveVertex are recycled before growing the backing arrays, keeping the
// id space dense for bitset-keyed callers (the branch-and-bound
// memoization table indexes its bitsets by vertex id).
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	if n := len(g.freeList); n > 0 {
		id := g.freeList[n-1]
		g.freeList = g.freeList[:n-1]
		g.alive[id] = true
		g.adj[id] = make(map[int]struct{})
		g.edgesInNeighborhood[id] = 0
		g.numAlive++
		return id
	}

	id := len(g.alive)
	g.alive = append(g.alive, true)
	g.adj = append(g.adj, make(map[int]struct{}))
	g.edgesInNeighborhood = append(g.edgesInNeighborhood, 0)
	g.numAlive++
	return id
}

// RemoveVertex deletes v and every edge incident to it.
//
// Complexity: O(deg(v) * avg-deg) to repair neighbors' edgesInNeighborhood
// counters and adjacency sets.
func (g *Graph) RemoveVertex(v int) error {
	if !g.Alive(v) {
		return ErrVertexNotFound
	}

	for u := range g.adj[v] {
		_ = g.removeEdgeInternal(v, u)
	}

	g.alive[v] = false
	g.adj[v] = nil
	g.edgesInNeighborhood[v] = 0
	g.numAlive--
	g.freeList = append(g.freeList, v)
	return nil
}

// Degree returns deg(v).
func (g *Graph) Degree(v int) int {
	if !g.Alive(v) {
		return 0
	}
	return len(g.adj[v])
}
