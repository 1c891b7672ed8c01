package graph

// HasEdge reports whether {u,v} is an edge. O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.Alive(u) || !g.Alive(v) {
		return false
	}
	_, ok := g.adj[u][v]
	return ok
}

// commonNeighbors returns N(u) ∩ N(v), scanning the smaller adjacency set.
// u and v themselves are never included even if (incorrectly) present.
func (g *Graph) commonNeighbors(u, v int) []int {
	small, big := u, v
	if len(g.adj[u]) > len(g.adj[v]) {
		small, big = v, u
	}
	out := make([]int, 0, len(g.adj[small]))
	for w := range g.adj[small] {
		if w == u || w == v {
			continue
		}
		if _, ok := g.adj[big][w]; ok {
			out = append(out, w)
		}
	}
	return out
}

// AddEdge adds {u,v} if absent. Idempotent: adding an existing edge is a
// no-op returning nil. Self-loops are rejected.
//
// edgesInNeighborhood maintenance: let C = N(u) ∩ N(v) (computed before the
// edge is inserted). Inserting {u,v} creates one new edge inside N(w) for
// every w in C (the edge {u,v} itself), and — since v joins N(u) and u
// joins N(v) — it also creates one new edge inside N(u) and inside N(v)
// for every w in C (the pre-existing edges {v,w} and {u,w} respectively).
//
// Complexity: O(deg(min(u,v))) — dominated by computing C.
func (g *Graph) AddEdge(u, v int) error {
	if !g.Alive(u) || !g.Alive(v) {
		return ErrVertexNotFound
	}
	if u == v {
		return ErrSelfLoop
	}
	if g.HasEdge(u, v) {
		return nil
	}

	common := g.commonNeighbors(u, v)
	for _, w := range common {
		g.edgesInNeighborhood[w]++
	}
	g.edgesInNeighborhood[u] += len(common)
	g.edgesInNeighborhood[v] += len(common)

	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
	g.numEdges++
	return nil
}

// RemoveEdge deletes {u,v} if present; removing a missing edge is a no-op.
func (g *Graph) RemoveEdge(u, v int) error {
	if !g.Alive(u) || !g.Alive(v) {
		return ErrVertexNotFound
	}
	return g.removeEdgeInternal(u, v)
}

// removeEdgeInternal performs the inverse accounting of AddEdge. It is
// split out from RemoveEdge so RemoveVertex can reuse it without
// re-validating liveness of the vertex being deleted.
func (g *Graph) removeEdgeInternal(u, v int) error {
	if _, ok := g.adj[u][v]; !ok {
		return nil
	}

	common := g.commonNeighbors(u, v)
	for _, w := range common {
		g.edgesInNeighborhood[w]--
	}
	g.edgesInNeighborhood[u] -= len(common)
	g.edgesInNeighborhood[v] -= len(common)

	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.numEdges--
	return nil
}
