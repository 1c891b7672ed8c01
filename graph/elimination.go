package graph

// EliminationInfo is a reversal record sufficient to undo one
// EliminateVertex call bit-identically: same neighbors, same
// edgesInNeighborhood counters.
type EliminationInfo struct {
	Vertex     int
	Neighbors  []int   // N(v) at the moment of elimination, sorted
	AddedEdges [][2]int // edges added to turn N(v) into a clique, in insertion order
}

// EliminateVertex turns N(v) into a clique and removes v from the graph.
// It returns a record that DeEliminateVertex can use to restore the graph
// exactly as it was before the call. This pair is the hot path for
// branch-and-bound and the reduction engine, so it is allocation-light:
// one slice for the neighbor snapshot, one for the added edges.
//
// Complexity: O(deg(v)^2) to clique the neighborhood (each of the O(deg^2)
// candidate pairs costs O(1) HasEdge plus the O(deg) AddEdge accounting).
func (g *Graph) EliminateVertex(v int) (*EliminationInfo, error) {
	if !g.Alive(v) {
		return nil, ErrVertexNotFound
	}

	info := &EliminationInfo{
		Vertex:    v,
		Neighbors: g.Neighbors(v),
	}

	for i := 0; i < len(info.Neighbors); i++ {
		for j := i + 1; j < len(info.Neighbors); j++ {
			x, y := info.Neighbors[i], info.Neighbors[j]
			if !g.HasEdge(x, y) {
				_ = g.AddEdge(x, y)
				info.AddedEdges = append(info.AddedEdges, [2]int{x, y})
			}
		}
	}

	_ = g.RemoveVertex(v)
	return info, nil
}

// DeEliminateVertex reverses a prior EliminateVertex call. It must be
// called with the record that call returned, on a graph whose only
// mutation since then is exactly that elimination (the standard
// branch-and-bound and reduction-engine usage pattern: eliminate, recurse,
// de-eliminate). Edges added during elimination are rolled back in
// reverse order, which is required for edgesInNeighborhood to come back
// out exactly as it started when the additions interact (a later addition
// may have counted an earlier one as a common neighbor).
//
// Complexity: mirrors EliminateVertex.
func (g *Graph) DeEliminateVertex(info *EliminationInfo) {
	v := info.Vertex
	g.alive[v] = true
	g.adj[v] = make(map[int]struct{})
	g.edgesInNeighborhood[v] = 0
	g.numAlive++
	// v may have been sitting on the free list (it was, unless the caller
	// bypassed RemoveVertex's bookkeeping); drop it from there so it is not
	// handed out twice by a future AddVertex.
	g.dropFromFreeList(v)

	for _, u := range info.Neighbors {
		_ = g.AddEdge(v, u)
	}

	for i := len(info.AddedEdges) - 1; i >= 0; i-- {
		e := info.AddedEdges[i]
		_ = g.removeEdgeInternal(e[0], e[1])
	}
}

func (g *Graph) dropFromFreeList(v int) {
	for i, id := range g.freeList {
		if id == v {
			g.freeList[i] = g.freeList[len(g.freeList)-1]
			g.freeList = g.freeList[:len(g.freeList)-1]
			return
		}
	}
}

// Contract merges v into u: every neighbor of v becomes a neighbor of u
// (parallel edges introduced at the interface are deduplicated, since the
// adjacency set already enforces simplicity), then v is removed.
//
// Used by the minor-min-width lower bound, which repeatedly contracts a
// minimum-degree vertex with a chosen neighbor.
//
// Complexity: O(deg(v) * avg-deg).
func (g *Graph) Contract(u, v int) error {
	if !g.Alive(u) || !g.Alive(v) {
		return ErrVertexNotFound
	}
	if u == v {
		return ErrSameVertex
	}

	for w := range g.adj[v] {
		if w == u {
			continue
		}
		_ = g.AddEdge(u, w)
	}
	return g.RemoveVertex(v)
}
