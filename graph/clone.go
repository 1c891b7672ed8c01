package graph

// Clone returns a deep, independent copy of the graph: same vertex ids,
// same edges, same edgesInNeighborhood counters. The copy constructor is
// what lets branch-and-bound and the parallel component driver each work
// on a private mutable graph without sharing state.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		alive:               make([]bool, len(g.alive)),
		adj:                 make([]map[int]struct{}, len(g.adj)),
		edgesInNeighborhood: make([]int, len(g.edgesInNeighborhood)),
		numAlive:            g.numAlive,
		numEdges:            g.numEdges,
	}
	copy(c.alive, g.alive)
	copy(c.edgesInNeighborhood, g.edgesInNeighborhood)
	for v, set := range g.adj {
		if set == nil {
			continue
		}
		ns := make(map[int]struct{}, len(set))
		for u := range set {
			ns[u] = struct{}{}
		}
		c.adj[v] = ns
	}
	c.freeList = append([]int(nil), g.freeList...)
	return c
}

// InducedSubgraph builds a fresh Graph containing exactly verts and the
// edges of g between them, with a mapping from the new graph's ids back
// to the original ids. Used by decomp's width-improvement step to run
// MinimalSeparator on a bag's induced multigraph in isolation.
func (g *Graph) InducedSubgraph(verts []int) (sub *Graph, toOriginal map[int]int) {
	sub = New()
	toOriginal = make(map[int]int, len(verts))
	fromOriginal := make(map[int]int, len(verts))
	for _, v := range verts {
		id := sub.AddVertex()
		toOriginal[id] = v
		fromOriginal[v] = id
	}
	for _, v := range verts {
		for u := range g.adj[v] {
			if nu, ok := fromOriginal[u]; ok && nu > fromOriginal[v] {
				_ = sub.AddEdge(fromOriginal[v], nu)
			}
		}
	}
	return sub, toOriginal
}
