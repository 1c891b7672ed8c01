package graph

import "sort"

// Neighbors returns N(v) as a sorted slice. Sorting is not on the hot path
// (elimination and fill-in only need the adjacency set), so it is computed
// on demand rather than maintained incrementally.
//
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(v int) []int {
	if !g.Alive(v) {
		return nil
	}
	out := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}

// NeighborSet returns the live internal adjacency set of v. Callers must
// treat the result as read-only; it aliases the graph's own state.
func (g *Graph) NeighborSet(v int) map[int]struct{} {
	return g.adj[v]
}

// ClosedNeighborhood returns {v} ∪ N(v), sorted.
func (g *Graph) ClosedNeighborhood(v int) []int {
	ns := g.Neighbors(v)
	out := make([]int, 0, len(ns)+1)
	inserted := false
	for _, u := range ns {
		if !inserted && u > v {
			out = append(out, v)
			inserted = true
		}
		out = append(out, u)
	}
	if !inserted {
		out = append(out, v)
	}
	return out
}
