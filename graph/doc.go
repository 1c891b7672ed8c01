// Package graph implements the mutable undirected graph kernel the
// tree-width pipeline is built on: canonical-integer-id vertices, O(1)
// adjacency tests, reversible elimination/de-elimination, contraction,
// simplicial/almost-simplicial/twin queries, connected-component
// discovery, and a flow-based minimum vertex separator.
//
// Vertices are addressed by a dense, non-negative integer handle assigned
// on AddVertex and never reused while the vertex is alive. Internal state
// keeps, per vertex: an adjacency set (O(1) membership test) and a single
// integer edgesInNeighborhood[v], equal to the number of edges with both
// endpoints in N(v). That counter is maintained incrementally by every
// edge mutation, which is what lets FillIn and IsSimplicial run in O(1)
// rather than re-scanning the neighborhood.
//
// The kernel is intentionally single-threaded: branch-and-bound and the
// reduction engine mutate one working copy on one goroutine, exactly as
// spec.md section 5 requires. Parallel callers (the component/atom driver)
// give every worker its own *Graph via Clone; nothing here is safe for
// concurrent mutation.
package graph
