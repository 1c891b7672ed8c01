// Package reduce implements the width-preserving reduction engine: a fixed
// pipeline of local rules (isolated, leaf, series, triangle, buddy, cube,
// simplicial, almost-simplicial) that strip safe vertices from a graph one
// at a time, each leaving behind a bag recording what must be reinserted
// into the final tree decomposition once a decomposition of the residual
// kernel is known.
//
// Low-degree rules (isolated, leaf, series) run first as a BFS-style work
// queue seeded from every vertex currently at that degree; the remaining
// rules then iterate to a fix-point, since clique-ing a neighborhood can
// create new low-degree or simplicial vertices elsewhere in the graph.
package reduce
