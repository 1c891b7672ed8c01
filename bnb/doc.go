// Package bnb implements the exact branch-and-bound treewidth search: a
// depth-first elimination search over a working graph, pruned by a
// minor-min-width lower bound and a shared, monotonically-decreasing
// upper bound, memoized over the set of already-eliminated vertices.
//
// The memo table is sound because fully eliminating a set of vertices
// produces a residual graph that is independent of the order in which
// that set was eliminated — only which vertices were removed matters, not
// the sequence — so the optimal remaining width from a given eliminated
// set is a pure function of the set itself.
package bnb
