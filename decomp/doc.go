// Package decomp implements the tree-decomposition model: bags, tree
// edges, the reference validity verifier, construction from an
// elimination permutation, and width-reducing post-processing (flatten,
// separator-based width improvement, and an optional "nice" normal form
// of leaf/introduce/forget/join nodes; no tree-index is computed for it).
//
// A Tree never aliases the graph.Graph it was built from: FromPermutation
// clones its input before eliminating, so callers keep their original
// graph untouched — the same copy-constructor discipline the graph
// package itself uses for branch-and-bound.
package decomp
