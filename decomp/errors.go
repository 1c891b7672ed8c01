package decomp

import "errors"

var (
	// ErrBagNotFound indicates an operation referenced a non-existent bag id.
	ErrBagNotFound = errors.New("decomp: bag not found")

	// ErrNotATree indicates the tree-edge relation contains a cycle or is
	// disconnected; this is an invariant violation, never an expected
	// runtime condition.
	ErrNotATree = errors.New("decomp: bag adjacency is not a tree")

	// ErrMissingVertex indicates Verify found a graph vertex absent from
	// every bag (invariant 1 of spec.md section 8).
	ErrMissingVertex = errors.New("decomp: vertex not covered by any bag")

	// ErrMissingEdge indicates Verify found a graph edge with no bag
	// containing both endpoints (invariant 2).
	ErrMissingEdge = errors.New("decomp: edge not covered by any bag")

	// ErrDisconnectedVertex indicates the bags containing some vertex do
	// not induce a connected subtree (invariant 3, the running
	// intersection property).
	ErrDisconnectedVertex = errors.New("decomp: vertex occurrences are not connected in the tree")
)
