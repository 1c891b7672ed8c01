package graph

import "errors"

// Sentinel errors for graph kernel operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent
	// or already-removed vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	// The kernel models simple graphs only; self-loops are never meaningful
	// for tree-width.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrSameVertex indicates a contraction or separator query received the
	// same vertex for both endpoints.
	ErrSameVertex = errors.New("graph: endpoints must be distinct")

	// ErrAdjacent indicates a minimal-separator query was asked for two
	// vertices that are directly adjacent (no separator exists).
	ErrAdjacent = errors.New("graph: endpoints are adjacent")
)
