package format

import "errors"

var (
	// ErrNoHeader indicates the input has no "p tw n m" problem line
	// before its first edge line, or no non-comment lines at all.
	ErrNoHeader = errors.New("format: missing \"p tw\" header line")

	// ErrMalformedHeader indicates a "p tw n m" line with the wrong
	// number of fields or non-integer n/m.
	ErrMalformedHeader = errors.New("format: malformed header line")

	// ErrMalformedEdge indicates an edge line that is not two
	// whitespace-separated integers.
	ErrMalformedEdge = errors.New("format: malformed edge line")

	// ErrVertexOutOfRange indicates an edge line referencing a vertex
	// outside [1, n] for the n declared in the header.
	ErrVertexOutOfRange = errors.New("format: vertex id out of declared range")

	// ErrEdgeCountMismatch indicates the number of edge lines parsed
	// does not match the m declared in the header.
	ErrEdgeCountMismatch = errors.New("format: edge count does not match header")
)
