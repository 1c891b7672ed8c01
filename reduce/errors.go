package reduce

import "errors"

var (
	// ErrEmptyGraph reports that there is no anchor bag to glue onto.
	// Glue itself returns no error: on a tree with no bags it adds the
	// first bag of the stack unattached.
	ErrEmptyGraph = errors.New("reduce: no anchor bag to glue onto")
)
