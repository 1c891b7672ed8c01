package sat

import "errors"

var (
	// ErrOracleUnavailable names a SAT oracle that cannot be acquired or
	// initialized. No function in this module returns it: NewGiniOracle
	// always succeeds, and the pipeline drivers have no fallback path for
	// a missing oracle.
	ErrOracleUnavailable = errors.New("sat: oracle unavailable")

	// ErrNoVariable names a val/failed query on a variable id the formula
	// never allocated. Val and Failed do not return it: Val reports 0 for
	// a non-positive id, and Failed reports false for a literal that was
	// not assumed.
	ErrNoVariable = errors.New("sat: unknown variable")
)
