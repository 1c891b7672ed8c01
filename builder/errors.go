package builder

import "errors"

var (
	// ErrTooFewVertices indicates a vertex or degree parameter outside
	// the constructor's valid domain (e.g. n < 1, or n < 3 for a cycle).
	ErrTooFewVertices = errors.New("builder: too few vertices for this topology")

	// ErrInvalidProbability indicates an edge probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability not in [0,1]")

	// ErrInvalidDegree indicates a degree outside [0,n) or an (n,d) pair
	// whose product is odd, which no simple graph can realize.
	ErrInvalidDegree = errors.New("builder: degree out of range or parity-infeasible")

	// ErrNeedRandSource indicates a stochastic constructor was called
	// without an RNG and without a degenerate (fully-determined)
	// parameter choice that would make one unnecessary.
	ErrNeedRandSource = errors.New("builder: this constructor requires an injected *rand.Rand")

	// ErrConstructFailed indicates a bounded-retry construction (stub
	// matching for RandomRegular) exhausted its attempts without
	// finding a valid simple-graph realization.
	ErrConstructFailed = errors.New("builder: construction failed after bounded retries")
)
