package pipeline

import (
	"math/rand"
	"time"

	"github.com/arboris-go/treewidth/rng"
)

// Driver size thresholds (spec.md 4.7): reduction is only attempted in a
// middle size band, exact solving only below a hard cap, and per-atom
// exact solving (choosing between the SAT decision procedure and
// branch-and-bound) only below a much smaller cap.
const (
	ReductionMinVertices = 20
	ReductionMaxVertices = 1000
	ExactMaxVertices     = 600
	AtomExactMaxVertices = 40
	SATRefineMaxVertices = 60
)

// Options configures a driver call. The zero value is usable: it seeds a
// fresh deterministic RNG, runs unbounded, and discards progress reports.
type Options struct {
	// TimeLimit bounds each branch-and-bound exact search, which runs once
	// per clique-separator atom; zero means unbounded. Reduction and the SAT decision loop are not
	// independently time-limited — they terminate on their own fixpoints.
	TimeLimit time.Duration

	// Seed derives the driver's random source (tie-breaking in the bounds
	// heuristics, stochastic min-fill's restarts). Zero uses a fixed
	// default seed, keeping repeated calls deterministic unless the
	// caller wants otherwise.
	Seed int64

	// Reporter receives anytime progress checkpoints; nil disables
	// reporting.
	Reporter Reporter

	r *rand.Rand
}

func (o *Options) rng() *rand.Rand {
	if o.r == nil {
		o.r = rng.FromSeed(o.Seed)
	}
	return o.r
}

func (o *Options) report(width int, interim bool) {
	if o.Reporter != nil {
		o.Reporter.Report(width, interim)
	}
}
