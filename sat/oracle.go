package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Result is the outcome of one Oracle.Solve call.
type Result int

const (
	Unknown Result = iota
	SAT
	UNSAT
	Interrupted
)

// Oracle is the incremental SAT interface the decision procedure and
// lower-bound driver are written against. Literals follow the DIMACS
// convention: positive for the variable, negative for its complement;
// Add(0) terminates the current clause. Models are only meaningful after
// a SAT result; assumptions are not preserved across Solve calls.
type Oracle interface {
	Add(literal int)
	Assume(literal int)
	Solve() Result
	Val(variable int) int
	Failed(literal int) bool
	Terminate()
	Signature() string
}

// giniOracle adapts gini (github.com/go-air/gini), a pure-Go incremental
// CDCL solver, to the Oracle interface. Variable/literal translation uses
// z.Dimacs, which maps signed DIMACS ints directly to gini's internal
// z.Lit representation.
type giniOracle struct {
	g          *gini.Gini
	pending    []int // assumptions queued for the next Solve call
	lastAssume []int // assumptions that were in effect for the last Solve call
	lastResult Result
}

// NewGiniOracle returns an Oracle backed by a fresh gini solver instance.
func NewGiniOracle() Oracle {
	return &giniOracle{g: gini.New()}
}

func (o *giniOracle) Add(literal int) {
	o.g.Add(z.Dimacs(literal))
}

func (o *giniOracle) Assume(literal int) {
	o.pending = append(o.pending, literal)
	o.g.Assume(z.Dimacs(literal))
}

func (o *giniOracle) Solve() Result {
	switch o.g.Solve() {
	case 1:
		o.lastResult = SAT
	case -1:
		o.lastResult = UNSAT
	default:
		o.lastResult = Interrupted
	}
	o.lastAssume = o.pending
	o.pending = nil
	return o.lastResult
}

func (o *giniOracle) Val(variable int) int {
	if variable <= 0 {
		return 0
	}
	if o.g.Value(z.Var(variable).Pos()) {
		return variable
	}
	return -variable
}

// Failed reports whether literal was part of the assumption set that led
// to the most recent UNSAT result. gini's own minimal-unsat-core API is
// not used here; conservatively, every literal assumed before that result
// is reported as failed, a superset of the true failed set. No caller in
// this module uses Failed: Decide and AscendingWitness act on the result
// of Solve alone.
func (o *giniOracle) Failed(literal int) bool {
	if o.lastResult != UNSAT {
		return false
	}
	for _, l := range o.lastAssume {
		if l == literal {
			return true
		}
	}
	return false
}

func (o *giniOracle) Terminate() {
	// gini releases its resources to the garbage collector; nothing to
	// explicitly close, but Terminate exists so callers of the Oracle
	// interface never need to know which concrete solver backs it.
}

func (o *giniOracle) Signature() string {
	return "gini"
}
