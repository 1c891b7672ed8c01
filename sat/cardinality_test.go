package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequentialCounterEnforcesBound(t *testing.T) {
	oracle := NewGiniOracle()
	pool := NewVarPool()
	f := NewFormula(oracle, pool)
	lits := []int{pool.Fresh(), pool.Fresh(), pool.Fresh(), pool.Fresh()}
	// force all four literals true, then ask for at most 2 true: UNSAT.
	for _, l := range lits {
		f.AddClause(l)
	}
	enc := NewSequentialCounterAtMost(f, lits, 4)
	for _, lit := range enc.AssumeAtMost(2) {
		oracle.Assume(lit)
	}
	assert.Equal(t, UNSAT, oracle.Solve())
}

func TestSequentialCounterAllowsExactBound(t *testing.T) {
	oracle := NewGiniOracle()
	pool := NewVarPool()
	f := NewFormula(oracle, pool)
	lits := []int{pool.Fresh(), pool.Fresh(), pool.Fresh(), pool.Fresh()}
	for _, l := range lits {
		f.AddClause(l)
	}
	enc := NewSequentialCounterAtMost(f, lits, 4)
	for _, lit := range enc.AssumeAtMost(4) {
		oracle.Assume(lit)
	}
	assert.Equal(t, SAT, oracle.Solve())
}

func TestSortingNetworkEnforcesBound(t *testing.T) {
	oracle := NewGiniOracle()
	pool := NewVarPool()
	f := NewFormula(oracle, pool)
	lits := []int{pool.Fresh(), pool.Fresh(), pool.Fresh()}
	for _, l := range lits {
		f.AddClause(l)
	}
	enc := NewSortingNetworkAtMost(f, lits)
	for _, lit := range enc.AssumeAtMost(1) {
		oracle.Assume(lit)
	}
	assert.Equal(t, UNSAT, oracle.Solve())
}

func TestDecreasingCounterTightensAcrossQueries(t *testing.T) {
	oracle := NewGiniOracle()
	pool := NewVarPool()
	f := NewFormula(oracle, pool)
	lits := []int{pool.Fresh(), pool.Fresh(), pool.Fresh(), pool.Fresh(), pool.Fresh()}
	for _, l := range lits {
		f.AddClause(l)
	}
	enc := NewDecreasingCounterAtMost(f, lits)
	for _, lit := range enc.AssumeAtMost(5) {
		oracle.Assume(lit)
	}
	assert.Equal(t, SAT, oracle.Solve())

	for _, lit := range enc.AssumeAtMost(2) {
		oracle.Assume(lit)
	}
	assert.Equal(t, UNSAT, oracle.Solve())
}

func TestBinomialAtMostForbidsOverCount(t *testing.T) {
	oracle := NewGiniOracle()
	pool := NewVarPool()
	f := NewFormula(oracle, pool)
	lits := []int{pool.Fresh(), pool.Fresh(), pool.Fresh()}
	for _, l := range lits {
		f.AddClause(l)
	}
	EncodeBinomialAtMost(f, lits, 1)
	assert.Equal(t, UNSAT, oracle.Solve())
}
