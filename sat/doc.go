// Package sat encodes the treewidth decision problem ("does G have an
// elimination order of width <= k?") as CNF and drives it against an
// incremental SAT oracle, iteratively lowering k while the oracle reports
// satisfiable.
//
// The Oracle interface is deliberately narrow — add, assume, solve, val,
// failed, terminate, signature — so any incremental solver can back it; the
// production implementation wraps gini, a pure-Go CDCL solver.
package sat
