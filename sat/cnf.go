package sat

// VarPool allocates CNF variables monotonically, distinguishing "problem"
// variables (ord/arc, one allocation per encoding) from "auxiliary"
// variables minted by cardinality encoders and the ladder encoding. Every
// allocation pushes the pool's high-water mark; nothing is ever reused
// within one Formula's lifetime, so a variable id alone is enough to tell
// which encoding phase minted it.
type VarPool struct {
	next int
}

// NewVarPool returns a pool whose first allocation is variable 1 (DIMACS
// variables are 1-indexed; 0 is reserved as the clause terminator).
func NewVarPool() *VarPool {
	return &VarPool{next: 1}
}

// Fresh allocates and returns a new variable id.
func (p *VarPool) Fresh() int {
	v := p.next
	p.next++
	return v
}

// Max returns the highest variable id allocated so far (0 if none).
func (p *VarPool) Max() int {
	return p.next - 1
}

// Formula accumulates CNF clauses against an Oracle: AddClause forwards
// each literal and terminates with 0, matching the Oracle.Add convention.
type Formula struct {
	Oracle Oracle
	Pool   *VarPool
}

// NewFormula returns a Formula writing directly into oracle, allocating
// variables from pool.
func NewFormula(oracle Oracle, pool *VarPool) *Formula {
	return &Formula{Oracle: oracle, Pool: pool}
}

// AddClause adds one clause (a disjunction of literals) to the oracle.
func (f *Formula) AddClause(literals ...int) {
	for _, l := range literals {
		f.Oracle.Add(l)
	}
	f.Oracle.Add(0)
}
