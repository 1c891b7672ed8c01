package sat

// AtMostKEncoder encodes "at most k of a fixed set of literals are true"
// so that k can be queried, and usually lowered, without re-emitting the
// whole clause set on every query. AssumeAtMost returns the literal(s) an
// Oracle.Assume call needs in order to enforce bound k for the next Solve;
// encoders that must add clauses to tighten the bound do so eagerly inside
// AssumeAtMost and memoize so repeated calls at the same k are free.
type AtMostKEncoder interface {
	AssumeAtMost(k int) []int
}

// EncodeBinomialAtMost asserts, directly and non-incrementally, that at
// most k of lits are true: one clause per (k+1)-subset forbidding all of
// its members simultaneously. Clause count is C(len(lits), k+1), so this
// is only used for k<=1 or len(lits)<=7 (spec.md 4.5's binomial case);
// querying a different k requires calling it again with a fresh Formula
// region, so it does not implement AtMostKEncoder.
func EncodeBinomialAtMost(f *Formula, lits []int, k int) {
	if k < 0 {
		for _, l := range lits {
			f.AddClause(-l)
		}
		return
	}
	if k >= len(lits) {
		return
	}
	combo := make([]int, k+1)
	var rec func(start, depth int)
	rec = func(start, depth int) {
		if depth == k+1 {
			clause := make([]int, k+1)
			for i, idx := range combo {
				clause[i] = -lits[idx]
			}
			f.AddClause(clause...)
			return
		}
		for i := start; i < len(lits); i++ {
			combo[depth] = i
			rec(i+1, depth+1)
		}
	}
	rec(0, 0)
}

// sequentialCounter implements Sinz's unary sequential-counter AtMostK
// encoding (O(n*maxK) registers and clauses), built once against maxK and
// then queried at any k<=maxK by assuming a single register literal —
// ideal for a decision procedure that iteratively lowers k while SAT.
type sequentialCounter struct {
	n, maxK int
	lits    []int
	s       map[[2]int]int // s[i][j]: "at least j of lits[0..i-1] are true", i in 1..n, j in 1..maxK
}

// NewSequentialCounterAtMost builds a sequential counter over lits
// supporting AssumeAtMost(k) for any 0<=k<=maxK.
func NewSequentialCounterAtMost(f *Formula, lits []int, maxK int) AtMostKEncoder {
	n := len(lits)
	sc := &sequentialCounter{n: n, maxK: maxK, lits: lits, s: make(map[[2]int]int)}
	if n == 0 || maxK <= 0 {
		return sc
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= maxK; j++ {
			sc.s[[2]int{i, j}] = f.Pool.Fresh()
		}
	}
	reg := func(i, j int) int {
		if j <= 0 || i <= 0 {
			return 0
		}
		return sc.s[[2]int{i, j}]
	}
	x := func(i int) int { return lits[i-1] }

	f.AddClause(-x(1), reg(1, 1))
	for j := 2; j <= maxK; j++ {
		f.AddClause(-reg(1, j))
	}
	for i := 2; i <= n; i++ {
		f.AddClause(-x(i), reg(i, 1))
		f.AddClause(-reg(i-1, 1), reg(i, 1))
		for j := 2; j <= maxK; j++ {
			f.AddClause(-x(i), -reg(i-1, j-1), reg(i, j))
			f.AddClause(-reg(i-1, j), reg(i, j))
		}
		f.AddClause(-x(i), -reg(i-1, maxK))
	}
	return sc
}

// AssumeAtMost returns the literal that, assumed true, forbids at least
// k+1 of the guarded literals from holding. k>=maxK is unconstrained
// (returns no literal); k<0 forbids every literal.
func (sc *sequentialCounter) AssumeAtMost(k int) []int {
	if k < 0 {
		lits := make([]int, len(sc.lits))
		for i, l := range sc.lits {
			lits[i] = -l
		}
		return lits
	}
	if k >= sc.maxK || sc.n == 0 {
		return nil
	}
	reg, ok := sc.s[[2]int{sc.n, k + 1}]
	if !ok {
		return nil
	}
	return []int{-reg}
}

// sortingNetwork implements an odd-even mergesort (Batcher) AtMostK
// encoding: lits are sorted into descending output wires out[0..n-1], and
// "at most k" is enforced by assuming ¬out[k] (0-indexed), so any k can be
// queried against the same clause set without rebuilding it.
type sortingNetwork struct {
	out []int
}

// NewSortingNetworkAtMost builds a Batcher odd-even merge sorting network
// over lits and returns an AtMostKEncoder querying it.
func NewSortingNetworkAtMost(f *Formula, lits []int) AtMostKEncoder {
	wires := append([]int(nil), lits...)
	sorted := oddEvenSort(f, wires)
	return &sortingNetwork{out: sorted}
}

func (sn *sortingNetwork) AssumeAtMost(k int) []int {
	if k < 0 {
		if len(sn.out) == 0 {
			return nil
		}
		return []int{-sn.out[0]}
	}
	if k >= len(sn.out) {
		return nil
	}
	return []int{-sn.out[k]}
}

// comparator emits "max <-> a∨b" and "min <-> a∧b" clauses and returns the
// (max, min) output wires, descending.
func comparator(f *Formula, a, b int) (int, int) {
	max, min := f.Pool.Fresh(), f.Pool.Fresh()
	f.AddClause(-a, max)
	f.AddClause(-b, max)
	f.AddClause(a, b, -max)
	f.AddClause(-a, -b, min)
	f.AddClause(a, -min)
	f.AddClause(b, -min)
	return max, min
}

// oddEvenSort recursively sorts wires into descending order via Batcher's
// odd-even mergesort, splitting into two halves, sorting each, and merging.
func oddEvenSort(f *Formula, wires []int) []int {
	if len(wires) <= 1 {
		return wires
	}
	mid := len(wires) / 2
	left := oddEvenSort(f, wires[:mid])
	right := oddEvenSort(f, wires[mid:])
	return oddEvenMerge(f, left, right)
}

// oddEvenMerge merges two descending-sorted wire lists into one.
func oddEvenMerge(f *Formula, a, b []int) []int {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	if len(a) == 1 && len(b) == 1 {
		max, min := comparator(f, a[0], b[0])
		return []int{max, min}
	}
	aEven, aOdd := split(a)
	bEven, bOdd := split(b)
	mergedEven := oddEvenMerge(f, aEven, bEven)
	mergedOdd := oddEvenMerge(f, aOdd, bOdd)
	out := make([]int, 0, len(a)+len(b))
	out = append(out, mergedEven[0])
	i, j := 1, 0
	for i < len(mergedEven) && j < len(mergedOdd) {
		max, min := comparator(f, mergedOdd[j], mergedEven[i])
		out = append(out, max, min)
		i++
		j++
	}
	for ; i < len(mergedEven); i++ {
		out = append(out, mergedEven[i])
	}
	for ; j < len(mergedOdd); j++ {
		out = append(out, mergedOdd[j])
	}
	return out
}

func split(wires []int) (even, odd []int) {
	for i, w := range wires {
		if i%2 == 0 {
			even = append(even, w)
		} else {
			odd = append(odd, w)
		}
	}
	return even, odd
}

// decreasingCounter implements the "decreasing counter" variant: a unary
// prefix-count encoding (c[i][j] = "at least j of the first i literals
// are true") built column by column: a query at bound k needs columns
// 1..k+1, so tightening the bound from k to a smaller k' reuses columns
// already built instead of re-encoding the whole constraint. Queries only ever
// lower the bound, matching the decision procedure's monotone-descending
// search over k.
type decreasingCounter struct {
	lits    []int
	n       int
	col     map[[2]int]int // c[i][j], i in 1..n, j in 1..built
	built   int
	formula *Formula
}

// NewDecreasingCounterAtMost returns an AtMostKEncoder that builds its
// columns lazily: the first AssumeAtMost(k) call pays for columns 1..k+1,
// and every subsequent call at a smaller k reuses them without adding
// clauses; a call at a larger k builds only the columns not yet built.
func NewDecreasingCounterAtMost(f *Formula, lits []int) AtMostKEncoder {
	return &decreasingCounter{lits: lits, n: len(lits), col: make(map[[2]int]int), formula: f}
}

func (dc *decreasingCounter) AssumeAtMost(k int) []int {
	if k < 0 {
		out := make([]int, len(dc.lits))
		for i, l := range dc.lits {
			out[i] = -l
		}
		return out
	}
	if k+1 > dc.n {
		return nil
	}
	dc.ensure(k + 1)
	return []int{-dc.col[[2]int{dc.n, k + 1}]}
}

// ensure grows the prefix-count columns up to target, only emitting
// clauses for columns not already built. Column j depends only on column
// j-1, so columns are always extended in order.
func (dc *decreasingCounter) ensure(target int) {
	if target <= dc.built {
		return
	}
	f := dc.formula
	x := func(i int) int { return dc.lits[i-1] }
	c := func(i, j int) int {
		if i < 1 || j < 1 {
			return 0
		}
		return dc.col[[2]int{i, j}]
	}
	for j := dc.built + 1; j <= target; j++ {
		for i := 1; i <= dc.n; i++ {
			dc.col[[2]int{i, j}] = f.Pool.Fresh()
		}
		if j == 1 {
			f.AddClause(-x(1), c(1, 1))
			for i := 2; i <= dc.n; i++ {
				f.AddClause(-x(i), c(i, 1))
				f.AddClause(-c(i-1, 1), c(i, 1))
			}
			continue
		}
		for i := 2; i <= dc.n; i++ {
			if prev := c(i-1, j-1); prev != 0 {
				f.AddClause(-x(i), -prev, c(i, j))
			}
			if same := c(i-1, j); same != 0 {
				f.AddClause(-same, c(i, j))
			}
		}
	}
	dc.built = target
}
