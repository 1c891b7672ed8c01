package sat

import (
	"sort"

	"github.com/arboris-go/treewidth/graph"
)

// Variant selects which redundant clause families ride alongside the base
// ordering/arc encoding.
type Variant int

const (
	Base Variant = iota
	Improved
	Ladder
)

// decoder wraps the variables and oracle needed to turn a SAT model back
// into an elimination order.
type decoder struct {
	oracle Oracle
	enc    *OrderingEncoder
}

func (d *decoder) extractOrder() []int {
	n := d.enc.N()
	predCount := make([]int, n+1)
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if i == j {
				continue
			}
			lit := d.enc.Before(i, j)
			v := d.oracle.Val(abs(lit))
			if (v > 0) == (lit > 0) {
				predCount[j]++
			}
		}
	}
	positions := make([]int, n)
	for i := range positions {
		positions[i] = i + 1
	}
	sort.SliceStable(positions, func(a, b int) bool {
		return predCount[positions[a]] < predCount[positions[b]]
	})
	order := make([]int, n)
	for idx, pos := range positions {
		order[idx] = d.enc.Original(pos)
	}
	return order
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// buildInstance encodes g's elimination-order/width decision problem once,
// returning the encoder and one AtMostK cardinality encoder per vertex
// position (bounding that position's out-degree in the fill graph, which
// is exactly the bag size that position contributes minus one).
func buildInstance(g *graph.Graph, ub int, oracle Oracle, variant Variant) (*OrderingEncoder, []AtMostKEncoder, *Formula) {
	pool := NewVarPool()
	f := NewFormula(oracle, pool)
	enc := NewOrderingEncoder(g, pool)
	enc.EncodeBase(g, f)
	switch variant {
	case Improved:
		enc.EncodeImproved(f)
	case Ladder:
		enc.EncodeLadder(f, pool)
	}
	BreakTwinSymmetry(g, enc, f)
	BreakCliqueSymmetry(g, enc, f)

	n := enc.N()
	cards := make([]AtMostKEncoder, n+1)
	for i := 1; i <= n; i++ {
		lits := make([]int, 0, n-1)
		for j := 1; j <= n; j++ {
			if j != i {
				lits = append(lits, enc.Arc(i, j))
			}
		}
		cards[i] = NewSequentialCounterAtMost(f, lits, ub)
	}
	return enc, cards, f
}

func assumeWidth(oracle Oracle, cards []AtMostKEncoder, k int) {
	for i := 1; i < len(cards); i++ {
		for _, lit := range cards[i].AssumeAtMost(k) {
			oracle.Assume(lit)
		}
	}
}

// Decide searches downward from ub (inclusive) to lowerBound (inclusive)
// for the smallest width admitting a valid elimination order, stopping at
// the first UNSAT result. It returns the best order found (width ub is
// assumed satisfiable going in — callers should only pass a structurally
// valid upper bound) and its width.
func Decide(g *graph.Graph, ub, lowerBound int, oracle Oracle, variant Variant) ([]int, int) {
	if g.N() == 0 {
		return nil, -1
	}
	enc, cards, _ := buildInstance(g, ub, oracle, variant)
	d := &decoder{oracle: oracle, enc: enc}

	var bestOrder []int
	bestWidth := ub
	for k := ub; k >= lowerBound; k-- {
		assumeWidth(oracle, cards, k)
		if oracle.Solve() != SAT {
			break
		}
		bestWidth = k
		bestOrder = d.extractOrder()
	}
	return bestOrder, bestWidth
}

// AscendingWitness searches upward from lowerBound (inclusive) to ub
// (inclusive) for the first width admitting a valid elimination order,
// returning immediately on the first SAT result. Useful when the true
// width is expected close to a known lower bound, since it avoids paying
// for every UNSAT query the descending Decide would issue above it.
func AscendingWitness(g *graph.Graph, lowerBound, ub int, oracle Oracle, variant Variant) ([]int, int) {
	if g.N() == 0 {
		return nil, -1
	}
	enc, cards, _ := buildInstance(g, ub, oracle, variant)
	d := &decoder{oracle: oracle, enc: enc}

	for k := lowerBound; k <= ub; k++ {
		assumeWidth(oracle, cards, k)
		if oracle.Solve() == SAT {
			return d.extractOrder(), k
		}
	}
	return nil, ub
}
