package bounds

import (
	"time"

	"github.com/arboris-go/treewidth/graph"
)

// LocalSearchOptions configures LocalSearchImprove.
type LocalSearchOptions struct {
	MaxIters int           // 0 = unlimited (run to a local optimum)
	TimeLimit time.Duration // 0 = unbounded
}

// DefaultLocalSearchOptions returns an unlimited, untimed configuration.
func DefaultLocalSearchOptions() LocalSearchOptions {
	return LocalSearchOptions{}
}

// LocalSearchImprove runs deterministic first-improvement 2-opt over an
// elimination permutation: candidate moves swap the vertices at positions
// i<k and, symmetrically to tsp's segment reversal, reverse the
// intervening segment. A move is accepted when it strictly lowers the
// permutation's induced width. Scanning restarts from the beginning after
// every accepted move and stops at a local optimum, a time budget, or
// MaxIters accepted moves, whichever comes first.
func LocalSearchImprove(g *graph.Graph, perm []int, opts LocalSearchOptions) ([]int, int) {
	cur := append([]int(nil), perm...)
	width := WidthOfPermutation(g, cur)

	var deadline time.Time
	useDeadline := opts.TimeLimit > 0
	if useDeadline {
		deadline = time.Now().Add(opts.TimeLimit)
	}

	accepted := 0
	n := len(cur)
	for {
		improved := false
		for i := 0; i < n-1 && !improved; i++ {
			for k := i + 1; k < n; k++ {
				candidate := append([]int(nil), cur...)
				reverseSegment(candidate, i, k)
				w := WidthOfPermutation(g, candidate)
				if w < width {
					cur = candidate
					width = w
					accepted++
					improved = true
					break
				}
				if useDeadline && time.Now().After(deadline) {
					return cur, width
				}
			}
		}
		if !improved {
			break
		}
		if opts.MaxIters > 0 && accepted >= opts.MaxIters {
			break
		}
	}
	return cur, width
}

func reverseSegment(a []int, i, k int) {
	for i < k {
		a[i], a[k] = a[k], a[i]
		i++
		k--
	}
}
