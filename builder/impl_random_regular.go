package builder

import (
	"fmt"

	"github.com/arboris-go/treewidth/graph"
)

const (
	minRRVertices           = 1
	maxStubMatchingAttempts = 8
)

// RandomRegular builds an undirected d-regular simple graph over n
// vertices via stub matching: n*d stubs (each vertex index repeated d
// times) are shuffled and paired consecutively, retrying the shuffle up
// to a bounded number of times whenever a pairing would produce a
// self-loop or a duplicate edge (neither of which this module's simple
// graphs allow).
//
// Requires 0 <= d < n, n*d even (otherwise no simple graph realizes the
// degree sequence), and a non-nil RNG.
func RandomRegular(n, d int, opts ...BuilderOption) (*graph.Graph, error) {
	if n < minRRVertices {
		return nil, fmt.Errorf("RandomRegular: n=%d < %d: %w", n, minRRVertices, ErrTooFewVertices)
	}
	if d < 0 || d >= n {
		return nil, fmt.Errorf("RandomRegular: degree must be in [0,%d), got %d: %w", n, d, ErrInvalidDegree)
	}
	if (n*d)%2 != 0 {
		return nil, fmt.Errorf("RandomRegular: n*d must be even (n=%d, d=%d): %w", n, d, ErrInvalidDegree)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("RandomRegular: %w", ErrNeedRandSource)
	}

	g := graph.NewWithCapacity(n)
	for i := 0; i < n; i++ {
		g.AddVertex()
	}

	stubCount := n * d
	if stubCount == 0 {
		return g, nil
	}
	stubs := make([]int, stubCount)
	for i, pos := 0, 0; i < n; i++ {
		for k := 0; k < d; k++ {
			stubs[pos] = i
			pos++
		}
	}

	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		valid := true
		seen := make(map[[2]int]bool, stubCount/2)
		for i := 0; i < stubCount; i += 2 {
			u, v := stubs[i], stubs[i+1]
			if u == v {
				valid = false
				break
			}
			if u > v {
				u, v = v, u
			}
			key := [2]int{u, v}
			if seen[key] {
				valid = false
				break
			}
			seen[key] = true
		}
		if !valid {
			continue
		}

		for i := 0; i < stubCount; i += 2 {
			if err := g.AddEdge(stubs[i], stubs[i+1]); err != nil {
				return nil, err
			}
		}
		return g, nil
	}
	return nil, fmt.Errorf("RandomRegular: n=%d, d=%d: %w", n, d, ErrConstructFailed)
}
