package bounds

import (
	"math/rand"

	"github.com/arboris-go/treewidth/graph"
	"github.com/arboris-go/treewidth/rng"
)

// ContractStrategy selects which neighbor of the minimum-positive-degree
// vertex to contract with, in MinorMinWidth.
type ContractStrategy int

const (
	// LeastCommonNeighbors picks the neighbor sharing the fewest common
	// neighbors with v (the default: it tends to create the smallest
	// contracted vertex, keeping the bound tight for longer).
	LeastCommonNeighbors ContractStrategy = iota
	MinDegreeNeighbor
	MaxDegreeNeighbor
)

// MinorMinWidth is a graph-minor lower bound: repeatedly pick a vertex v
// of minimum positive degree (ties random), record deg(v) as a candidate
// bound, contract v with a neighbor chosen by strategy, and continue. The
// maximum degree recorded over the run lower-bounds the treewidth.
func MinorMinWidth(g *graph.Graph, r *rand.Rand, strategy ContractStrategy) int {
	work := g.Clone()
	bound := 0

	for {
		v, ok := pickMinPositiveDegree(work, r)
		if !ok {
			break
		}
		if d := work.Degree(v); d > bound {
			bound = d
		}
		u := pickContractionPartner(work, v, strategy)
		_ = work.Contract(u, v)
	}
	return bound
}

func pickMinPositiveDegree(g *graph.Graph, r *rand.Rand) (int, bool) {
	verts := g.Vertices()
	best := -1
	bestDeg := -1
	var tied []int
	for _, v := range verts {
		d := g.Degree(v)
		if d == 0 {
			continue
		}
		switch {
		case bestDeg == -1 || d < bestDeg:
			bestDeg = d
			tied = tied[:0]
			tied = append(tied, v)
		case d == bestDeg:
			tied = append(tied, v)
		}
	}
	if len(tied) == 0 {
		return 0, false
	}
	best = rng.PickUniform(tied, r)
	return best, true
}

func pickContractionPartner(g *graph.Graph, v int, strategy ContractStrategy) int {
	neighbors := g.Neighbors(v)
	best := neighbors[0]
	switch strategy {
	case MinDegreeNeighbor:
		for _, u := range neighbors[1:] {
			if g.Degree(u) < g.Degree(best) {
				best = u
			}
		}
	case MaxDegreeNeighbor:
		for _, u := range neighbors[1:] {
			if g.Degree(u) > g.Degree(best) {
				best = u
			}
		}
	default: // LeastCommonNeighbors
		bestCommon := commonNeighborCount(g, v, best)
		for _, u := range neighbors[1:] {
			if c := commonNeighborCount(g, v, u); c < bestCommon {
				best, bestCommon = u, c
			}
		}
	}
	return best
}

func commonNeighborCount(g *graph.Graph, u, v int) int {
	nu := g.NeighborSet(u)
	nv := g.NeighborSet(v)
	small, big := nu, nv
	if len(nv) < len(nu) {
		small, big = nv, nu
	}
	count := 0
	for w := range small {
		if _, ok := big[w]; ok {
			count++
		}
	}
	return count
}
