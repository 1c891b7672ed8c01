package bnb

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arboris-go/treewidth/graph"
)

// branchGroups partitions every live vertex by neighborhood signature
// (true twins use the closed neighborhood, false twins the open one),
// including singleton groups — unlike graph.TwinDecomposition, which
// keeps only genuine multi-vertex twin classes (for the SAT encoder's
// symmetry breaking), branching needs every vertex covered by some group
// so a representative always exists.
func branchGroups(g *graph.Graph, trueTwins bool) [][]int {
	groups := make(map[string][]int)
	for _, v := range g.Vertices() {
		var ns []int
		if trueTwins {
			ns = g.ClosedNeighborhood(v)
		} else {
			ns = g.Neighbors(v)
		}
		key := signature(ns)
		groups[key] = append(groups[key], v)
	}
	out := make([][]int, 0, len(groups))
	for _, g := range groups {
		sort.Ints(g)
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

func signature(ids []int) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}

func totalVertices(groups [][]int) int {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	return n
}
