package bounds

import "github.com/arboris-go/treewidth/graph"

// WidthOfPermutation simulates eliminating g's vertices in the given
// order on a private clone and returns the induced width: the maximum
// degree any vertex had at the moment it was eliminated.
func WidthOfPermutation(g *graph.Graph, perm []int) int {
	work := g.Clone()
	width := -1
	for _, v := range perm {
		if !work.Alive(v) {
			continue
		}
		if d := work.Degree(v); d > width {
			width = d
		}
		_, _ = work.EliminateVertex(v)
	}
	return width
}
