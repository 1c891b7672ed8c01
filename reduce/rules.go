package reduce

import (
	"sort"

	"github.com/arboris-go/treewidth/graph"
)

// Kind names which rule produced a Step, purely for diagnostics.
type Kind string

const (
	Isolated        Kind = "isolated"
	Leaf            Kind = "leaf"
	Series          Kind = "series"
	Triangle        Kind = "triangle"
	Buddy           Kind = "buddy"
	Cube            Kind = "cube"
	Simplicial      Kind = "simplicial"
	AlmostSimplicial Kind = "almost-simplicial"
)

// Step is one rule application: the vertex it removed and the bag that
// must be reinserted into the final tree decomposition to account for it.
type Step struct {
	Kind Kind
	Vertex int
	Bag  []int // sorted
}

func sortedBag(vs ...int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)
	return out
}

func sortedUnion(v int, rest []int) []int {
	out := append([]int{v}, rest...)
	sort.Ints(out)
	return out
}

// applyIsolated deletes a degree-0 vertex. Safe: an isolated vertex never
// contributes to treewidth beyond its own trivial {v} bag.
func applyIsolated(g *graph.Graph, v int) (*Step, error) {
	if err := g.RemoveVertex(v); err != nil {
		return nil, err
	}
	return &Step{Kind: Isolated, Vertex: v, Bag: sortedBag(v)}, nil
}

// applyLeaf deletes a degree-1 vertex. Safe: v's single neighbor already
// forms a trivial "clique" (no edges needed), so deleting v cannot reduce
// the width contributed by its neighborhood elsewhere.
func applyLeaf(g *graph.Graph, v int) (*Step, error) {
	neighbors := g.Neighbors(v)
	if err := g.RemoveVertex(v); err != nil {
		return nil, err
	}
	return &Step{Kind: Leaf, Vertex: v, Bag: sortedUnion(v, neighbors)}, nil
}

// applySeries eliminates a degree-2 vertex: its two neighbors become
// adjacent (or already are). The engine applies it only when its lower
// bound is at least 2, so the size-3 bag covering v and both neighbors
// never exceeds the width.
func applySeries(g *graph.Graph, v int) (*Step, error) {
	neighbors := g.Neighbors(v)
	if _, err := g.EliminateVertex(v); err != nil {
		return nil, err
	}
	return &Step{Kind: Series, Vertex: v, Bag: sortedUnion(v, neighbors)}, nil
}

// applyTriangle eliminates a degree-3 vertex that already has at least one
// edge among its neighbors: completing the clique costs at most two more
// edges, so the {v}∪N(v) bag (size 4) bounds the width contribution exactly
// as eliminating v would induce.
func applyTriangle(g *graph.Graph, v int) (*Step, error) {
	neighbors := g.Neighbors(v)
	if _, err := g.EliminateVertex(v); err != nil {
		return nil, err
	}
	return &Step{Kind: Triangle, Vertex: v, Bag: sortedUnion(v, neighbors)}, nil
}

func hasEdgeAmong(g *graph.Graph, vs []int) bool {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if g.HasEdge(vs[i], vs[j]) {
				return true
			}
		}
	}
	return false
}

// findTriangleCandidate returns a degree-3 vertex with at least one edge
// among its neighbors, or false if none exists.
func findTriangleCandidate(g *graph.Graph) (int, bool) {
	for _, v := range g.Vertices() {
		if g.Degree(v) != 3 {
			continue
		}
		if hasEdgeAmong(g, g.Neighbors(v)) {
			return v, true
		}
	}
	return 0, false
}

// findBuddyPair looks for two non-adjacent degree-3 vertices sharing the
// same open neighborhood ("buddies"): eliminating either is safe because
// the other stands in for it in every bag that would otherwise need both.
func findBuddyPair(g *graph.Graph) (v, w int, ok bool) {
	sig := make(map[string][]int)
	for _, u := range g.Vertices() {
		if g.Degree(u) != 3 {
			continue
		}
		key := neighborSignature(g.Neighbors(u))
		sig[key] = append(sig[key], u)
	}
	for _, group := range sig {
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if !g.HasEdge(a, b) {
					return a, b, true
				}
			}
		}
	}
	return 0, 0, false
}

func neighborSignature(ns []int) string {
	b := make([]byte, 0, len(ns)*4)
	for i, v := range ns {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendInt(b, v)
	}
	return string(b)
}

func appendInt(b []byte, v int) []byte {
	if v == 0 {
		return append(b, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(b)
	for v > 0 {
		b = append(b, byte('0'+v%10))
		v /= 10
	}
	if neg {
		b = append(b, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func applyBuddy(g *graph.Graph, v int) (*Step, error) {
	neighbors := g.Neighbors(v)
	if _, err := g.EliminateVertex(v); err != nil {
		return nil, err
	}
	return &Step{Kind: Buddy, Vertex: v, Bag: sortedUnion(v, neighbors)}, nil
}

// findCubeCandidate looks for the cube-corner pattern: a degree-3 vertex z
// whose three neighbors a,b,c are pairwise non-adjacent but share a common
// fourth vertex w (also degree 3) adjacent to all of a,b,c. z sits at one
// corner of a 3-cube with w at the opposite corner; z can be deleted and
// its neighborhood cliqued exactly as the Triangle rule does, since w
// already witnesses the same clique obligation on a,b,c.
func findCubeCandidate(g *graph.Graph) (z int, ok bool) {
	for _, v := range g.Vertices() {
		if g.Degree(v) != 3 {
			continue
		}
		ns := g.Neighbors(v)
		if hasEdgeAmong(g, ns) {
			continue // Triangle rule already covers this case
		}
		if commonDegree3Neighbor(g, ns, v) {
			return v, true
		}
	}
	return 0, false
}

func commonDegree3Neighbor(g *graph.Graph, ns []int, exclude int) bool {
	if len(ns) != 3 {
		return false
	}
	a, b, c := ns[0], ns[1], ns[2]
	for _, w := range g.Neighbors(a) {
		if w == exclude || g.Degree(w) != 3 {
			continue
		}
		if g.HasEdge(w, b) && g.HasEdge(w, c) {
			return true
		}
	}
	return false
}

// applyCube deletes z and cliques its (currently independent) neighborhood,
// identically to Triangle's edge-completion step.
func applyCube(g *graph.Graph, z int) (*Step, error) {
	neighbors := g.Neighbors(z)
	for i := 0; i < len(neighbors); i++ {
		for j := i + 1; j < len(neighbors); j++ {
			_ = g.AddEdge(neighbors[i], neighbors[j])
		}
	}
	if err := g.RemoveVertex(z); err != nil {
		return nil, err
	}
	return &Step{Kind: Cube, Vertex: z, Bag: sortedUnion(z, neighbors)}, nil
}

func applySimplicial(g *graph.Graph, v int) (*Step, error) {
	closed := g.ClosedNeighborhood(v)
	if err := g.RemoveVertex(v); err != nil {
		return nil, err
	}
	return &Step{Kind: Simplicial, Vertex: v, Bag: closed}, nil
}

// applyAlmostSimplicial eliminates v, whose closed neighborhood minus one
// witness w is already a clique; guarded by the caller to only fire when
// deg(v) does not exceed the current lower bound, since unlike Simplicial
// this rule can raise the width of the kernel by one.
func applyAlmostSimplicial(g *graph.Graph, v int) (*Step, error) {
	closed := g.ClosedNeighborhood(v)
	if _, err := g.EliminateVertex(v); err != nil {
		return nil, err
	}
	return &Step{Kind: AlmostSimplicial, Vertex: v, Bag: closed}, nil
}
