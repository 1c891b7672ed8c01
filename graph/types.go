package graph

// Graph is an undirected simple graph over canonical integer vertex ids
// 0..n-1. Vertices never shift ids on removal; a removed id simply becomes
// a hole (alive[id] == false) and is never revisited by queries or
// iteration until (if ever) reused by a future AddVertex call.
//
// edgesInNeighborhood[v] is exact at all times: it equals the number of
// edges {x,y} with x,y both in N(v). Every AddEdge/RemoveEdge updates it
// for every vertex affected, in O(min(deg(x), deg(y))) — see AddEdge in
// methods_edges.go.
type Graph struct {
	alive               []bool
	adj                 []map[int]struct{}
	edgesInNeighborhood []int
	numAlive            int
	numEdges            int
	freeList            []int // ids of removed vertices available for O(1) reuse
}

// New returns an empty graph ready for AddVertex calls.
func New() *Graph {
	return &Graph{}
}

// NewWithCapacity returns an empty graph pre-sized for n vertices, avoiding
// reallocation when the final vertex count is known up front (the common
// case: callers build a graph from a fixed edge list).
func NewWithCapacity(n int) *Graph {
	g := &Graph{
		alive:               make([]bool, 0, n),
		adj:                 make([]map[int]struct{}, 0, n),
		edgesInNeighborhood: make([]int, 0, n),
	}
	return g
}

// N returns the number of live vertices.
func (g *Graph) N() int { return g.numAlive }

// M returns the number of edges.
func (g *Graph) M() int { return g.numEdges }

// MaxID returns one past the highest vertex id ever allocated; valid ids
// for iteration purposes are in [0, MaxID()), though some may be holes.
func (g *Graph) MaxID() int { return len(g.alive) }

// Alive reports whether id currently names a live vertex.
func (g *Graph) Alive(id int) bool {
	return id >= 0 && id < len(g.alive) && g.alive[id]
}

// Vertices returns the sorted slice of live vertex ids.
func (g *Graph) Vertices() []int {
	out := make([]int, 0, g.numAlive)
	for id, ok := range g.alive {
		if ok {
			out = append(out, id)
		}
	}
	return out
}
