package bnb

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/arboris-go/treewidth/bounds"
	"github.com/arboris-go/treewidth/graph"
	"github.com/arboris-go/treewidth/rng"
)

// Engine runs the exact branch-and-bound search described in the package
// doc. Zero value is not usable; construct with New.
type Engine struct {
	ub      int
	bestPerm []int
	clique  map[int]bool
	memo    map[string]int
	companion map[string]int

	useDeadline bool
	deadline    time.Time
}

// New returns a fresh, empty Engine.
func New() *Engine {
	return &Engine{
		memo:      make(map[string]int),
		companion: make(map[string]int),
	}
}

// Solve runs the exact search against g, seeding the upper bound with
// min-fill and the lower bound with minor-min-width; if the two already
// match, no search is launched. timeLimit of zero means unbounded.
// CurrentSolution always returns a valid permutation afterward, even if
// the search was interrupted by the deadline before proving optimality.
func (e *Engine) Solve(g *graph.Graph, timeLimit time.Duration) ([]int, int) {
	if timeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(timeLimit)
	}

	ubPerm, ub := bounds.MinFill(g, rng.FromSeed(0), false)
	lb := bounds.MinorMinWidth(g, rng.FromSeed(0), bounds.LeastCommonNeighbors)
	e.ub = ub
	e.bestPerm = ubPerm

	if lb >= ub || g.N() == 0 {
		return e.bestPerm, e.ub
	}

	e.clique = greedyMaxClique(g)
	work := g.Clone()
	e.search(work, nil, -1, -1)
	return e.bestPerm, e.ub
}

// CurrentSolution returns the best permutation and width found so far —
// the anytime contract that lets callers query progress before Solve
// returns (e.g. after a deadline interrupt).
func (e *Engine) CurrentSolution() ([]int, int) {
	return e.bestPerm, e.ub
}

func (e *Engine) search(work *graph.Graph, eliminated []int, pathWidth int, currentVertex int) (int, bool) {
	if work.N() == 0 {
		if pathWidth < e.ub {
			e.ub = pathWidth
			e.bestPerm = e.reconstruct(eliminated)
		}
		return -1, true
	}
	if pathWidth >= e.ub {
		return 0, false
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		return 0, false
	}

	key := canonicalKey(eliminated)
	if cached, found := e.memo[key]; found {
		total := cached
		if pathWidth > total {
			total = pathWidth
		}
		if total < e.ub {
			e.ub = total
			e.bestPerm = e.reconstruct(eliminated)
		}
		return cached, true
	}

	if mmw := bounds.MinorMinWidth(work, nil, bounds.LeastCommonNeighbors); mmw >= e.ub {
		return 0, false
	}

	added := e.applyEdgeAdditionRule(work)
	children := e.branchingOrder(work, currentVertex)
	if len(children) == 0 {
		for v := range e.clique {
			if work.Alive(v) {
				children = []int{v}
				break
			}
		}
	}

	best := -1
	bestVertex := -1
	for _, v := range children {
		info, err := work.EliminateVertex(v)
		if err != nil {
			continue
		}
		childPathWidth := pathWidth
		if len(info.Neighbors) > childPathWidth {
			childPathWidth = len(info.Neighbors)
		}
		nextEliminated := append(append([]int(nil), eliminated...), v)
		childRemaining, found := e.search(work, nextEliminated, childPathWidth, v)
		work.DeEliminateVertex(info)
		if !found {
			continue
		}
		candidate := childRemaining
		if len(info.Neighbors) > candidate {
			candidate = len(info.Neighbors)
		}
		if best == -1 || candidate < best {
			best = candidate
			bestVertex = v
		}
	}
	e.reverseEdgeAdditions(work, added)

	if bestVertex == -1 {
		return 0, false
	}
	e.memo[key] = best
	e.companion[key] = bestVertex
	return best, true
}

// reconstruct extends prefix (the already-known path to here) using the
// companion table, exactly mirroring spec.md 4.4.3's reconstruction
// algorithm generalized to start from an arbitrary prefix rather than
// always from the empty set.
func (e *Engine) reconstruct(prefix []int) []int {
	cur := append([]int(nil), prefix...)
	for {
		key := canonicalKey(cur)
		v, ok := e.companion[key]
		if !ok {
			break
		}
		cur = append(cur, v)
	}
	return cur
}

func canonicalKey(eliminated []int) string {
	s := append([]int(nil), eliminated...)
	sort.Ints(s)
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// applyEdgeAdditionRule adds an edge between every non-adjacent pair whose
// common-neighbor count exceeds ub+1 and whose smaller degree exceeds ub:
// any elimination order achieving width < ub must eventually fill that
// edge anyway, so adding it now only tightens pruning.
func (e *Engine) applyEdgeAdditionRule(work *graph.Graph) [][2]int {
	verts := work.Vertices()
	var added [][2]int
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			u, v := verts[i], verts[j]
			if work.HasEdge(u, v) {
				continue
			}
			common := commonNeighbors(work, u, v)
			smaller := work.Degree(u)
			if work.Degree(v) < smaller {
				smaller = work.Degree(v)
			}
			if common > e.ub+1 && smaller > e.ub {
				_ = work.AddEdge(u, v)
				added = append(added, [2]int{u, v})
			}
		}
	}
	return added
}

func (e *Engine) reverseEdgeAdditions(work *graph.Graph, added [][2]int) {
	for i := len(added) - 1; i >= 0; i-- {
		_ = work.RemoveEdge(added[i][0], added[i][1])
	}
}

func commonNeighbors(g *graph.Graph, u, v int) int {
	nu, nv := g.NeighborSet(u), g.NeighborSet(v)
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

// branchingOrder implements spec.md 4.4 step 5: a simplicial or
// almost-simplicial vertex outside the clique forces a single-child
// branch; otherwise one representative per twin-partition group (skipping
// clique vertices and neighbors of currentVertex) is offered, ordered by
// decreasing fill-in.
func (e *Engine) branchingOrder(work *graph.Graph, currentVertex int) []int {
	if v, ok := work.SimplicialVertex(e.clique); ok {
		return []int{v}
	}
	if v, _, ok := work.AlmostSimplicialVertex(e.clique); ok {
		return []int{v}
	}

	trueGroups := branchGroups(work, true)
	falseGroups := branchGroups(work, false)
	groups := trueGroups
	if totalVertices(falseGroups) > totalVertices(trueGroups) {
		groups = falseGroups
	}

	var neighborSet map[int]struct{}
	if currentVertex != -1 && work.Alive(currentVertex) {
		neighborSet = work.NeighborSet(currentVertex)
	}

	var reps []int
	for _, grp := range groups {
		for _, v := range grp {
			if e.clique[v] {
				continue
			}
			if _, skip := neighborSet[v]; skip {
				continue
			}
			reps = append(reps, v)
			break
		}
	}

	sort.Slice(reps, func(i, j int) bool {
		fi, fj := work.FillIn(reps[i]), work.FillIn(reps[j])
		if fi != fj {
			return fi > fj
		}
		return reps[i] < reps[j]
	})
	return reps
}
