package reduce

import "github.com/arboris-go/treewidth/graph"

// Engine runs the reduction pipeline to a fix-point against a given lower
// bound, which guards the Series rule (applied only when the bound is at
// least 2) and the width-raising Almost-simplicial rule.
type Engine struct {
	LowerBound int
}

// New returns an Engine guarded by the given lower bound.
func New(lowerBound int) *Engine {
	return &Engine{LowerBound: lowerBound}
}

// Reduce clones g, strips every vertex the rule pipeline can safely
// remove, and returns the residual kernel together with the bag stack
// needed to glue the stripped vertices back into a decomposition of the
// kernel. Reduce never mutates g.
func (e *Engine) Reduce(g *graph.Graph) (*graph.Graph, []Step) {
	work := g.Clone()
	var stack []Step

	e.drainLowDegree(work, &stack)

	for {
		var step *Step
		var err error

		if v, ok := work.SimplicialVertex(nil); ok {
			step, err = applySimplicial(work, v)
		} else if v, ok := findTriangleCandidate(work); ok {
			step, err = applyTriangle(work, v)
		} else if v, _, ok := findBuddyPair(work); ok {
			step, err = applyBuddy(work, v)
		} else if z, ok := findCubeCandidate(work); ok {
			step, err = applyCube(work, z)
		} else if v, _, ok := work.AlmostSimplicialVertex(nil); ok && work.Degree(v) <= e.LowerBound {
			step, err = applyAlmostSimplicial(work, v)
		} else {
			break
		}

		if err != nil || step == nil {
			break
		}
		stack = append(stack, *step)
		e.drainLowDegree(work, &stack)
	}

	return work, stack
}

// Fully reports whether the kernel is empty, i.e. the instance was
// completely solved by reduction alone.
func Fully(kernel *graph.Graph) bool {
	return kernel.N() == 0
}

// drainLowDegree applies Isolated/Leaf/Series as a BFS-style work queue
// until no vertex of degree <= 1 remains (and none of degree 2 when the
// lower bound is at least 2), appending every step taken.
func (e *Engine) drainLowDegree(work *graph.Graph, stack *[]Step) {
	queue := append([]int(nil), work.Vertices()...)
	queued := make(map[int]bool, len(queue))
	for _, v := range queue {
		queued[v] = true
	}

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		queued[v] = false

		if !work.Alive(v) {
			continue
		}
		d := work.Degree(v)
		if d > 2 {
			continue
		}
		neighbors := work.Neighbors(v)

		var step *Step
		var err error
		switch d {
		case 0:
			step, err = applyIsolated(work, v)
		case 1:
			step, err = applyLeaf(work, v)
		case 2:
			if e.LowerBound < 2 {
				continue
			}
			step, err = applySeries(work, v)
		}
		if err != nil || step == nil {
			continue
		}
		*stack = append(*stack, *step)

		for _, u := range neighbors {
			if work.Alive(u) && !queued[u] {
				queued[u] = true
				queue = append(queue, u)
			}
		}
	}
}
