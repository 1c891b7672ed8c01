package pipeline

import (
	"sync"

	"github.com/arboris-go/treewidth/decomp"
	"github.com/arboris-go/treewidth/graph"
)

// SolveParallel runs the exact driver's per-component solve concurrently,
// one goroutine per connected component. Each goroutine works against its
// own induced subgraph copy and constructs its own reduction engine,
// branch-and-bound memo table, and SAT oracle handle internally — nothing
// is shared between components except the slice the results are written
// into, which is guarded by a mutex.
func SolveParallel(g *graph.Graph, opts Options) (*decomp.Tree, int, error) {
	components := g.ConnectedComponents()
	if len(components) == 0 {
		return decomp.New(), -1, nil
	}

	type outcome struct {
		tree  *decomp.Tree
		width int
		err   error
	}
	results := make([]outcome, len(components))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i, verts := range components {
		wg.Add(1)
		go func(i int, verts []int) {
			defer wg.Done()
			sub, toOriginal := g.InducedSubgraph(verts)
			localOpts := opts
			tree, width, err := solveComponentExact(sub, &localOpts, true)
			if err == nil {
				tree = remapTree(tree, toOriginal)
			}

			mu.Lock()
			results[i] = outcome{tree: tree, width: width, err: err}
			mu.Unlock()
		}(i, verts)
	}
	wg.Wait()

	var combined *decomp.Tree
	maxWidth := -1
	for i, r := range results {
		if r.err != nil {
			return nil, 0, r.err
		}
		opts.report(r.width, false)
		if i == 0 {
			combined = r.tree
		} else {
			MergeDisjoint(combined, r.tree)
		}
		if r.width > maxWidth {
			maxWidth = r.width
		}
	}
	return combined, maxWidth, nil
}
