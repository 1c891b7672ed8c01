package pipeline

import (
	"github.com/arboris-go/treewidth/bnb"
	"github.com/arboris-go/treewidth/bounds"
	"github.com/arboris-go/treewidth/decomp"
	"github.com/arboris-go/treewidth/graph"
	"github.com/arboris-go/treewidth/reduce"
	"github.com/arboris-go/treewidth/sat"
)

// solveAtomExact computes an exact decomposition of sub, a single
// clique-separator atom (or a whole unsplit kernel when the splitter
// found no clique separator). Atoms at or below AtomExactMaxVertices are
// attempted via the SAT decision procedure first, since incremental SAT
// tends to close small instances faster than a cold branch-and-bound
// search; branch-and-bound is the fallback (and the only path for larger
// atoms) and is always exact regardless of size.
func solveAtomExact(sub *graph.Graph, opts *Options) (*decomp.Tree, int, error) {
	switch sub.N() {
	case 0:
		return decomp.New(), -1, nil
	case 1:
		tree := decomp.New()
		tree.AddBag([]int{sub.Vertices()[0]})
		return tree, 0, nil
	}

	r := opts.rng()
	var perm []int
	var width int

	if sub.N() <= AtomExactMaxVertices {
		_, ub := bounds.MinFill(sub, r, true)
		lb := bounds.MinorMinWidth(sub, r, bounds.LeastCommonNeighbors)
		if lb < ub {
			oracle := sat.NewGiniOracle()
			if order, w := sat.Decide(sub, ub, lb, oracle, sat.Improved); order != nil {
				perm, width = order, w
			}
		}
		if perm == nil {
			perm, width = bnb.New().Solve(sub, opts.TimeLimit)
		}
	} else {
		perm, width = bnb.New().Solve(sub, opts.TimeLimit)
	}

	tree, err := decomp.FromPermutation(sub, perm)
	if err != nil {
		return nil, 0, err
	}
	return tree, width, nil
}

// solveKernel splits kernel into clique-separator atoms, solves each
// exactly, and glues the results back into one decomposition of kernel.
func solveKernel(kernel *graph.Graph, opts *Options) (*decomp.Tree, int, error) {
	if kernel.N() == 0 {
		return decomp.New(), -1, nil
	}

	atomVerts := kernel.Atoms()
	type solvedAtom struct {
		verts []int
		tree  *decomp.Tree
		width int
	}
	solved := make([]solvedAtom, len(atomVerts))
	for i, verts := range atomVerts {
		sub, toOriginal := kernel.InducedSubgraph(verts)
		tree, width, err := solveAtomExact(sub, opts)
		if err != nil {
			return nil, 0, err
		}
		solved[i] = solvedAtom{verts: verts, tree: remapTree(tree, toOriginal), width: width}
	}

	combined := solved[0].tree
	covered := append([]int(nil), solved[0].verts...)
	maxWidth := solved[0].width
	for i := 1; i < len(solved); i++ {
		sep := intersectSorted(covered, solved[i].verts)
		if len(sep) > 0 {
			if err := MergeOnSeparator(combined, solved[i].tree, sep); err != nil {
				return nil, 0, err
			}
		} else {
			MergeDisjoint(combined, solved[i].tree)
		}
		covered = unionSorted(covered, solved[i].verts)
		if solved[i].width > maxWidth {
			maxWidth = solved[i].width
		}
	}
	return combined, maxWidth, nil
}

// solveComponentExact runs the reference end-to-end path over one
// connected component: reduce, solve the kernel's atoms exactly, glue the
// reduction stack back on.
func solveComponentExact(sub *graph.Graph, opts *Options, useReduction bool) (*decomp.Tree, int, error) {
	if sub.N() == 0 {
		return decomp.New(), -1, nil
	}

	var kernel *graph.Graph
	var stack []reduce.Step
	if useReduction {
		eng := reduce.New(bounds.Degeneracy(sub))
		kernel, stack = eng.Reduce(sub)
	} else {
		kernel = sub.Clone()
	}

	var tree *decomp.Tree
	if kernel.N() == 0 {
		tree = decomp.New()
	} else {
		t, _, err := solveKernel(kernel, opts)
		if err != nil {
			return nil, 0, err
		}
		tree = t
	}
	reduce.Glue(tree, stack)
	tree.Flatten()
	return tree, tree.Width(), nil
}

// solveComponentHeuristic runs reduction plus stochastic min-fill over
// one connected component, refining the permutation via SAT when the
// kernel is small or via local search otherwise.
func solveComponentHeuristic(sub *graph.Graph, opts *Options) (*decomp.Tree, int, error) {
	if sub.N() == 0 {
		return decomp.New(), -1, nil
	}
	r := opts.rng()

	eng := reduce.New(bounds.Degeneracy(sub))
	kernel, stack := eng.Reduce(sub)

	var tree *decomp.Tree
	if kernel.N() == 0 {
		tree = decomp.New()
	} else {
		perm, ub := bounds.StochasticMinFill(kernel, r)
		if kernel.N() < SATRefineMaxVertices {
			lb := bounds.MinorMinWidth(kernel, r, bounds.LeastCommonNeighbors)
			oracle := sat.NewGiniOracle()
			if order, w := sat.Decide(kernel, ub, lb, oracle, sat.Improved); order != nil {
				perm, ub = order, w
			}
		} else {
			perm, ub = bounds.LocalSearchImprove(kernel, perm, bounds.DefaultLocalSearchOptions())
		}
		t, err := decomp.FromPermutation(kernel, perm)
		if err != nil {
			return nil, 0, err
		}
		tree = t
	}
	reduce.Glue(tree, stack)
	tree.Flatten()
	return tree, tree.Width(), nil
}
