package pipeline

import (
	"github.com/arboris-go/treewidth/decomp"
	"github.com/arboris-go/treewidth/graph"
)

// Exact runs the reference end-to-end path (reduction, exact atom solving,
// gluing) over every connected component of g and stitches the results
// into one decomposition.
func Exact(g *graph.Graph, opts Options) (*decomp.Tree, int, error) {
	return runComponents(g, &opts, true)
}

// Heuristic runs reduction plus stochastic min-fill over every connected
// component, refining via SAT on small kernels and local search otherwise.
func Heuristic(g *graph.Graph, opts Options) (*decomp.Tree, int, error) {
	components := g.ConnectedComponents()
	if len(components) == 0 {
		return decomp.New(), -1, nil
	}

	var combined *decomp.Tree
	maxWidth := -1
	for i, verts := range components {
		sub, toOriginal := g.InducedSubgraph(verts)
		tree, width, err := solveComponentHeuristic(sub, &opts)
		if err != nil {
			return nil, 0, err
		}
		tree = remapTree(tree, toOriginal)
		opts.report(width, true)
		if i == 0 {
			combined = tree
		} else {
			MergeDisjoint(combined, tree)
		}
		if width > maxWidth {
			maxWidth = width
		}
	}
	return combined, maxWidth, nil
}

// Smart picks between Exact and Heuristic by graph size (spec.md 4.7):
// reduction only applies in a middle size band, exact solving only below
// a hard cap, and the heuristic path otherwise.
func Smart(g *graph.Graph, opts Options) (*decomp.Tree, int, error) {
	n := g.N()
	if n > ExactMaxVertices {
		return Heuristic(g, opts)
	}
	useReduction := n >= ReductionMinVertices && n <= ReductionMaxVertices
	return runComponents(g, &opts, useReduction)
}

func runComponents(g *graph.Graph, opts *Options, useReduction bool) (*decomp.Tree, int, error) {
	components := g.ConnectedComponents()
	if len(components) == 0 {
		return decomp.New(), -1, nil
	}

	var combined *decomp.Tree
	maxWidth := -1
	for i, verts := range components {
		sub, toOriginal := g.InducedSubgraph(verts)
		tree, width, err := solveComponentExact(sub, opts, useReduction)
		if err != nil {
			return nil, 0, err
		}
		tree = remapTree(tree, toOriginal)
		opts.report(width, false)
		if i == 0 {
			combined = tree
		} else {
			MergeDisjoint(combined, tree)
		}
		if width > maxWidth {
			maxWidth = width
		}
	}
	return combined, maxWidth, nil
}
