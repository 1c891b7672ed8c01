// Package pipeline orchestrates the reduction engine, the bounds
// heuristics, the branch-and-bound and SAT exact cores, and the glue
// layer into the three end-to-end drivers: Exact, Heuristic, and Smart.
//
// Work is fanned out across a graph's connected components and, within
// each component, across the atoms a clique-separator split produces;
// per-atom and per-component results are reassembled by Merge into one
// decomposition of the original graph.
package pipeline
