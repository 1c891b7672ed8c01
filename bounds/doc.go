// Package bounds collects heuristic upper-bound permutation builders and
// combinatorial lower-bound estimators for treewidth, plus a local-search
// pass that returns an improved copy of an existing permutation.
//
// Every builder here is deterministic given an *rand.Rand: callers inject
// randomness explicitly (see package rng) rather than seeding from wall
// clock time, so a reported width is always reproducible from its seed.
package bounds
