// Package builder provides deterministic fixture constructors for the
// undirected simple graphs this module operates on: paths, cycles,
// complete graphs, grids, and two random families (Erdos-Renyi sparse,
// stub-matched regular). Every constructor produces vertex ids 0..n-1 in
// a fixed, documented order, so two calls with the same arguments (and
// the same injected *rand.Rand state, for the random families) always
// produce the same graph.
//
// Constructors never call time.Now or seed from wall-clock time;
// randomness only enters through an explicitly injected source (see
// WithRand/WithSeed), following the same discipline as package rng.
package builder
