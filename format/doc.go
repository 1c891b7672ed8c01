// Package format provides pure, allocation-only adapters between the
// textual graph/decomposition formats used by the PACE treewidth track
// and this module's in-memory types: a DIMACS-style ".gr" reader
// (Parse) and a ".td" tree-decomposition writer (Write).
//
// Neither function opens a file, reads a flag, or writes to a log —
// callers own all I/O and error reporting; format only turns bytes into
// a *graph.Graph and a *decomp.Tree into bytes.
package format
