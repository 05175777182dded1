// Package determinize converts an epsilon-free NFA into an equivalent DFA by
// subset construction.
//
// Subsets of NFA states are explored breadth first from {initial}. Every
// distinct subset, compared by its canonical stategraph.Set key, becomes
// exactly one DFA state for the lifetime of a run. Input symbols are visited
// in ascending order, so the discovery order and therefore the output are the
// same on every run.
//
// When a subset has no successor on a symbol the transition goes to a single
// dead state, created the first time it is needed and shared by every subset.
// It is non-accepting and loops to itself on every symbol, which keeps the
// resulting DFA total. No minimization is performed.
package determinize
