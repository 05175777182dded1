// Package stategraph provides the arena storage that every automaton in this
// module is built on.
//
// States live in a flat slice and are addressed by a dense StateID; their
// transitions refer to other states by id, never by pointer, so self-loops and
// cycles need no special handling. Each state carries a per-symbol Set of
// targets. A deterministic automaton is simply a graph in which every input
// symbol has exactly one target, which the automaton package checks.
//
// # Sets
//
// Set is the canonical form of a collection of state ids: sorted and
// deduplicated. Two sets with the same members produce the same Key no matter
// the order in which members were added, which makes Key suitable as a map key
// for memoizing subsets during determinization and closure signatures during
// epsilon elimination.
//
// A Graph is populated once and then only read. It is not safe to add states
// or edges while other goroutines read it.
package stategraph
