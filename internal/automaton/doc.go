// Package automaton defines the two automaton variants the engine works with,
// NFA and DFA, and the Definition record both are constructed from.
//
// Both variants are thin, immutable views over a stategraph.Graph and share
// the Automaton capability interface, so code that only needs to inspect
// states (rendering, closure computation, simulation) accepts either.
//
// Construction validates the definition eagerly. Duplicate state ids, an
// unknown initial state and transitions that reference unknown states are
// rejected here, and a DFA must additionally be total: every state has
// exactly one target for every input symbol. Absent transitions must be
// modelled with an explicit sink state. Once constructed, no transformation
// or execution can observe a malformed automaton.
package automaton
