// Package executor runs deterministic automata over input strings.
//
// A run starts at the initial state, follows exactly one transition per input
// symbol and reports whether it stopped in an accepting state, together with
// the trace of every state visited. The position within the automaton lives
// in a Cursor owned by the caller. The DFA itself is never mutated, so one
// Executor can serve any number of concurrent Read calls.
//
// A symbol outside the alphabet aborts the run with an InvalidSymbolError and
// no partial trace. Runs are never retried.
//
// SimulateNFA is the reference semantics for nondeterministic automata. It
// tracks the set of reachable states directly and is used to check that
// elimination and determinization preserve the accepted language.
package executor
