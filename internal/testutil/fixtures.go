package testutil

import (
	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/automaton"
)

const (
	zero = alphabet.Zero
	one  = alphabet.One
	eps  = alphabet.Epsilon
)

// on is shorthand for a transition map.
type on = map[alphabet.Symbol][]string

// Mod4DFA accepts binary numbers congruent to 1 modulo 4.
func Mod4DFA() automaton.Definition {
	return automaton.Definition{
		Name:    "mod4",
		Initial: "e0",
		States: []automaton.StateDefinition{
			{ID: "e0", Transitions: on{zero: {"e0"}, one: {"e1"}}},
			{ID: "e1", Final: true, Transitions: on{zero: {"e0"}, one: {"e2"}}},
			{ID: "e2", Transitions: on{zero: {"e0"}, one: {"e2"}}},
		},
	}
}

// ThirdFromLastNFA accepts strings of length at least three whose
// third-from-last symbol is 1. It has no epsilon transitions.
func ThirdFromLastNFA() automaton.Definition {
	return automaton.Definition{
		Name:    "third_from_last",
		Initial: "q0",
		States: []automaton.StateDefinition{
			{ID: "q0", Transitions: on{zero: {"q0"}, one: {"q0", "q1"}}},
			{ID: "q1", Transitions: on{zero: {"q2"}, one: {"q2"}}},
			{ID: "q2", Transitions: on{zero: {"q3"}, one: {"q3"}}},
			{ID: "q3", Final: true},
		},
	}
}

// AlternatingEpsilonNFA accepts non-empty strings in which no two adjacent
// symbols are equal.
func AlternatingEpsilonNFA() automaton.Definition {
	return automaton.Definition{
		Name:    "alternating",
		Initial: "start",
		States: []automaton.StateDefinition{
			{ID: "start", Transitions: on{eps: {"want0", "want1"}}},
			{ID: "want0", Transitions: on{zero: {"got0"}}},
			{ID: "want1", Transitions: on{one: {"got1"}}},
			{ID: "got0", Final: true, Transitions: on{eps: {"want1"}}},
			{ID: "got1", Final: true, Transitions: on{eps: {"want0"}}},
		},
	}
}

// EndsWith011EpsilonNFA accepts strings ending in "011".
func EndsWith011EpsilonNFA() automaton.Definition {
	return automaton.Definition{
		Name:    "ends_with_011",
		Initial: "s",
		States: []automaton.StateDefinition{
			{ID: "s", Transitions: on{zero: {"s"}, one: {"s"}, eps: {"a"}}},
			{ID: "a", Transitions: on{zero: {"b"}}},
			{ID: "b", Transitions: on{one: {"c"}}},
			{ID: "c", Transitions: on{eps: {"d"}}},
			{ID: "d", Transitions: on{one: {"f"}}},
			{ID: "f", Final: true},
		},
	}
}

// EpsilonCycleNFA has an epsilon cycle a -> b -> c -> a, with c accepting
// after reading a single 1.
func EpsilonCycleNFA() automaton.Definition {
	return automaton.Definition{
		Name:    "epsilon_cycle",
		Initial: "a",
		States: []automaton.StateDefinition{
			{ID: "a", Transitions: on{eps: {"b"}}},
			{ID: "b", Transitions: on{eps: {"c"}}},
			{ID: "c", Transitions: on{eps: {"a"}, one: {"done"}}},
			{ID: "done", Final: true},
		},
	}
}

// AllStrings returns every string over {0,1} with length at most maxLen,
// including the empty string, shortest first.
func AllStrings(maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for n := 0; n < maxLen; n++ {
		var next []string
		for _, s := range frontier {
			next = append(next, s+"0", s+"1")
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}
