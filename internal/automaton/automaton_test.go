package automaton_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/automaton"
	"github.com/specialistvlad/automata/internal/stategraph"
	"github.com/specialistvlad/automata/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDFA_Mod4(t *testing.T) {
	dfa, err := automaton.NewDFA(testutil.Mod4DFA())
	require.NoError(t, err)

	assert.Equal(t, "mod4", dfa.Name())
	assert.Equal(t, 3, dfa.Len())
	assert.Equal(t, "e0", dfa.StateName(dfa.Initial()))

	e1, ok := dfa.Graph().Lookup("e1")
	require.True(t, ok)
	assert.True(t, dfa.IsFinal(e1))

	next, ok := dfa.Step(dfa.Initial(), alphabet.One)
	require.True(t, ok)
	assert.Equal(t, e1, next)

	_, ok = dfa.Step(dfa.Initial(), alphabet.Epsilon)
	assert.False(t, ok)
}

func TestNew_ConstructionErrors(t *testing.T) {
	tests := []struct {
		name   string
		def    automaton.Definition
		target any
	}{
		{
			name: "duplicate state id",
			def: automaton.Definition{Name: "dup", Initial: "a", States: []automaton.StateDefinition{
				{ID: "a"}, {ID: "a", Final: true},
			}},
			target: new(*automaton.DuplicateStateIDError),
		},
		{
			name: "undefined initial",
			def: automaton.Definition{Name: "init", Initial: "zz", States: []automaton.StateDefinition{
				{ID: "a"},
			}},
			target: new(*automaton.UndefinedInitialStateError),
		},
		{
			name: "unknown target",
			def: automaton.Definition{Name: "tgt", Initial: "a", States: []automaton.StateDefinition{
				{ID: "a", Transitions: map[alphabet.Symbol][]string{alphabet.One: {"ghost"}}},
			}},
			target: new(*automaton.UnknownStateError),
		},
		{
			name: "symbol outside the alphabet",
			def: automaton.Definition{Name: "sym", Initial: "a", States: []automaton.StateDefinition{
				{ID: "a", Transitions: map[alphabet.Symbol][]string{
					alphabet.Zero:        {"a"},
					alphabet.One:         {"a"},
					alphabet.Symbol('2'): {"a"},
				}},
			}},
			target: new(*automaton.UnknownSymbolError),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, nfaErr := automaton.NewNFA(tc.def)
			require.Error(t, nfaErr)
			assert.True(t, errors.As(nfaErr, tc.target), "NFA error %v has wrong type", nfaErr)

			_, dfaErr := automaton.NewDFA(tc.def)
			require.Error(t, dfaErr)
			assert.True(t, errors.As(dfaErr, tc.target), "DFA error %v has wrong type", dfaErr)
		})
	}
}

func TestNew_NoStates(t *testing.T) {
	_, err := automaton.NewNFA(automaton.Definition{Name: "empty", Initial: "a"})
	assert.ErrorIs(t, err, automaton.ErrNoStates)
}

func TestNewDFA_RejectsMissingTransition(t *testing.T) {
	def := automaton.Definition{Name: "partial", Initial: "a", States: []automaton.StateDefinition{
		{ID: "a", Transitions: map[alphabet.Symbol][]string{alphabet.Zero: {"a"}}},
	}}

	_, err := automaton.NewDFA(def)
	var incomplete *automaton.IncompleteTransitionError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, "a", incomplete.State)
	assert.Equal(t, alphabet.One, incomplete.Symbol)
	assert.Equal(t, 0, incomplete.Count)

	// The same definition is a perfectly good NFA.
	_, err = automaton.NewNFA(def)
	assert.NoError(t, err)
}

func TestNewDFA_RejectsNondeterminism(t *testing.T) {
	_, err := automaton.NewDFA(testutil.ThirdFromLastNFA())
	var incomplete *automaton.IncompleteTransitionError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, "q0", incomplete.State)
	assert.Equal(t, 2, incomplete.Count)
}

func TestNewDFA_RejectsEpsilon(t *testing.T) {
	def := testutil.Mod4DFA()
	def.States[0].Transitions[alphabet.Epsilon] = []string{"e1"}

	_, err := automaton.NewDFA(def)
	var epsErr *automaton.EpsilonInDFAError
	require.True(t, errors.As(err, &epsErr))
	assert.Equal(t, "e0", epsErr.State)
}

func TestNFA_HasEpsilon(t *testing.T) {
	withEps, err := automaton.NewNFA(testutil.AlternatingEpsilonNFA())
	require.NoError(t, err)
	assert.True(t, withEps.HasEpsilon())

	without, err := automaton.NewNFA(testutil.ThirdFromLastNFA())
	require.NoError(t, err)
	assert.False(t, without.HasEpsilon())
}

func TestNFA_DuplicateTargetsCollapse(t *testing.T) {
	def := automaton.Definition{Name: "dups", Initial: "a", States: []automaton.StateDefinition{
		{ID: "a", Transitions: map[alphabet.Symbol][]string{alphabet.One: {"b", "a", "b"}}},
		{ID: "b"},
	}}
	nfa, err := automaton.NewNFA(def)
	require.NoError(t, err)

	assert.Equal(t, stategraph.Set{0, 1}, nfa.TransitionsFor(nfa.Initial(), alphabet.One))
}

func TestDefinition_RoundTrip(t *testing.T) {
	original := testutil.EndsWith011EpsilonNFA()
	nfa, err := automaton.NewNFA(original)
	require.NoError(t, err)

	exported := nfa.Definition()
	rebuilt, err := automaton.NewNFA(exported)
	require.NoError(t, err)

	if diff := cmp.Diff(exported, rebuilt.Definition()); diff != "" {
		t.Errorf("definition changed across a round trip (-first +second):\n%s", diff)
	}
	assert.Equal(t, original.Initial, exported.Initial)
	assert.Len(t, exported.States, len(original.States))
}

func TestDFA_AsNFA(t *testing.T) {
	dfa, err := automaton.NewDFA(testutil.Mod4DFA())
	require.NoError(t, err)

	nfa := dfa.AsNFA()
	assert.Equal(t, dfa.Len(), nfa.Len())
	assert.Equal(t, dfa.Initial(), nfa.Initial())
	assert.False(t, nfa.HasEpsilon())
	if diff := cmp.Diff(dfa.Definition(), nfa.Definition()); diff != "" {
		t.Errorf("NFA view differs from DFA (-dfa +nfa):\n%s", diff)
	}
}
