package automaton

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/automata/internal/alphabet"
)

// ErrNoStates is returned for a definition without any state.
var ErrNoStates = errors.New("automaton has no states")

// DuplicateStateIDError is returned when two states share an id.
type DuplicateStateIDError struct {
	Automaton string
	ID        string
}

func (e *DuplicateStateIDError) Error() string {
	return fmt.Sprintf("automaton '%s': duplicate state id '%s'", e.Automaton, e.ID)
}

// UndefinedInitialStateError is returned when the initial id names no state.
type UndefinedInitialStateError struct {
	Automaton string
	ID        string
}

func (e *UndefinedInitialStateError) Error() string {
	return fmt.Sprintf("automaton '%s': initial state '%s' is not defined", e.Automaton, e.ID)
}

// UnknownStateError is returned when a transition targets an undefined state.
type UnknownStateError struct {
	Automaton string
	From      string
	Symbol    alphabet.Symbol
	Target    string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("automaton '%s': transition %s --%s--> %s targets an undefined state", e.Automaton, e.From, e.Symbol, e.Target)
}

// UnknownSymbolError is returned when a transition is keyed by a symbol
// outside the binary alphabet and is not epsilon.
type UnknownSymbolError struct {
	Automaton string
	State     string
	Symbol    alphabet.Symbol
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("automaton '%s': state '%s' has a transition on unknown symbol %q", e.Automaton, e.State, rune(e.Symbol))
}

// IncompleteTransitionError is returned when a DFA state does not have exactly
// one target for an input symbol.
type IncompleteTransitionError struct {
	Automaton string
	State     string
	Symbol    alphabet.Symbol
	Count     int
}

func (e *IncompleteTransitionError) Error() string {
	return fmt.Sprintf("automaton '%s': deterministic state '%s' has %d targets on '%s', want exactly 1", e.Automaton, e.State, e.Count, e.Symbol)
}

// EpsilonInDFAError is returned when a DFA definition uses epsilon.
type EpsilonInDFAError struct {
	Automaton string
	State     string
}

func (e *EpsilonInDFAError) Error() string {
	return fmt.Sprintf("automaton '%s': deterministic state '%s' has epsilon transitions", e.Automaton, e.State)
}
