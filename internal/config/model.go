package config

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/automata/internal/automaton"
)

// Kind tells how an automaton definition must be constructed.
type Kind string

const (
	KindDFA Kind = "dfa"
	KindNFA Kind = "nfa"
)

// ParseKind validates the textual kind of an automaton.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDFA, KindNFA:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown automaton kind %q: must be 'dfa' or 'nfa'", s)
}

// DefaultSampleLimit is the exclusive upper bound of a check that sets none.
const DefaultSampleLimit = 4096

// Model is the unified, format-agnostic representation of the entire
// application configuration.
type Model struct {
	Automata map[string]*Automaton
	Checks   []*Check
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Automata: make(map[string]*Automaton)}
}

// AutomatonNames returns the names of all automata, sorted.
func (m *Model) AutomatonNames() []string {
	names := make([]string, 0, len(m.Automata))
	for name := range m.Automata {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Automaton is the format-agnostic representation of an `automaton` block.
type Automaton struct {
	Kind       Kind
	Definition automaton.Definition
	// Source is where the block was declared, for error messages.
	Source string
}

// Check is the format-agnostic representation of a `check` block: sample
// [From, To) and compare the automaton with a registered predicate.
type Check struct {
	Name      string
	Automaton string
	Predicate string
	From      uint64
	To        uint64
	Source    string
}
