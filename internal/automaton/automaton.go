package automaton

import (
	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/stategraph"
)

// Automaton is the read-only view shared by NFA and DFA.
type Automaton interface {
	// Name identifies the automaton in logs and events.
	Name() string
	// Len returns the number of states.
	Len() int
	// Initial returns the initial state.
	Initial() stategraph.StateID
	// StateName returns the display name of a state.
	StateName(id stategraph.StateID) string
	// IsFinal reports whether a state is accepting.
	IsFinal(id stategraph.StateID) bool
	// TransitionsFor returns the targets of a state on a symbol. A DFA
	// returns exactly one target for every input symbol.
	TransitionsFor(id stategraph.StateID, sym alphabet.Symbol) stategraph.Set
	// Graph exposes the underlying arena. It must not be modified.
	Graph() *stategraph.Graph
	// Definition exports the automaton in its definition form.
	Definition() Definition
}

// NFA is a nondeterministic automaton, possibly with epsilon transitions.
type NFA struct {
	name    string
	g       *stategraph.Graph
	initial stategraph.StateID
}

// NewNFA validates def and constructs an NFA from it.
func NewNFA(def Definition) (*NFA, error) {
	g, initial, err := build(def)
	if err != nil {
		return nil, err
	}
	return &NFA{name: def.Name, g: g, initial: initial}, nil
}

// NFAFromGraph wraps a fully populated graph. The graph is owned by the NFA
// from then on.
func NFAFromGraph(name string, g *stategraph.Graph, initial stategraph.StateID) *NFA {
	return &NFA{name: name, g: g, initial: initial}
}

func (n *NFA) Name() string                           { return n.name }
func (n *NFA) Len() int                               { return n.g.Len() }
func (n *NFA) Initial() stategraph.StateID            { return n.initial }
func (n *NFA) StateName(id stategraph.StateID) string { return n.g.Name(id) }
func (n *NFA) IsFinal(id stategraph.StateID) bool     { return n.g.IsFinal(id) }
func (n *NFA) Graph() *stategraph.Graph               { return n.g }

func (n *NFA) TransitionsFor(id stategraph.StateID, sym alphabet.Symbol) stategraph.Set {
	return n.g.Targets(id, sym)
}

// HasEpsilon reports whether any state has an epsilon transition.
func (n *NFA) HasEpsilon() bool {
	return n.g.EdgeCount(alphabet.Epsilon) > 0
}

func (n *NFA) Definition() Definition {
	return export(n.name, n.g, n.initial)
}

// DFA is a deterministic automaton with a total transition function over the
// binary alphabet.
type DFA struct {
	name    string
	g       *stategraph.Graph
	initial stategraph.StateID
	delta   [][alphabet.Size]stategraph.StateID
}

// NewDFA validates def, including totality, and constructs a DFA from it.
func NewDFA(def Definition) (*DFA, error) {
	g, initial, err := build(def)
	if err != nil {
		return nil, err
	}
	return DFAFromGraph(def.Name, g, initial)
}

// DFAFromGraph wraps a fully populated graph after checking that it is
// deterministic and total.
func DFAFromGraph(name string, g *stategraph.Graph, initial stategraph.StateID) (*DFA, error) {
	delta := make([][alphabet.Size]stategraph.StateID, g.Len())
	for i := range delta {
		id := stategraph.StateID(i)
		if !g.Targets(id, alphabet.Epsilon).Empty() {
			return nil, &EpsilonInDFAError{Automaton: name, State: g.Name(id)}
		}
		for _, sym := range alphabet.Binary {
			targets := g.Targets(id, sym)
			if targets.Len() != 1 {
				return nil, &IncompleteTransitionError{Automaton: name, State: g.Name(id), Symbol: sym, Count: targets.Len()}
			}
			delta[i][sym.Index()] = targets[0]
		}
	}
	return &DFA{name: name, g: g, initial: initial, delta: delta}, nil
}

func (d *DFA) Name() string                           { return d.name }
func (d *DFA) Len() int                               { return d.g.Len() }
func (d *DFA) Initial() stategraph.StateID            { return d.initial }
func (d *DFA) StateName(id stategraph.StateID) string { return d.g.Name(id) }
func (d *DFA) IsFinal(id stategraph.StateID) bool     { return d.g.IsFinal(id) }
func (d *DFA) Graph() *stategraph.Graph               { return d.g }

func (d *DFA) TransitionsFor(id stategraph.StateID, sym alphabet.Symbol) stategraph.Set {
	return d.g.Targets(id, sym)
}

// Step returns the single successor of id on sym. ok is false when sym is
// not an input symbol.
func (d *DFA) Step(id stategraph.StateID, sym alphabet.Symbol) (next stategraph.StateID, ok bool) {
	i := sym.Index()
	if i < 0 {
		return 0, false
	}
	return d.delta[id][i], true
}

// AsNFA views the DFA as a degenerate NFA over the same states.
func (d *DFA) AsNFA() *NFA {
	return &NFA{name: d.name, g: d.g, initial: d.initial}
}

func (d *DFA) Definition() Definition {
	return export(d.name, d.g, d.initial)
}

var (
	_ Automaton = (*NFA)(nil)
	_ Automaton = (*DFA)(nil)
)
