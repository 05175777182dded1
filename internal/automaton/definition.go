package automaton

import (
	"slices"

	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/stategraph"
)

// StateDefinition describes one state of an automaton before construction.
type StateDefinition struct {
	ID          string
	Final       bool
	Transitions map[alphabet.Symbol][]string
}

// Definition is the format-agnostic description of an automaton.
type Definition struct {
	Name    string
	Initial string
	States  []StateDefinition
}

// sortedSymbols returns the keys of a transition map in ascending order.
func sortedSymbols(m map[alphabet.Symbol][]string) []alphabet.Symbol {
	out := make([]alphabet.Symbol, 0, len(m))
	for sym := range m {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// build validates def and loads it into a new graph.
func build(def Definition) (*stategraph.Graph, stategraph.StateID, error) {
	if len(def.States) == 0 {
		return nil, 0, ErrNoStates
	}

	g := stategraph.New()
	for _, st := range def.States {
		if _, added := g.AddState(st.ID, st.Final); !added {
			return nil, 0, &DuplicateStateIDError{Automaton: def.Name, ID: st.ID}
		}
	}

	initial, ok := g.Lookup(def.Initial)
	if !ok {
		return nil, 0, &UndefinedInitialStateError{Automaton: def.Name, ID: def.Initial}
	}

	for _, st := range def.States {
		from, _ := g.Lookup(st.ID)
		for _, sym := range sortedSymbols(st.Transitions) {
			if !sym.IsInput() && sym != alphabet.Epsilon {
				return nil, 0, &UnknownSymbolError{Automaton: def.Name, State: st.ID, Symbol: sym}
			}
			for _, target := range st.Transitions[sym] {
				to, ok := g.Lookup(target)
				if !ok {
					return nil, 0, &UnknownStateError{Automaton: def.Name, From: st.ID, Symbol: sym, Target: target}
				}
				g.AddEdge(from, sym, to)
			}
		}
	}
	return g, initial, nil
}

// export converts a graph back into a Definition. States keep their graph
// order and targets are listed in id order.
func export(name string, g *stategraph.Graph, initial stategraph.StateID) Definition {
	def := Definition{
		Name:    name,
		Initial: g.Name(initial),
		States:  make([]StateDefinition, g.Len()),
	}
	for i := range def.States {
		id := stategraph.StateID(i)
		sd := StateDefinition{
			ID:          g.Name(id),
			Final:       g.IsFinal(id),
			Transitions: make(map[alphabet.Symbol][]string),
		}
		for _, sym := range g.Symbols(id) {
			sd.Transitions[sym] = g.Names(g.Targets(id, sym))
		}
		def.States[i] = sd
	}
	return def
}
