package stategraph

import (
	"slices"
	"strings"

	"github.com/specialistvlad/automata/internal/alphabet"
)

// Graph stores states and their per-symbol transitions.
type Graph struct {
	names []string
	index map[string]StateID
	final []bool
	edges []map[alphabet.Symbol]Set
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		index: make(map[string]StateID),
	}
}

// AddState appends a state. If a state with the same name already exists its
// id is returned together with false and the graph is left unchanged.
func (g *Graph) AddState(name string, final bool) (StateID, bool) {
	if id, exists := g.index[name]; exists {
		return id, false
	}
	id := StateID(len(g.names))
	g.names = append(g.names, name)
	g.final = append(g.final, final)
	g.edges = append(g.edges, make(map[alphabet.Symbol]Set))
	g.index[name] = id
	return id, true
}

// AddEdge records a transition from one state to another on sym. Adding the
// same edge twice has no effect.
func (g *Graph) AddEdge(from StateID, sym alphabet.Symbol, to StateID) {
	g.edges[from][sym] = g.edges[from][sym].Insert(to)
}

// Len returns the number of states.
func (g *Graph) Len() int { return len(g.names) }

// Name returns the name of a state.
func (g *Graph) Name(id StateID) string { return g.names[id] }

// Names returns the names of a set of states, in set order.
func (g *Graph) Names(s Set) []string {
	out := make([]string, len(s))
	for i, id := range s {
		out[i] = g.names[id]
	}
	return out
}

// Lookup finds a state by name.
func (g *Graph) Lookup(name string) (StateID, bool) {
	id, ok := g.index[name]
	return id, ok
}

// IsFinal reports whether a state is accepting.
func (g *Graph) IsFinal(id StateID) bool { return g.final[id] }

// AnyFinal reports whether any member of s is accepting.
func (g *Graph) AnyFinal(s Set) bool {
	for _, id := range s {
		if g.final[id] {
			return true
		}
	}
	return false
}

// Targets returns the targets of id on sym. The returned set must not be
// modified.
func (g *Graph) Targets(id StateID, sym alphabet.Symbol) Set {
	return g.edges[id][sym]
}

// Symbols returns the symbols id has at least one transition on, in
// ascending order.
func (g *Graph) Symbols(id StateID) []alphabet.Symbol {
	out := make([]alphabet.Symbol, 0, len(g.edges[id]))
	for sym := range g.edges[id] {
		out = append(out, sym)
	}
	slices.Sort(out)
	return out
}

// EdgeCount returns the number of (state, symbol, target) triples on sym
// across the graph.
func (g *Graph) EdgeCount(sym alphabet.Symbol) int {
	n := 0
	for _, e := range g.edges {
		n += len(e[sym])
	}
	return n
}

// SetName renders a set of states as "{a,b,c}" using member names sorted
// lexicographically. It is a display name only.
func (g *Graph) SetName(s Set) string {
	names := g.Names(s)
	slices.Sort(names)
	return "{" + strings.Join(names, ",") + "}"
}
