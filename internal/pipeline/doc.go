// Package pipeline turns a loaded definition into an executable DFA. NFA
// definitions go through epsilon elimination (when they have epsilon
// transitions) and then subset construction. Every intermediate automaton
// is kept so it can be rendered.
package pipeline
