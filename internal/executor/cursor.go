package executor

import (
	"fmt"

	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/automaton"
	"github.com/specialistvlad/automata/internal/stategraph"
)

// InvalidSymbolError is returned when the input contains a symbol outside
// the alphabet.
type InvalidSymbolError struct {
	Symbol   rune
	Position int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid input symbol %q at position %d: must be '0' or '1'", e.Symbol, e.Position)
}

// Cursor is the current state of one execution. A cursor belongs to a single
// caller and is not safe for concurrent use.
type Cursor struct {
	dfa     *automaton.DFA
	current stategraph.StateID
	steps   int
}

// NewCursor creates a cursor positioned on the initial state of dfa.
func NewCursor(dfa *automaton.DFA) *Cursor {
	return &Cursor{dfa: dfa, current: dfa.Initial()}
}

// Reset moves the cursor back to the initial state.
func (c *Cursor) Reset() {
	c.current = c.dfa.Initial()
	c.steps = 0
}

// Current returns the state the cursor is on.
func (c *Cursor) Current() stategraph.StateID { return c.current }

// CurrentName returns the name of the state the cursor is on.
func (c *Cursor) CurrentName() string { return c.dfa.StateName(c.current) }

// Accepting reports whether the current state is final.
func (c *Cursor) Accepting() bool { return c.dfa.IsFinal(c.current) }

// Step consumes one symbol. On error the cursor does not move.
func (c *Cursor) Step(sym alphabet.Symbol) (stategraph.StateID, error) {
	next, ok := c.dfa.Step(c.current, sym)
	if !ok {
		return c.current, &InvalidSymbolError{Symbol: rune(sym), Position: c.steps}
	}
	c.current = next
	c.steps++
	return next, nil
}
