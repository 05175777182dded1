package executor

import (
	"context"

	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/automaton"
	"github.com/specialistvlad/automata/internal/ctxlog"
	"github.com/specialistvlad/automata/internal/events"
)

// Result is the outcome of one run.
type Result struct {
	Accepted bool
	// Trace lists the name of every visited state, starting with the
	// initial state, one entry per consumed symbol after that.
	Trace []string
}

type options struct {
	collector events.Collector
}

// Option configures an Executor.
type Option func(*options)

// WithCollector emits a SymbolConsumed event for every step to c.
func WithCollector(c events.Collector) Option {
	return func(o *options) { o.collector = c }
}

// Executor reads input strings with a DFA.
type Executor struct {
	dfa       *automaton.DFA
	collector events.Collector
}

// New creates an executor for dfa.
func New(dfa *automaton.DFA, opts ...Option) *Executor {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return &Executor{dfa: dfa, collector: events.OrDiscard(o.collector)}
}

// DFA returns the automaton the executor runs.
func (e *Executor) DFA() *automaton.DFA { return e.dfa }

// Read runs the DFA over input, a string of '0' and '1'.
func (e *Executor) Read(ctx context.Context, input string) (Result, error) {
	syms := make([]alphabet.Symbol, 0, len(input))
	for i, r := range []rune(input) {
		sym := alphabet.Symbol(r)
		if !sym.IsInput() {
			ctxlog.FromContext(ctx).Debug("Run aborted on invalid symbol.", "automaton", e.dfa.Name(), "position", i)
			return Result{}, &InvalidSymbolError{Symbol: r, Position: i}
		}
		syms = append(syms, sym)
	}
	return e.ReadSymbols(ctx, syms)
}

// ReadSymbols runs the DFA over already parsed symbols.
func (e *Executor) ReadSymbols(ctx context.Context, input []alphabet.Symbol) (Result, error) {
	cursor := NewCursor(e.dfa)
	trace := make([]string, 0, len(input)+1)
	trace = append(trace, cursor.CurrentName())

	for _, sym := range input {
		from := cursor.CurrentName()
		if _, err := cursor.Step(sym); err != nil {
			return Result{}, err
		}
		trace = append(trace, cursor.CurrentName())
		e.collector.Collect(ctx, events.Event{
			Kind:      events.SymbolConsumed,
			Automaton: e.dfa.Name(),
			Subject:   from,
			Symbol:    sym.String(),
			Target:    cursor.CurrentName(),
		})
	}
	return Result{Accepted: cursor.Accepting(), Trace: trace}, nil
}

// Accepts reports only the verdict of Read.
func (e *Executor) Accepts(ctx context.Context, input string) (bool, error) {
	res, err := e.Read(ctx, input)
	if err != nil {
		return false, err
	}
	return res.Accepted, nil
}
