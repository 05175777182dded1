package eliminate

import (
	"context"

	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/automaton"
	"github.com/specialistvlad/automata/internal/closure"
	"github.com/specialistvlad/automata/internal/ctxlog"
	"github.com/specialistvlad/automata/internal/events"
	"github.com/specialistvlad/automata/internal/stategraph"
)

type options struct {
	collector events.Collector
}

// Option configures a Run.
type Option func(*options)

// WithCollector sends the events of the run to c.
func WithCollector(c events.Collector) Option {
	return func(o *options) { o.collector = c }
}

// Run returns an epsilon-free NFA accepting the same language as src.
func Run(ctx context.Context, src *automaton.NFA, opts ...Option) *automaton.NFA {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	c := events.OrDiscard(o.collector)
	logger := ctxlog.FromContext(ctx).With("automaton", src.Name())
	logger.Debug("Epsilon elimination started.", "states", src.Len())

	g := src.Graph()
	closures := closure.Table(ctx, src, c)

	// Mint one new state per distinct closure signature before any
	// transition is assigned.
	out := stategraph.New()
	bySignature := make(map[string]stategraph.StateID)
	newOf := make([]stategraph.StateID, src.Len())
	for i, cl := range closures {
		key := cl.Key()
		if id, ok := bySignature[key]; ok {
			newOf[i] = id
			continue
		}
		id := mintState(out, g.SetName(cl), g.AnyFinal(cl))
		bySignature[key] = id
		newOf[i] = id
		c.Collect(ctx, events.Event{
			Kind:      events.SignatureMinted,
			Automaton: src.Name(),
			Subject:   out.Name(id),
			Members:   g.Names(cl),
		})
	}
	logger.Debug("Closure signatures assigned.", "signatures", out.Len())

	for i, cl := range closures {
		from := newOf[i]
		for _, sym := range alphabet.Binary {
			var targets stategraph.Set
			for _, p := range cl {
				for _, q := range g.Targets(p, sym) {
					targets = targets.Insert(newOf[q])
				}
			}
			for _, to := range targets {
				if out.Targets(from, sym).Contains(to) {
					continue
				}
				out.AddEdge(from, sym, to)
				c.Collect(ctx, events.Event{
					Kind:      events.TransitionMinted,
					Automaton: src.Name(),
					Subject:   out.Name(from),
					Symbol:    sym.String(),
					Target:    out.Name(to),
				})
			}
		}
	}

	result := automaton.NFAFromGraph(src.Name(), out, newOf[src.Initial()])
	logger.Debug("Epsilon elimination finished.", "states", result.Len(), "initial", result.StateName(result.Initial()))
	return result
}

// mintState adds a state named name, priming the name until it is unique.
// Display names only collide when source state names contain commas.
func mintState(g *stategraph.Graph, name string, final bool) stategraph.StateID {
	for {
		id, added := g.AddState(name, final)
		if added {
			return id
		}
		name += "'"
	}
}
