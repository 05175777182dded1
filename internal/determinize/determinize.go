package determinize

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/automaton"
	"github.com/specialistvlad/automata/internal/ctxlog"
	"github.com/specialistvlad/automata/internal/events"
	"github.com/specialistvlad/automata/internal/stategraph"
)

// DeadStateName is the display name of the shared sink state.
const DeadStateName = "∅"

// ErrEpsilonTransitions is returned when the input still has epsilon
// transitions. Run elimination first.
var ErrEpsilonTransitions = errors.New("determinize: automaton has epsilon transitions")

type options struct {
	collector events.Collector
}

// Option configures a Run.
type Option func(*options)

// WithCollector sends the events of the run to c.
func WithCollector(c events.Collector) Option {
	return func(o *options) { o.collector = c }
}

// run holds the state of one subset construction.
type run struct {
	src       *automaton.NFA
	out       *stategraph.Graph
	bySubset  map[string]stategraph.StateID
	worklist  []stategraph.Set
	dead      stategraph.StateID
	hasDead   bool
	collector events.Collector
}

// Run returns a DFA accepting the same language as src.
func Run(ctx context.Context, src *automaton.NFA, opts ...Option) (*automaton.DFA, error) {
	if src.HasEpsilon() {
		return nil, fmt.Errorf("automaton '%s': %w", src.Name(), ErrEpsilonTransitions)
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	logger := ctxlog.FromContext(ctx).With("automaton", src.Name())
	logger.Debug("Subset construction started.", "nfa_states", src.Len())

	r := &run{
		src:       src,
		out:       stategraph.New(),
		bySubset:  make(map[string]stategraph.StateID),
		collector: events.OrDiscard(o.collector),
	}

	initial := r.stateFor(ctx, stategraph.Set{src.Initial()})

	for len(r.worklist) > 0 {
		current := r.worklist[0]
		r.worklist = r.worklist[1:]
		from := r.bySubset[current.Key()]

		for _, sym := range alphabet.Binary {
			var next stategraph.Set
			for _, s := range current {
				next = next.Union(src.TransitionsFor(s, sym))
			}

			var to stategraph.StateID
			if next.Empty() {
				to = r.deadState(ctx)
			} else {
				to = r.stateFor(ctx, next)
			}
			r.out.AddEdge(from, sym, to)
			r.collector.Collect(ctx, events.Event{
				Kind:      events.TransitionMinted,
				Automaton: src.Name(),
				Subject:   r.out.Name(from),
				Symbol:    sym.String(),
				Target:    r.out.Name(to),
			})
		}
	}

	// The dead state is appended last so that subset states keep their
	// discovery order in the output.
	out := r.out
	if r.hasDead {
		out = r.withDeadLast()
		initial, _ = out.Lookup(r.out.Name(initial))
	}

	dfa, err := automaton.DFAFromGraph(src.Name(), out, initial)
	if err != nil {
		return nil, fmt.Errorf("subset construction produced an invalid DFA: %w", err)
	}
	logger.Debug("Subset construction finished.", "dfa_states", dfa.Len(), "dead_state", r.hasDead)
	return dfa, nil
}

// stateFor returns the DFA state of subset, minting and enqueuing it when the
// subset is seen for the first time.
func (r *run) stateFor(ctx context.Context, subset stategraph.Set) stategraph.StateID {
	key := subset.Key()
	if id, ok := r.bySubset[key]; ok {
		return id
	}
	g := r.src.Graph()
	id := mintState(r.out, g.SetName(subset), g.AnyFinal(subset))
	r.bySubset[key] = id
	r.worklist = append(r.worklist, subset)
	r.collector.Collect(ctx, events.Event{
		Kind:      events.SubsetDiscovered,
		Automaton: r.src.Name(),
		Subject:   r.out.Name(id),
		Members:   g.Names(subset),
	})
	return id
}

// deadState returns the sink, creating it on first use.
func (r *run) deadState(ctx context.Context) stategraph.StateID {
	if r.hasDead {
		return r.dead
	}
	r.dead = mintState(r.out, DeadStateName, false)
	r.hasDead = true
	for _, sym := range alphabet.Binary {
		r.out.AddEdge(r.dead, sym, r.dead)
	}
	r.collector.Collect(ctx, events.Event{
		Kind:      events.DeadStateCreated,
		Automaton: r.src.Name(),
		Subject:   r.out.Name(r.dead),
	})
	return r.dead
}

// withDeadLast copies the output graph with the dead state moved to the end.
func (r *run) withDeadLast() *stategraph.Graph {
	order := make([]stategraph.StateID, 0, r.out.Len())
	for i := 0; i < r.out.Len(); i++ {
		if id := stategraph.StateID(i); id != r.dead {
			order = append(order, id)
		}
	}
	order = append(order, r.dead)

	moved := make([]stategraph.StateID, r.out.Len())
	g := stategraph.New()
	for _, old := range order {
		moved[old], _ = g.AddState(r.out.Name(old), r.out.IsFinal(old))
	}
	for _, old := range order {
		for _, sym := range alphabet.Binary {
			for _, to := range r.out.Targets(old, sym) {
				g.AddEdge(moved[old], sym, moved[to])
			}
		}
	}
	return g
}

// mintState adds a state named name, priming the name until it is unique.
func mintState(g *stategraph.Graph, name string, final bool) stategraph.StateID {
	for {
		id, added := g.AddState(name, final)
		if added {
			return id
		}
		name += "'"
	}
}
