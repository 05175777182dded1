package closure

import (
	"context"

	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/automaton"
	"github.com/specialistvlad/automata/internal/events"
	"github.com/specialistvlad/automata/internal/stategraph"
)

// Of returns the epsilon closure of id. The result always contains id.
func Of(ctx context.Context, a automaton.Automaton, id stategraph.StateID) stategraph.Set {
	return OfSet(ctx, a, stategraph.Set{id})
}

// OfSet returns the union of the epsilon closures of every member of start.
func OfSet(ctx context.Context, a automaton.Automaton, start stategraph.Set) stategraph.Set {
	seen := make(map[stategraph.StateID]struct{}, len(start))
	frontier := make([]stategraph.StateID, 0, len(start))
	for _, id := range start {
		seen[id] = struct{}{}
		frontier = append(frontier, id)
	}

	for len(frontier) > 0 {
		current := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		for _, next := range a.TransitionsFor(current, alphabet.Epsilon) {
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			frontier = append(frontier, next)
		}
	}

	ids := make([]stategraph.StateID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	return stategraph.NewSet(ids...)
}

// Table returns the closure of every state of a, indexed by StateID. A
// ClosureComputed event is emitted for each state.
func Table(ctx context.Context, a automaton.Automaton, c events.Collector) []stategraph.Set {
	c = events.OrDiscard(c)
	g := a.Graph()

	table := make([]stategraph.Set, a.Len())
	for i := range table {
		id := stategraph.StateID(i)
		table[i] = Of(ctx, a, id)
		c.Collect(ctx, events.Event{
			Kind:      events.ClosureComputed,
			Automaton: a.Name(),
			Subject:   g.Name(id),
			Members:   g.Names(table[i]),
		})
	}
	return table
}
