package executor

import (
	"context"

	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/automaton"
	"github.com/specialistvlad/automata/internal/closure"
	"github.com/specialistvlad/automata/internal/stategraph"
)

// SimulateNFA reports whether nfa accepts input by tracking the set of
// states reachable after each symbol, epsilon closures included.
func SimulateNFA(ctx context.Context, nfa *automaton.NFA, input string) (bool, error) {
	current := closure.Of(ctx, nfa, nfa.Initial())
	for i, r := range []rune(input) {
		sym := alphabet.Symbol(r)
		if !sym.IsInput() {
			return false, &InvalidSymbolError{Symbol: r, Position: i}
		}
		var next stategraph.Set
		for _, s := range current {
			next = next.Union(nfa.TransitionsFor(s, sym))
		}
		current = closure.OfSet(ctx, nfa, next)
	}
	return nfa.Graph().AnyFinal(current), nil
}
