package pipeline

import (
	"context"
	"fmt"

	"github.com/specialistvlad/automata/internal/automaton"
	"github.com/specialistvlad/automata/internal/config"
	"github.com/specialistvlad/automata/internal/ctxlog"
	"github.com/specialistvlad/automata/internal/determinize"
	"github.com/specialistvlad/automata/internal/eliminate"
	"github.com/specialistvlad/automata/internal/events"
	"github.com/specialistvlad/automata/internal/executor"
)

// Stage is one automaton produced along the way, with a short label.
type Stage struct {
	Label     string
	Automaton automaton.Automaton
}

// Compiled holds every stage of one compilation.
type Compiled struct {
	Kind config.Kind
	// NFA is the constructed input for KindNFA, nil otherwise.
	NFA *automaton.NFA
	// Eliminated is the epsilon-free NFA, nil when the input had no
	// epsilon transitions or is a DFA.
	Eliminated *automaton.NFA
	DFA        *automaton.DFA
	Executor   *executor.Executor
}

// Stages lists the automata in the order they were produced.
func (c *Compiled) Stages() []Stage {
	var out []Stage
	if c.NFA != nil {
		out = append(out, Stage{Label: "nfa", Automaton: c.NFA})
	}
	if c.Eliminated != nil {
		out = append(out, Stage{Label: "epsilon-free nfa", Automaton: c.Eliminated})
	}
	out = append(out, Stage{Label: "dfa", Automaton: c.DFA})
	return out
}

// Compile constructs the automaton described by def and derives its DFA.
// collector may be nil.
func Compile(ctx context.Context, def automaton.Definition, kind config.Kind, collector events.Collector) (*Compiled, error) {
	logger := ctxlog.FromContext(ctx).With("automaton", def.Name, "kind", kind)
	collector = events.OrDiscard(collector)

	out := &Compiled{Kind: kind}
	switch kind {
	case config.KindDFA:
		dfa, err := automaton.NewDFA(def)
		if err != nil {
			return nil, fmt.Errorf("failed to construct DFA: %w", err)
		}
		out.DFA = dfa
	case config.KindNFA:
		nfa, err := automaton.NewNFA(def)
		if err != nil {
			return nil, fmt.Errorf("failed to construct NFA: %w", err)
		}
		out.NFA = nfa

		source := nfa
		if nfa.HasEpsilon() {
			out.Eliminated = eliminate.Run(ctx, nfa, eliminate.WithCollector(collector))
			source = out.Eliminated
			logger.Debug("Epsilon transitions eliminated.", "states", source.Len())
		}
		dfa, err := determinize.Run(ctx, source, determinize.WithCollector(collector))
		if err != nil {
			return nil, fmt.Errorf("failed to determinize: %w", err)
		}
		out.DFA = dfa
	default:
		return nil, fmt.Errorf("unknown automaton kind %q", kind)
	}

	out.Executor = executor.New(out.DFA, executor.WithCollector(collector))
	logger.Info("Automaton compiled.", "dfa_states", out.DFA.Len())
	return out, nil
}
