package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/automata/internal/alphabet"
	"github.com/specialistvlad/automata/internal/automaton"
	"github.com/specialistvlad/automata/internal/config"
	"github.com/specialistvlad/automata/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translateAutomaton converts a raw automaton block into the config model.
func translateAutomaton(ctx context.Context, block *AutomatonBlock, source string) (*config.Automaton, error) {
	logger := ctxlog.FromContext(ctx).With("automaton", block.Name)

	kind, err := config.ParseKind(block.Kind)
	if err != nil {
		return nil, fmt.Errorf("automaton '%s': %w", block.Name, err)
	}

	def := automaton.Definition{
		Name:    block.Name,
		Initial: block.Initial,
		States:  make([]automaton.StateDefinition, 0, len(block.States)),
	}
	for _, st := range block.States {
		transitions, err := translateTransitions(ctx, st)
		if err != nil {
			return nil, fmt.Errorf("automaton '%s', state '%s': %w", block.Name, st.Name, err)
		}
		def.States = append(def.States, automaton.StateDefinition{
			ID:          st.Name,
			Final:       st.Final != nil && *st.Final,
			Transitions: transitions,
		})
	}
	logger.Debug("Translated automaton block.", "kind", kind, "states", len(def.States))

	return &config.Automaton{Kind: kind, Definition: def, Source: source}, nil
}

// translateTransitions decodes the `on` map of a state. Each value is either
// a state name or a list of state names.
func translateTransitions(ctx context.Context, st *StateBlock) (map[alphabet.Symbol][]string, error) {
	out := make(map[alphabet.Symbol][]string)

	val, ok, err := evalOptional(ctx, st.On, "on")
	if err != nil || !ok {
		return out, err
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("'on' must be a map of symbol to state, got %s", val.Type().FriendlyName())
	}

	for key, target := range val.AsValueMap() {
		sym, err := alphabet.Parse(key)
		if err != nil {
			return nil, err
		}
		names, err := targetNames(target)
		if err != nil {
			return nil, fmt.Errorf("transition on '%s': %w", key, err)
		}
		out[sym] = append(out[sym], names...)
	}
	return out, nil
}

// targetNames accepts a string or a list/tuple of strings.
func targetNames(v cty.Value) ([]string, error) {
	if v.IsNull() {
		return nil, fmt.Errorf("target must not be null")
	}
	if v.Type() == cty.String {
		var name string
		if err := gocty.FromCtyValue(v, &name); err != nil {
			return nil, err
		}
		return []string{name}, nil
	}

	list, err := convert.Convert(v, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("target must be a state name or a list of state names, got %s", v.Type().FriendlyName())
	}
	var names []string
	if err := gocty.FromCtyValue(list, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// translateCheck converts a raw check block into the config model.
func translateCheck(ctx context.Context, block *CheckBlock, source string) (*config.Check, error) {
	check := &config.Check{
		Name:      block.Name,
		Automaton: block.Automaton,
		Predicate: block.Predicate,
		From:      0,
		To:        config.DefaultSampleLimit,
		Source:    source,
	}

	bounds := []struct {
		name   string
		expr   hcl.Expression
		target *uint64
	}{
		{"from", block.From, &check.From},
		{"to", block.To, &check.To},
	}
	for _, b := range bounds {
		val, ok, err := evalOptional(ctx, b.expr, b.name)
		if err != nil {
			return nil, fmt.Errorf("check '%s': %w", block.Name, err)
		}
		if !ok {
			continue
		}
		if err := gocty.FromCtyValue(val, b.target); err != nil {
			return nil, fmt.Errorf("check '%s': '%s' must be a non-negative integer: %w", block.Name, b.name, err)
		}
	}
	return check, nil
}
