package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/automata/internal/config"
	"github.com/specialistvlad/automata/internal/ctxlog"
)

// Validate performs a strict parity check between the loaded configuration
// and the registered Go code: every check must reference a defined automaton
// and a registered predicate, over a non-empty range.
func (r *Registry) Validate(ctx context.Context, model *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	seen := make(map[string]string)
	for _, check := range model.Checks {
		if prev, dup := seen[check.Name]; dup {
			errs = append(errs, fmt.Sprintf("check '%s' (%s): already declared in %s", check.Name, check.Source, prev))
		}
		seen[check.Name] = check.Source

		if _, ok := model.Automata[check.Automaton]; !ok {
			errs = append(errs, fmt.Sprintf("check '%s' (%s): automaton '%s' is not defined", check.Name, check.Source, check.Automaton))
		}
		if _, ok := r.Predicates[check.Predicate]; !ok {
			errs = append(errs, fmt.Sprintf("check '%s' (%s): predicate '%s' is not registered (known: %s)", check.Name, check.Source, check.Predicate, strings.Join(r.Names(), ", ")))
		}
		if check.To <= check.From {
			errs = append(errs, fmt.Sprintf("check '%s' (%s): empty sample range [%d, %d)", check.Name, check.Source, check.From, check.To))
		}
	}

	for _, name := range model.AutomatonNames() {
		used := false
		for _, check := range model.Checks {
			if check.Automaton == name {
				used = true
				break
			}
		}
		if !used {
			logger.Warn("Automaton has no check and will only be compiled.", "automaton", name)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
