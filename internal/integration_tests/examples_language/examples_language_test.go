package integration_tests

import (
	"context"
	"testing"

	"github.com/specialistvlad/automata/internal/config"
	"github.com/specialistvlad/automata/internal/executor"
	"github.com/specialistvlad/automata/internal/hcl_adapter"
	"github.com/specialistvlad/automata/internal/pipeline"
	"github.com/specialistvlad/automata/internal/registry"
	"github.com/specialistvlad/automata/internal/testutil"
	"github.com/specialistvlad/automata/internal/verifier"
	"github.com/specialistvlad/automata/modules/predicates"
	"github.com/stretchr/testify/require"
)

// TestExamples_CompiledLanguageMatchesSource loads every shipped example,
// compiles it and checks that the DFA agrees with direct NFA simulation of
// the source on every string of up to ten symbols.
func TestExamples_CompiledLanguageMatchesSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	model, err := hcl_adapter.NewLoader().Load(ctx, testutil.ExamplesDir(3))
	require.NoError(t, err)
	require.NotEmpty(t, model.Automata)

	inputs := testutil.AllStrings(10)
	for _, name := range model.AutomatonNames() {
		def := model.Automata[name]
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			compiled, err := pipeline.Compile(ctx, def.Definition, def.Kind, nil)
			require.NoError(t, err)

			source := compiled.NFA
			if def.Kind == config.KindDFA {
				source = compiled.DFA.AsNFA()
			}
			testutil.RequireSameVerdicts(t, inputs,
				func(input string) (bool, error) { return executor.SimulateNFA(ctx, source, input) },
				func(input string) (bool, error) { return compiled.Executor.Accepts(ctx, input) },
			)
		})
	}
}

// TestExamples_ChecksPassOnFirstThousand runs every example check over the
// binary forms of 0 to 999 with the built-in predicates.
func TestExamples_ChecksPassOnFirstThousand(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	model, err := hcl_adapter.NewLoader().Load(ctx, testutil.ExamplesDir(3))
	require.NoError(t, err)

	reg := registry.New()
	(&predicates.Module{}).Register(reg)
	require.NoError(t, reg.Validate(ctx, model))

	for _, check := range model.Checks {
		def := model.Automata[check.Automaton]
		compiled, err := pipeline.Compile(ctx, def.Definition, def.Kind, nil)
		require.NoError(t, err)

		pred, ok := reg.Predicate(check.Predicate)
		require.True(t, ok)

		report, err := verifier.Verify(ctx, check.Name, compiled.Executor, pred.Fn, 0, 1000, verifier.WithWorkers(4))
		require.NoError(t, err)
		require.True(t, report.OK(), "check %s failed on %v", check.Name, report.Failures)
		require.Equal(t, 1000, report.Checked)
	}
}
