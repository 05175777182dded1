package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/automata/internal/config"
	"github.com/specialistvlad/automata/internal/ctxlog"
	"github.com/specialistvlad/automata/internal/events"
	"github.com/specialistvlad/automata/internal/events/socketio"
	"github.com/specialistvlad/automata/internal/pipeline"
	"github.com/specialistvlad/automata/internal/render"
	"github.com/specialistvlad/automata/internal/verifier"
)

// ErrChecksFailed is returned by Run when at least one check found a
// discrepancy.
var ErrChecksFailed = errors.New("verification failed")

// Run loads the definitions, compiles every automaton and runs every check.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	a.reports = nil

	model, err := a.loader.Load(ctx, a.config.DefinitionsPath)
	if err != nil {
		return fmt.Errorf("failed to load definitions: %w", err)
	}
	a.logger.Debug("Definitions loaded.", "automata", len(model.Automata), "checks", len(model.Checks))

	if err := a.registry.Validate(ctx, model); err != nil {
		return err
	}
	a.logger.Debug("Registry validation passed.")

	collector, closeCollector, err := a.collector(ctx)
	if err != nil {
		return err
	}
	defer closeCollector()

	compiled := make(map[string]*pipeline.Compiled, len(model.Automata))
	for _, name := range model.AutomatonNames() {
		def := model.Automata[name]
		c, err := pipeline.Compile(ctx, def.Definition, def.Kind, collector)
		if err != nil {
			return fmt.Errorf("automaton '%s' (%s): %w", name, def.Source, err)
		}
		compiled[name] = c

		if a.config.Show {
			if err := a.show(name, c); err != nil {
				return err
			}
		}
	}

	if a.config.EmitDir != "" {
		if err := a.emit(ctx, model.AutomatonNames(), compiled); err != nil {
			return err
		}
	}

	return a.runChecks(ctx, model, compiled)
}

// collector builds the event sink for one run. Executor steps are not
// logged.
func (a *App) collector(ctx context.Context) (events.Collector, func(), error) {
	sinks := events.Multi{events.Filter{
		Next: events.LogCollector{},
		Keep: func(e events.Event) bool { return e.Kind != events.SymbolConsumed },
	}}
	if a.config.TraceURL == "" {
		return sinks, func() {}, nil
	}

	tc, err := a.dialTrace(ctx, socketio.Options{URL: a.config.TraceURL, Namespace: a.config.TraceNamespace})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect trace collector: %w", err)
	}
	closeFn := func() {
		if err := tc.Close(); err != nil {
			a.logger.Warn("Failed to close trace collector.", "error", err)
		}
	}
	return append(sinks, tc), closeFn, nil
}

func (a *App) show(name string, c *pipeline.Compiled) error {
	for _, stage := range c.Stages() {
		fmt.Fprintf(a.outW, "\n%s [%s] %d states\n", name, stage.Label, stage.Automaton.Len())
		if err := render.Table(a.outW, stage.Automaton); err != nil {
			return fmt.Errorf("failed to render '%s': %w", name, err)
		}
	}
	return nil
}

// emit writes the DFA of every automaton to EmitDir, named <name>_dfa so the
// files can be loaded next to their sources.
func (a *App) emit(ctx context.Context, names []string, compiled map[string]*pipeline.Compiled) error {
	logger := ctxlog.FromContext(ctx)
	enc, ok := a.loader.(config.Encoder)
	if !ok {
		return errors.New("the configured loader cannot encode definitions")
	}
	if err := os.MkdirAll(a.config.EmitDir, 0o755); err != nil {
		return fmt.Errorf("failed to create emit directory: %w", err)
	}

	for _, name := range names {
		def := compiled[name].DFA.Definition()
		def.Name = name + "_dfa"
		path := filepath.Join(a.config.EmitDir, def.Name+enc.Ext())
		if err := os.WriteFile(path, enc.Encode(config.KindDFA, def), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Info("Wrote determinized automaton.", "automaton", name, "path", path)
	}
	return nil
}

func (a *App) runChecks(ctx context.Context, model *config.Model, compiled map[string]*pipeline.Compiled) error {
	if len(model.Checks) == 0 {
		a.logger.Warn("No checks found, verification not required.")
		return nil
	}

	a.logger.Info("🚀 Starting verification...", "checks", len(model.Checks), "workers", a.config.WorkerCount)
	failed := 0
	for _, check := range model.Checks {
		pred, ok := a.registry.Predicate(check.Predicate)
		if !ok {
			return fmt.Errorf("check '%s': predicate '%s' is not registered", check.Name, check.Predicate)
		}
		exec, ok := compiled[check.Automaton]
		if !ok {
			return fmt.Errorf("check '%s': automaton '%s' was not compiled", check.Name, check.Automaton)
		}
		report, err := verifier.Verify(ctx, check.Name, exec.Executor, pred.Fn,
			check.From, check.To, verifier.WithWorkers(a.config.WorkerCount))
		if err != nil {
			return fmt.Errorf("check '%s' failed to run: %w", check.Name, err)
		}
		a.reports = append(a.reports, report)
		if err := render.Report(a.outW, report); err != nil {
			return err
		}
		if !report.OK() {
			failed++
		}
	}
	a.logger.Info("🏁 Verification finished.", "checks", len(model.Checks), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d checks failed", ErrChecksFailed, failed, len(model.Checks))
	}
	return nil
}
