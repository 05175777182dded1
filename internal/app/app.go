package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/automata/internal/config"
	"github.com/specialistvlad/automata/internal/events"
	"github.com/specialistvlad/automata/internal/events/socketio"
	"github.com/specialistvlad/automata/internal/registry"
	"github.com/specialistvlad/automata/internal/verifier"
)

// traceCollector is an event sink that holds a connection.
type traceCollector interface {
	events.Collector
	Close() error
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	registry *registry.Registry

	dialTrace func(ctx context.Context, opts socketio.Options) (traceCollector, error)
	reports   []*verifier.Report
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger and a registry populated from modules, or from the
// built-in modules when none are given.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules), "predicates", reg.Names())

	return &App{
		outW:      outW,
		logger:    logger,
		config:    appConfig,
		loader:    loader,
		registry:  reg,
		dialTrace: dialSocketIO,
	}
}

func dialSocketIO(ctx context.Context, opts socketio.Options) (traceCollector, error) {
	c, err := socketio.Dial(ctx, opts)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Reports returns the reports of the last Run, in check order.
func (a *App) Reports() []*verifier.Report {
	return a.reports
}
