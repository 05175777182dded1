package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DefinitionsPath string // hcl file or directory

	LogFormat   string
	LogLevel    string
	WorkerCount int

	// Show prints every stage of every compiled automaton as a table.
	Show bool
	// EmitDir, when set, receives the determinized form of every automaton.
	EmitDir string

	TraceURL       string
	TraceNamespace string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.DefinitionsPath == "" {
		return nil, errors.New("DefinitionsPath is a required configuration field and cannot be empty")
	}
	if cfg.WorkerCount < 1 {
		return nil, errors.New("WorkerCount must be at least 1")
	}
	return &cfg, nil
}
