package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/automata/internal/config"
	"github.com/specialistvlad/automata/internal/ctxlog"
	"github.com/specialistvlad/automata/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file found under paths and merges all automaton and
// check blocks into one model. Declaring the same automaton twice is an
// error.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()

	hclFiles, err := fsutil.FindFiles(".hcl", paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to find definitions: %w", err)
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range root.Automata {
			if prev, exists := model.Automata[block.Name]; exists {
				return nil, fmt.Errorf("automaton '%s' in %s is already declared in %s", block.Name, file, prev.Source)
			}
			a, err := translateAutomaton(ctx, block, file)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Automata[block.Name] = a
		}
		for _, block := range root.Checks {
			check, err := translateCheck(ctx, block, file)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			model.Checks = append(model.Checks, check)
		}
	}

	logger.Debug("HCL loading complete.", "automata", len(model.Automata), "checks", len(model.Checks))
	return model, nil
}

var (
	_ config.Loader  = (*Loader)(nil)
	_ config.Encoder = (*Loader)(nil)
)
