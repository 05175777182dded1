package config

import (
	"context"

	"github.com/specialistvlad/automata/internal/automaton"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths and translates it into
	// the format-agnostic model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// Encoder writes a definition back out in the loader's own format, so the
// output can be loaded again.
type Encoder interface {
	Encode(kind Kind, def automaton.Definition) []byte
	// Ext is the file extension of encoded output, including the dot.
	Ext() string
}
