package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/specialistvlad/automata/internal/verifier"
)

// Module is the interface that all predicate modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// RegisteredPredicate holds a reference predicate and its description.
type RegisteredPredicate struct {
	Description string
	Fn          verifier.Predicate
}

// Registry holds all the registered predicates for a single application
// instance.
type Registry struct {
	Predicates map[string]*RegisteredPredicate
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		Predicates: make(map[string]*RegisteredPredicate),
	}
}

// RegisterPredicate registers a Go predicate under name.
func (r *Registry) RegisterPredicate(name string, p *RegisteredPredicate) {
	if _, exists := r.Predicates[name]; exists {
		panic(fmt.Sprintf("predicate with name '%s' already registered", name))
	}
	slog.Debug("Registering predicate.", "name", name)
	r.Predicates[name] = p
}

// Predicate looks up a registered predicate.
func (r *Registry) Predicate(name string) (*RegisteredPredicate, bool) {
	p, ok := r.Predicates[name]
	return p, ok
}

// Names returns all registered predicate names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Predicates))
	for name := range r.Predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
