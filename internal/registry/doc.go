// Package registry provides the central "glue" between configuration and Go
// code.
//
// A `check` block names its reference predicate by string. The Registry maps
// those names to the compiled Go functions that implement them. Modules
// register their predicates at start-up, and the registry is then validated
// against the loaded configuration so that a typo in a manifest is reported
// before any automaton is compiled.
package registry
