// Package config defines the format-agnostic configuration model for the
// application, along with the Loader interface implemented by concrete
// configuration formats.
//
// The `config.Model` is the single source of truth for the `app` package: it
// lists the automata to compile and the checks to run against them. Concrete
// implementations of the Loader, such as for HCL, are provided in separate
// packages.
package config
