package hcl_adapter

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Automata []*AutomatonBlock `hcl:"automaton,block"`
	Checks   []*CheckBlock     `hcl:"check,block"`
	Remain   hcl.Body          `hcl:",remain"`
}

// AutomatonBlock is the raw HCL form of an automaton.
type AutomatonBlock struct {
	Name    string        `hcl:"name,label"`
	Kind    string        `hcl:"kind"`
	Initial string        `hcl:"initial"`
	States  []*StateBlock `hcl:"state,block"`
}

// StateBlock is the raw HCL form of one state.
type StateBlock struct {
	Name  string         `hcl:"name,label"`
	Final *bool          `hcl:"final,optional"`
	On    hcl.Expression `hcl:"on,optional"`
}

// CheckBlock is the raw HCL form of a check.
type CheckBlock struct {
	Name      string         `hcl:"name,label"`
	Automaton string         `hcl:"automaton"`
	Predicate string         `hcl:"predicate"`
	From      hcl.Expression `hcl:"from,optional"`
	To        hcl.Expression `hcl:"to,optional"`
}
