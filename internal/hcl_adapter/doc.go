// Package hcl_adapter implements config.Loader for HCL files.
//
// Any .hcl file may declare `automaton` and `check` blocks:
//
//	automaton "mod4" {
//	  kind    = "dfa"
//	  initial = "e0"
//
//	  state "e0" {
//	    on = { "0" = "e0", "1" = "e1" }
//	  }
//	  state "e1" {
//	    final = true
//	    on    = { "0" = "e0", "1" = "e2" }
//	  }
//	}
//
//	check "mod4" {
//	  automaton = "mod4"
//	  predicate = "mod4_equals_1"
//	  to        = 4096
//	}
//
// A transition value is a single state name or a list of names; the key
// "eps" (or "ε") declares epsilon transitions. Encode writes an automaton
// definition back out in the same syntax.
package hcl_adapter
