// Package eliminate removes epsilon transitions from an NFA while preserving
// the language it accepts.
//
// Each source state is replaced by the state standing for its epsilon
// closure. States whose closures are equal share one closure signature and
// collapse into a single new state. A new state moves on an input symbol to
// the closure states of everything its members move to, and accepts if any
// member accepts.
//
// The source automaton is never modified.
package eliminate
