// Package alphabet defines the symbols automata read.
//
// The alphabet is fixed: deterministic automata and epsilon-free NFAs read
// `0` and `1`, and NFAs may additionally carry transitions on the Epsilon
// pseudo-symbol until they are eliminated. Symbols iterate in ascending
// order, which keeps every transformation's output reproducible.
package alphabet
