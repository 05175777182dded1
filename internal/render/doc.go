// Package render prints automata and verification reports as aligned text
// tables.
package render
