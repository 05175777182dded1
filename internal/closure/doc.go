// Package closure computes epsilon closures: the set of states an automaton
// can reach from a state without consuming input.
//
// The traversal is an explicit worklist rather than recursion. A state enters
// the result at most once, which is what makes the walk terminate on epsilon
// cycles, and bounds each call by the number of states plus epsilon edges.
package closure
