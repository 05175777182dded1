// Package verifier checks an automaton against a reference predicate by brute
// force sampling: every integer in a range is written in binary, read by the
// automaton, and the verdict compared with the predicate.
//
// Samples are split into contiguous chunks and checked by a bounded group of
// workers sharing one Acceptor, so the Acceptor must be safe for concurrent
// use. executor.Executor is.
package verifier
