// Package events defines the structured event stream that the transformation
// and execution packages emit while they work.
//
// Collecting events is optional. Every algorithm accepts a Collector and uses
// Discard when none is given, so the stream costs nothing unless someone
// listens. Rendering is left to the collector: Recorder keeps events in memory
// for tests and tables, LogCollector forwards them to the context logger, and
// the socketio sub-package publishes them to a live viewer.
package events
