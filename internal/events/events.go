package events

import (
	"context"
	"sync"

	"github.com/specialistvlad/automata/internal/ctxlog"
)

// Kind identifies what happened.
type Kind string

const (
	// ClosureComputed is emitted once per state whose epsilon closure was
	// computed. Members lists the closure.
	ClosureComputed Kind = "closure_computed"
	// SignatureMinted is emitted when elimination creates a state for a new
	// closure signature.
	SignatureMinted Kind = "signature_minted"
	// SubsetDiscovered is emitted when determinization meets a new subset.
	SubsetDiscovered Kind = "subset_discovered"
	// TransitionMinted is emitted for every transition written into a new
	// automaton.
	TransitionMinted Kind = "transition_minted"
	// DeadStateCreated is emitted when determinization creates the sink.
	DeadStateCreated Kind = "dead_state_created"
	// SymbolConsumed is emitted by the executor for every input symbol.
	SymbolConsumed Kind = "symbol_consumed"
)

// Event is one step of an algorithm.
type Event struct {
	Kind      Kind     `json:"kind"`
	Automaton string   `json:"automaton"`
	Subject   string   `json:"subject,omitempty"`
	Symbol    string   `json:"symbol,omitempty"`
	Target    string   `json:"target,omitempty"`
	Members   []string `json:"members,omitempty"`
}

// Collector receives events. Implementations must be safe for concurrent use.
type Collector interface {
	Collect(ctx context.Context, e Event)
}

type discard struct{}

func (discard) Collect(context.Context, Event) {}

// Discard drops every event.
var Discard Collector = discard{}

// OrDiscard returns c, or Discard when c is nil.
func OrDiscard(c Collector) Collector {
	if c == nil {
		return Discard
	}
	return c
}

// Recorder keeps every event in memory, in arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Collect implements Collector.
func (r *Recorder) Collect(_ context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// LogCollector writes every event to the logger found in the context, at
// debug level.
type LogCollector struct{}

// Collect implements Collector.
func (LogCollector) Collect(ctx context.Context, e Event) {
	ctxlog.FromContext(ctx).Debug("Automaton event.",
		"kind", string(e.Kind),
		"automaton", e.Automaton,
		"subject", e.Subject,
		"symbol", e.Symbol,
		"target", e.Target,
		"members", e.Members,
	)
}

// Multi fans every event out to several collectors, in order.
type Multi []Collector

// Collect implements Collector.
func (m Multi) Collect(ctx context.Context, e Event) {
	for _, c := range m {
		c.Collect(ctx, e)
	}
}

// Filter forwards the events for which Keep returns true to Next.
type Filter struct {
	Next Collector
	Keep func(Event) bool
}

// Collect implements Collector.
func (f Filter) Collect(ctx context.Context, e Event) {
	if f.Keep(e) {
		f.Next.Collect(ctx, e)
	}
}
