package socketio

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/automata/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	event   string
	payload map[string]any
}

type fakeSocket struct {
	mu           sync.Mutex
	messages     []sent
	disconnected int
}

func (f *fakeSocket) emit(event string, payload map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, sent{event, payload})
}

func (f *fakeSocket) disconnect() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disconnected++
}

func TestCollector_EmitsPayload(t *testing.T) {
	fake := &fakeSocket{}
	c := newCollector("", fake.emit, fake.disconnect)

	c.Collect(context.Background(), events.Event{
		Kind:      events.SubsetDiscovered,
		Automaton: "third_from_last",
		Subject:   "{q0,q1}",
		Members:   []string{"q0", "q1"},
	})

	require.Len(t, fake.messages, 1)
	assert.Equal(t, DefaultEvent, fake.messages[0].event)
	want := map[string]any{
		"kind":      "subset_discovered",
		"automaton": "third_from_last",
		"subject":   "{q0,q1}",
		"members":   []any{"q0", "q1"},
	}
	if diff := cmp.Diff(want, fake.messages[0].payload); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestCollector_CustomEventName(t *testing.T) {
	fake := &fakeSocket{}
	c := newCollector("trace", fake.emit, fake.disconnect)
	c.Collect(context.Background(), events.Event{Kind: events.SymbolConsumed, Automaton: "mod4", Symbol: "1", Target: "e1"})

	require.Len(t, fake.messages, 1)
	assert.Equal(t, "trace", fake.messages[0].event)
	assert.Equal(t, "1", fake.messages[0].payload["symbol"])
	assert.Equal(t, "e1", fake.messages[0].payload["target"])
	assert.NotContains(t, fake.messages[0].payload, "members")
}

func TestCollector_CloseIsIdempotentAndDropsLateEvents(t *testing.T) {
	fake := &fakeSocket{}
	c := newCollector("", fake.emit, fake.disconnect)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	c.Collect(context.Background(), events.Event{Kind: events.DeadStateCreated, Automaton: "x"})

	assert.Equal(t, 1, fake.disconnected)
	assert.Empty(t, fake.messages)
}

func TestCollector_ConcurrentCollect(t *testing.T) {
	fake := &fakeSocket{}
	c := newCollector("", fake.emit, fake.disconnect)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Collect(context.Background(), events.Event{Kind: events.SymbolConsumed, Automaton: "mod4"})
		}()
	}
	wg.Wait()
	assert.Len(t, fake.messages, 50)
}

func TestDial_RejectsBadURL(t *testing.T) {
	_, err := Dial(context.Background(), Options{URL: "not a url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must include a scheme and a host")
}
