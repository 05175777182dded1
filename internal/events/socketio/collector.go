// Package socketio streams automaton events to a socket.io server, one
// emitted message per event.
package socketio

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/specialistvlad/automata/internal/ctxlog"
	"github.com/specialistvlad/automata/internal/events"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultEvent is the socket.io event name used when Options.Event is empty.
const DefaultEvent = "automaton_event"

// DefaultTimeout bounds the connection handshake.
const DefaultTimeout = 15 * time.Second

// Options configures Dial.
type Options struct {
	URL                string
	Namespace          string
	Event              string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Collector implements events.Collector by emitting to a connected socket.
type Collector struct {
	event string

	mu     sync.Mutex
	closed bool
	emit   func(event string, payload map[string]any)
	close  func()
}

var _ events.Collector = (*Collector)(nil)

// Dial connects to the server and returns a collector that emits on the
// connected socket. It blocks until the connection succeeds, fails, times
// out, or ctx is cancelled.
func Dial(ctx context.Context, opts Options) (*Collector, error) {
	logger := ctxlog.FromContext(ctx).With("collector", "socketio", "url", opts.URL)
	logger.Info("Connecting event collector...")

	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("trace URL %q must include a scheme and a host", opts.URL)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	sockOpts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		sockOpts.SetPath(parsedURL.Path)
	}
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		sockOpts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sockOpts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sockOpts)
	io := manager.Socket(opts.Namespace, sockOpts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Event collector connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	io.Connect()

	disconnect := func() { io.Disconnect() }
	select {
	case err := <-connectChan:
		if err != nil {
			disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-ctx.Done():
		disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		disconnect()
		return nil, fmt.Errorf("timed out after %v waiting for socket.io connection", timeout)
	}

	emit := func(event string, payload map[string]any) { io.Emit(event, payload) }
	return newCollector(opts.Event, emit, disconnect), nil
}

func newCollector(event string, emit func(string, map[string]any), closeFn func()) *Collector {
	if event == "" {
		event = DefaultEvent
	}
	return &Collector{event: event, emit: emit, close: closeFn}
}

// Collect implements events.Collector. Events collected after Close are
// dropped.
func (c *Collector) Collect(ctx context.Context, e events.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		ctxlog.FromContext(ctx).Debug("Dropping event on closed collector.", "kind", string(e.Kind))
		return
	}
	c.emit(c.event, Payload(e))
}

// Close disconnects the socket. It is safe to call more than once.
func (c *Collector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if c.close != nil {
		c.close()
	}
	return nil
}

// Payload is the message body sent for e. Empty fields are omitted.
func Payload(e events.Event) map[string]any {
	out := map[string]any{
		"kind":      string(e.Kind),
		"automaton": e.Automaton,
	}
	if e.Subject != "" {
		out["subject"] = e.Subject
	}
	if e.Symbol != "" {
		out["symbol"] = e.Symbol
	}
	if e.Target != "" {
		out["target"] = e.Target
	}
	if len(e.Members) > 0 {
		members := make([]any, len(e.Members))
		for i, m := range e.Members {
			members[i] = m
		}
		out["members"] = members
	}
	return out
}
