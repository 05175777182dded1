package verifier

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/specialistvlad/automata/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// Acceptor decides whether an input string is accepted.
type Acceptor interface {
	Accepts(ctx context.Context, input string) (bool, error)
}

// Predicate is the expected verdict for the integer n.
type Predicate func(n uint64) bool

// Binary formats n without leading zeros. Zero is "0".
func Binary(n uint64) string {
	return strconv.FormatUint(n, 2)
}

// Discrepancy is a sample on which the automaton and the predicate disagree.
type Discrepancy struct {
	N        uint64
	Input    string
	Expected bool
	Got      bool
}

// Report summarizes one verification.
type Report struct {
	Name     string
	From, To uint64
	Checked  int
	Accepted int
	Failures []Discrepancy
	Elapsed  time.Duration
}

// OK reports whether every sample matched.
func (r *Report) OK() bool { return len(r.Failures) == 0 }

type options struct {
	workers int
}

// Option configures Verify.
type Option func(*options)

// WithWorkers sets how many samples are checked concurrently. Values below
// one mean one.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// Verify checks every integer in [from, to). Failures are reported in
// ascending order of N. An error from the acceptor or a cancelled context
// stops the run.
func Verify(ctx context.Context, name string, acc Acceptor, pred Predicate, from, to uint64, opts ...Option) (*Report, error) {
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	if to < from {
		return nil, fmt.Errorf("verification '%s': empty range [%d, %d)", name, from, to)
	}

	logger := ctxlog.FromContext(ctx).With("check", name)
	logger.Debug("Verification started.", "from", from, "to", to, "workers", o.workers)
	start := time.Now()

	report := &Report{Name: name, From: from, To: to}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for _, chunk := range chunks(from, to, o.workers) {
		g.Go(func() error {
			var (
				accepted int
				failures []Discrepancy
			)
			for n := chunk.from; n < chunk.to; n++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				input := Binary(n)
				got, err := acc.Accepts(gctx, input)
				if err != nil {
					return fmt.Errorf("sample %d (%s): %w", n, input, err)
				}
				if got {
					accepted++
				}
				if want := pred(n); got != want {
					failures = append(failures, Discrepancy{N: n, Input: input, Expected: want, Got: got})
				}
			}

			mu.Lock()
			defer mu.Unlock()
			report.Checked += int(chunk.to - chunk.from)
			report.Accepted += accepted
			report.Failures = append(report.Failures, failures...)
			logger.Debug("Chunk verified.", "from", chunk.from, "to", chunk.to, "failures", len(failures))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("verification '%s': %w", name, err)
	}

	slices.SortFunc(report.Failures, func(a, b Discrepancy) int {
		switch {
		case a.N < b.N:
			return -1
		case a.N > b.N:
			return 1
		}
		return 0
	})
	report.Elapsed = time.Since(start)
	logger.Debug("Verification finished.", "checked", report.Checked, "failures", len(report.Failures), "elapsed", report.Elapsed)
	return report, nil
}

type span struct{ from, to uint64 }

// chunks splits [from, to) into at most n contiguous spans.
func chunks(from, to uint64, n int) []span {
	total := to - from
	if total == 0 {
		return nil
	}
	if uint64(n) > total {
		n = int(total)
	}
	size := total / uint64(n)
	rest := total % uint64(n)

	out := make([]span, 0, n)
	lo := from
	for i := 0; i < n; i++ {
		hi := lo + size
		if uint64(i) < rest {
			hi++
		}
		out = append(out, span{lo, hi})
		lo = hi
	}
	return out
}
