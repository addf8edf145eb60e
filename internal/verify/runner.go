package verify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leapstack-labs/sqlshim/pkg/adapter"
	"github.com/leapstack-labs/sqlshim/pkg/dialect"
	"github.com/leapstack-labs/sqlshim/pkg/format"
	"golang.org/x/sync/errgroup"
)

// Defaults for Runner.
const (
	DefaultConcurrency = 4
	DefaultTimeout     = 10 * time.Second
)

// Result is the outcome of one probe.
type Result struct {
	Probe    Probe
	SQL      string // empty when rendering failed
	Got      string
	GotNull  bool
	Err      error
	Duration time.Duration
}

// Passed reports whether the outcome matches the probe's expectation.
func (r Result) Passed() bool {
	p := r.Probe
	switch {
	case p.WantUnsupported:
		return errors.Is(r.Err, dialect.ErrUnsupported)
	case r.SQL == "":
		return false
	case p.WantError:
		return r.Err != nil
	case r.Err != nil:
		return false
	case p.WantNull:
		return r.GotNull
	default:
		return !r.GotNull && r.Got == p.Want
	}
}

// Detail describes the outcome for display.
func (r Result) Detail() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case r.GotNull:
		return "NULL"
	default:
		return r.Got
	}
}

// Summary counts passed and failed results.
func Summary(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// Runner renders probes for a dialect and executes them on an adapter.
type Runner struct {
	adapter     adapter.Adapter
	dialect     dialect.Dialect
	concurrency int
	timeout     time.Duration
	logger      *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithConcurrency bounds the number of probes in flight.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithTimeout bounds each probe's execution time.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDialect renders probes for d instead of the adapter's dialect.
func WithDialect(d dialect.Dialect) Option {
	return func(r *Runner) {
		r.dialect = d
	}
}

// NewRunner creates a runner executing on a.
func NewRunner(a adapter.Adapter, opts ...Option) *Runner {
	r := &Runner{
		adapter:     a,
		dialect:     a.Dialect(),
		concurrency: DefaultConcurrency,
		timeout:     DefaultTimeout,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every probe and returns results in catalog order. Probe
// failures are reported in the results; the error is non-nil only when ctx
// ends before all probes ran.
func (r *Runner) Run(ctx context.Context, probes []Probe) ([]Result, error) {
	if r.dialect == nil {
		return nil, dialect.ErrDialectRequired
	}

	results := make([]Result, len(probes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i := range probes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = r.runProbe(gctx, probes[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("verify interrupted: %w", err)
	}

	passed, failed := Summary(results)
	r.logger.Info("verification finished",
		slog.String("dialect", r.dialect.Name()),
		slog.Int("passed", passed),
		slog.Int("failed", failed))
	return results, nil
}

func (r *Runner) runProbe(ctx context.Context, p Probe) (res Result) {
	res.Probe = p
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	sql, err := format.Format(p.Stmt, r.dialect)
	if err != nil {
		res.Err = err
		r.logger.Debug("probe not rendered", slog.String("probe", p.Name), slog.Any("error", err))
		return res
	}
	res.SQL = sql

	if p.WantUnsupported {
		return res
	}

	qctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	got, valid, err := r.adapter.QueryValue(qctx, sql)
	res.Got = got
	res.GotNull = err == nil && !valid
	res.Err = err

	r.logger.Debug("probe executed",
		slog.String("probe", p.Name),
		slog.Bool("passed", res.Passed()),
		slog.String("sql", sql))
	return res
}
