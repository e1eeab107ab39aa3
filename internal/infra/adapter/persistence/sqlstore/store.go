// Package sqlstore implements repository.Store on top of database/sql and
// provides typed query helpers for MySQL-compatible stores.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"

	"pagequery/internal/observability/metrics"
	"pagequery/internal/observability/tracing"
	"pagequery/internal/repository"
	"pagequery/internal/resilience/retry"
	"pagequery/internal/sqlparam"
)

// Querier is the subset of *sql.DB used by Store. *sql.DB, *sql.Tx and
// circuitbreaker.DBCircuitBreaker satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// TxBeginner is implemented by queriers that can start transactions.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Store executes queries against a Querier.
type Store struct {
	q       Querier
	limiter *rate.Limiter
	retry   retry.Config
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithRateLimit throttles round trips to perSecond with the given burst.
// A non-positive rate disables throttling.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(s *Store) {
		if perSecond <= 0 {
			s.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithRetry retries queries that fail with transient errors.
func WithRetry(cfg retry.Config) Option {
	return func(s *Store) {
		onRetry := cfg.OnRetry
		cfg.OnRetry = func(attempt int, err error) {
			metrics.RecordStoreRetry()
			if onRetry != nil {
				onRetry(attempt, err)
			}
		}
		s.retry = cfg
	}
}

// WithLogger sets the logger used for debug query logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Store. Without options every call is a single, unthrottled attempt.
func New(q Querier, opts ...Option) *Store {
	s := &Store{
		q:      q,
		retry:  retry.NoRetry(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ repository.Store = (*Store)(nil)

// Execute runs query and returns a cursor over its rows. The caller must close the cursor.
func (s *Store) Execute(ctx context.Context, query string, params sqlparam.List) (repository.Cursor, error) {
	ctx, span := tracing.StartClientSpan(ctx, "sqlstore.Execute",
		attribute.Int("db.params", params.Len()))
	start := time.Now()

	rows, err := s.query(ctx, query, params)
	metrics.RecordStoreQuery(metrics.StatusFor(err), time.Since(start))
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, fmt.Errorf("Execute: %w", err)
	}

	return newRowsCursor(rows), nil
}

func (s *Store) query(ctx context.Context, query string, params sqlparam.List) (*sql.Rows, error) {
	s.debug(ctx, query, params)
	return retry.Do(ctx, s.retry, func() (*sql.Rows, error) {
		if err := s.wait(ctx); err != nil {
			return nil, err
		}
		return s.q.QueryContext(ctx, query, params.Args()...)
	})
}

func (s *Store) exec(ctx context.Context, query string, params sqlparam.List) (sql.Result, error) {
	ctx, span := tracing.StartClientSpan(ctx, "sqlstore.Exec",
		attribute.Int("db.params", params.Len()))
	start := time.Now()
	s.debug(ctx, query, params)

	res, err := retry.Do(ctx, s.retry, func() (sql.Result, error) {
		if err := s.wait(ctx); err != nil {
			return nil, err
		}
		return s.q.ExecContext(ctx, query, params.Args()...)
	})
	metrics.RecordStoreQuery(metrics.StatusFor(err), time.Since(start))
	tracing.EndSpan(span, err)
	return res, translateError(err)
}

func (s *Store) wait(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	return nil
}

func (s *Store) debug(ctx context.Context, query string, params sqlparam.List) {
	if !s.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	s.logger.DebugContext(ctx, "executing query",
		slog.String("sql", RenderSQL(query, params)),
		slog.Int("params", params.Len()))
}
