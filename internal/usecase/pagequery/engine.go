package pagequery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"pagequery/internal/common/pagination"
	"pagequery/internal/countquery"
	"pagequery/internal/observability/logging"
	"pagequery/internal/observability/tracing"
	"pagequery/internal/repository"
	"pagequery/internal/sqlparam"
)

// Engine paginates queries against a Store using the strategy from its
// configuration. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg      pagination.Config
	store    repository.Store
	rewriter *countquery.Rewriter
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRewriter replaces the count rewriter, typically one carrying manual
// count-query overrides.
func WithRewriter(r *countquery.Rewriter) Option {
	return func(e *Engine) {
		if r != nil {
			e.rewriter = r
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine validates cfg and creates an engine over store.
func NewEngine(store repository.Store, cfg pagination.Config, opts ...Option) (*Engine, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:      cfg,
		store:    store,
		rewriter: countquery.NewRewriter(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() pagination.Config {
	return e.cfg
}

// Strategy returns the configured pagination strategy.
func (e *Engine) Strategy() pagination.Strategy {
	return e.cfg.Strategy
}

// Count derives the count query for query and returns its value.
func (e *Engine) Count(ctx context.Context, query string, params sqlparam.List) (int64, error) {
	ctx, span := tracing.StartSpan(ctx, "pagequery.Count")
	rewritten, err := e.rewriter.Rewrite(query, params)
	if err != nil {
		pagination.RecordRewriteFailure()
		tracing.EndSpan(span, err)
		return 0, fmt.Errorf("rewrite count query: %w", err)
	}
	n, err := e.count(ctx, rewritten)
	tracing.EndSpan(span, err)
	return n, err
}

func (e *Engine) count(ctx context.Context, rewritten countquery.Result) (int64, error) {
	cur, err := e.store.Execute(ctx, rewritten.Query, rewritten.Params)
	if err != nil {
		return 0, fmt.Errorf("execute count query: %w", err)
	}
	defer func() { _ = cur.Close() }()

	if !cur.Next() {
		if err := cur.Err(); err != nil {
			return 0, fmt.Errorf("read count: %w", err)
		}
		return 0, ErrEmptyCount
	}
	n, err := cur.Row().Int64(0)
	if err != nil {
		return 0, fmt.Errorf("read count: %w", err)
	}
	return n, nil
}

// outcome summarizes one paginated call for metrics and logs.
type outcome struct {
	returned int
	total    int64
	scanned  int64
}

// run wraps one paginated call with request validation, tracing, metrics and logs.
func (e *Engine) run(ctx context.Context, req pagination.Request, fn func(ctx context.Context, logger *slog.Logger) (outcome, error)) error {
	strategy := e.cfg.Strategy
	ctx, queryID := ensureQueryID(ctx)

	ctx, span := tracing.StartSpan(ctx, "pagequery.Paginate",
		attribute.String("pagination.strategy", strategy.String()),
		attribute.Int("pagination.offset", req.Offset),
		attribute.Int("pagination.size", req.Size))
	start := time.Now()

	pagination.LogRequest(e.logger, queryID, strategy, req)

	var out outcome
	err := req.CheckWindow()
	if err == nil {
		out, err = fn(ctx, logging.WithQueryID(ctx, e.logger))
	}

	elapsed := time.Since(start)
	pagination.RecordRequest(strategy, err)
	pagination.RecordDuration(strategy, elapsed.Seconds())
	pagination.RecordRowsScanned(strategy, out.scanned)
	span.SetAttributes(
		attribute.Int64("pagination.total", out.total),
		attribute.Int("pagination.rows", out.returned))
	tracing.EndSpan(span, err)

	if err != nil {
		errorType := classify(err)
		pagination.RecordError(errorType)
		pagination.LogError(e.logger, queryID, req, err, errorType)
		return err
	}
	pagination.LogResponse(e.logger, queryID, req, out.returned, out.total, elapsed)
	return nil
}

// classify maps an error onto the pagination_errors_total type label.
func classify(err error) string {
	switch {
	case errors.Is(err, pagination.ErrInvalidRequest):
		return "validation"
	case errors.Is(err, countquery.ErrUnrewritableQuery), errors.Is(err, countquery.ErrParameterMismatch):
		return "rewrite"
	case errors.Is(err, repository.ErrRowMapping):
		return "mapping"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "timeout"
	default:
		return "store"
	}
}
