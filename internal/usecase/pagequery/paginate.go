package pagequery

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"pagequery/internal/common/pagination"
	"pagequery/internal/countquery"
	"pagequery/internal/repository"
	"pagequery/internal/sqlparam"
)

// Paginate returns the window req of query, mapped with mapper, and the total
// row count of the unbounded query.
//
// With the two-call strategy the count query and the windowed query run
// concurrently; a failure in either cancels the other. With the single-pass
// strategy query runs once and every row is read. In both cases a failure
// returns no partial result.
func Paginate[T any](ctx context.Context, e *Engine, query string, params sqlparam.List, req pagination.Request, mapper repository.RowMapper[T]) (pagination.Result[T], error) {
	var result pagination.Result[T]
	err := e.run(ctx, req, func(ctx context.Context, logger *slog.Logger) (outcome, error) {
		var err error
		out := outcome{}
		switch e.cfg.Strategy {
		case pagination.SinglePass:
			result, err = singlePass(ctx, e, query, params, req, mapper)
			out.scanned = result.TotalCount
		default:
			result, err = twoCall(ctx, e, logger, query, params, req, mapper)
			out.scanned = int64(len(result.Items)) + 1
		}
		if err != nil {
			return outcome{}, err
		}
		out.returned = len(result.Items)
		out.total = result.TotalCount
		return out, nil
	})
	if err != nil {
		return pagination.Result[T]{}, err
	}
	return result, nil
}

func singlePass[T any](ctx context.Context, e *Engine, query string, params sqlparam.List, req pagination.Request, mapper repository.RowMapper[T]) (pagination.Result[T], error) {
	cur, err := e.store.Execute(ctx, query, params)
	if err != nil {
		return pagination.Result[T]{}, fmt.Errorf("execute query: %w", err)
	}
	return pagination.Extract(cur, req, mapper)
}

func twoCall[T any](ctx context.Context, e *Engine, logger *slog.Logger, query string, params sqlparam.List, req pagination.Request, mapper repository.RowMapper[T]) (pagination.Result[T], error) {
	rewritten, err := e.rewriter.Rewrite(query, params)
	if err != nil {
		pagination.RecordRewriteFailure()
		return pagination.Result[T]{}, fmt.Errorf("rewrite count query: %w", err)
	}
	if len(rewritten.Removed) > 0 {
		logger.Debug("count query dropped parameters",
			slog.Any("positions", rewritten.Removed))
	}

	windowed := countquery.AppendWindow(query, req.Offset, req.Size)

	var (
		total int64
		items []T
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := e.count(gctx, rewritten)
		total = n
		return err
	})
	g.Go(func() error {
		cur, err := e.store.Execute(gctx, windowed, params)
		if err != nil {
			return fmt.Errorf("execute window query: %w", err)
		}
		items, err = collect(cur, req.Size, mapper)
		return err
	})
	if err := g.Wait(); err != nil {
		return pagination.Result[T]{}, err
	}

	return pagination.NewResult(items, total), nil
}

// collect maps every row of cur and closes it.
func collect[T any](cur repository.Cursor, sizeHint int, mapper repository.RowMapper[T]) (items []T, err error) {
	defer func() {
		if cerr := cur.Close(); cerr != nil && err == nil {
			items, err = nil, fmt.Errorf("close cursor: %w", cerr)
		}
	}()

	items = make([]T, 0, min(max(sizeHint, 0), 1024))
	for cur.Next() {
		item, err := mapper(cur.Row())
		if err != nil {
			return nil, fmt.Errorf("map row %d: %w", len(items), err)
		}
		items = append(items, item)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate cursor: %w", err)
	}
	return items, nil
}
