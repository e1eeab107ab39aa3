package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pagequery/internal/countquery"
	"pagequery/internal/repository"
	"pagequery/internal/sqlparam"
)

// Template bundles the typed query helpers around a Store.
//
// Single-row lookups return (value, found, err). found is false when the query
// produced no rows or the first column of the first row is NULL.
type Template struct {
	store *Store
}

// NewTemplate creates a Template that runs its queries through store.
func NewTemplate(store *Store) *Template {
	return &Template{store: store}
}

// Store returns the underlying store.
func (t *Template) Store() *Store {
	return t.store
}

// QueryOne maps the first row of query. Remaining rows are ignored.
func QueryOne[T any](ctx context.Context, t *Template, query string, params sqlparam.List, mapper repository.RowMapper[T]) (T, bool, error) {
	var zero T
	cur, err := t.store.Execute(ctx, query, params)
	if err != nil {
		return zero, false, fmt.Errorf("QueryOne: %w", err)
	}
	defer func() { _ = cur.Close() }()

	if !cur.Next() {
		if err := cur.Err(); err != nil {
			return zero, false, fmt.Errorf("QueryOne: rows.Err: %w", err)
		}
		return zero, false, nil
	}
	v, err := mapper(cur.Row())
	if err != nil {
		return zero, false, fmt.Errorf("QueryOne: map row: %w", err)
	}
	return v, true, nil
}

// QueryList maps every row of query.
func QueryList[T any](ctx context.Context, t *Template, query string, params sqlparam.List, mapper repository.RowMapper[T]) ([]T, error) {
	cur, err := t.store.Execute(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("QueryList: %w", err)
	}
	defer func() { _ = cur.Close() }()

	items := make([]T, 0, 16)
	for cur.Next() {
		v, err := mapper(cur.Row())
		if err != nil {
			return nil, fmt.Errorf("QueryList: map row %d: %w", len(items), err)
		}
		items = append(items, v)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("QueryList: rows.Err: %w", err)
	}
	return items, nil
}

// QueryListWindow is QueryList restricted to rows [offset, offset+size) by a LIMIT clause.
func QueryListWindow[T any](ctx context.Context, t *Template, query string, params sqlparam.List, offset, size int, mapper repository.RowMapper[T]) ([]T, error) {
	return QueryList(ctx, t, countquery.AppendWindow(query, offset, size), params, mapper)
}

func scalar[T any](get func(repository.Row, int) (T, error)) repository.RowMapper[*T] {
	return func(r repository.Row) (*T, error) {
		if r.IsNull(0) {
			return nil, nil
		}
		v, err := get(r, 0)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
}

func queryScalar[T any](ctx context.Context, t *Template, query string, params sqlparam.List, get func(repository.Row, int) (T, error)) (T, bool, error) {
	var zero T
	p, found, err := QueryOne(ctx, t, query, params, scalar(get))
	if err != nil || !found || p == nil {
		return zero, false, err
	}
	return *p, true, nil
}

// QueryInt64 returns the first column of the first row as int64.
func (t *Template) QueryInt64(ctx context.Context, query string, params sqlparam.List) (int64, bool, error) {
	return queryScalar(ctx, t, query, params, repository.Row.Int64)
}

// QueryInt returns the first column of the first row as int32.
func (t *Template) QueryInt(ctx context.Context, query string, params sqlparam.List) (int32, bool, error) {
	return queryScalar(ctx, t, query, params, repository.Row.Int)
}

// QueryString returns the first column of the first row as a string.
func (t *Template) QueryString(ctx context.Context, query string, params sqlparam.List) (string, bool, error) {
	return queryScalar(ctx, t, query, params, repository.Row.String)
}

// QueryTime returns the first column of the first row as a time.
func (t *Template) QueryTime(ctx context.Context, query string, params sqlparam.List) (time.Time, bool, error) {
	return queryScalar(ctx, t, query, params, repository.Row.Time)
}

// QueryInt64s returns the first column of every row. NULLs are skipped.
func (t *Template) QueryInt64s(ctx context.Context, query string, params sqlparam.List) ([]int64, error) {
	return firstColumn(ctx, t, query, params, repository.Row.Int64)
}

// QueryStrings returns the first column of every row. NULLs are skipped.
func (t *Template) QueryStrings(ctx context.Context, query string, params sqlparam.List) ([]string, error) {
	return firstColumn(ctx, t, query, params, repository.Row.String)
}

func firstColumn[T any](ctx context.Context, t *Template, query string, params sqlparam.List, get func(repository.Row, int) (T, error)) ([]T, error) {
	ptrs, err := QueryList(ctx, t, query, params, scalar(get))
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(ptrs))
	for _, p := range ptrs {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

// Exists runs a count query and reports whether the count is positive.
func (t *Template) Exists(ctx context.Context, query string, params sqlparam.List) (bool, error) {
	n, _, err := t.QueryInt64(ctx, query, params)
	if err != nil {
		return false, fmt.Errorf("Exists: %w", err)
	}
	return n > 0, nil
}

// Update executes a write statement and returns the number of affected rows.
func (t *Template) Update(ctx context.Context, query string, params sqlparam.List) (int64, error) {
	res, err := t.store.exec(ctx, query, params)
	if err != nil {
		return 0, fmt.Errorf("Update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("Update: RowsAffected: %w", err)
	}
	return n, nil
}

// UpdateForBool reports whether the statement changed at least one row.
func (t *Template) UpdateForBool(ctx context.Context, query string, params sqlparam.List) (bool, error) {
	n, err := t.Update(ctx, query, params)
	return n > 0, err
}

// Incr executes a counter update and returns 1 when a row changed, else 0.
func (t *Template) Incr(ctx context.Context, query string, params sqlparam.List) (int64, error) {
	ok, err := t.UpdateForBool(ctx, query, params)
	if err != nil || !ok {
		return 0, err
	}
	return 1, nil
}

// Insert inserts one row built from cols and reports whether a row was written.
func (t *Template) Insert(ctx context.Context, table string, cols *Columns) (bool, error) {
	query, params, err := NewInsertBuilder(table, cols).Build()
	if err != nil {
		return false, fmt.Errorf("Insert: %w", err)
	}
	n, err := t.Update(ctx, query, params)
	if err != nil {
		return false, fmt.Errorf("Insert: %w", err)
	}
	return n > 0, nil
}

// InsertIgnore is Insert that returns (false, nil) on a duplicate key.
func (t *Template) InsertIgnore(ctx context.Context, table string, cols *Columns) (bool, error) {
	ok, err := t.Insert(ctx, table, cols)
	if errors.Is(err, ErrDuplicateKey) {
		return false, nil
	}
	return ok, err
}

// InsertForLastID inserts one row and returns the generated id.
func (t *Template) InsertForLastID(ctx context.Context, table string, cols *Columns) (int64, error) {
	query, params, err := NewInsertBuilder(table, cols).Build()
	if err != nil {
		return 0, fmt.Errorf("InsertForLastID: %w", err)
	}
	res, err := t.store.exec(ctx, query, params)
	if err != nil {
		return 0, fmt.Errorf("InsertForLastID: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("InsertForLastID: LastInsertId: %w", err)
	}
	return id, nil
}

// Statement is a query with its bind values.
type Statement struct {
	Query  string
	Params sqlparam.List
}

// BatchUpdate executes statements in one transaction and returns the rows
// affected by each. Any failure rolls the whole batch back.
func (t *Template) BatchUpdate(ctx context.Context, statements ...Statement) ([]int64, error) {
	beginner, ok := t.store.q.(TxBeginner)
	if !ok {
		return nil, fmt.Errorf("BatchUpdate: %w", ErrTxUnsupported)
	}
	tx, err := beginner.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("BatchUpdate: BeginTx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	txStore := &Store{q: tx, limiter: t.store.limiter, retry: t.store.retry, logger: t.store.logger}
	txStore.retry.MaxAttempts = 1

	affected := make([]int64, len(statements))
	for i, st := range statements {
		res, err := txStore.exec(ctx, st.Query, st.Params)
		if err != nil {
			return nil, fmt.Errorf("BatchUpdate: statement %d: %w", i, err)
		}
		if affected[i], err = res.RowsAffected(); err != nil {
			return nil, fmt.Errorf("BatchUpdate: statement %d: RowsAffected: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("BatchUpdate: Commit: %w", translateError(err))
	}
	return affected, nil
}

var _ TxBeginner = (*sql.DB)(nil)
