// Package repository defines the narrow store interfaces the pagination engine
// runs against. Concrete implementations live under internal/infra.
package repository

import (
	"context"
	"time"

	"pagequery/internal/sqlparam"
)

// Store executes a query with positional parameters and returns a forward-only cursor.
type Store interface {
	Execute(ctx context.Context, query string, params sqlparam.List) (Cursor, error)
}

// Cursor iterates the rows of an executed query.
//
// Next must be called before the first Row. Err reports the error that stopped
// iteration, if any. Close releases the underlying resources and is safe to
// call more than once.
type Cursor interface {
	Next() bool
	Row() Row
	Err() error
	Close() error
}

// Row gives positional (0-based) access to the current row of a Cursor.
// Typed getters fail with ErrRowMapping when the column is out of range,
// NULL, or holds a value that does not convert to the requested type.
type Row interface {
	Len() int
	Int(i int) (int32, error)
	Int64(i int) (int64, error)
	Float64(i int) (float64, error)
	Bool(i int) (bool, error)
	String(i int) (string, error)
	Time(i int) (time.Time, error)
	IsNull(i int) bool
	Value(i int) any
}

// RowMapper converts the current row into a T.
type RowMapper[T any] func(Row) (T, error)

// Scannable is implemented by types that populate themselves from a row.
type Scannable interface {
	ScanRow(Row) error
}

// MapperFor returns a RowMapper for a type whose pointer implements Scannable.
func MapperFor[T any, PT interface {
	*T
	Scannable
}]() RowMapper[T] {
	return func(r Row) (T, error) {
		var v T
		if err := PT(&v).ScanRow(r); err != nil {
			return v, err
		}
		return v, nil
	}
}
