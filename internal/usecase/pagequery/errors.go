// Package pagequery runs a query against a store and returns one page of
// mapped rows together with the total row count of the unbounded query.
package pagequery

import "errors"

// Sentinel errors for pagination engine operations.
var (
	// ErrEmptyCount indicates that the count query produced no rows.
	// A well formed count query always yields exactly one row.
	ErrEmptyCount = errors.New("count query returned no rows")

	// ErrNilStore indicates that the engine was constructed without a store.
	ErrNilStore = errors.New("store is required")
)
