// Package countquery derives a row-count query from a paged SELECT and appends
// the window clause used to fetch a single page.
package countquery

import "errors"

var (
	// ErrUnrewritableQuery is returned when a count query cannot be derived
	// from the input text. Register an explicit count query with
	// Rewriter.WithOverride for such statements.
	ErrUnrewritableQuery = errors.New("query cannot be rewritten into a count query")

	// ErrParameterMismatch is returned when the number of placeholders in the
	// query differs from the number of bound parameters.
	ErrParameterMismatch = errors.New("placeholder count does not match parameter count")
)
