// Package sqlparam provides the ordered, typed bind-value list that travels with a
// query text through rewriting and execution.
package sqlparam

import (
	"errors"
	"fmt"
)

// Sentinel errors for parameter list construction.
var (
	// ErrUnsupportedArgumentType indicates that a positional argument has a runtime
	// type outside the recognized scalar set. It is a programming error and is never retried.
	ErrUnsupportedArgumentType = errors.New("unsupported argument type")
)

// UnsupportedArgumentError describes which positional argument could not be converted.
type UnsupportedArgumentError struct {
	Position int
	GoType   string
}

// Error returns a formatted message naming the argument position and its Go type.
func (e *UnsupportedArgumentError) Error() string {
	return fmt.Sprintf("argument %d: unsupported type %s", e.Position, e.GoType)
}

// Unwrap allows errors.Is(err, ErrUnsupportedArgumentType).
func (e *UnsupportedArgumentError) Unwrap() error {
	return ErrUnsupportedArgumentType
}
