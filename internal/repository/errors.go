package repository

import (
	"errors"
	"fmt"
)

// ErrRowMapping indicates that a row value could not be converted to the
// requested Go type.
var ErrRowMapping = errors.New("row mapping failed")

// RowMappingError describes a failed column conversion.
type RowMappingError struct {
	Column int
	Want   string
	Got    string
}

func (e *RowMappingError) Error() string {
	return fmt.Sprintf("column %d: cannot read %s as %s", e.Column, e.Got, e.Want)
}

// Unwrap allows errors.Is(err, ErrRowMapping).
func (e *RowMappingError) Unwrap() error {
	return ErrRowMapping
}
