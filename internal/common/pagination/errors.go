package pagination

import "errors"

// ErrInvalidRequest is returned when a page request has a negative offset or
// a size outside [1, MaxSize].
var ErrInvalidRequest = errors.New("invalid page request")
