package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// ParseQueryParams parses a page request from the HTTP query string.
//
// Query parameters:
//   - offset: zero-based index of the first row (default 0)
//   - size: rows per page, 1..config.MaxSize (default config.DefaultSize)
//   - page: 1-based page number; when present it overrides offset
//
// Errors wrap ErrInvalidRequest.
func ParseQueryParams(r *http.Request, config Config) (Request, error) {
	q := r.URL.Query()
	req := Request{Size: config.DefaultSize}

	if s := q.Get("size"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil || size < 1 || size > config.MaxSize {
			return req, fmt.Errorf("%w: size must be between 1 and %d", ErrInvalidRequest, config.MaxSize)
		}
		req.Size = size
	}

	if s := q.Get("offset"); s != "" {
		offset, err := strconv.Atoi(s)
		if err != nil || offset < 0 {
			return req, fmt.Errorf("%w: offset must be a non-negative integer", ErrInvalidRequest)
		}
		req.Offset = offset
	}

	if s := q.Get("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil || page < 1 {
			return req, fmt.Errorf("%w: page must be a positive integer", ErrInvalidRequest)
		}
		req = RequestFromPage(page, req.Size)
	}

	return req, nil
}
