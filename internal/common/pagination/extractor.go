package pagination

import (
	"fmt"

	"pagequery/internal/repository"
)

// Extract reads cursor to the end in a single pass. Every row is counted and
// only rows with index in [req.Offset, req.Offset+req.Size) are mapped.
//
// The cursor is always closed. A mapping or cursor error aborts extraction and
// no partial result is returned.
func Extract[T any](cursor repository.Cursor, req Request, mapper repository.RowMapper[T]) (result Result[T], err error) {
	defer func() {
		if cerr := cursor.Close(); cerr != nil && err == nil {
			result, err = Result[T]{}, fmt.Errorf("close cursor: %w", cerr)
		}
	}()

	capacity := req.Size
	if capacity < 0 {
		capacity = 0
	}
	items := make([]T, 0, min(capacity, 1024))

	var total int64
	for cursor.Next() {
		if req.Contains(int(total)) {
			item, err := mapper(cursor.Row())
			if err != nil {
				return Result[T]{}, fmt.Errorf("map row %d: %w", total, err)
			}
			items = append(items, item)
		}
		total++
	}
	if err := cursor.Err(); err != nil {
		return Result[T]{}, fmt.Errorf("iterate cursor: %w", err)
	}

	return NewResult(items, total), nil
}
