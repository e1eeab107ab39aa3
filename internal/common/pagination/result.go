package pagination

// Result is one page of mapped rows plus the total row count of the
// unbounded query.
//
// Example usage:
//
//	type User struct { ... }
//	result, err := pagequery.Paginate(ctx, engine, query, params, req, mapUser)
//	// result is of type pagination.Result[User]
type Result[T any] struct {
	Items      []T   `json:"items"`       // Rows on the current page, never nil
	TotalCount int64 `json:"total_count"` // Total rows across all pages
}

// NewResult creates a result, replacing a nil items slice with an empty one.
func NewResult[T any](items []T, total int64) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{Items: items, TotalCount: total}
}

// Metadata derives page metadata for the request that produced the result.
func (r Result[T]) Metadata(req Request) Metadata {
	return Metadata{
		Total:      r.TotalCount,
		Offset:     req.Offset,
		Size:       req.Size,
		Page:       CalculatePage(req.Offset, req.Size),
		TotalPages: CalculateTotalPages(r.TotalCount, req.Size),
		HasMore:    int64(req.End()) < r.TotalCount,
	}
}
