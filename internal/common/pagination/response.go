package pagination

// Response is the JSON envelope of a paginated HTTP response.
//
// Example usage:
//
//	res, err := svc.ListPlayers(ctx, filter, req)
//	response := pagination.NewResponse(toDTOs(res.Items), res.Metadata(req))
type Response[T any] struct {
	Data       []T      `json:"data"`       // Items on the current page
	Pagination Metadata `json:"pagination"` // Position of the page within the full result
}

// NewResponse creates a paginated response, replacing nil data with an empty slice.
func NewResponse[T any](data []T, metadata Metadata) Response[T] {
	if data == nil {
		data = []T{}
	}
	return Response[T]{
		Data:       data,
		Pagination: metadata,
	}
}
