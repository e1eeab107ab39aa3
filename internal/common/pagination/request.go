package pagination

import "math"

// Request selects the window [Offset, Offset+Size) of an ordered result set.
type Request struct {
	Offset int `json:"offset" yaml:"offset"` // Zero-based index of the first row
	Size   int `json:"size" yaml:"size"`     // Maximum number of rows on the page
}

// NewRequest creates a request for the given window.
func NewRequest(offset, size int) Request {
	return Request{Offset: offset, Size: size}
}

// RequestFromPage converts a 1-based page number and page size into a Request.
// Pages below 1 are treated as page 1.
func RequestFromPage(page, size int) Request {
	if page < 1 {
		page = 1
	}
	return Request{Offset: CalculateOffset(page, size), Size: size}
}

// End returns the exclusive upper bound of the window, saturating at
// math.MaxInt.
func (r Request) End() int {
	if r.Size > 0 && r.Offset > math.MaxInt-r.Size {
		return math.MaxInt
	}
	return r.Offset + r.Size
}

// Contains reports whether the row at index falls inside the window.
func (r Request) Contains(index int) bool {
	return index >= r.Offset && index < r.End()
}
