package pagination

// Metadata describes where a page sits within the full result set.
type Metadata struct {
	Total      int64 `json:"total"`       // Total number of rows the unbounded query produces
	Offset     int   `json:"offset"`      // Zero-based index of the first row on the page
	Size       int   `json:"size"`        // Requested page size
	Page       int   `json:"page"`        // 1-based page number derived from offset and size
	TotalPages int   `json:"total_pages"` // Calculated total number of pages
	HasMore    bool  `json:"has_more"`    // True if rows exist beyond this page
}
