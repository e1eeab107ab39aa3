package pagination

// CalculateOffset calculates the row offset for a 1-based page number.
//
// Formula: offset = (page - 1) * size
//
// Examples:
//   - Page 1, Size 20 -> Offset 0
//   - Page 2, Size 20 -> Offset 20
//   - Page 3, Size 10 -> Offset 20
func CalculateOffset(page, size int) int {
	return (page - 1) * size
}

// CalculateTotalPages calculates the total number of pages based on total rows and page size.
// Uses ceiling division to ensure all rows are included.
//
// Special cases:
//   - If total is 0, returns 1 (always at least 1 page)
//   - If size is not positive, returns 1
//
// Examples:
//   - Total 0, Size 20 -> 1 page
//   - Total 20, Size 20 -> 1 page
//   - Total 21, Size 20 -> 2 pages
func CalculateTotalPages(total int64, size int) int {
	if total == 0 || size <= 0 {
		return 1 // Always at least 1 page
	}
	// Ceiling division: (total + size - 1) / size
	return int((total + int64(size) - 1) / int64(size))
}

// CalculatePage returns the 1-based page containing the row at offset.
func CalculatePage(offset, size int) int {
	if size <= 0 || offset < 0 {
		return 1
	}
	return offset/size + 1
}
