package service

import "strings"

// Fixed page sizes: admin tables show 10 rows, the storefront grid 9 cards.
const (
	AdminPageSize      = 10
	StorefrontPageSize = 9
)

// PageCount is ceil(n/size) with a floor of 1, so an empty collection still
// renders page 1 of 1.
func PageCount(n, size int) int {
	if n <= 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Paginate slices one page out of items. The requested page is clamped to
// [1, PageCount]; while items is non-empty a valid page never comes back
// empty. Returns the page slice and the clamped page number.
func Paginate[T any](items []T, page, size int) ([]T, int) {
	total := PageCount(len(items), size)
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	start := (page - 1) * size
	if start > len(items) {
		start = len(items)
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], page
}

// containsFold is the case-insensitive substring match every search box
// uses.
func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(q))
}
