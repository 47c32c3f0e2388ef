package application

import "strconv"

const QuestionsPerPage = 10

// Paginate returns the 1-based page of items, clipped to the slice bounds.
// A page past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		return []T{}
	}

	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	result := make([]T, end-start)
	copy(result, items[start:end])
	return result
}

// ParsePage reads the page query value, falling back to 1 when it is absent or not a number.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}
