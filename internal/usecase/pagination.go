package usecase

import (
	usecasecontract "courseadmin/internal/usecase/contract"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// normalizePageLimit clamps pagination parameters so slicing is always
// defined: non-positive values fall back to the defaults.
func normalizePageLimit(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// paginate slices an in-memory grouped list into a page. Total is the full
// list length, Pages is ceil(Total/limit).
func paginate[T any](items []T, page, limit int) usecasecontract.Page[T] {
	page, limit = normalizePageLimit(page, limit)

	start := (page - 1) * limit
	end := start + limit
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return usecasecontract.Page[T]{
		Items: items[start:end],
		Total: len(items),
		Page:  page,
		Pages: pageCount(len(items), limit),
	}
}

func pageCount(total, limit int) int {
	return (total + limit - 1) / limit
}
