package services

import (
	"cmp"
	"slices"
	"time"

	"github.com/lorrc/restaurant-console/internal/core/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// page is one slice of a filtered list.
type page[T any] struct {
	Items      []T
	TotalPages int
	Current    int
	Total      int
}

// paginate filters items by status, orders them newest first and cuts
// out the requested page. An out of range page is empty.
func paginate[T any](items []T, params domain.ListParams, status func(T) string, created func(T) time.Time) page[T] {
	if params.FiltersStatus() {
		items = slices.DeleteFunc(items, func(v T) bool { return status(v) != params.Status })
	}
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(created(b).UnixNano(), created(a).UnixNano())
	})

	current := params.Page
	if current < 1 {
		current = defaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	total := len(items)
	totalPages := max(1, (total+limit-1)/limit)

	start := total
	if current-1 <= total/limit {
		start = min((current-1)*limit, total)
	}
	end := min(start+limit, total)

	return page[T]{
		Items:      slices.Clip(items[start:end]),
		TotalPages: totalPages,
		Current:    current,
		Total:      total,
	}
}
