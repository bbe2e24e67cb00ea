// Package query turns a validated item listing intent into storage-agnostic
// filter, ordering and window descriptors, and assembles the paginated
// response envelope from the storage results.
package query

import (
	"math"

	"shoplist/internal/core/domain"
)

// Filter holds conjunctive predicates. A nil or false term is unconstrained.
type Filter struct {
	// Search is matched as a case-insensitive substring of the item name.
	Search     *string
	OnlyOpen   bool
	CategoryID *string
}

func (f Filter) IsEmpty() bool {
	return f.Search == nil && !f.OnlyOpen && f.CategoryID == nil
}

// Ordering has no secondary key: rows that tie on Column come back in
// whatever order the storage engine yields them.
type Ordering struct {
	Column    domain.SortColumn
	Direction domain.SortOrder
}

type Window struct {
	Offset int
	Limit  int
}

func BuildFilter(q domain.ItemQuery) Filter {
	f := Filter{OnlyOpen: q.OnlyOpen}
	if q.Search != nil && *q.Search != "" {
		search := *q.Search
		f.Search = &search
	}
	if q.CategoryID != nil && *q.CategoryID != "" {
		categoryID := *q.CategoryID
		f.CategoryID = &categoryID
	}
	return f
}

// ForCategory is the filter the category-delete guard counts with.
func ForCategory(categoryID string) Filter {
	return Filter{CategoryID: &categoryID}
}

func BuildOrdering(q domain.ItemQuery) Ordering {
	return Ordering{Column: q.SortBy, Direction: q.Order}
}

// BuildWindow saturates the offset at math.MaxInt when (page-1)*perPage
// would overflow, so any page past the data stays past it.
func BuildWindow(q domain.ItemQuery) Window {
	skipped := q.Page - 1
	offset := math.MaxInt
	if q.PerPage <= 0 || skipped <= math.MaxInt/q.PerPage {
		offset = skipped * q.PerPage
	}
	return Window{
		Offset: offset,
		Limit:  q.PerPage,
	}
}

// TotalPages is ceil(total/perPage) and never less than 1.
func TotalPages(total, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 1
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// ComposeEnvelope builds the page envelope. total must be the count of all
// rows matching the filter, before offset and limit were applied. The
// requested page is echoed as-is even when it lies past the last page.
func ComposeEnvelope[T any](records []T, total int, q domain.ItemQuery) domain.Page[T] {
	data := records
	if data == nil {
		data = []T{}
	}
	if len(data) > q.PerPage {
		data = data[:q.PerPage]
	}

	return domain.Page[T]{
		Data: data,
		Meta: domain.PageMeta{
			Page:       q.Page,
			PerPage:    q.PerPage,
			Total:      total,
			TotalPages: TotalPages(total, q.PerPage),
			SortBy:     q.SortBy,
			Order:      q.Order,
		},
	}
}
