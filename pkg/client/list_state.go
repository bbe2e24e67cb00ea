package client

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPerPage = 10
	MaxPerPage     = 50
)

// ListState is the item list view: filters, sort and the requested page.
// Changing a filter or the page size sends the user back to page 1; sorting
// keeps the current page.
type ListState struct {
	Search     string
	OnlyOpen   bool
	CategoryID string
	Page       int
	PerPage    int
	SortBy     SortBy
	Order      Order
}

func NewListState() ListState {
	return ListState{
		Page:    1,
		PerPage: DefaultPerPage,
		SortBy:  SortByCreatedAt,
		Order:   OrderDesc,
	}
}

func (s *ListState) SetSearch(search string) {
	if s.Search == search {
		return
	}
	s.Search = search
	s.Page = 1
}

func (s *ListState) SetOnlyOpen(onlyOpen bool) {
	if s.OnlyOpen == onlyOpen {
		return
	}
	s.OnlyOpen = onlyOpen
	s.Page = 1
}

// SetCategoryID filters by category; an empty id clears the filter.
func (s *ListState) SetCategoryID(categoryID string) {
	if s.CategoryID == categoryID {
		return
	}
	s.CategoryID = categoryID
	s.Page = 1
}

func (s *ListState) SetPerPage(perPage int) {
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	if s.PerPage == perPage {
		return
	}
	s.PerPage = perPage
	s.Page = 1
}

func (s *ListState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}

// ToggleSort flips the direction when column is already the sort column,
// otherwise sorts ascending by column.
func (s *ListState) ToggleSort(column SortBy) {
	if s.SortBy == column {
		if s.Order == OrderAsc {
			s.Order = OrderDesc
		} else {
			s.Order = OrderAsc
		}
		return
	}
	s.SortBy = column
	s.Order = OrderAsc
}

// NextPage advances unless the last known meta says this is the last page.
// Without meta there is no upper bound.
func (s *ListState) NextPage(last *Meta) {
	if last != nil && s.Page >= last.TotalPages {
		return
	}
	s.Page++
}

func (s *ListState) PrevPage() {
	if s.Page > 1 {
		s.Page--
	}
}

// Params derives the list query string from the state alone.
func (s ListState) Params() url.Values {
	params := url.Values{}
	if search := strings.TrimSpace(s.Search); search != "" {
		params.Set("search", search)
	}
	params.Set("onlyOpen", strconv.FormatBool(s.OnlyOpen))
	if s.Page > 0 {
		params.Set("page", strconv.Itoa(s.Page))
	}
	if s.PerPage > 0 {
		params.Set("perPage", strconv.Itoa(s.PerPage))
	}
	if s.SortBy != "" {
		params.Set("sortBy", string(s.SortBy))
	}
	if s.Order != "" {
		params.Set("order", string(s.Order))
	}
	if s.CategoryID != "" {
		params.Set("categoryId", s.CategoryID)
	}
	return params
}
