package domain

type SortColumn string

const (
	SortByCreatedAt SortColumn = "createdAt"
	SortByUpdatedAt SortColumn = "updatedAt"
	SortByName      SortColumn = "name"
	SortByQuantity  SortColumn = "quantity"
	SortByDone      SortColumn = "done"
)

// SortColumns is the allow-list of columns an item listing can be ordered by.
var SortColumns = []SortColumn{SortByCreatedAt, SortByUpdatedAt, SortByName, SortByQuantity, SortByDone}

func (c SortColumn) Valid() bool {
	for _, col := range SortColumns {
		if c == col {
			return true
		}
	}
	return false
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

func (o SortOrder) Valid() bool {
	return o == OrderAsc || o == OrderDesc
}

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MinPerPage     = 1
	MaxPerPage     = 50

	DefaultSortBy = SortByCreatedAt
	DefaultOrder  = OrderDesc
)

// ItemQuery is the validated intent of an item listing request. It is only
// ever produced by the validation layer.
type ItemQuery struct {
	Search     *string
	OnlyOpen   bool
	CategoryID *string
	SortBy     SortColumn
	Order      SortOrder
	Page       int
	PerPage    int
}

func DefaultItemQuery() ItemQuery {
	return ItemQuery{
		SortBy:  DefaultSortBy,
		Order:   DefaultOrder,
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
	}
}

type PageMeta struct {
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	SortBy     SortColumn
	Order      SortOrder
}

type Page[T any] struct {
	Data []T
	Meta PageMeta
}
