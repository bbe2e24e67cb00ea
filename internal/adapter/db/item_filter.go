package db

import (
	"strings"

	"shoplist/internal/core/domain"
	"shoplist/internal/core/query"
)

const likeEscape = "!"

var itemSortColumns = map[domain.SortColumn]string{
	domain.SortByCreatedAt: "i.created_at",
	domain.SortByUpdatedAt: "i.updated_at",
	domain.SortByName:      "i.name",
	domain.SortByQuantity:  "i.quantity",
	domain.SortByDone:      "i.done",
}

// itemWhere renders the filter as a WHERE clause over the items table
// aliased as "i". Listing, counting and the category-delete guard all go
// through here so they agree on what matches.
func itemWhere(filter query.Filter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.Search != nil {
		conditions = append(conditions, "LOWER(i.name) LIKE ? ESCAPE '"+likeEscape+"'")
		args = append(args, "%"+escapeLike(strings.ToLower(*filter.Search))+"%")
	}
	if filter.OnlyOpen {
		conditions = append(conditions, "i.done = ?")
		args = append(args, false)
	}
	if filter.CategoryID != nil {
		conditions = append(conditions, "i.category_id = ?")
		args = append(args, *filter.CategoryID)
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func itemOrderBy(ordering query.Ordering) string {
	column, ok := itemSortColumns[ordering.Column]
	if !ok {
		column = itemSortColumns[domain.DefaultSortBy]
	}

	direction := "DESC"
	if ordering.Direction == domain.OrderAsc {
		direction = "ASC"
	}

	return " ORDER BY " + column + " " + direction
}

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(value string) string {
	replacer := strings.NewReplacer(
		likeEscape, likeEscape+likeEscape,
		"%", likeEscape+"%",
		"_", likeEscape+"_",
	)
	return replacer.Replace(value)
}
