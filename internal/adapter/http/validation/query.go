package validation

import (
	"net/url"
	"strconv"
	"strings"

	"shoplist/internal/core/domain"
)

var (
	sortByAllowed = allowedList(domain.SortColumns)
	orderAllowed  = allowedList([]domain.SortOrder{domain.OrderAsc, domain.OrderDesc})
	perPageRule   = "min=" + strconv.Itoa(domain.MinPerPage) + ",max=" + strconv.Itoa(domain.MaxPerPage)
)

// ParseItemQuery validates the item listing parameters in order page,
// perPage, onlyOpen, categoryId, sortBy, order and fills in defaults.
// Values are trimmed and an empty value counts as absent. Unknown
// parameters are ignored.
func ParseItemQuery(values url.Values) (domain.ItemQuery, error) {
	q := domain.DefaultItemQuery()

	if raw, ok := param(values, "page"); ok {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ItemQuery{}, domain.NewValidationError("page", domain.ReasonNotInteger)
		}
		if validate.Var(page, "min=1") != nil {
			return domain.ItemQuery{}, domain.NewValidationError("page", domain.ReasonTooSmall).With("Min", domain.DefaultPage)
		}
		q.Page = page
	}

	if raw, ok := param(values, "perPage"); ok {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			return domain.ItemQuery{}, domain.NewValidationError("perPage", domain.ReasonNotInteger)
		}
		if validate.Var(perPage, perPageRule) != nil {
			return domain.ItemQuery{}, domain.NewValidationError("perPage", domain.ReasonOutOfRange).
				With("Min", domain.MinPerPage).
				With("Max", domain.MaxPerPage)
		}
		q.PerPage = perPage
	}

	if raw, ok := param(values, "onlyOpen"); ok {
		switch raw {
		case "true":
			q.OnlyOpen = true
		case "false":
			q.OnlyOpen = false
		default:
			return domain.ItemQuery{}, domain.NewValidationError("onlyOpen", domain.ReasonNotBoolean)
		}
	}

	if raw, ok := param(values, "categoryId"); ok {
		if !IsID(raw) {
			return domain.ItemQuery{}, domain.NewValidationError("categoryId", domain.ReasonNotUUID)
		}
		q.CategoryID = &raw
	}

	if raw, ok := param(values, "sortBy"); ok {
		column := domain.SortColumn(raw)
		if !column.Valid() {
			return domain.ItemQuery{}, domain.NewValidationError("sortBy", domain.ReasonNotAllowed).With("Allowed", sortByAllowed)
		}
		q.SortBy = column
	}

	if raw, ok := param(values, "order"); ok {
		order := domain.SortOrder(raw)
		if !order.Valid() {
			return domain.ItemQuery{}, domain.NewValidationError("order", domain.ReasonNotAllowed).With("Allowed", orderAllowed)
		}
		q.Order = order
	}

	if raw, ok := param(values, "search"); ok {
		q.Search = &raw
	}

	return q, nil
}

func param(values url.Values, key string) (string, bool) {
	value := strings.TrimSpace(values.Get(key))
	return value, value != ""
}

func allowedList[T ~string](values []T) string {
	parts := make([]string, 0, len(values))
	for _, value := range values {
		parts = append(parts, string(value))
	}
	return strings.Join(parts, ", ")
}
