package client

type SortBy string

const (
	SortByCreatedAt SortBy = "createdAt"
	SortByUpdatedAt SortBy = "updatedAt"
	SortByName      SortBy = "name"
	SortByQuantity  SortBy = "quantity"
	SortByDone      SortBy = "done"
)

type Order string

const (
	OrderAsc  Order = "asc"
	OrderDesc Order = "desc"
)

type Category struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
	ItemsCount *int   `json:"itemsCount,omitempty"`
}

type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Quantity   int       `json:"quantity"`
	Done       bool      `json:"done"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
	CategoryID *string   `json:"categoryId"`
	Category   *Category `json:"category,omitempty"`
}

type Meta struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"perPage"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
	SortBy     SortBy `json:"sortBy"`
	Order      Order  `json:"order"`
}

type ItemPage struct {
	Data []Item `json:"data"`
	Meta Meta   `json:"meta"`
}

// ItemCreate leaves quantity out of the body when zero, so the server
// applies its default of 1.
type ItemCreate struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity,omitempty"`
	Done       *bool   `json:"done,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
}

// ItemUpdate sends only the non-nil fields. Set ClearCategory to send an
// explicit null categoryId.
type ItemUpdate struct {
	Name          *string
	Quantity      *int
	Done          *bool
	CategoryID    *string
	ClearCategory bool
}

func (u ItemUpdate) body() map[string]any {
	body := make(map[string]any, 4)
	if u.Name != nil {
		body["name"] = *u.Name
	}
	if u.Quantity != nil {
		body["quantity"] = *u.Quantity
	}
	if u.Done != nil {
		body["done"] = *u.Done
	}
	switch {
	case u.ClearCategory:
		body["categoryId"] = nil
	case u.CategoryID != nil:
		body["categoryId"] = *u.CategoryID
	}
	return body
}
