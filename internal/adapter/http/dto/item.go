package dto

type ItemResponse struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Quantity   int          `json:"quantity"`
	Done       bool         `json:"done"`
	CategoryID *string      `json:"categoryId"`
	Category   *CategoryRef `json:"category,omitempty"`
	CreatedAt  string       `json:"createdAt"`
	UpdatedAt  string       `json:"updatedAt"`
}

// CategoryRef is the category embedded in an item.
type CategoryRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type PageMeta struct {
	Page       int    `json:"page"`
	PerPage    int    `json:"perPage"`
	Total      int    `json:"total"`
	TotalPages int    `json:"totalPages"`
	SortBy     string `json:"sortBy"`
	Order      string `json:"order"`
}

type ItemListResponse struct {
	Data []ItemResponse `json:"data"`
	Meta PageMeta       `json:"meta"`
}
