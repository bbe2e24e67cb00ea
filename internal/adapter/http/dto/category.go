package dto

type CategoryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ItemsCount *int   `json:"itemsCount,omitempty"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type CategoryListResponse struct {
	Data []CategoryResponse `json:"data"`
}
