package mapper

import (
	"time"

	"shoplist/internal/adapter/http/dto"
	"shoplist/internal/core/domain"
)

// TimestampLayout is RFC 3339 with fixed millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ToItemResponses(items []domain.Item) []dto.ItemResponse {
	responses := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToItemResponse(item))
	}
	return responses
}

func ToItemResponse(item domain.Item) dto.ItemResponse {
	response := dto.ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Done:      item.Done,
		CreatedAt: formatTime(item.CreatedAt),
		UpdatedAt: formatTime(item.UpdatedAt),
	}

	if item.CategoryID != nil {
		value := *item.CategoryID
		response.CategoryID = &value
	}

	if item.Category != nil {
		response.Category = &dto.CategoryRef{
			ID:        item.Category.ID,
			Name:      item.Category.Name,
			CreatedAt: formatTime(item.Category.CreatedAt),
			UpdatedAt: formatTime(item.Category.UpdatedAt),
		}
	}

	return response
}

func ToItemListResponse(page domain.Page[domain.Item]) dto.ItemListResponse {
	return dto.ItemListResponse{
		Data: ToItemResponses(page.Data),
		Meta: dto.PageMeta{
			Page:       page.Meta.Page,
			PerPage:    page.Meta.PerPage,
			Total:      page.Meta.Total,
			TotalPages: page.Meta.TotalPages,
			SortBy:     string(page.Meta.SortBy),
			Order:      string(page.Meta.Order),
		},
	}
}
