package mapper

import (
	"shoplist/internal/adapter/http/dto"
	"shoplist/internal/core/domain"
)

func ToCategoryResponse(category domain.Category) dto.CategoryResponse {
	response := dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		CreatedAt: formatTime(category.CreatedAt),
		UpdatedAt: formatTime(category.UpdatedAt),
	}

	if category.ItemsCount != nil {
		count := *category.ItemsCount
		response.ItemsCount = &count
	}

	return response
}

func ToCategoryListResponse(categories []domain.Category) dto.CategoryListResponse {
	data := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		data = append(data, ToCategoryResponse(category))
	}
	return dto.CategoryListResponse{Data: data}
}
