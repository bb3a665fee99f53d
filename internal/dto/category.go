package dto

import (
	"time"

	"github.com/kakeibo-app/kakeibo-backend/internal/core/domain"
)

// CreateCategoryRequest defines the structure for creating a user category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=50"`
	Type  string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Icon  string `json:"icon" binding:"omitempty,max=20"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// CategoryResponse defines the structure for API responses containing category details.
type CategoryResponse struct {
	CategoryID string    `json:"categoryID"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Icon       string    `json:"icon"`
	Color      string    `json:"color"`
	IsSystem   bool      `json:"isSystem"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(category *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: category.CategoryID,
		Name:       category.Name,
		Type:       string(category.Type),
		Icon:       category.Icon,
		Color:      category.Color,
		IsSystem:   category.IsSystem,
		CreatedAt:  category.CreatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain categories to DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = ToCategoryResponse(&categories[i])
	}
	return responses
}
