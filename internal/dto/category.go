package dto

import (
	"expense-manager/internal/models"
)

// Category Request DTOs

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Icon  string `json:"icon" validate:"omitempty,max=50"`
	Color string `json:"color" validate:"required,hex_color"`
}

// UpdateCategoryRequest represents the request payload for replacing a
// category's editable fields
type UpdateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=50"`
	Icon  string `json:"icon" validate:"omitempty,max=50"`
	Color string `json:"color" validate:"required,hex_color"`
}

// Category Response DTOs

// CategoryListResponse represents a list of categories in insertion order
type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
	Total      int64             `json:"total"`
}
