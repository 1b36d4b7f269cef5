package dto

import (
	"expense-manager/internal/models"
)

// Budget Request DTOs

// CreateBudgetRequest represents the request payload for creating a budget
type CreateBudgetRequest struct {
	Category string  `json:"category" validate:"required,min=1,max=50"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Period   string  `json:"period" validate:"required,budget_period"`
}

// UpdateBudgetRequest represents the request payload for replacing a budget's
// editable fields
type UpdateBudgetRequest struct {
	Category string  `json:"category" validate:"required,min=1,max=50"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Period   string  `json:"period" validate:"required,budget_period"`
}

// Budget Response DTOs

// BudgetListResponse represents a list of budgets in insertion order
type BudgetListResponse struct {
	Budgets []models.Budget `json:"budgets"`
	Total   int             `json:"total"`
}
