package dto

import (
	"expense-manager/internal/models"
)

// Expense Request DTOs

// CreateExpenseRequest represents the request payload for recording an expense
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,min=1,max=50"`
	Description string  `json:"description" validate:"required,min=1,max=200"`
	Date        string  `json:"date" validate:"required,date_string"`
}

// UpdateExpenseRequest represents the request payload for replacing an
// expense's editable fields
type UpdateExpenseRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required,min=1,max=50"`
	Description string  `json:"description" validate:"required,min=1,max=200"`
	Date        string  `json:"date" validate:"required,date_string"`
}

// Expense Response DTOs

// ExpenseListResponse represents a list of expenses in insertion order
type ExpenseListResponse struct {
	Expenses []models.Expense `json:"expenses"`
	Total    int64            `json:"total"`
}
