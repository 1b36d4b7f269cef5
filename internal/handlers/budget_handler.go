package handlers

import (
	"net/http"

	"expense-manager/internal/dto"
	"expense-manager/internal/errors"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"
	"expense-manager/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// CreateBudget creates a new budget entry
//
// Method: POST /api/v1/budgets
//
// Request body: category, amount, period (daily, weekly, or monthly)
//
// Success Response: 201 Created with the stored budget
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid request body or field values
//   - 500: SYSTEM_001 - Internal server error
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	budget, err := h.budgetService.CreateBudget(&req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, budget)
}

// ListBudgets returns all budgets in insertion order
//
// Method: GET /api/v1/budgets
//
// Query parameters:
//   - period: optional, narrows the list to one period (daily, weekly, monthly)
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	period := c.QueryParam("period")

	budgets, err := h.budgetService.ListBudgets(period)
	if err != nil {
		if err == models.ErrInvalidBudgetPeriod {
			return SendError(c, errors.BudgetInvalidPeriod)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BudgetListResponse{
		Budgets: budgets,
		Total:   len(budgets),
	})
}

// GetBudget retrieves a single budget by ID
//
// Method: GET /api/v1/budgets/:id
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.BudgetInvalidID)
	}

	budget, err := h.budgetService.GetBudget(id)
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// UpdateBudget replaces a budget's editable fields
//
// Method: PUT /api/v1/budgets/:id
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid request body or field values
//   - 400: BUDGET_003 - Invalid budget ID format
//   - 404: BUDGET_001 - Budget not found
//   - 500: SYSTEM_001 - Internal server error
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.BudgetInvalidID)
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	budget, err := h.budgetService.UpdateBudget(id, &req)
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes a budget permanently. Expenses recorded against the
// budget's category are untouched.
//
// Method: DELETE /api/v1/budgets/:id
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.BudgetInvalidID)
	}

	if err := h.budgetService.DeleteBudget(id); err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
