package handlers

import (
	"net/http"
	"strings"

	"expense-manager/internal/dto"
	"expense-manager/internal/errors"
	"expense-manager/internal/repositories"
	"expense-manager/internal/services"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// CreateExpense records a new expense
//
// Method: POST /api/v1/expenses
//
// Request body: amount, category, description, date (YYYY-MM-DD)
//
// Success Response: 201 Created with the stored expense
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid request body or field values
//   - 500: SYSTEM_001 - Internal server error
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	expense, err := h.expenseService.CreateExpense(&req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid expense date") {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, expense)
}

// ListExpenses returns all expenses in insertion order
//
// Method: GET /api/v1/expenses
//
// Query parameters:
//   - category: optional, narrows the list to a single category
//
// Success Response: 200 OK with expenses and total count
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	category := c.QueryParam("category")

	expenses, err := h.expenseService.ListExpenses(category)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExpenseListResponse{
		Expenses: expenses,
		Total:    int64(len(expenses)),
	})
}

// GetExpense retrieves a single expense by ID
//
// Method: GET /api/v1/expenses/:id
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	expense, err := h.expenseService.GetExpense(id)
	if err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, expense)
}

// UpdateExpense replaces an expense's editable fields
//
// Method: PUT /api/v1/expenses/:id
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid request body or field values
//   - 400: EXPENSE_003 - Invalid expense ID format
//   - 404: EXPENSE_001 - Expense not found
//   - 500: SYSTEM_001 - Internal server error
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	expense, err := h.expenseService.UpdateExpense(id, &req)
	if err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		if strings.Contains(err.Error(), "invalid expense date") {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, expense)
}

// DeleteExpense removes an expense permanently
//
// Method: DELETE /api/v1/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
