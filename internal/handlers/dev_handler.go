package handlers

import (
	"net/http"
	"time"

	"expense-manager/internal/models"
	"expense-manager/internal/repositories"
	"expense-manager/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	backupRepo  repositories.BackupRepositoryInterface
	generator   services.ExpenseGeneratorInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	expenseRepo repositories.ExpenseRepositoryInterface,
	backupRepo repositories.BackupRepositoryInterface,
) *DevHandler {
	return &DevHandler{
		expenseRepo: expenseRepo,
		backupRepo:  backupRepo,
		generator:   services.NewExpenseGenerator(),
	}
}

// GenerateTestData seeds the store with realistic expense history: random
// purchases spread over the window plus monthly recurring bills.
//
// Method: POST /api/v1/dev/generate-test-data
// Environment: Development only
//
// Query parameters:
//   - count: Number of historical expenses to generate (default: 100, max: 1000)
//   - days: Number of days of history to generate (default: 90, max: 365)
//
// Success Response: 200 OK
//   - message: Success message
//   - expenses_created: Number of expenses created
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	count := getIntParam(c, "count", 100)
	if count < 1 {
		count = 1
	}
	if count > 1000 {
		count = 1000
	}

	days := getIntParam(c, "days", 90)
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	endDate := time.Now().UTC()
	startDate := endDate.AddDate(0, 0, -days)

	expenses := h.generator.GenerateHistoricalExpenses(startDate, endDate, count)
	expenses = append(expenses, h.generator.GenerateRecurringBills(startDate, endDate)...)

	created := 0
	for _, expense := range expenses {
		if err := h.expenseRepo.Create(expense); err != nil {
			continue
		}
		created++
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":          "test data generated successfully",
		"expenses_created": created,
		"date_range": map[string]string{
			"start": startDate.Format(time.RFC3339),
			"end":   endDate.Format(time.RFC3339),
		},
	})
}

// ClearTestData removes every stored expense. Budgets and categories are kept.
//
// Method: DELETE /api/v1/dev/test-data
// Environment: Development only
func (h *DevHandler) ClearTestData(c echo.Context) error {
	count, err := h.expenseRepo.Count()
	if err != nil {
		return SendSystemError(c, err)
	}

	// An empty non-nil slice overwrites the expense collection wholesale
	if err := h.backupRepo.Replace(&models.Backup{Expenses: []models.Expense{}}); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":          "test data cleared successfully",
		"expenses_deleted": count,
	})
}
