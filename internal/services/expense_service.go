package services

import (
	"fmt"
	"log/slog"
	"time"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type expenseService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	metrics     MetricsRecorderInterface
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenseRepo repositories.ExpenseRepositoryInterface, metrics MetricsRecorderInterface) ExpenseServiceInterface {
	return &expenseService{
		expenseRepo: expenseRepo,
		metrics:     metrics,
	}
}

// CreateExpense records a new expense from a validated request
func (s *expenseService) CreateExpense(req *dto.CreateExpenseRequest) (*models.Expense, error) {
	date, err := time.ParseInLocation(DateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid expense date %q: %w", req.Date, err)
	}

	expense := &models.Expense{
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("expense_created", map[string]string{"category": expense.Category})
	slog.Info("expense created",
		"expense_id", expense.ID,
		"category", expense.Category,
		"amount", expense.Amount.String())

	return expense, nil
}

// GetExpense retrieves a single expense by ID
func (s *expenseService) GetExpense(id uuid.UUID) (*models.Expense, error) {
	return s.expenseRepo.GetByID(id)
}

// ListExpenses returns all expenses in insertion order, optionally narrowed
// to a single category
func (s *expenseService) ListExpenses(category string) ([]models.Expense, error) {
	if category != "" {
		return s.expenseRepo.GetByCategory(category)
	}
	return s.expenseRepo.GetAll()
}

// UpdateExpense replaces an expense's editable fields
func (s *expenseService) UpdateExpense(id uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	date, err := time.ParseInLocation(DateLayout, req.Date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid expense date %q: %w", req.Date, err)
	}

	expense, err := s.expenseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	expense.Amount = decimal.NewFromFloat(req.Amount)
	expense.Category = req.Category
	expense.Description = req.Description
	expense.Date = date

	if err := expense.Validate(); err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Update(expense); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("expense_updated", map[string]string{"category": expense.Category})
	slog.Info("expense updated", "expense_id", expense.ID)

	return expense, nil
}

// DeleteExpense removes an expense permanently
func (s *expenseService) DeleteExpense(id uuid.UUID) error {
	if err := s.expenseRepo.Delete(id); err != nil {
		return err
	}

	s.metrics.IncrementCounter("expense_deleted", nil)
	slog.Info("expense deleted", "expense_id", id)

	return nil
}

// CountExpenses returns the total number of recorded expenses
func (s *expenseService) CountExpenses() (int64, error) {
	return s.expenseRepo.Count()
}
