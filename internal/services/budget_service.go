package services

import (
	"log/slog"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type budgetService struct {
	budgetRepo repositories.BudgetRepositoryInterface
	metrics    MetricsRecorderInterface
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgetRepo repositories.BudgetRepositoryInterface, metrics MetricsRecorderInterface) BudgetServiceInterface {
	return &budgetService{
		budgetRepo: budgetRepo,
		metrics:    metrics,
	}
}

// CreateBudget creates a budget entry. Multiple budgets may exist for the
// same category and period; each is tracked separately.
func (s *budgetService) CreateBudget(req *dto.CreateBudgetRequest) (*models.Budget, error) {
	budget := &models.Budget{
		Category: req.Category,
		Amount:   decimal.NewFromFloat(req.Amount),
		Period:   req.Period,
	}

	if err := s.budgetRepo.Create(budget); err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("budget_created", map[string]string{"period": budget.Period})
	slog.Info("budget created",
		"budget_id", budget.ID,
		"category", budget.Category,
		"period", budget.Period)

	return budget, nil
}

// GetBudget retrieves a single budget by ID
func (s *budgetService) GetBudget(id uuid.UUID) (*models.Budget, error) {
	return s.budgetRepo.GetByID(id)
}

// ListBudgets returns all budgets in insertion order, optionally narrowed to
// a single period
func (s *budgetService) ListBudgets(period string) ([]models.Budget, error) {
	if period != "" {
		if !models.IsValidBudgetPeriod(period) {
			return nil, models.ErrInvalidBudgetPeriod
		}
		return s.budgetRepo.GetByPeriod(period)
	}
	return s.budgetRepo.GetAll()
}

// UpdateBudget replaces a budget's editable fields
func (s *budgetService) UpdateBudget(id uuid.UUID, req *dto.UpdateBudgetRequest) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	budget.Category = req.Category
	budget.Amount = decimal.NewFromFloat(req.Amount)
	budget.Period = req.Period

	if err := budget.Validate(); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Update(budget); err != nil {
		return nil, err
	}

	slog.Info("budget updated", "budget_id", budget.ID)

	return budget, nil
}

// DeleteBudget removes a budget permanently
func (s *budgetService) DeleteBudget(id uuid.UUID) error {
	if err := s.budgetRepo.Delete(id); err != nil {
		return err
	}

	s.metrics.IncrementCounter("budget_deleted", nil)
	slog.Info("budget deleted", "budget_id", id)

	return nil
}
