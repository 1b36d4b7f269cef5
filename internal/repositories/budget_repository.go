package repositories

import (
	"errors"
	"fmt"

	"expense-manager/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Create persists a new budget
func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetByID retrieves a budget by ID
func (r *budgetRepository) GetByID(id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("id = ?", id).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// GetAll retrieves every budget in insertion order
func (r *budgetRepository) GetAll() ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Order("created_at ASC, id ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetByPeriod retrieves budgets with the given period in insertion order
func (r *budgetRepository) GetByPeriod(period string) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("period = ?", period).
		Order("created_at ASC, id ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets by period: %w", err)
	}
	return budgets, nil
}

// Update saves changes to an existing budget
func (r *budgetRepository) Update(budget *models.Budget) error {
	result := r.db.Model(&models.Budget{}).
		Where("id = ?", budget.ID).
		Updates(map[string]interface{}{
			"category": budget.Category,
			"amount":   budget.Amount,
			"period":   budget.Period,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget permanently
func (r *budgetRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
