package repositories

import (
	"errors"
	"fmt"
	"time"

	"expense-manager/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create persists a new expense
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID
func (r *expenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// GetAll retrieves every expense in insertion order
func (r *expenseRepository) GetAll() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Order("created_at ASC, id ASC").Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	return expenses, nil
}

// GetByDateRange retrieves expenses dated within the inclusive range
func (r *expenseRepository) GetByDateRange(start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("date BETWEEN ? AND ?", start, end).
		Order("created_at ASC, id ASC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses by date range: %w", err)
	}
	return expenses, nil
}

// GetByCategory retrieves expenses whose category label matches exactly
func (r *expenseRepository) GetByCategory(category string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("category = ?", category).
		Order("created_at ASC, id ASC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses by category: %w", err)
	}
	return expenses, nil
}

// Update saves changes to an existing expense
func (r *expenseRepository) Update(expense *models.Expense) error {
	result := r.db.Model(&models.Expense{}).
		Where("id = ?", expense.ID).
		Updates(map[string]interface{}{
			"amount":      expense.Amount,
			"category":    expense.Category,
			"description": expense.Description,
			"date":        expense.Date,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense permanently
func (r *expenseRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Expense{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// Count returns the number of stored expenses
func (r *expenseRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Expense{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}
	return count, nil
}
