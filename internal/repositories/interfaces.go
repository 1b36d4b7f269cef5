package repositories

import (
	"time"

	"expense-manager/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface defines the contract for expense persistence.
// List operations return records in insertion order.
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	GetAll() ([]models.Expense, error)
	GetByDateRange(start, end time.Time) ([]models.Expense, error)
	GetByCategory(category string) ([]models.Expense, error)
	Update(expense *models.Expense) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// BudgetRepositoryInterface defines the contract for budget persistence
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(id uuid.UUID) (*models.Budget, error)
	GetAll() ([]models.Budget, error)
	GetByPeriod(period string) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category persistence
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// BackupRepositoryInterface reads and replaces the three collections as a
// unit. Replace overwrites each non-nil collection wholesale inside a single
// database transaction, so a failed import leaves everything untouched.
type BackupRepositoryInterface interface {
	Snapshot() (*models.Backup, error)
	Replace(backup *models.Backup) error
}
