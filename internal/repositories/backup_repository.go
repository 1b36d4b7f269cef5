package repositories

import (
	"fmt"
	"time"

	"expense-manager/internal/models"

	"gorm.io/gorm"
)

// backupRepository implements BackupRepositoryInterface
type backupRepository struct {
	db *gorm.DB
}

// NewBackupRepository creates a new backup repository
func NewBackupRepository(db *gorm.DB) BackupRepositoryInterface {
	return &backupRepository{
		db: db,
	}
}

// Snapshot reads every collection in insertion order and stamps the
// bundle with the current time.
func (r *backupRepository) Snapshot() (*models.Backup, error) {
	backup := &models.Backup{
		Expenses:   []models.Expense{},
		Budgets:    []models.Budget{},
		Categories: []models.Category{},
		ExportDate: time.Now().UTC(),
	}

	if err := r.db.Order("created_at ASC, id ASC").Find(&backup.Expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to snapshot expenses: %w", err)
	}
	if err := r.db.Order("created_at ASC, id ASC").Find(&backup.Budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to snapshot budgets: %w", err)
	}
	if err := r.db.Order("created_at ASC, id ASC").Find(&backup.Categories).Error; err != nil {
		return nil, fmt.Errorf("failed to snapshot categories: %w", err)
	}

	return backup, nil
}

// Replace overwrites stored collections with the backup's contents inside a
// single transaction. A nil slice leaves the corresponding collection
// untouched; an empty slice clears it. Either every write succeeds or the
// existing data survives intact.
func (r *backupRepository) Replace(backup *models.Backup) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if backup.Expenses != nil {
			if err := tx.Where("1 = 1").Delete(&models.Expense{}).Error; err != nil {
				return fmt.Errorf("failed to clear expenses: %w", err)
			}
			for i := range backup.Expenses {
				if err := tx.Create(&backup.Expenses[i]).Error; err != nil {
					return fmt.Errorf("failed to restore expense: %w", err)
				}
			}
		}

		if backup.Budgets != nil {
			if err := tx.Where("1 = 1").Delete(&models.Budget{}).Error; err != nil {
				return fmt.Errorf("failed to clear budgets: %w", err)
			}
			for i := range backup.Budgets {
				if err := tx.Create(&backup.Budgets[i]).Error; err != nil {
					return fmt.Errorf("failed to restore budget: %w", err)
				}
			}
		}

		if backup.Categories != nil {
			if err := tx.Where("1 = 1").Delete(&models.Category{}).Error; err != nil {
				return fmt.Errorf("failed to clear categories: %w", err)
			}
			for i := range backup.Categories {
				if err := tx.Create(&backup.Categories[i]).Error; err != nil {
					return fmt.Errorf("failed to restore category: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("backup restore failed: %w", err)
	}
	return nil
}
