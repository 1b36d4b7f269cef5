package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"
)

var (
	ErrMalformedBackup = errors.New("backup file is malformed")
)

type backupService struct {
	backupRepo repositories.BackupRepositoryInterface
	metrics    MetricsRecorderInterface
}

// NewBackupService creates a new backup service
func NewBackupService(backupRepo repositories.BackupRepositoryInterface, metrics MetricsRecorderInterface) BackupServiceInterface {
	return &backupService{
		backupRepo: backupRepo,
		metrics:    metrics,
	}
}

// Export snapshots the full data set for download
func (s *backupService) Export() (*models.Backup, error) {
	backup, err := s.backupRepo.Snapshot()
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementCounter("backup_exported", nil)
	slog.Info("backup exported",
		"expenses", len(backup.Expenses),
		"budgets", len(backup.Budgets),
		"categories", len(backup.Categories))

	return backup, nil
}

// Import parses and validates the entire backup file before touching
// storage, then replaces the stored collections in a single transaction.
// Existing data survives unchanged when the file is rejected.
func (s *backupService) Import(data []byte) (*dto.ImportBackupResponse, error) {
	var backup models.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}

	if err := s.validateBackup(&backup); err != nil {
		return nil, err
	}

	if err := s.backupRepo.Replace(&backup); err != nil {
		s.metrics.IncrementCounter("backup_import_failed", nil)
		return nil, err
	}

	s.metrics.IncrementCounter("backup_imported", nil)
	slog.Info("backup imported",
		"expenses", len(backup.Expenses),
		"budgets", len(backup.Budgets),
		"categories", len(backup.Categories))

	return &dto.ImportBackupResponse{
		Message:            "backup imported",
		ExpensesImported:   len(backup.Expenses),
		BudgetsImported:    len(backup.Budgets),
		CategoriesImported: len(backup.Categories),
	}, nil
}

func (s *backupService) validateBackup(backup *models.Backup) error {
	for i := range backup.Expenses {
		if err := backup.Expenses[i].Validate(); err != nil {
			return fmt.Errorf("%w: expense %d: %v", ErrMalformedBackup, i, err)
		}
	}
	for i := range backup.Budgets {
		if err := backup.Budgets[i].Validate(); err != nil {
			return fmt.Errorf("%w: budget %d: %v", ErrMalformedBackup, i, err)
		}
	}
	for i := range backup.Categories {
		if err := backup.Categories[i].Validate(); err != nil {
			return fmt.Errorf("%w: category %d: %v", ErrMalformedBackup, i, err)
		}
	}
	return nil
}
