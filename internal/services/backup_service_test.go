package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"expense-manager/internal/models"
	"expense-manager/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BackupServiceSuite defines the test suite for the backup service
type BackupServiceSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockBackupRepo *repository_mocks.MockBackupRepositoryInterface
	service        BackupServiceInterface
}

// SetupTest runs before each test in the suite
func (s *BackupServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBackupRepo = repository_mocks.NewMockBackupRepositoryInterface(s.ctrl)
	s.service = NewBackupService(s.mockBackupRepo, noopMetrics{})
}

// TearDownTest runs after each test in the suite
func (s *BackupServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestBackupServiceSuite runs the test suite
func TestBackupServiceSuite(t *testing.T) {
	suite.Run(t, new(BackupServiceSuite))
}

func validBackup() *models.Backup {
	return &models.Backup{
		Expenses: []models.Expense{
			{
				Amount:      decimal.NewFromFloat(42.00),
				Category:    "Food",
				Description: "Lunch",
				Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		Budgets: []models.Budget{
			{Category: "Food", Amount: decimal.NewFromInt(300), Period: models.BudgetPeriodMonthly},
		},
		Categories: []models.Category{
			{Name: "Food", Icon: "utensils", Color: "#ef4444"},
		},
		ExportDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *BackupServiceSuite) TestExport() {
	backup := validBackup()
	s.mockBackupRepo.EXPECT().Snapshot().Return(backup, nil)

	result, err := s.service.Export()
	s.NoError(err)
	s.Equal(backup, result)
}

func (s *BackupServiceSuite) TestImport_Success() {
	data, err := json.Marshal(validBackup())
	s.NoError(err)

	s.mockBackupRepo.EXPECT().Replace(gomock.Any()).Return(nil)

	resp, err := s.service.Import(data)
	s.NoError(err)
	s.Equal(1, resp.ExpensesImported)
	s.Equal(1, resp.BudgetsImported)
	s.Equal(1, resp.CategoriesImported)
}

func (s *BackupServiceSuite) TestImport_MalformedJSON() {
	resp, err := s.service.Import([]byte("{not json"))
	s.Nil(resp)
	s.ErrorIs(err, ErrMalformedBackup)
}

func (s *BackupServiceSuite) TestImport_InvalidRecordRejectedBeforeStorage() {
	backup := validBackup()
	backup.Expenses[0].Amount = decimal.Zero
	data, err := json.Marshal(backup)
	s.NoError(err)

	// Replace must never be called for a rejected file
	resp, err := s.service.Import(data)
	s.Nil(resp)
	s.ErrorIs(err, ErrMalformedBackup)
}

func (s *BackupServiceSuite) TestImport_ReplaceFailurePropagates() {
	data, err := json.Marshal(validBackup())
	s.NoError(err)

	s.mockBackupRepo.EXPECT().Replace(gomock.Any()).Return(errors.New("disk full"))

	resp, err := s.service.Import(data)
	s.Nil(resp)
	s.Error(err)
}
