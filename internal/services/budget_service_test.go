package services

import (
	"testing"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"
	"expense-manager/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetServiceSuite defines the test suite for the budget service
type BudgetServiceSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockBudgetRepo *repository_mocks.MockBudgetRepositoryInterface
	service        BudgetServiceInterface
}

// SetupTest runs before each test in the suite
func (s *BudgetServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBudgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.service = NewBudgetService(s.mockBudgetRepo, noopMetrics{})
}

// TearDownTest runs after each test in the suite
func (s *BudgetServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestBudgetServiceSuite runs the test suite
func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceSuite))
}

func (s *BudgetServiceSuite) TestCreateBudget() {
	req := &dto.CreateBudgetRequest{
		Category: "Food",
		Amount:   300,
		Period:   models.BudgetPeriodMonthly,
	}

	s.mockBudgetRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(budget *models.Budget) error {
		s.Equal("Food", budget.Category)
		s.True(budget.Amount.Equal(decimal.NewFromInt(300)))
		s.Equal(models.BudgetPeriodMonthly, budget.Period)
		return nil
	})

	budget, err := s.service.CreateBudget(req)
	s.NoError(err)
	s.NotNil(budget)
}

func (s *BudgetServiceSuite) TestCreateBudget_DuplicatesAllowed() {
	req := &dto.CreateBudgetRequest{
		Category: "Food",
		Amount:   100,
		Period:   models.BudgetPeriodWeekly,
	}

	s.mockBudgetRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(2)

	_, err := s.service.CreateBudget(req)
	s.NoError(err)
	_, err = s.service.CreateBudget(req)
	s.NoError(err)
}

func (s *BudgetServiceSuite) TestListBudgets() {
	budgets := []models.Budget{
		{Category: "Food", Amount: decimal.NewFromInt(300), Period: models.BudgetPeriodMonthly},
		{Category: "Transport", Amount: decimal.NewFromInt(80), Period: models.BudgetPeriodWeekly},
	}
	s.mockBudgetRepo.EXPECT().GetAll().Return(budgets, nil)

	result, err := s.service.ListBudgets("")
	s.NoError(err)
	s.Len(result, 2)
}

func (s *BudgetServiceSuite) TestListBudgets_FilteredByPeriod() {
	s.mockBudgetRepo.EXPECT().GetByPeriod(models.BudgetPeriodWeekly).Return([]models.Budget{
		{Category: "Transport", Amount: decimal.NewFromInt(80), Period: models.BudgetPeriodWeekly},
	}, nil)

	result, err := s.service.ListBudgets(models.BudgetPeriodWeekly)
	s.NoError(err)
	s.Len(result, 1)
}

func (s *BudgetServiceSuite) TestListBudgets_InvalidPeriod() {
	_, err := s.service.ListBudgets("fortnightly")
	s.ErrorIs(err, models.ErrInvalidBudgetPeriod)
}

func (s *BudgetServiceSuite) TestUpdateBudget() {
	id := uuid.New()
	existing := &models.Budget{
		ID:       id,
		Category: "Food",
		Amount:   decimal.NewFromInt(300),
		Period:   models.BudgetPeriodMonthly,
	}

	s.mockBudgetRepo.EXPECT().GetByID(id).Return(existing, nil)
	s.mockBudgetRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(budget *models.Budget) error {
		s.True(budget.Amount.Equal(decimal.NewFromInt(450)))
		s.Equal(models.BudgetPeriodWeekly, budget.Period)
		return nil
	})

	budget, err := s.service.UpdateBudget(id, &dto.UpdateBudgetRequest{
		Category: "Food",
		Amount:   450,
		Period:   models.BudgetPeriodWeekly,
	})
	s.NoError(err)
	s.NotNil(budget)
}

func (s *BudgetServiceSuite) TestUpdateBudget_InvalidPeriod() {
	id := uuid.New()
	s.mockBudgetRepo.EXPECT().GetByID(id).Return(&models.Budget{
		ID:       id,
		Category: "Food",
		Amount:   decimal.NewFromInt(300),
		Period:   models.BudgetPeriodMonthly,
	}, nil)

	_, err := s.service.UpdateBudget(id, &dto.UpdateBudgetRequest{
		Category: "Food",
		Amount:   450,
		Period:   "yearly",
	})
	s.ErrorIs(err, models.ErrInvalidBudgetPeriod)
}

func (s *BudgetServiceSuite) TestUpdateBudget_NotFound() {
	id := uuid.New()
	s.mockBudgetRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrBudgetNotFound)

	_, err := s.service.UpdateBudget(id, &dto.UpdateBudgetRequest{
		Category: "Food",
		Amount:   450,
		Period:   models.BudgetPeriodMonthly,
	})
	s.ErrorIs(err, repositories.ErrBudgetNotFound)
}

func (s *BudgetServiceSuite) TestDeleteBudget() {
	id := uuid.New()
	s.mockBudgetRepo.EXPECT().Delete(id).Return(nil)

	s.NoError(s.service.DeleteBudget(id))
}

func (s *BudgetServiceSuite) TestDeleteBudget_NotFound() {
	id := uuid.New()
	s.mockBudgetRepo.EXPECT().Delete(id).Return(repositories.ErrBudgetNotFound)

	s.ErrorIs(s.service.DeleteBudget(id), repositories.ErrBudgetNotFound)
}
