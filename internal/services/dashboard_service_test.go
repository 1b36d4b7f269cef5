package services

import (
	"testing"
	"time"

	"expense-manager/internal/models"
	"expense-manager/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// DashboardServiceSuite defines the test suite for the dashboard service
type DashboardServiceSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockExpenseRepo  *repository_mocks.MockExpenseRepositoryInterface
	mockBudgetRepo   *repository_mocks.MockBudgetRepositoryInterface
	mockCategoryRepo *repository_mocks.MockCategoryRepositoryInterface
	service          DashboardServiceInterface
}

// SetupTest runs before each test in the suite
func (s *DashboardServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockExpenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.mockBudgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.mockCategoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)

	dateRange := &dateRangeService{
		nowFunc: func() time.Time {
			return time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
		},
	}

	s.service = NewDashboardService(s.mockExpenseRepo, s.mockBudgetRepo, s.mockCategoryRepo, dateRange, NewAggregationService())
}

// TearDownTest runs after each test in the suite
func (s *DashboardServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestDashboardServiceSuite runs the test suite
func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) TestGetDashboardStats() {
	expenses := []models.Expense{
		expenseOn(150, "Food", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)),
		expenseOn(50, "Transport", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		// outside the current month, counted only in the chart rows
		expenseOn(75, "Food", time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)),
	}
	budgets := []models.Budget{
		{Category: "Food", Amount: decimal.NewFromInt(300), Period: models.BudgetPeriodMonthly},
		{Category: "Transport", Amount: decimal.NewFromInt(100), Period: models.BudgetPeriodMonthly},
	}

	s.mockExpenseRepo.EXPECT().GetAll().Return(expenses, nil)
	s.mockBudgetRepo.EXPECT().GetByPeriod(models.BudgetPeriodMonthly).Return(budgets, nil)
	s.mockCategoryRepo.EXPECT().Count().Return(int64(4), nil)

	stats, err := s.service.GetDashboardStats()
	s.NoError(err)
	s.True(stats.TotalExpenses.Equal(decimal.NewFromInt(200)))
	s.True(stats.TotalBudget.Equal(decimal.NewFromInt(400)))
	s.True(stats.Remaining.Equal(decimal.NewFromInt(200)))
	s.True(stats.PercentUsed.Equal(decimal.NewFromInt(50)))
	s.Equal(2, stats.ExpenseCount)
	s.Equal(4, stats.CategoryCount)

	s.Len(stats.CategoryRows, 2)
	s.Equal("Food", stats.CategoryRows[0].Category)
	s.True(stats.CategoryRows[0].Total.Equal(decimal.NewFromInt(225)))

	s.Len(stats.MonthlyRows, 12)
	s.True(stats.MonthlyRows[0].Total.Equal(decimal.NewFromInt(75)))
	s.True(stats.MonthlyRows[2].Total.Equal(decimal.NewFromInt(200)))
}

func (s *DashboardServiceSuite) TestGetDashboardStats_NoBudgets() {
	s.mockExpenseRepo.EXPECT().GetAll().Return([]models.Expense{
		expenseOn(25, "Food", time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)),
	}, nil)
	s.mockBudgetRepo.EXPECT().GetByPeriod(models.BudgetPeriodMonthly).Return([]models.Budget{}, nil)
	s.mockCategoryRepo.EXPECT().Count().Return(int64(0), nil)

	stats, err := s.service.GetDashboardStats()
	s.NoError(err)
	s.True(stats.PercentUsed.IsZero())
	s.True(stats.Remaining.Equal(decimal.NewFromInt(-25)))
}
