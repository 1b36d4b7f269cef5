package services

import (
	"testing"
	"time"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"
	"expense-manager/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExpenseServiceSuite defines the test suite for the expense service
type ExpenseServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockExpenseRepo *repository_mocks.MockExpenseRepositoryInterface
	service         ExpenseServiceInterface
}

// SetupTest runs before each test in the suite
func (s *ExpenseServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockExpenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.service = NewExpenseService(s.mockExpenseRepo, noopMetrics{})
}

// TearDownTest runs after each test in the suite
func (s *ExpenseServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestExpenseServiceSuite runs the test suite
func TestExpenseServiceSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceSuite))
}

func (s *ExpenseServiceSuite) TestCreateExpense() {
	req := &dto.CreateExpenseRequest{
		Amount:      42.50,
		Category:    "Food",
		Description: "Lunch",
		Date:        "2025-03-15",
	}

	s.mockExpenseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(expense *models.Expense) error {
		s.True(expense.Amount.Equal(decimal.NewFromFloat(42.50)))
		s.Equal("Food", expense.Category)
		s.Equal(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), expense.Date)
		return nil
	})

	expense, err := s.service.CreateExpense(req)
	s.NoError(err)
	s.NotNil(expense)
}

func (s *ExpenseServiceSuite) TestCreateExpense_RandomizedPayloads() {
	gofakeit.Seed(42)

	for i := 0; i < 10; i++ {
		req := &dto.CreateExpenseRequest{
			Amount:      gofakeit.Price(0.01, 500),
			Category:    gofakeit.RandomString([]string{"Food", "Transport", "Entertainment"}),
			Description: gofakeit.ProductName(),
			Date:        "2025-03-15",
		}

		s.mockExpenseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(expense *models.Expense) error {
			s.NoError(expense.Validate())
			return nil
		})

		expense, err := s.service.CreateExpense(req)
		s.NoError(err)
		s.NotNil(expense)
	}
}

func (s *ExpenseServiceSuite) TestCreateExpense_BadDate() {
	req := &dto.CreateExpenseRequest{
		Amount:      42.50,
		Category:    "Food",
		Description: "Lunch",
		Date:        "15/03/2025",
	}

	expense, err := s.service.CreateExpense(req)
	s.Nil(expense)
	s.Error(err)
}

func (s *ExpenseServiceSuite) TestListExpenses_All() {
	s.mockExpenseRepo.EXPECT().GetAll().Return([]models.Expense{{Category: "Food"}}, nil)

	expenses, err := s.service.ListExpenses("")
	s.NoError(err)
	s.Len(expenses, 1)
}

func (s *ExpenseServiceSuite) TestListExpenses_ByCategory() {
	s.mockExpenseRepo.EXPECT().GetByCategory("Food").Return([]models.Expense{{Category: "Food"}}, nil)

	expenses, err := s.service.ListExpenses("Food")
	s.NoError(err)
	s.Len(expenses, 1)
}

func (s *ExpenseServiceSuite) TestUpdateExpense() {
	id := uuid.New()
	existing := &models.Expense{
		ID:          id,
		Amount:      decimal.NewFromFloat(10),
		Category:    "Food",
		Description: "Old",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now(),
	}

	s.mockExpenseRepo.EXPECT().GetByID(id).Return(existing, nil)
	s.mockExpenseRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(expense *models.Expense) error {
		s.Equal("New description", expense.Description)
		s.True(expense.Amount.Equal(decimal.NewFromFloat(55.75)))
		return nil
	})

	updated, err := s.service.UpdateExpense(id, &dto.UpdateExpenseRequest{
		Amount:      55.75,
		Category:    "Food",
		Description: "New description",
		Date:        "2025-03-02",
	})
	s.NoError(err)
	s.Equal("New description", updated.Description)
}

func (s *ExpenseServiceSuite) TestUpdateExpense_NotFound() {
	id := uuid.New()
	s.mockExpenseRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrExpenseNotFound)

	updated, err := s.service.UpdateExpense(id, &dto.UpdateExpenseRequest{
		Amount:      10,
		Category:    "Food",
		Description: "x",
		Date:        "2025-03-02",
	})
	s.Nil(updated)
	s.ErrorIs(err, repositories.ErrExpenseNotFound)
}

func (s *ExpenseServiceSuite) TestDeleteExpense() {
	id := uuid.New()
	s.mockExpenseRepo.EXPECT().Delete(id).Return(nil)

	s.NoError(s.service.DeleteExpense(id))
}
