package repositories

import (
	"testing"
	"time"

	"expense-manager/internal/database"
	"expense-manager/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExpenseRepositorySuite defines the test suite for ExpenseRepository
type ExpenseRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ExpenseRepositoryInterface
}

// SetupTest runs before each test in the suite
func (s *ExpenseRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewExpenseRepository(s.db.DB)
}

// TearDownTest runs after each test in the suite
func (s *ExpenseRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestExpenseRepositorySuite runs the test suite
func TestExpenseRepositorySuite(t *testing.T) {
	suite.Run(t, new(ExpenseRepositorySuite))
}

func (s *ExpenseRepositorySuite) TestCreate() {
	expense := &models.Expense{
		Amount:      decimal.NewFromFloat(42.50),
		Category:    "Food",
		Description: "Lunch",
		Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	err := s.repo.Create(expense)
	s.NoError(err)
	s.NotEqual(uuid.Nil, expense.ID)
	s.NotZero(expense.CreatedAt)
}

func (s *ExpenseRepositorySuite) TestCreate_InvalidAmount() {
	expense := &models.Expense{
		Amount:      decimal.Zero,
		Category:    "Food",
		Description: "Lunch",
		Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	err := s.repo.Create(expense)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *ExpenseRepositorySuite) TestGetByID() {
	created := database.CreateTestExpense(s.T(), s.db, "Transport", 12.00, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

	fetched, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal(created.ID, fetched.ID)
	s.Equal("Transport", fetched.Category)
	s.True(fetched.Amount.Equal(decimal.NewFromFloat(12.00)))
}

func (s *ExpenseRepositorySuite) TestGetByID_NotFound() {
	fetched, err := s.repo.GetByID(uuid.New())
	s.Nil(fetched)
	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestGetAll_InsertionOrder() {
	first := database.CreateTestExpense(s.T(), s.db, "Food", 10.00, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	second := database.CreateTestExpense(s.T(), s.db, "Transport", 20.00, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	third := database.CreateTestExpense(s.T(), s.db, "Food", 30.00, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	expenses, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(expenses, 3)
	s.Equal(first.ID, expenses[0].ID)
	s.Equal(second.ID, expenses[1].ID)
	s.Equal(third.ID, expenses[2].ID)
}

func (s *ExpenseRepositorySuite) TestGetByDateRange() {
	inside := database.CreateTestExpense(s.T(), s.db, "Food", 10.00, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	onStart := database.CreateTestExpense(s.T(), s.db, "Food", 15.00, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	database.CreateTestExpense(s.T(), s.db, "Food", 20.00, time.Date(2025, 2, 28, 23, 59, 0, 0, time.UTC))
	database.CreateTestExpense(s.T(), s.db, "Food", 25.00, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC)

	expenses, err := s.repo.GetByDateRange(start, end)
	s.NoError(err)
	s.Len(expenses, 2)

	ids := []uuid.UUID{expenses[0].ID, expenses[1].ID}
	s.Contains(ids, inside.ID)
	s.Contains(ids, onStart.ID)
}

func (s *ExpenseRepositorySuite) TestGetByCategory() {
	database.CreateTestExpense(s.T(), s.db, "Food", 10.00, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	database.CreateTestExpense(s.T(), s.db, "Transport", 20.00, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))
	database.CreateTestExpense(s.T(), s.db, "Food", 30.00, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC))

	expenses, err := s.repo.GetByCategory("Food")
	s.NoError(err)
	s.Len(expenses, 2)
	for _, e := range expenses {
		s.Equal("Food", e.Category)
	}
}

func (s *ExpenseRepositorySuite) TestUpdate() {
	created := database.CreateTestExpense(s.T(), s.db, "Food", 10.00, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	created.Amount = decimal.NewFromFloat(55.75)
	created.Description = "Dinner out"
	err := s.repo.Update(created)
	s.NoError(err)

	fetched, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.True(fetched.Amount.Equal(decimal.NewFromFloat(55.75)))
	s.Equal("Dinner out", fetched.Description)
}

func (s *ExpenseRepositorySuite) TestUpdate_NotFound() {
	expense := &models.Expense{
		ID:          uuid.New(),
		Amount:      decimal.NewFromFloat(10.00),
		Category:    "Food",
		Description: "Ghost",
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	err := s.repo.Update(expense)
	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestDelete() {
	created := database.CreateTestExpense(s.T(), s.db, "Food", 10.00, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	err := s.repo.Delete(created.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(created.ID)
	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(uuid.New())
	s.ErrorIs(err, ErrExpenseNotFound)
}

func (s *ExpenseRepositorySuite) TestCount() {
	count, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(0), count)

	database.CreateTestExpense(s.T(), s.db, "Food", 10.00, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	database.CreateTestExpense(s.T(), s.db, "Food", 20.00, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC))

	count, err = s.repo.Count()
	s.NoError(err)
	s.Equal(int64(2), count)
}
