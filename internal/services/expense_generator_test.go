package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExpenseGeneratorSuite defines the test suite for the expense generator
type ExpenseGeneratorSuite struct {
	suite.Suite
	generator ExpenseGeneratorInterface
	start     time.Time
	end       time.Time
}

// SetupTest runs before each test in the suite
func (s *ExpenseGeneratorSuite) SetupTest() {
	s.generator = NewExpenseGenerator()
	s.start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
}

// TestExpenseGeneratorSuite runs the test suite
func TestExpenseGeneratorSuite(t *testing.T) {
	suite.Run(t, new(ExpenseGeneratorSuite))
}

func (s *ExpenseGeneratorSuite) TestGenerateHistoricalExpenses() {
	expenses := s.generator.GenerateHistoricalExpenses(s.start, s.end, 50)
	s.Len(expenses, 50)

	for _, expense := range expenses {
		s.NoError(expense.Validate())
		s.False(expense.Date.Before(s.start))
		s.False(expense.Date.After(s.end))
	}
}

func (s *ExpenseGeneratorSuite) TestGenerateRecurringBills() {
	bills := s.generator.GenerateRecurringBills(s.start, s.end)

	// three whole months in the range, one bill each
	s.Len(bills, 3)
	for _, bill := range bills {
		s.Equal("Bills & Utilities", bill.Category)
		s.NoError(bill.Validate())
	}
	s.Equal(bills[0].Date.Day(), bills[1].Date.Day())
}

func (s *ExpenseGeneratorSuite) TestGenerateDailyPurchases() {
	end := time.Date(2025, 1, 7, 23, 59, 59, 0, time.UTC)
	purchases := s.generator.GenerateDailyPurchases(s.start, end)

	// at most three purchases on each of seven days
	s.LessOrEqual(len(purchases), 21)
	for _, purchase := range purchases {
		s.NoError(purchase.Validate())
		s.False(purchase.Date.Before(s.start))
		s.False(purchase.Date.After(end))
	}
}

func (s *ExpenseGeneratorSuite) TestGenerateAmount_RespectsProfile() {
	for _, category := range s.generator.GetCategoryPool() {
		for i := 0; i < 20; i++ {
			amount := s.generator.GenerateAmount(category.Name)
			s.True(amount.GreaterThanOrEqual(decimal.NewFromFloat(category.MinAmount)),
				"amount %s below profile minimum for %s", amount, category.Name)
			s.True(amount.LessThanOrEqual(decimal.NewFromFloat(category.MaxAmount)),
				"amount %s above profile maximum for %s", amount, category.Name)
		}
	}
}

func (s *ExpenseGeneratorSuite) TestGenerateAmount_UnknownCategoryFallsBack() {
	amount := s.generator.GenerateAmount("Mystery")
	s.True(amount.IsPositive())
}

func (s *ExpenseGeneratorSuite) TestGenerateTimestamp() {
	for i := 0; i < 50; i++ {
		ts := s.generator.GenerateTimestamp(s.start, s.end)
		s.False(ts.Before(s.start))
		s.False(ts.After(s.end))
	}
}
