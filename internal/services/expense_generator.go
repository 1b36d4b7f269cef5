package services

import (
	"math/rand"
	"time"

	"expense-manager/internal/models"

	"github.com/shopspring/decimal"
)

// SeedCategory describes a category used when seeding development data,
// together with a realistic spending profile for it
type SeedCategory struct {
	Name      string
	Icon      string
	Color     string
	MinAmount float64
	MaxAmount float64
	Merchants []string
}

const (
	maxDailyPurchases = 3
	billPaymentHour   = 14
	purchaseHourStart = 7
	purchaseHourEnd   = 22
)

type expenseGenerator struct {
	categoryPool []SeedCategory
	rng          *rand.Rand
}

// NewExpenseGenerator creates a new expense generator
func NewExpenseGenerator() ExpenseGeneratorInterface {
	source := rand.NewSource(time.Now().UnixNano())
	return &expenseGenerator{
		categoryPool: initializeCategoryPool(),
		rng:          rand.New(source),
	}
}

func initializeCategoryPool() []SeedCategory {
	return []SeedCategory{
		{
			Name: "Food & Dining", Icon: "utensils", Color: "#ef4444",
			MinAmount: 4, MaxAmount: 85,
			Merchants: []string{"Starbucks", "Chipotle", "Whole Foods Market", "Trader Joe's", "Panera Bread", "Local Deli"},
		},
		{
			Name: "Transportation", Icon: "car", Color: "#3b82f6",
			MinAmount: 3, MaxAmount: 70,
			Merchants: []string{"Uber", "Lyft", "Shell", "Chevron", "Metro Transit"},
		},
		{
			Name: "Shopping", Icon: "shopping-bag", Color: "#8b5cf6",
			MinAmount: 10, MaxAmount: 250,
			Merchants: []string{"Amazon.com", "Target", "Best Buy", "IKEA", "Nike"},
		},
		{
			Name: "Entertainment", Icon: "film", Color: "#f59e0b",
			MinAmount: 5, MaxAmount: 60,
			Merchants: []string{"Netflix", "Spotify", "AMC Theaters", "Steam", "Disney+"},
		},
		{
			Name: "Bills & Utilities", Icon: "file-text", Color: "#10b981",
			MinAmount: 40, MaxAmount: 220,
			Merchants: []string{"AT&T", "Verizon Wireless", "Comcast Xfinity", "City Water", "Pacific Gas & Electric"},
		},
		{
			Name: "Healthcare", Icon: "heart-pulse", Color: "#ec4899",
			MinAmount: 10, MaxAmount: 180,
			Merchants: []string{"CVS Pharmacy", "Walgreens", "City Medical Group"},
		},
	}
}

// GenerateHistoricalExpenses produces count expenses spread across the date
// range, drawn from the category pool
func (g *expenseGenerator) GenerateHistoricalExpenses(startDate, endDate time.Time, count int) []*models.Expense {
	expenses := make([]*models.Expense, 0, count)
	for i := 0; i < count; i++ {
		category := g.SelectRandomCategory()
		expenses = append(expenses, &models.Expense{
			Amount:      g.GenerateAmount(category.Name),
			Category:    category.Name,
			Description: g.selectMerchant(category),
			Date:        g.GenerateTimestamp(startDate, endDate),
		})
	}
	return expenses
}

// GenerateRecurringBills produces one utilities expense per calendar month
// in the range, landing on the same day each month
func (g *expenseGenerator) GenerateRecurringBills(startDate, endDate time.Time) []*models.Expense {
	var bills SeedCategory
	for _, category := range g.categoryPool {
		if category.Name == "Bills & Utilities" {
			bills = category
			break
		}
	}

	billDay := 1 + g.rng.Intn(28)
	expenses := make([]*models.Expense, 0)

	current := time.Date(startDate.Year(), startDate.Month(), billDay, billPaymentHour, 0, 0, 0, startDate.Location())
	if current.Before(startDate) {
		current = current.AddDate(0, 1, 0)
	}
	for !current.After(endDate) {
		expenses = append(expenses, &models.Expense{
			Amount:      g.GenerateAmount(bills.Name),
			Category:    bills.Name,
			Description: g.selectMerchant(bills),
			Date:        current,
		})
		current = current.AddDate(0, 1, 0)
	}
	return expenses
}

// GenerateDailyPurchases produces zero to three small purchases per day in
// the range
func (g *expenseGenerator) GenerateDailyPurchases(startDate, endDate time.Time) []*models.Expense {
	expenses := make([]*models.Expense, 0)

	for day := startOfDay(startDate); !day.After(endDate); day = day.AddDate(0, 0, 1) {
		purchases := g.rng.Intn(maxDailyPurchases + 1)
		for i := 0; i < purchases; i++ {
			category := g.SelectRandomCategory()
			hour := purchaseHourStart + g.rng.Intn(purchaseHourEnd-purchaseHourStart)
			expenses = append(expenses, &models.Expense{
				Amount:      g.GenerateAmount(category.Name),
				Category:    category.Name,
				Description: g.selectMerchant(category),
				Date:        day.Add(time.Duration(hour) * time.Hour),
			})
		}
	}
	return expenses
}

// GetCategoryPool returns the full seed category pool
func (g *expenseGenerator) GetCategoryPool() []SeedCategory {
	return g.categoryPool
}

// SelectRandomCategory picks a category from the pool
func (g *expenseGenerator) SelectRandomCategory() SeedCategory {
	return g.categoryPool[g.rng.Intn(len(g.categoryPool))]
}

// GenerateAmount produces an amount inside the category's spending profile,
// rounded to cents. Unknown categories fall back to a generic profile.
func (g *expenseGenerator) GenerateAmount(category string) decimal.Decimal {
	minAmount, maxAmount := 5.0, 100.0
	for _, c := range g.categoryPool {
		if c.Name == category {
			minAmount, maxAmount = c.MinAmount, c.MaxAmount
			break
		}
	}

	amount := minAmount + g.rng.Float64()*(maxAmount-minAmount)
	return decimal.NewFromFloat(amount).Round(2)
}

// GenerateTimestamp picks a random instant between startDate and endDate
func (g *expenseGenerator) GenerateTimestamp(startDate, endDate time.Time) time.Time {
	window := endDate.Sub(startDate)
	if window <= 0 {
		return startDate
	}
	return startDate.Add(time.Duration(g.rng.Int63n(int64(window))))
}

func (g *expenseGenerator) selectMerchant(category SeedCategory) string {
	if len(category.Merchants) == 0 {
		return category.Name
	}
	return category.Merchants[g.rng.Intn(len(category.Merchants))]
}
