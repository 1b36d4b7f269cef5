package services

import (
	"sort"
	"time"

	"expense-manager/internal/models"

	"github.com/shopspring/decimal"
)

type aggregationService struct{}

// NewAggregationService creates a new aggregation service
func NewAggregationService() AggregationServiceInterface {
	return &aggregationService{}
}

// MonthlyTotals returns one row per calendar month of the given year, January
// through December. Months with no expenses still appear with zero totals, and
// expenses dated outside the year are ignored.
func (s *aggregationService) MonthlyTotals(expenses []models.Expense, year int) []models.MonthlyReportRow {
	rows := make([]models.MonthlyReportRow, 12)
	for i := range rows {
		rows[i] = models.MonthlyReportRow{
			Month:   time.Month(i + 1).String(),
			Total:   decimal.Zero,
			Average: decimal.Zero,
		}
	}

	for _, expense := range expenses {
		if expense.Date.Year() != year {
			continue
		}
		row := &rows[int(expense.Date.Month())-1]
		row.Total = row.Total.Add(expense.Amount)
		row.Count++
	}

	for i := range rows {
		rows[i].Average = safeAverage(rows[i].Total, rows[i].Count)
	}
	return rows
}

// CategoryTotals groups the expenses by category label, largest total first.
// Categories with equal totals keep the order they are first seen in the
// snapshot, which for repository reads is insertion order.
func (s *aggregationService) CategoryTotals(expenses []models.Expense) []models.CategoryReportRow {
	totals := make(map[string]*models.CategoryReportRow)
	order := make([]string, 0)

	for _, expense := range expenses {
		row, ok := totals[expense.Category]
		if !ok {
			row = &models.CategoryReportRow{
				Category: expense.Category,
				Total:    decimal.Zero,
			}
			totals[expense.Category] = row
			order = append(order, expense.Category)
		}
		row.Total = row.Total.Add(expense.Amount)
		row.Count++
	}

	rows := make([]models.CategoryReportRow, 0, len(order))
	for _, category := range order {
		row := totals[category]
		row.Average = safeAverage(row.Total, row.Count)
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows
}

// BudgetStatus produces one utilization row per budget entry, in the order
// the budgets are given. Duplicate budgets for the same category each get
// their own row against the same spend figure.
func (s *aggregationService) BudgetStatus(expenses []models.Expense, budgets []models.Budget) []models.BudgetStatusRow {
	spentByCategory := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		spentByCategory[expense.Category] = spentByCategory[expense.Category].Add(expense.Amount)
	}

	rows := make([]models.BudgetStatusRow, 0, len(budgets))
	for _, budget := range budgets {
		spent := spentByCategory[budget.Category]

		percentUsed := decimal.Zero
		if budget.Amount.IsPositive() {
			percentUsed = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100))
		}

		rows = append(rows, models.BudgetStatusRow{
			Category:     budget.Category,
			BudgetAmount: budget.Amount,
			Spent:        spent,
			Remaining:    budget.Amount.Sub(spent),
			PercentUsed:  percentUsed,
			Status:       models.BudgetStatusFor(percentUsed),
		})
	}
	return rows
}

// FilterByDateRange keeps expenses whose date falls inside the closed
// interval [start, end], preserving input order.
func (s *aggregationService) FilterByDateRange(expenses []models.Expense, start, end time.Time) []models.Expense {
	filtered := make([]models.Expense, 0, len(expenses))
	for _, expense := range expenses {
		if expense.Date.Before(start) || expense.Date.After(end) {
			continue
		}
		filtered = append(filtered, expense)
	}
	return filtered
}

// Summarize computes the report's headline figures. An empty snapshot yields
// a zero average rather than an error.
func (s *aggregationService) Summarize(expenses []models.Expense, budgets []models.Budget) models.ReportSummary {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}

	totalBudgets := decimal.Zero
	for _, budget := range budgets {
		totalBudgets = totalBudgets.Add(budget.Amount)
	}

	return models.ReportSummary{
		TotalExpenses:    total,
		TotalBudgets:     totalBudgets,
		TransactionCount: len(expenses),
		AverageExpense:   safeAverage(total, len(expenses)),
	}
}

// safeAverage divides total by count, returning zero for an empty group
func safeAverage(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}
