package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget utilization status values
const (
	BudgetStatusGood    = "Good"
	BudgetStatusWarning = "Warning"
	BudgetStatusOver    = "Over"
)

// Utilization thresholds, in percent
var (
	warningThreshold = decimal.NewFromInt(80)
	overThreshold    = decimal.NewFromInt(100)
)

// MonthlyReportRow contains aggregated expense data for one calendar month.
// Rows are derived fresh on every read and never persisted.
type MonthlyReportRow struct {
	Month   string          `json:"month"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
	Average decimal.Decimal `json:"average"`
}

// CategoryReportRow contains aggregated expense data for one category label
type CategoryReportRow struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
	Average  decimal.Decimal `json:"average"`
}

// BudgetStatusRow reports utilization of a single budget entry over a snapshot
// of expenses. One row is produced per budget, duplicates included.
type BudgetStatusRow struct {
	Category     string          `json:"category"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	Spent        decimal.Decimal `json:"spent"`
	Remaining    decimal.Decimal `json:"remaining"`
	PercentUsed  decimal.Decimal `json:"percentUsed"`
	Status       string          `json:"status"`
}

// BudgetStatusFor maps a utilization percentage to its status label:
// Over at or above 100%, Warning from 80% up to 100%, Good below 80%.
func BudgetStatusFor(percentUsed decimal.Decimal) string {
	switch {
	case percentUsed.GreaterThanOrEqual(overThreshold):
		return BudgetStatusOver
	case percentUsed.GreaterThanOrEqual(warningThreshold):
		return BudgetStatusWarning
	default:
		return BudgetStatusGood
	}
}

// ReportSummary holds the headline figures for a report period: the four
// summary tiles on the first page of the document.
type ReportSummary struct {
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	TotalBudgets     decimal.Decimal `json:"totalBudgets"`
	TransactionCount int             `json:"transactionCount"`
	AverageExpense   decimal.Decimal `json:"averageExpense"`
}

// FinancialReport bundles everything the document builder and the on-screen
// report views need for a resolved date range.
type FinancialReport struct {
	StartDate    time.Time           `json:"startDate"`
	EndDate      time.Time           `json:"endDate"`
	Summary      ReportSummary       `json:"summary"`
	MonthlyRows  []MonthlyReportRow  `json:"monthlyRows"`
	CategoryRows []CategoryReportRow `json:"categoryRows"`
	BudgetRows   []BudgetStatusRow   `json:"budgetRows"`
	Expenses     []Expense           `json:"expenses"`
	GeneratedAt  time.Time           `json:"generatedAt"`
}

// DashboardStats holds the current-month headline figures for the dashboard,
// plus the rows behind its category pie and current-year monthly bar charts
type DashboardStats struct {
	TotalExpenses decimal.Decimal     `json:"totalExpenses"`
	TotalBudget   decimal.Decimal     `json:"totalBudget"`
	Remaining     decimal.Decimal     `json:"remaining"`
	PercentUsed   decimal.Decimal     `json:"percentUsed"`
	ExpenseCount  int                 `json:"expenseCount"`
	CategoryCount int                 `json:"categoryCount"`
	CategoryRows  []CategoryReportRow `json:"categoryRows"`
	MonthlyRows   []MonthlyReportRow  `json:"monthlyRows"`
}
