package services

import (
	"context"
	"time"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseServiceInterface defines expense-related business operations
type ExpenseServiceInterface interface {
	CreateExpense(req *dto.CreateExpenseRequest) (*models.Expense, error)
	GetExpense(id uuid.UUID) (*models.Expense, error)
	ListExpenses(category string) ([]models.Expense, error)
	UpdateExpense(id uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(id uuid.UUID) error
	CountExpenses() (int64, error)
}

// BudgetServiceInterface defines budget-related business operations
type BudgetServiceInterface interface {
	CreateBudget(req *dto.CreateBudgetRequest) (*models.Budget, error)
	GetBudget(id uuid.UUID) (*models.Budget, error)
	ListBudgets(period string) ([]models.Budget, error)
	UpdateBudget(id uuid.UUID, req *dto.UpdateBudgetRequest) (*models.Budget, error)
	DeleteBudget(id uuid.UUID) error
}

// CategoryServiceInterface defines category-related business operations.
// Expenses reference categories by name, so renaming or deleting a category
// never rewrites recorded expenses.
type CategoryServiceInterface interface {
	CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error)
	GetCategory(id uuid.UUID) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	UpdateCategory(id uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(id uuid.UUID) error
}

// AggregationServiceInterface computes report rows from expense and budget
// snapshots. Implementations are pure: they never touch storage and never
// mutate their inputs.
type AggregationServiceInterface interface {
	// MonthlyTotals returns twelve rows, January through December, for the
	// given year; months without expenses carry zero totals
	MonthlyTotals(expenses []models.Expense, year int) []models.MonthlyReportRow

	// CategoryTotals groups expenses by category label in first-seen order
	CategoryTotals(expenses []models.Expense) []models.CategoryReportRow

	// BudgetStatus reports utilization per budget entry over the snapshot
	BudgetStatus(expenses []models.Expense, budgets []models.Budget) []models.BudgetStatusRow

	// FilterByDateRange keeps expenses whose date falls inside the closed
	// interval [start, end]
	FilterByDateRange(expenses []models.Expense, start, end time.Time) []models.Expense

	// Summarize computes the headline figures for a report period
	Summarize(expenses []models.Expense, budgets []models.Budget) models.ReportSummary
}

// DateRangeServiceInterface resolves a named range option into a concrete
// closed interval
type DateRangeServiceInterface interface {
	// Resolve turns a range option (today, week, month, custom) into start
	// and end instants. The custom option requires both dates in YYYY-MM-DD
	// form and rejects ranges where the end precedes the start.
	Resolve(rangeOption, startDate, endDate string) (time.Time, time.Time, error)
}

// ChartRendererInterface renders report aggregates into PNG images for the
// document's analytics page
type ChartRendererInterface interface {
	RenderCategoryPie(ctx context.Context, rows []models.CategoryReportRow) ([]byte, error)
	RenderMonthlyBars(ctx context.Context, rows []models.MonthlyReportRow) ([]byte, error)
}

// DocumentBuilderInterface lays out a financial report as a PDF document
type DocumentBuilderInterface interface {
	Build(report *models.FinancialReport, charts models.ChartImages) ([]byte, error)
}

// ReportServiceInterface builds aggregated reports and renders them as PDF
// documents. Document generation is serialized: a second request while one is
// running fails fast with ErrReportInProgress.
type ReportServiceInterface interface {
	BuildReport(rangeOption, startDate, endDate string) (*models.FinancialReport, error)
	GenerateDocument(ctx context.Context, rangeOption, startDate, endDate string) (*GeneratedDocument, error)
	IsGenerating() bool
}

// DashboardServiceInterface provides the current-month headline figures
type DashboardServiceInterface interface {
	GetDashboardStats() (*models.DashboardStats, error)
}

// BackupServiceInterface exports and restores the full data set as a JSON
// bundle
type BackupServiceInterface interface {
	Export() (*models.Backup, error)
	Import(data []byte) (*dto.ImportBackupResponse, error)
}

// ExpenseGeneratorInterface generates realistic expense data for seeding
// development databases
type ExpenseGeneratorInterface interface {
	GenerateHistoricalExpenses(startDate, endDate time.Time, count int) []*models.Expense
	GenerateRecurringBills(startDate, endDate time.Time) []*models.Expense
	GenerateDailyPurchases(startDate, endDate time.Time) []*models.Expense
	GetCategoryPool() []SeedCategory
	SelectRandomCategory() SeedCategory
	GenerateAmount(category string) decimal.Decimal
	GenerateTimestamp(startDate, endDate time.Time) time.Time
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
