package services

import (
	"fmt"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"

	"github.com/shopspring/decimal"
)

type dashboardService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	budgetRepo   repositories.BudgetRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	dateRange    DateRangeServiceInterface
	aggregation  AggregationServiceInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	dateRange DateRangeServiceInterface,
	aggregation AggregationServiceInterface,
) DashboardServiceInterface {
	return &dashboardService{
		expenseRepo:  expenseRepo,
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		dateRange:    dateRange,
		aggregation:  aggregation,
	}
}

// GetDashboardStats computes the current calendar month's spend against the
// sum of monthly budgets. Chart rows cover a wider window than the headline
// figures: the category breakdown spans all recorded expenses and the monthly
// series spans the current year.
func (s *dashboardService) GetDashboardStats() (*models.DashboardStats, error) {
	start, end, err := s.dateRange.Resolve(dto.RangeMonth, "", "")
	if err != nil {
		return nil, err
	}

	allExpenses, err := s.expenseRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	expenses := s.aggregation.FilterByDateRange(allExpenses, start, end)

	budgets, err := s.budgetRepo.GetByPeriod(models.BudgetPeriodMonthly)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly budgets: %w", err)
	}

	categoryCount, err := s.categoryRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count categories: %w", err)
	}

	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}

	totalBudget := decimal.Zero
	for _, budget := range budgets {
		totalBudget = totalBudget.Add(budget.Amount)
	}

	percentUsed := decimal.Zero
	if totalBudget.IsPositive() {
		percentUsed = total.Div(totalBudget).Mul(decimal.NewFromInt(100))
	}

	return &models.DashboardStats{
		TotalExpenses: total,
		TotalBudget:   totalBudget,
		Remaining:     totalBudget.Sub(total),
		PercentUsed:   percentUsed,
		ExpenseCount:  len(expenses),
		CategoryCount: int(categoryCount),
		CategoryRows:  s.aggregation.CategoryTotals(allExpenses),
		MonthlyRows:   s.aggregation.MonthlyTotals(allExpenses, start.Year()),
	}, nil
}
