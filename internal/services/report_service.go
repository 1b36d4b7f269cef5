package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"expense-manager/internal/config"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"
)

var (
	// ErrReportInProgress is returned when a document generation request
	// arrives while another one is still running
	ErrReportInProgress = errors.New("report generation already in progress")
)

// GeneratedDocument is a finished PDF document together with its download
// filename and the report it was rendered from
type GeneratedDocument struct {
	Filename    string
	Data        []byte
	Report      *models.FinancialReport
	GeneratedAt time.Time
}

type reportService struct {
	expenseRepo   repositories.ExpenseRepositoryInterface
	budgetRepo    repositories.BudgetRepositoryInterface
	aggregation   AggregationServiceInterface
	dateRange     DateRangeServiceInterface
	chartRenderer ChartRendererInterface
	docBuilder    DocumentBuilderInterface
	metrics       MetricsRecorderInterface
	chartTimeout  time.Duration

	generating atomic.Bool
}

// NewReportService creates a new report service
func NewReportService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	aggregation AggregationServiceInterface,
	dateRange DateRangeServiceInterface,
	chartRenderer ChartRendererInterface,
	docBuilder DocumentBuilderInterface,
	metrics MetricsRecorderInterface,
	reportConfig *config.ReportConfig,
) ReportServiceInterface {
	return &reportService{
		expenseRepo:   expenseRepo,
		budgetRepo:    budgetRepo,
		aggregation:   aggregation,
		dateRange:     dateRange,
		chartRenderer: chartRenderer,
		docBuilder:    docBuilder,
		metrics:       metrics,
		chartTimeout:  reportConfig.ChartTimeout,
	}
}

// BuildReport resolves the requested range, snapshots the store and computes
// every aggregate the report needs. The snapshot is taken once, so all rows
// in the result describe the same data.
func (s *reportService) BuildReport(rangeOption, startDate, endDate string) (*models.FinancialReport, error) {
	start, end, err := s.dateRange.Resolve(rangeOption, startDate, endDate)
	if err != nil {
		return nil, err
	}

	allExpenses, err := s.expenseRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	budgets, err := s.budgetRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	expenses := s.aggregation.FilterByDateRange(allExpenses, start, end)

	report := &models.FinancialReport{
		StartDate:    start,
		EndDate:      end,
		Summary:      s.aggregation.Summarize(expenses, budgets),
		MonthlyRows:  s.aggregation.MonthlyTotals(expenses, start.Year()),
		CategoryRows: s.aggregation.CategoryTotals(expenses),
		BudgetRows:   s.aggregation.BudgetStatus(expenses, budgets),
		Expenses:     expenses,
		GeneratedAt:  time.Now().UTC(),
	}
	return report, nil
}

// GenerateDocument builds the report for the requested range and renders it
// as a PDF. Only one document is generated at a time; concurrent requests
// fail fast with ErrReportInProgress. A failure leaves no partial output.
func (s *reportService) GenerateDocument(ctx context.Context, rangeOption, startDate, endDate string) (doc *GeneratedDocument, err error) {
	if !s.generating.CompareAndSwap(false, true) {
		s.metrics.IncrementCounter("report_generation_rejected", nil)
		return nil, ErrReportInProgress
	}
	defer s.generating.Store(false)

	startedAt := time.Now()
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("report generation panicked: %v", r)
		}
		duration := time.Since(startedAt)
		if err != nil {
			s.metrics.IncrementCounter("report_generated_failed", nil)
			slog.Error("report generation failed", "error", err, "duration_ms", duration.Milliseconds())
		} else {
			s.metrics.IncrementCounter("report_generated_success", nil)
			s.metrics.RecordProcessingTime("report_generation", duration)
		}
	}()

	report, err := s.BuildReport(rangeOption, startDate, endDate)
	if err != nil {
		return nil, err
	}

	charts := s.renderCharts(ctx, report)

	data, err := s.docBuilder.Build(report, charts)
	if err != nil {
		return nil, fmt.Errorf("failed to build report document: %w", err)
	}

	doc = &GeneratedDocument{
		Filename:    DocumentFilename(report.StartDate, report.EndDate),
		Data:        data,
		Report:      report,
		GeneratedAt: report.GeneratedAt,
	}

	slog.Info("report document generated",
		"filename", doc.Filename,
		"expenses", len(report.Expenses),
		"bytes", len(data),
		"duration_ms", time.Since(startedAt).Milliseconds())

	return doc, nil
}

// IsGenerating reports whether a document generation run is currently active
func (s *reportService) IsGenerating() bool {
	return s.generating.Load()
}

// renderCharts renders both analytics charts under a deadline. Chart
// rendering is best-effort: on timeout or render failure the document falls
// back to a placeholder note instead of failing the whole run.
func (s *reportService) renderCharts(ctx context.Context, report *models.FinancialReport) models.ChartImages {
	chartCtx, cancel := context.WithTimeout(ctx, s.chartTimeout)
	defer cancel()

	type renderResult struct {
		charts models.ChartImages
		err    error
	}

	done := make(chan renderResult, 1)
	go func() {
		var result renderResult
		result.charts.CategoryPie, result.err = s.chartRenderer.RenderCategoryPie(chartCtx, report.CategoryRows)
		if result.err == nil {
			result.charts.MonthlyBars, result.err = s.chartRenderer.RenderMonthlyBars(chartCtx, report.MonthlyRows)
		}
		done <- result
	}()

	select {
	case result := <-done:
		if result.err != nil {
			slog.Warn("chart rendering failed, document will use placeholder", "error", result.err)
			return models.ChartImages{}
		}
		return result.charts
	case <-chartCtx.Done():
		slog.Warn("chart rendering timed out, document will use placeholder", "timeout", s.chartTimeout)
		return models.ChartImages{}
	}
}

// DocumentFilename derives the deterministic download name for a report
// covering [start, end]
func DocumentFilename(start, end time.Time) string {
	return fmt.Sprintf("Financial_Report_%s_to_%s.pdf", start.Format(DateLayout), end.Format(DateLayout))
}
