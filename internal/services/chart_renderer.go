package services

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"expense-manager/internal/models"

	chart "github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 1024
	chartHeight = 640

	// Categories beyond this count are folded into a single slice
	maxPieSlices = 8
)

type chartRenderer struct{}

// NewChartRenderer creates a renderer backed by go-chart
func NewChartRenderer() ChartRendererInterface {
	return &chartRenderer{}
}

// RenderCategoryPie renders category spending as a pie chart PNG. The eight
// largest categories get their own slice; the rest are folded into "Other".
// Returns nil bytes when there is nothing to draw.
func (r *chartRenderer) RenderCategoryPie(ctx context.Context, rows []models.CategoryReportRow) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	values := make([]chart.Value, 0, maxPieSlices+1)
	other := 0.0

	sorted := make([]models.CategoryReportRow, len(rows))
	copy(sorted, rows)
	sortCategoryRowsByTotalDesc(sorted)

	for i, row := range sorted {
		total := row.Total.InexactFloat64()
		if total <= 0 {
			continue
		}
		if i < maxPieSlices {
			values = append(values, chart.Value{
				Value: total,
				Label: row.Category,
			})
		} else {
			other += total
		}
	}
	if other > 0 {
		values = append(values, chart.Value{Value: other, Label: "Other"})
	}

	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Title:  "Spending by Category",
		Width:  chartWidth,
		Height: chartHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderMonthlyBars renders month-over-month spending as a bar chart PNG.
// Returns nil bytes when there is nothing to draw.
func (r *chartRenderer) RenderMonthlyBars(ctx context.Context, rows []models.MonthlyReportRow) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bars := make([]chart.Value, 0, len(rows))
	for _, row := range rows {
		total := row.Total.InexactFloat64()
		if total <= 0 {
			continue
		}
		bars = append(bars, chart.Value{
			Value: total,
			Label: row.Month,
		})
	}

	if len(bars) == 0 {
		return nil, nil
	}

	bar := chart.BarChart{
		Title:    "Monthly Spending",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 60,
		Bars:     bars,
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
	}

	var buf bytes.Buffer
	if err := bar.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render monthly chart: %w", err)
	}
	return buf.Bytes(), nil
}

func sortCategoryRowsByTotalDesc(rows []models.CategoryReportRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
}
