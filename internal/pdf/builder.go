package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"expense-manager/internal/config"
	"expense-manager/internal/models"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const (
	pageMargin     = 15.0
	tileHeight     = 22.0
	tileGap        = 4.0
	tableRowHeight = 7.0

	// Descriptions longer than this are truncated with an ellipsis in the
	// expense detail table
	maxDescriptionChars = 35

	dateLayout        = "2006-01-02"
	displayDateLayout = "Jan 2, 2006"
)

// Builder lays out financial reports as multi-page PDF documents
type Builder struct {
	cfg *config.ReportConfig
}

// NewBuilder creates a document builder with the given formatting settings
func NewBuilder(cfg *config.ReportConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Build renders the report as a complete PDF document and returns its bytes.
// Any layout error fails the whole document; no partial output is returned.
func (b *Builder) Build(report *models.FinancialReport, charts models.ChartImages) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, 25)
	doc.AliasNbPages("")

	generatedAt := report.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	doc.SetFooterFunc(func() {
		doc.SetY(-18)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 5, b.cfg.ConfidentialNotice, "", 1, "C", false, 0, "")
		footer := fmt.Sprintf("Generated on %s   |   Page %d of {nb}",
			generatedAt.Format(displayDateLayout), doc.PageNo())
		doc.CellFormat(0, 5, footer, "", 0, "C", false, 0, "")
	})

	b.addSummaryPage(doc, report)
	if len(report.CategoryRows) > 0 {
		b.addAnalyticsPage(doc, charts)
	}
	b.addExpenseDetailPage(doc, report)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *Builder) addSummaryPage(doc *fpdf.Fpdf, report *models.FinancialReport) {
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.SetTextColor(30, 30, 30)
	doc.CellFormat(0, 12, "Financial Report", "", 1, "L", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(90, 90, 90)
	period := fmt.Sprintf("%s to %s",
		report.StartDate.Format(displayDateLayout),
		report.EndDate.Format(displayDateLayout))
	doc.CellFormat(0, 7, period, "", 1, "L", false, 0, "")
	doc.Ln(4)

	b.drawSummaryTiles(doc, report.Summary)
	doc.Ln(8)

	b.drawCategoryTable(doc, report.CategoryRows)
	doc.Ln(6)

	b.drawBudgetTable(doc, report.BudgetRows)
}

func (b *Builder) drawSummaryTiles(doc *fpdf.Fpdf, summary models.ReportSummary) {
	pageWidth, _ := doc.GetPageSize()
	usable := pageWidth - 2*pageMargin
	tileWidth := (usable - 3*tileGap) / 4

	tiles := []struct {
		label string
		value string
	}{
		{"Total Expenses", b.money(summary.TotalExpenses)},
		{"Total Budgets", b.money(summary.TotalBudgets)},
		{"Transactions", fmt.Sprintf("%d", summary.TransactionCount)},
		{"Average Expense", b.money(summary.AverageExpense)},
	}

	top := doc.GetY()
	for i, tile := range tiles {
		x := pageMargin + float64(i)*(tileWidth+tileGap)
		doc.SetXY(x, top)
		doc.SetFillColor(243, 244, 246)
		doc.SetDrawColor(209, 213, 219)
		doc.Rect(x, top, tileWidth, tileHeight, "FD")

		doc.SetXY(x, top+4)
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(107, 114, 128)
		doc.CellFormat(tileWidth, 4, tile.label, "", 0, "C", false, 0, "")

		doc.SetXY(x, top+10)
		doc.SetFont("Helvetica", "B", 12)
		doc.SetTextColor(17, 24, 39)
		doc.CellFormat(tileWidth, 7, tile.value, "", 0, "C", false, 0, "")
	}
	doc.SetXY(pageMargin, top+tileHeight)
}

func (b *Builder) drawCategoryTable(doc *fpdf.Fpdf, rows []models.CategoryReportRow) {
	b.ensureRoomForTable(doc)

	b.sectionHeading(doc, "Spending by Category")
	if len(rows) == 0 {
		b.emptyNote(doc, "No expenses recorded in this period.")
		return
	}

	widths := []float64{70, 35, 25, 35}
	b.tableHeader(doc, []string{"Category", "Total", "Count", "Average"}, widths)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(31, 41, 55)
	for i, row := range rows {
		fill := i%2 == 1
		doc.SetFillColor(249, 250, 251)
		doc.CellFormat(widths[0], tableRowHeight, row.Category, "B", 0, "L", fill, 0, "")
		doc.CellFormat(widths[1], tableRowHeight, b.money(row.Total), "B", 0, "R", fill, 0, "")
		doc.CellFormat(widths[2], tableRowHeight, fmt.Sprintf("%d", row.Count), "B", 0, "R", fill, 0, "")
		doc.CellFormat(widths[3], tableRowHeight, b.money(row.Average), "B", 1, "R", fill, 0, "")
	}
}

func (b *Builder) drawBudgetTable(doc *fpdf.Fpdf, rows []models.BudgetStatusRow) {
	b.ensureRoomForTable(doc)

	b.sectionHeading(doc, "Budget Status")
	if len(rows) == 0 {
		b.emptyNote(doc, "No budgets configured.")
		return
	}

	widths := []float64{50, 28, 28, 28, 22, 24}
	b.tableHeader(doc, []string{"Category", "Budget", "Spent", "Remaining", "Used", "Status"}, widths)

	doc.SetFont("Helvetica", "", 9)
	for i, row := range rows {
		fill := i%2 == 1
		doc.SetFillColor(249, 250, 251)
		doc.SetTextColor(31, 41, 55)
		doc.CellFormat(widths[0], tableRowHeight, row.Category, "B", 0, "L", fill, 0, "")
		doc.CellFormat(widths[1], tableRowHeight, b.money(row.BudgetAmount), "B", 0, "R", fill, 0, "")
		doc.CellFormat(widths[2], tableRowHeight, b.money(row.Spent), "B", 0, "R", fill, 0, "")
		doc.CellFormat(widths[3], tableRowHeight, b.money(row.Remaining), "B", 0, "R", fill, 0, "")
		doc.CellFormat(widths[4], tableRowHeight, row.PercentUsed.StringFixed(1)+"%", "B", 0, "R", fill, 0, "")

		b.setStatusColor(doc, row.Status)
		doc.SetFont("Helvetica", "B", 9)
		doc.CellFormat(widths[5], tableRowHeight, row.Status, "B", 1, "C", fill, 0, "")
		doc.SetFont("Helvetica", "", 9)
	}
	doc.SetTextColor(31, 41, 55)
}

func (b *Builder) addAnalyticsPage(doc *fpdf.Fpdf, charts models.ChartImages) {
	doc.AddPage()
	b.sectionHeading(doc, "Spending Analytics")

	if charts.CategoryPie == nil && charts.MonthlyBars == nil {
		b.emptyNote(doc, "Charts are unavailable for this report.")
		return
	}

	pageWidth, _ := doc.GetPageSize()
	imageWidth := pageWidth - 2*pageMargin

	if charts.CategoryPie != nil {
		b.embedChart(doc, "category_pie", charts.CategoryPie, imageWidth)
		doc.Ln(6)
	}
	if charts.MonthlyBars != nil {
		b.embedChart(doc, "monthly_bars", charts.MonthlyBars, imageWidth)
	}
}

func (b *Builder) embedChart(doc *fpdf.Fpdf, name string, png []byte, width float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	doc.ImageOptions(name, pageMargin, doc.GetY(), width, 0, true, opts, 0, "")
}

func (b *Builder) addExpenseDetailPage(doc *fpdf.Fpdf, report *models.FinancialReport) {
	doc.AddPage()
	b.sectionHeading(doc, "Expense Detail")

	if len(report.Expenses) == 0 {
		b.emptyNote(doc, "No expenses recorded in this period.")
		return
	}

	expenses := make([]models.Expense, len(report.Expenses))
	copy(expenses, report.Expenses)
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Date.After(expenses[j].Date)
	})

	widths := []float64{28, 45, 72, 30}
	b.tableHeader(doc, []string{"Date", "Category", "Description", "Amount"}, widths)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(31, 41, 55)
	for i, expense := range expenses {
		fill := i%2 == 1
		doc.SetFillColor(249, 250, 251)
		doc.CellFormat(widths[0], tableRowHeight, expense.Date.Format(dateLayout), "B", 0, "L", fill, 0, "")
		doc.CellFormat(widths[1], tableRowHeight, expense.Category, "B", 0, "L", fill, 0, "")
		doc.CellFormat(widths[2], tableRowHeight, truncate(expense.Description, maxDescriptionChars), "B", 0, "L", fill, 0, "")
		doc.CellFormat(widths[3], tableRowHeight, b.money(expense.Amount), "B", 1, "R", fill, 0, "")
	}
}

// ensureRoomForTable starts a fresh page when the cursor is too close to the
// bottom for a heading plus a few table rows
func (b *Builder) ensureRoomForTable(doc *fpdf.Fpdf) {
	if doc.GetY() > b.cfg.PageBreakThreshold {
		doc.AddPage()
	}
}

func (b *Builder) sectionHeading(doc *fpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 13)
	doc.SetTextColor(30, 30, 30)
	doc.CellFormat(0, 9, title, "", 1, "L", false, 0, "")
	doc.Ln(1)
}

func (b *Builder) tableHeader(doc *fpdf.Fpdf, labels []string, widths []float64) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(31, 41, 55)
	doc.SetTextColor(255, 255, 255)
	for i, label := range labels {
		align := "R"
		if i == 0 {
			align = "L"
		}
		last := i == len(labels)-1
		lineBreak := 0
		if last {
			lineBreak = 1
		}
		doc.CellFormat(widths[i], tableRowHeight, label, "", lineBreak, align, true, 0, "")
	}
}

func (b *Builder) emptyNote(doc *fpdf.Fpdf, note string) {
	doc.SetFont("Helvetica", "I", 10)
	doc.SetTextColor(107, 114, 128)
	doc.CellFormat(0, 8, note, "", 1, "L", false, 0, "")
}

func (b *Builder) setStatusColor(doc *fpdf.Fpdf, status string) {
	switch status {
	case models.BudgetStatusOver:
		doc.SetTextColor(220, 38, 38)
	case models.BudgetStatusWarning:
		doc.SetTextColor(217, 119, 6)
	default:
		doc.SetTextColor(22, 163, 74)
	}
}

func (b *Builder) money(amount decimal.Decimal) string {
	return b.cfg.CurrencySymbol + amount.StringFixed(int32(b.cfg.DecimalPrecision))
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
