package models

// ChartImages carries rendered PNG payloads for the report's analytics page.
// A nil slice means the chart could not be rendered and the document shows a
// placeholder instead.
type ChartImages struct {
	CategoryPie []byte
	MonthlyBars []byte
}
