package dto

import (
	"expense-manager/internal/models"
)

// Report range options
const (
	RangeToday  = "today"
	RangeWeek   = "week"
	RangeMonth  = "month"
	RangeCustom = "custom"
)

// Report Request DTOs

// ReportRequest selects the reporting window. StartDate and EndDate are
// required for the custom range and ignored otherwise.
type ReportRequest struct {
	Range     string `json:"range" query:"range" validate:"required,range_option"`
	StartDate string `json:"startDate" query:"startDate" validate:"omitempty,date_string"`
	EndDate   string `json:"endDate" query:"endDate" validate:"omitempty,date_string"`
}

// Report Response DTOs

// ReportResponse wraps the aggregated report for on-screen rendering
type ReportResponse struct {
	Report *models.FinancialReport `json:"report"`
}

// DashboardStatsResponse wraps the current-month dashboard figures
type DashboardStatsResponse struct {
	Stats *models.DashboardStats `json:"stats"`
}
