package handlers

import (
	"fmt"
	"net/http"

	"expense-manager/internal/dto"
	"expense-manager/internal/errors"
	"expense-manager/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles report aggregation and document download requests
type ReportHandler struct {
	reportService services.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService services.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetReport builds the aggregated report for the requested period
//
// Method: GET /api/v1/reports
//
// Query parameters:
//   - range: today, week, month, or custom
//   - startDate, endDate: YYYY-MM-DD, required when range=custom
//
// Success Response: 200 OK with summary, category, monthly, and budget rows
//
// Error Responses:
//   - 400: VALIDATION_001 - Invalid range option
//   - 400: REPORT_002 - Missing custom dates or end before start
//   - 500: SYSTEM_001 - Internal server error
func (h *ReportHandler) GetReport(c echo.Context) error {
	req, ok, bindErr := bindReportRequest(c)
	if !ok {
		return bindErr
	}

	report, buildErr := h.reportService.BuildReport(req.Range, req.StartDate, req.EndDate)
	if buildErr != nil {
		if handled, resp := rangeErrorResponse(c, buildErr); handled {
			return resp
		}
		return SendSystemError(c, buildErr)
	}

	return c.JSON(http.StatusOK, dto.ReportResponse{Report: report})
}

// DownloadReport generates the PDF document for the requested period and
// streams it as an attachment. Only one document is generated at a time;
// concurrent requests are rejected with 409.
//
// Method: GET /api/v1/reports/download
//
// Query parameters: same as GetReport
//
// Success Response: 200 OK, application/pdf, Content-Disposition attachment
//
// Error Responses:
//   - 400: VALIDATION_001 / REPORT_002 - Invalid period selection
//   - 409: REPORT_001 - A generation is already running
//   - 500: REPORT_003 - Document generation failed
func (h *ReportHandler) DownloadReport(c echo.Context) error {
	req, ok, bindErr := bindReportRequest(c)
	if !ok {
		return bindErr
	}

	doc, genErr := h.reportService.GenerateDocument(c.Request().Context(), req.Range, req.StartDate, req.EndDate)
	if genErr != nil {
		if genErr == services.ErrReportInProgress {
			return SendError(c, errors.ReportGenerationInProgress)
		}
		if handled, resp := rangeErrorResponse(c, genErr); handled {
			return resp
		}
		return SendError(c, errors.ReportGenerationFailed, errors.WithDetails(genErr.Error()))
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	return c.Blob(http.StatusOK, "application/pdf", doc.Data)
}

// GetReportStatus reports whether a document generation is currently running
//
// Method: GET /api/v1/reports/status
func (h *ReportHandler) GetReportStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{
		"generating": h.reportService.IsGenerating(),
	})
}

// bindReportRequest binds and validates the period selection query parameters.
// When ok is false the 400 response has already been written and the handler
// must return err without touching req.
func bindReportRequest(c echo.Context) (req *dto.ReportRequest, ok bool, err error) {
	var r dto.ReportRequest
	if bindErr := c.Bind(&r); bindErr != nil {
		return nil, false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if validateErr := c.Validate(r); validateErr != nil {
		return nil, false, SendError(c, errors.ValidationGeneral, errors.WithDetails(validateErr.Error()))
	}

	return &r, true, nil
}

// rangeErrorResponse maps period resolution failures to client errors.
// When handled is true a response has been written and the handler must not
// write another one.
func rangeErrorResponse(c echo.Context, err error) (handled bool, resp error) {
	switch err {
	case services.ErrInvalidRangeOption:
		return true, SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	case services.ErrMissingCustomDates, services.ErrEndBeforeStart:
		return true, SendError(c, errors.ReportInvalidDateRange, errors.WithDetails(err.Error()))
	default:
		return false, nil
	}
}
