package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-manager/internal/models"
	"expense-manager/internal/services"
	"expense-manager/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	echo        *echo.Echo
	mockService *service_mocks.MockReportServiceInterface
	handler     *ReportHandler
}

func TestReportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}

func (s *ReportHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockService = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.handler = NewReportHandler(s.mockService)
}

func (s *ReportHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ReportHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *ReportHandlerTestSuite) sampleReport() *models.FinancialReport {
	return &models.FinancialReport{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 23, 59, 59, 999999999, time.UTC),
		Summary: models.ReportSummary{
			TotalExpenses:    decimal.NewFromFloat(310.75),
			TotalBudgets:     decimal.NewFromInt(500),
			TransactionCount: 4,
			AverageExpense:   decimal.NewFromFloat(77.69),
		},
		GeneratedAt: time.Now().UTC(),
	}
}

// ========================================
// GET /api/v1/reports Tests
// ========================================

func (s *ReportHandlerTestSuite) TestGetReport_MonthRange_Success() {
	c, rec := s.newContext("/api/v1/reports?range=month")

	s.mockService.EXPECT().
		BuildReport("month", "", "").
		Return(s.sampleReport(), nil)

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response["report"])
}

func (s *ReportHandlerTestSuite) TestGetReport_CustomRange_DatesPassedThrough() {
	c, rec := s.newContext("/api/v1/reports?range=custom&startDate=2025-01-01&endDate=2025-01-31")

	s.mockService.EXPECT().
		BuildReport("custom", "2025-01-01", "2025-01-31").
		Return(s.sampleReport(), nil)

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ReportHandlerTestSuite) TestGetReport_UnknownRangeOption_Rejected() {
	c, rec := s.newContext("/api/v1/reports?range=fortnight")

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
}

func (s *ReportHandlerTestSuite) TestGetReport_EndBeforeStart_Rejected() {
	c, rec := s.newContext("/api/v1/reports?range=custom&startDate=2025-02-01&endDate=2025-01-01")

	s.mockService.EXPECT().
		BuildReport("custom", "2025-02-01", "2025-01-01").
		Return(nil, services.ErrEndBeforeStart)

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("REPORT_002", response.Error.Code)
}

func (s *ReportHandlerTestSuite) TestGetReport_MissingCustomDates_Rejected() {
	c, rec := s.newContext("/api/v1/reports?range=custom")

	s.mockService.EXPECT().
		BuildReport("custom", "", "").
		Return(nil, services.ErrMissingCustomDates)

	err := s.handler.GetReport(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// ========================================
// GET /api/v1/reports/download Tests
// ========================================

func (s *ReportHandlerTestSuite) TestDownloadReport_Success() {
	c, rec := s.newContext("/api/v1/reports/download?range=month")

	report := s.sampleReport()
	doc := &services.GeneratedDocument{
		Filename:    "Financial_Report_2025-03-01_to_2025-03-31.pdf",
		Data:        []byte("%PDF-1.4 test"),
		Report:      report,
		GeneratedAt: report.GeneratedAt,
	}

	s.mockService.EXPECT().
		GenerateDocument(gomock.Any(), "month", "", "").
		Return(doc, nil)

	err := s.handler.DownloadReport(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/pdf", rec.Header().Get(echo.HeaderContentType))
	s.Equal(`attachment; filename="Financial_Report_2025-03-01_to_2025-03-31.pdf"`,
		rec.Header().Get(echo.HeaderContentDisposition))
	s.Equal([]byte("%PDF-1.4 test"), rec.Body.Bytes())
}

func (s *ReportHandlerTestSuite) TestDownloadReport_AlreadyRunning_Conflict() {
	c, rec := s.newContext("/api/v1/reports/download?range=today")

	s.mockService.EXPECT().
		GenerateDocument(gomock.Any(), "today", "", "").
		Return(nil, services.ErrReportInProgress)

	err := s.handler.DownloadReport(c)

	s.NoError(err)
	s.Equal(http.StatusConflict, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("REPORT_001", response.Error.Code)
}

func (s *ReportHandlerTestSuite) TestDownloadReport_EndBeforeStart_Rejected() {
	c, rec := s.newContext("/api/v1/reports/download?range=custom&startDate=2025-02-01&endDate=2025-01-01")

	s.mockService.EXPECT().
		GenerateDocument(gomock.Any(), "custom", "2025-02-01", "2025-01-01").
		Return(nil, services.ErrEndBeforeStart)

	err := s.handler.DownloadReport(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("REPORT_002", response.Error.Code)
}

func (s *ReportHandlerTestSuite) TestDownloadReport_UnknownRangeOption_Rejected() {
	c, rec := s.newContext("/api/v1/reports/download?range=fortnight")

	err := s.handler.DownloadReport(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
}

func (s *ReportHandlerTestSuite) TestDownloadReport_BuildFailure_ServerError() {
	c, rec := s.newContext("/api/v1/reports/download?range=week")

	s.mockService.EXPECT().
		GenerateDocument(gomock.Any(), "week", "", "").
		Return(nil, errors.New("failed to build report document"))

	err := s.handler.DownloadReport(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("REPORT_003", response.Error.Code)
}

// ========================================
// GET /api/v1/reports/status Tests
// ========================================

func (s *ReportHandlerTestSuite) TestGetReportStatus_Idle() {
	c, rec := s.newContext("/api/v1/reports/status")

	s.mockService.EXPECT().IsGenerating().Return(false)

	err := s.handler.GetReportStatus(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]bool
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.False(response["generating"])
}

func (s *ReportHandlerTestSuite) TestGetReportStatus_Generating() {
	c, rec := s.newContext("/api/v1/reports/status")

	s.mockService.EXPECT().IsGenerating().Return(true)

	err := s.handler.GetReportStatus(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]bool
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response["generating"])
}
