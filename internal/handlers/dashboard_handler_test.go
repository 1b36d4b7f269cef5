package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"expense-manager/internal/models"
	"expense-manager/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	echo        *echo.Echo
	mockService *service_mocks.MockDashboardServiceInterface
	handler     *DashboardHandler
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockService = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.handler = NewDashboardHandler(s.mockService)
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DashboardHandlerTestSuite) TestGetDashboardStats_Success() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	stats := &models.DashboardStats{
		TotalExpenses: decimal.NewFromFloat(325.40),
		TotalBudget:   decimal.NewFromInt(1000),
		Remaining:     decimal.NewFromFloat(674.60),
		PercentUsed:   decimal.NewFromFloat(32.54),
		ExpenseCount:  12,
		CategoryCount: 4,
	}
	s.mockService.EXPECT().GetDashboardStats().Return(stats, nil)

	err := s.handler.GetDashboardStats(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response["stats"])
}

func (s *DashboardHandlerTestSuite) TestGetDashboardStats_ServiceFailure() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.mockService.EXPECT().GetDashboardStats().Return(nil, errors.New("store unavailable"))

	err := s.handler.GetDashboardStats(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("SYSTEM_001", response.Error.Code)
}
