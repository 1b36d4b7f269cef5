package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"expense-manager/internal/dto"
	"expense-manager/internal/models"
	"expense-manager/internal/repositories"
	"expense-manager/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ExpenseHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	echo        *echo.Echo
	mockService *service_mocks.MockExpenseServiceInterface
	handler     *ExpenseHandler
	expenseID   uuid.UUID
}

func TestExpenseHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}

func (s *ExpenseHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockService = service_mocks.NewMockExpenseServiceInterface(s.ctrl)
	s.handler = NewExpenseHandler(s.mockService)
	s.expenseID = uuid.New()
}

func (s *ExpenseHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ExpenseHandlerTestSuite) newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *ExpenseHandlerTestSuite) sampleExpense() *models.Expense {
	return &models.Expense{
		ID:          s.expenseID,
		Amount:      decimal.NewFromFloat(42.50),
		Category:    "Food",
		Description: "Lunch at the deli",
		Date:        time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Now().UTC(),
	}
}

// ========================================
// POST /api/v1/expenses Tests
// ========================================

func (s *ExpenseHandlerTestSuite) TestCreateExpense_Success() {
	body := `{"amount": 42.50, "category": "Food", "description": "Lunch at the deli", "date": "2025-03-10"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/expenses", body)

	expense := s.sampleExpense()
	s.mockService.EXPECT().
		CreateExpense(gomock.Any()).
		DoAndReturn(func(req *dto.CreateExpenseRequest) (*models.Expense, error) {
			s.Equal("Food", req.Category)
			s.Equal("2025-03-10", req.Date)
			return expense, nil
		})

	err := s.handler.CreateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var response models.Expense
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(s.expenseID, response.ID)
	s.Equal("Food", response.Category)
}

func (s *ExpenseHandlerTestSuite) TestCreateExpense_NegativeAmount_Rejected() {
	body := `{"amount": -5, "category": "Food", "description": "Lunch", "date": "2025-03-10"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/expenses", body)

	err := s.handler.CreateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("VALIDATION_001", response.Error.Code)
}

func (s *ExpenseHandlerTestSuite) TestCreateExpense_BadDateFormat_Rejected() {
	body := `{"amount": 10, "category": "Food", "description": "Lunch", "date": "03/10/2025"}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/expenses", body)

	err := s.handler.CreateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ExpenseHandlerTestSuite) TestCreateExpense_MalformedBody_Rejected() {
	c, rec := s.newJSONContext(http.MethodPost, "/api/v1/expenses", `{"amount": `)

	err := s.handler.CreateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// ========================================
// GET /api/v1/expenses Tests
// ========================================

func (s *ExpenseHandlerTestSuite) TestListExpenses_Success() {
	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/expenses", "")

	s.mockService.EXPECT().
		ListExpenses("").
		Return([]models.Expense{*s.sampleExpense()}, nil)

	err := s.handler.ListExpenses(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ExpenseListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Expenses, 1)
	s.Equal(int64(1), response.Total)
}

func (s *ExpenseHandlerTestSuite) TestListExpenses_CategoryFilterPassedThrough() {
	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/expenses?category=Transport", "")
	c.QueryParams().Set("category", "Transport")

	s.mockService.EXPECT().
		ListExpenses("Transport").
		Return([]models.Expense{}, nil)

	err := s.handler.ListExpenses(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

// ========================================
// GET /api/v1/expenses/:id Tests
// ========================================

func (s *ExpenseHandlerTestSuite) TestGetExpense_Success() {
	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/expenses/"+s.expenseID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(s.expenseID.String())

	s.mockService.EXPECT().GetExpense(s.expenseID).Return(s.sampleExpense(), nil)

	err := s.handler.GetExpense(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerTestSuite) TestGetExpense_NotFound() {
	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/expenses/"+s.expenseID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(s.expenseID.String())

	s.mockService.EXPECT().GetExpense(s.expenseID).Return(nil, repositories.ErrExpenseNotFound)

	err := s.handler.GetExpense(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("EXPENSE_001", response.Error.Code)
}

func (s *ExpenseHandlerTestSuite) TestGetExpense_InvalidID() {
	c, rec := s.newJSONContext(http.MethodGet, "/api/v1/expenses/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := s.handler.GetExpense(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("EXPENSE_003", response.Error.Code)
}

// ========================================
// PUT /api/v1/expenses/:id Tests
// ========================================

func (s *ExpenseHandlerTestSuite) TestUpdateExpense_Success() {
	body := `{"amount": 99.99, "category": "Transport", "description": "Taxi", "date": "2025-03-11"}`
	c, rec := s.newJSONContext(http.MethodPut, "/api/v1/expenses/"+s.expenseID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(s.expenseID.String())

	updated := s.sampleExpense()
	updated.Amount = decimal.NewFromFloat(99.99)
	updated.Category = "Transport"

	s.mockService.EXPECT().
		UpdateExpense(s.expenseID, gomock.Any()).
		Return(updated, nil)

	err := s.handler.UpdateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ExpenseHandlerTestSuite) TestUpdateExpense_NotFound() {
	body := `{"amount": 99.99, "category": "Transport", "description": "Taxi", "date": "2025-03-11"}`
	c, rec := s.newJSONContext(http.MethodPut, "/api/v1/expenses/"+s.expenseID.String(), body)
	c.SetParamNames("id")
	c.SetParamValues(s.expenseID.String())

	s.mockService.EXPECT().
		UpdateExpense(s.expenseID, gomock.Any()).
		Return(nil, repositories.ErrExpenseNotFound)

	err := s.handler.UpdateExpense(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

// ========================================
// DELETE /api/v1/expenses/:id Tests
// ========================================

func (s *ExpenseHandlerTestSuite) TestDeleteExpense_Success() {
	c, rec := s.newJSONContext(http.MethodDelete, "/api/v1/expenses/"+s.expenseID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(s.expenseID.String())

	s.mockService.EXPECT().DeleteExpense(s.expenseID).Return(nil)

	err := s.handler.DeleteExpense(c)

	s.NoError(err)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ExpenseHandlerTestSuite) TestDeleteExpense_NotFound() {
	c, rec := s.newJSONContext(http.MethodDelete, "/api/v1/expenses/"+s.expenseID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(s.expenseID.String())

	s.mockService.EXPECT().DeleteExpense(s.expenseID).Return(repositories.ErrExpenseNotFound)

	err := s.handler.DeleteExpense(c)

	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}
