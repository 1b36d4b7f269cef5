package handlers

import (
	"net/http"

	"expense-manager/internal/errors"

	"github.com/labstack/echo/v4"
)

// Every handler reports failures through the two helpers below so that each
// error response carries a stable code and the request's trace ID.
//
//   - SendError covers client and domain errors, e.g.
//     SendError(c, errors.ExpenseNotFound) or
//     SendError(c, errors.ValidationGeneral, errors.WithDetails("...")).
//     The HTTP status comes from the error code.
//   - SendSystemError covers repository and service failures. The internal
//     error is logged, the client only sees a generic SYSTEM_001 envelope.
//
// Handlers do not call echo.NewHTTPError or c.JSON directly for errors, and
// never return a raw error that would leak internal detail.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
// Used for backward compatibility in tests
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	response := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	response, _ := errors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, response)
}
