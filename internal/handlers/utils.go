package handlers

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseIDParam parses the :id path parameter as a UUID
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// getIntParam reads an integer query parameter, falling back to the default
// when the parameter is absent or not a number
func getIntParam(c echo.Context, name string, defaultValue int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return defaultValue
	}
	return value
}

// getClientIP resolves the originating client address, preferring proxy
// headers over the raw connection peer
func getClientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
