// Package response defines the JSON shapes the API returns.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the error payload. Details carries the specific constraint
// that failed and is only populated for client errors.
type ErrorBody struct {
	Code    string `json:"code"`    // Business error code, e.g. "VALIDATION_ERROR"
	Message string `json:"message"` // User-friendly message
	Details string `json:"details,omitempty"`
}

// JSON writes a successful response. Entities and pages serialize as-is.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// NoContent writes an empty 204 response, used after deletes and logout.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes an error response.
func Error(c echo.Context, statusCode int, errorCode string, message string, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	// Internal details stay out of 5xx and auth responses.
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = ""
	}

	return c.JSON(statusCode, ErrorBody{
		Code:    errorCode,
		Message: message,
		Details: details,
	})
}
