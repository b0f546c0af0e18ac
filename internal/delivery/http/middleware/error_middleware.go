package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "groove/internal/delivery/context"
	"groove/internal/delivery/http/response"
	domainerrors "groove/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates errors escaping the handlers into JSON responses.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates the error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as Echo's HTTPErrorHandler. Application errors
// carry their own status and code; everything else becomes an opaque 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logError(err, c)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", fmt.Sprintf("%v", httpErr.Message), "")

		return
	}

	m.logError(err, c)
	fallback := domainerrors.ErrInternalError
	_ = response.Error(c, fallback.HTTPCode(), fallback.ErrorCode(), fallback.Message(), "")
}

func (m *ErrorMiddleware) logError(err error, c echo.Context) {
	logger := m.logger
	if reqLogger := deliverycontext.GetLogger(c.Request().Context()); reqLogger != nil {
		logger = reqLogger
	}
	logger.Error("Unhandled request error",
		slog.String("error", err.Error()),
		slog.String("method", c.Request().Method),
		slog.String("path", c.Request().URL.Path),
	)
}
