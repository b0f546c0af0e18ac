package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "groove/internal/domain/errors"
	"groove/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/labels", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleHTTPError_ApplicationError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrNotFound), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
}

func TestHandleHTTPError_ValidationDetailsSurface(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("limit must be a non-negative integer")), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "limit must be a non-negative integer")
}

func TestHandleHTTPError_InternalDetailsStripped(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrInternalError.WithDetails("pq: connection refused")), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestHandleHTTPError_UnknownErrorBecomes500(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("something unexpected"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"INTERNAL_ERROR"`)
	assert.NotContains(t, rec.Body.String(), "something unexpected")
}

func TestHandleHTTPError_CommittedResponseLeftAlone(t *testing.T) {
	m := newErrorMiddleware()
	c, rec := newErrorTestContext()
	_ = c.NoContent(http.StatusNoContent)

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrNotFound), c)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
