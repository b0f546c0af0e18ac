package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "groove/internal/delivery/context"
	"groove/internal/domain/entity"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/service"
	"groove/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims *service.Claims
	err    error
}

func (s *stubTokenService) GenerateTokens(uuid.UUID, entity.Role) (string, string, error) {
	return "", "", nil
}

func (s *stubTokenService) ValidateAccessToken(string) (*service.Claims, error) {
	return s.claims, s.err
}

func (s *stubTokenService) RefreshTokenDuration() time.Duration {
	return time.Hour
}

func newAuthTestContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/labels", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func requireUnauthorized(t *testing.T, err error) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an application error, got %v", err)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthenticate_SetsActor(t *testing.T) {
	userID := uuid.New()
	m := NewAuthMiddleware(&stubTokenService{claims: &service.Claims{UserID: userID, Role: entity.RoleAdmin}})

	c := newAuthTestContext("Bearer valid-token")
	called := false
	err := m.Authenticate(func(c echo.Context) error {
		called = true
		actor, ok := deliverycontext.GetActor(c)
		require.True(t, ok)
		assert.Equal(t, userID, actor.ID)
		assert.Equal(t, entity.RoleAdmin, actor.Role)

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	err := m.Authenticate(func(echo.Context) error { return nil })(newAuthTestContext(""))

	requireUnauthorized(t, err)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{})

	err := m.Authenticate(func(echo.Context) error { return nil })(newAuthTestContext("Basic dXNlcjpwYXNz"))

	requireUnauthorized(t, err)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{err: errors.New("token expired")})

	err := m.Authenticate(func(echo.Context) error { return nil })(newAuthTestContext("Bearer expired-token"))

	requireUnauthorized(t, err)
}
