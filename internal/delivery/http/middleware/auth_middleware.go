package middleware

import (
	"strings"

	deliverycontext "groove/internal/delivery/context"
	"groove/internal/domain/authz"
	domainerrors "groove/internal/domain/errors"
	"groove/internal/domain/service"
	"groove/internal/errors"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the resulting
// actor on the request context. Every failure surfaces as the same 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		deliverycontext.SetActor(c, authz.Actor{ID: claims.UserID, Role: claims.Role})

		return next(c)
	}
}
