package repository

import (
	"context"

	"groove/internal/domain/entity"
	"groove/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for refresh token persistence.
type RefreshTokenRepository interface {
	// Create persists a new refresh token session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByToken retrieves a session by its opaque token string.
	FindByToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// Update persists changes to a session, e.g. revocation.
	Update(ctx context.Context, token *entity.RefreshToken) error

	// DeleteByUserID removes all sessions of a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
