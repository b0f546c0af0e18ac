package repository

import (
	"context"

	"groove/internal/domain/entity"
	"groove/internal/errors"

	"github.com/google/uuid"
)

// ErrUserAddressNotFound is returned when an address is not found.
var ErrUserAddressNotFound = errors.New("user address not found")

// UserAddressRepository defines the operations for shipping address persistence.
type UserAddressRepository interface {
	Crud[entity.UserAddress]

	// DeleteByUserID removes all addresses of a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
