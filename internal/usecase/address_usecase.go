package usecase

import (
	"context"

	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	"groove/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateUserAddressInput defines the data required to register a shipping
// address. An empty UserID defaults to the caller.
type CreateUserAddressInput struct {
	UserID       uuid.UUID `json:"userId"`
	StreetName   string    `json:"streetName" validate:"required"`
	StreetNumber string    `json:"streetNumber" validate:"required"`
	PostalCode   string    `json:"postalCode" validate:"required"`
	City         string    `json:"city" validate:"required"`
	State        string    `json:"state" validate:"required"`
	Country      string    `json:"country" validate:"required"`
}

// UpdateUserAddressInput defines the address fields that may be patched.
// UserID reassigns the address to another user; only admins may set it.
type UpdateUserAddressInput struct {
	UserID       *uuid.UUID `json:"userId,omitempty"`
	StreetName   *string    `json:"streetName,omitempty" validate:"omitempty,min=1"`
	StreetNumber *string    `json:"streetNumber,omitempty" validate:"omitempty,min=1"`
	PostalCode   *string    `json:"postalCode,omitempty" validate:"omitempty,min=1"`
	City         *string    `json:"city,omitempty" validate:"omitempty,min=1"`
	State        *string    `json:"state,omitempty"`
	Country      *string    `json:"country,omitempty"`
}

// UserAddressUsecase defines the interface for shipping address operations.
type UserAddressUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateUserAddressInput) (*entity.UserAddress, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.UserAddress, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.UserAddress], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateUserAddressInput) (*entity.UserAddress, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
