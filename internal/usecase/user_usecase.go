package usecase

import (
	"context"

	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	"groove/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to create a user account directly.
// Only admins reach this path; self-service signup goes through AuthUsecase.
type CreateUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// UpdateUserInput defines the fields of a user account that may be patched.
// Nil fields are left untouched.
type UpdateUserInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

// UserUsecase defines the interface for user account operations. Every call
// carries the authenticated actor; non-admins may only touch their own account.
type UserUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateUserInput) (*entity.User, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.User, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.User], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
