package usecase

import (
	"context"

	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	"groove/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateAlbumInput defines the data required to list an album for sale.
// Non-admins may only list albums under their own account; an empty UserID
// defaults to the caller.
type CreateAlbumInput struct {
	UserID      uuid.UUID `json:"userId"`
	RecordID    uuid.UUID `json:"recordId" validate:"required"`
	Description string    `json:"description"`
	Stock       int       `json:"stock" validate:"min=0"`
	Year        int       `json:"year" validate:"required"`
	New         bool      `json:"new"`
	Price       float64   `json:"price" validate:"min=0"`
	Type        string    `json:"type" validate:"required"`
}

// UpdateAlbumInput defines the album listing fields that may be patched.
// UserID reassigns the listing to another seller; only admins may set it.
type UpdateAlbumInput struct {
	UserID      *uuid.UUID `json:"userId,omitempty"`
	Description *string    `json:"description,omitempty"`
	Stock       *int       `json:"stock,omitempty" validate:"omitempty,min=0"`
	Year        *int       `json:"year,omitempty"`
	New         *bool      `json:"new,omitempty"`
	Price       *float64   `json:"price,omitempty" validate:"omitempty,min=0"`
	Type        *string    `json:"type,omitempty"`
}

// AlbumUsecase defines the interface for album listing operations. Listings
// are readable by every authenticated user; mutations require the selling
// user or an admin.
type AlbumUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateAlbumInput) (*entity.Album, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Album, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Album], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateAlbumInput) (*entity.Album, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
