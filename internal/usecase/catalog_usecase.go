package usecase

import (
	"context"
	"time"

	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	"groove/internal/domain/repository"

	"github.com/google/uuid"
)

// Catalog entities are readable by every authenticated user and managed by
// admins only. Update inputs patch field-by-field; nil fields are left
// untouched.

// CreateLabelInput defines the data required to create a record label.
type CreateLabelInput struct {
	Name    string `json:"name" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// UpdateLabelInput defines the label fields that may be patched.
type UpdateLabelInput struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Country *string `json:"country,omitempty" validate:"omitempty,min=1"`
}

// LabelUsecase defines the interface for record label operations.
type LabelUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateLabelInput) (*entity.Label, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Label, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Label], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateLabelInput) (*entity.Label, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

// CreateArtistInput defines the data required to create an artist.
type CreateArtistInput struct {
	Name    string    `json:"name" validate:"required"`
	Country string    `json:"country" validate:"required"`
	LabelID uuid.UUID `json:"labelId" validate:"required"`
}

// UpdateArtistInput defines the artist fields that may be patched.
type UpdateArtistInput struct {
	Name    *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	Country *string    `json:"country,omitempty" validate:"omitempty,min=1"`
	LabelID *uuid.UUID `json:"labelId,omitempty"`
}

// ArtistUsecase defines the interface for artist operations.
type ArtistUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateArtistInput) (*entity.Artist, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Artist, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Artist], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateArtistInput) (*entity.Artist, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

// CreatePersonInput defines the data required to create a person.
type CreatePersonInput struct {
	Name        string    `json:"name" validate:"required"`
	DateOfBirth time.Time `json:"dateOfBirth" validate:"required"`
	Alive       bool      `json:"alive"`
	Nationality string    `json:"nationality" validate:"required"`
	Gender      string    `json:"gender"`
}

// UpdatePersonInput defines the person fields that may be patched.
type UpdatePersonInput struct {
	Name        *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	Alive       *bool      `json:"alive,omitempty"`
	Nationality *string    `json:"nationality,omitempty" validate:"omitempty,min=1"`
	Gender      *string    `json:"gender,omitempty"`
}

// PersonUsecase defines the interface for person operations.
type PersonUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreatePersonInput) (*entity.Person, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Person, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Person], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdatePersonInput) (*entity.Person, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

// CreateBandMemberInput defines the data required to link a person to an artist.
type CreateBandMemberInput struct {
	ArtistID uuid.UUID `json:"artistId" validate:"required"`
	PersonID uuid.UUID `json:"personId" validate:"required"`
}

// UpdateBandMemberInput defines the membership fields that may be patched.
type UpdateBandMemberInput struct {
	ArtistID *uuid.UUID `json:"artistId,omitempty"`
	PersonID *uuid.UUID `json:"personId,omitempty"`
}

// BandMemberUsecase defines the interface for band membership operations.
type BandMemberUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateBandMemberInput) (*entity.BandMember, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.BandMember, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.BandMember], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateBandMemberInput) (*entity.BandMember, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

// CreateGenreInput defines the data required to create a genre.
type CreateGenreInput struct {
	Name string `json:"name" validate:"required"`
}

// UpdateGenreInput defines the genre fields that may be patched.
type UpdateGenreInput struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

// GenreUsecase defines the interface for genre operations.
type GenreUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateGenreInput) (*entity.Genre, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Genre, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Genre], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateGenreInput) (*entity.Genre, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
