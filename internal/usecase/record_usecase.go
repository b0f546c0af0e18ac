package usecase

import (
	"context"

	"groove/internal/domain/authz"
	"groove/internal/domain/entity"
	"groove/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateRecordInput defines the data required to create a record release.
type CreateRecordInput struct {
	ArtistID       uuid.UUID `json:"artistId" validate:"required"`
	LabelID        uuid.UUID `json:"labelId" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	ReleaseYear    int       `json:"releaseYear" validate:"required"`
	Country        string    `json:"country"`
	Duration       string    `json:"duration" validate:"required"`
	Language       string    `json:"language"`
	RecordType     string    `json:"recordType" validate:"required"`
	NumberOfTracks int       `json:"numberOfTracks" validate:"required,min=1"`
}

// UpdateRecordInput defines the record fields that may be patched.
type UpdateRecordInput struct {
	ArtistID       *uuid.UUID `json:"artistId,omitempty"`
	LabelID        *uuid.UUID `json:"labelId,omitempty"`
	Name           *string    `json:"name,omitempty" validate:"omitempty,min=1"`
	ReleaseYear    *int       `json:"releaseYear,omitempty"`
	Country        *string    `json:"country,omitempty"`
	Duration       *string    `json:"duration,omitempty"`
	Language       *string    `json:"language,omitempty"`
	RecordType     *string    `json:"recordType,omitempty"`
	NumberOfTracks *int       `json:"numberOfTracks,omitempty" validate:"omitempty,min=1"`
}

// RecordUsecase defines the interface for record release operations.
type RecordUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateRecordInput) (*entity.Record, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.Record, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.Record], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateRecordInput) (*entity.Record, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

// CreateRecordGenreInput defines the data required to tag a record with a genre.
type CreateRecordGenreInput struct {
	GenreID  uuid.UUID `json:"genreId" validate:"required"`
	RecordID uuid.UUID `json:"recordId" validate:"required"`
}

// UpdateRecordGenreInput defines the record-genre link fields that may be patched.
type UpdateRecordGenreInput struct {
	GenreID  *uuid.UUID `json:"genreId,omitempty"`
	RecordID *uuid.UUID `json:"recordId,omitempty"`
}

// RecordGenreUsecase defines the interface for record-genre link operations.
type RecordGenreUsecase interface {
	Create(ctx context.Context, actor authz.Actor, input *CreateRecordGenreInput) (*entity.RecordGenre, error)
	Get(ctx context.Context, actor authz.Actor, id uuid.UUID) (*entity.RecordGenre, error)
	List(ctx context.Context, actor authz.Actor, q repository.Query) (*repository.Page[entity.RecordGenre], error)
	Update(ctx context.Context, actor authz.Actor, id uuid.UUID, input *UpdateRecordGenreInput) (*entity.RecordGenre, error)
	Delete(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}
