package repository

import (
	"context"

	"groove/internal/domain/entity"
	"groove/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	ErrLabelNotFound       = errors.New("label not found")
	ErrArtistNotFound      = errors.New("artist not found")
	ErrPersonNotFound      = errors.New("person not found")
	ErrBandMemberNotFound  = errors.New("band member not found")
	ErrRecordNotFound      = errors.New("record not found")
	ErrGenreNotFound       = errors.New("genre not found")
	ErrRecordGenreNotFound = errors.New("record genre not found")
)

// LabelRepository defines the operations for label persistence.
type LabelRepository interface {
	Crud[entity.Label]
}

// ArtistRepository defines the operations for artist persistence.
// The label-scoped finder drives the label delete cascade.
type ArtistRepository interface {
	Crud[entity.Artist]

	// FindByLabelID retrieves all artists signed to a label.
	FindByLabelID(ctx context.Context, labelID uuid.UUID) ([]*entity.Artist, error)
}

// PersonRepository defines the operations for person persistence.
type PersonRepository interface {
	Crud[entity.Person]
}

// BandMemberRepository defines the operations for band member persistence.
type BandMemberRepository interface {
	Crud[entity.BandMember]

	// DeleteByArtistID removes all memberships of an artist.
	DeleteByArtistID(ctx context.Context, artistID uuid.UUID) error

	// DeleteByPersonID removes all memberships referencing a person.
	DeleteByPersonID(ctx context.Context, personID uuid.UUID) error
}

// RecordRepository defines the operations for record persistence.
// The scoped finders drive the label and artist delete cascades.
type RecordRepository interface {
	Crud[entity.Record]

	// FindByArtistID retrieves all records released by an artist.
	FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.Record, error)

	// FindByLabelID retrieves all records released on a label.
	FindByLabelID(ctx context.Context, labelID uuid.UUID) ([]*entity.Record, error)
}

// GenreRepository defines the operations for genre persistence.
type GenreRepository interface {
	Crud[entity.Genre]
}

// RecordGenreRepository defines the operations for record-genre link persistence.
type RecordGenreRepository interface {
	Crud[entity.RecordGenre]

	// DeleteByRecordID removes all genre links of a record.
	DeleteByRecordID(ctx context.Context, recordID uuid.UUID) error

	// DeleteByGenreID removes all record links of a genre.
	DeleteByGenreID(ctx context.Context, genreID uuid.UUID) error
}
