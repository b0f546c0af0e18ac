package repository

import (
	"context"

	"groove/internal/domain/entity"
	"groove/internal/errors"

	"github.com/google/uuid"
)

// ErrAlbumNotFound is returned when an album listing is not found.
var ErrAlbumNotFound = errors.New("album not found")

// AlbumRepository defines the operations for album listing persistence.
// The scoped finders drive the user and record delete cascades.
type AlbumRepository interface {
	Crud[entity.Album]

	// FindByUserID retrieves all albums listed by a seller.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Album, error)

	// FindByRecordID retrieves all albums listed for a record.
	FindByRecordID(ctx context.Context, recordID uuid.UUID) ([]*entity.Album, error)
}
