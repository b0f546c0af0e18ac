package entity

import (
	"time"

	"groove/internal/errors"

	"github.com/google/uuid"
)

// AlbumType is the physical format an album is sold in.
type AlbumType string

const (
	AlbumTypeVinyl    AlbumType = "vinyl"
	AlbumTypeCD       AlbumType = "cd"
	AlbumTypeCassette AlbumType = "cassette"
)

// IsValid checks if the AlbumType is a valid value.
func (t AlbumType) IsValid() bool {
	switch t {
	case AlbumTypeVinyl, AlbumTypeCD, AlbumTypeCassette:
		return true
	default:
		return false
	}
}

// minAlbumYear is the oldest pressing year an album listing may carry.
const minAlbumYear = 1800

// Album is a sellable copy of a record listed by a user. A seller may list one
// album per record, year and condition.
type Album struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"` // The selling user; owns this listing.
	RecordID    uuid.UUID `json:"recordId"`
	Description string    `json:"description"`
	Stock       int       `json:"stock"`
	Year        int       `json:"year"`
	New         bool      `json:"new"` // Condition: factory new vs used.
	Price       float64   `json:"price"`
	Type        AlbumType `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (a *Album) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("userId is required")
	}
	if a.RecordID == uuid.Nil {
		return errors.New("recordId is required")
	}
	if a.Stock < 0 {
		return errors.New("stock must not be negative")
	}
	if a.Year < minAlbumYear || a.Year > time.Now().Year() {
		return errors.Errorf("year must be between %d and the current year", minAlbumYear)
	}
	if a.Price < 0 {
		return errors.New("price must not be negative")
	}
	if !a.Type.IsValid() {
		return errors.Errorf("type %q is not a known album type", a.Type)
	}

	return nil
}
