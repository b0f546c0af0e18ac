package entity

import (
	"slices"
	"time"

	"groove/internal/errors"

	"github.com/google/uuid"
)

// GenreNames is the closed list of accepted genre names.
var GenreNames = []string{
	"rock", "pop", "jazz", "blues", "classical", "electronic", "hip hop",
	"reggae", "metal", "folk", "country", "samba", "mpb", "sertanejo",
	"forró", "soul", "funk", "punk", "indie", "gospel",
}

// Genre is one of the enumerated music genres.
type Genre struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"` // Unique, from GenreNames.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (g *Genre) Validate() error {
	if !slices.Contains(GenreNames, g.Name) {
		return errors.Errorf("genre %q is not in the accepted genre list", g.Name)
	}

	return nil
}

// RecordGenre joins a record with one of its genres.
type RecordGenre struct {
	ID        uuid.UUID `json:"id"`
	GenreID   uuid.UUID `json:"genreId"`
	RecordID  uuid.UUID `json:"recordId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (rg *RecordGenre) Validate() error {
	if rg.GenreID == uuid.Nil {
		return errors.New("genreId is required")
	}
	if rg.RecordID == uuid.Nil {
		return errors.New("recordId is required")
	}

	return nil
}
