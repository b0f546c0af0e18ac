package entity

import (
	"time"

	"groove/internal/errors"

	"github.com/google/uuid"
)

// Person is a real individual referenced by band memberships.
type Person struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	Alive       bool      `json:"alive"`
	Nationality string    `json:"nationality"`
	Gender      string    `json:"gender"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (p *Person) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.DateOfBirth.IsZero() {
		return errors.New("dateOfBirth is required")
	}
	if p.DateOfBirth.After(time.Now()) {
		return errors.New("dateOfBirth must not be in the future")
	}
	if p.Nationality == "" {
		return errors.New("nationality is required")
	}

	return nil
}

// BandMember joins an artist with one of the persons performing in it.
type BandMember struct {
	ID        uuid.UUID `json:"id"`
	ArtistID  uuid.UUID `json:"artistId"`
	PersonID  uuid.UUID `json:"personId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (b *BandMember) Validate() error {
	if b.ArtistID == uuid.Nil {
		return errors.New("artistId is required")
	}
	if b.PersonID == uuid.Nil {
		return errors.New("personId is required")
	}

	return nil
}
