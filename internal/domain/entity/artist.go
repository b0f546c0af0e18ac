package entity

import (
	"time"

	"groove/internal/errors"

	"github.com/google/uuid"
)

// Artist is a performing act signed to a label. Band members link it to the
// persons behind it; records link it to its releases.
type Artist struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	LabelID   uuid.UUID `json:"labelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (a *Artist) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}
	if a.Country == "" {
		return errors.New("country is required")
	}
	if a.LabelID == uuid.Nil {
		return errors.New("labelId is required")
	}

	return nil
}
