package entity

import (
	"time"

	"groove/internal/errors"

	"github.com/google/uuid"
)

// Label is a record label. It owns artists and records; deleting a label
// cascades to both.
type Label struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"` // Globally unique.
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (l *Label) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Country == "" {
		return errors.New("country is required")
	}

	return nil
}
