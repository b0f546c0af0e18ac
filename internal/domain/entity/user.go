package entity

import (
	"net/mail"
	"time"

	"groove/internal/errors"

	"github.com/google/uuid"
)

// User is the account entity. It owns addresses, payments, albums, shopping
// sessions and orders; ownership-based authorization resolves back to its ID.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // Globally unique, used as the login identifier.
	Password  string    `json:"-"`     // Bcrypt hash, never serialized.
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate enforces the field constraints shared by request validation and persistence.
func (u *User) Validate() error {
	if u.Name == "" {
		return errors.New("name is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return errors.New("email must be a valid email address")
	}
	if !u.Role.IsValid() {
		return errors.Errorf("role must be one of %q or %q", RoleUser, RoleAdmin)
	}

	return nil
}
