package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a login identity. Artist accounts share their ID with the
// corresponding Artist row; general and admin accounts stand alone.
type Account struct {
	ID           uuid.UUID `json:"id"`         // The unique identifier for the account.
	Role         Role      `json:"role"`       // general, artist or admin.
	Name         string    `json:"name"`       // Display name.
	Email        string    `json:"email"`      // Login identifier.
	PasswordHash string    `json:"-"`          // bcrypt hash; never serialized.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of account creation.
}
