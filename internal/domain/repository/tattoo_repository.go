package repository

import (
	"context"
	"errors"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTattooNotFound is a domain-specific error returned when a tattoo is not found.
var ErrTattooNotFound = errors.New("tattoo not found")

// TattooRepository defines the standard operations for tattoo persistence.
// New tattoos are prepended so FindAll returns newest first.
type TattooRepository interface {
	// FindByID retrieves a single tattoo by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tattoo, error)

	// FindAll retrieves every tattoo, newest first.
	FindAll(ctx context.Context) ([]*entity.Tattoo, error)

	// FindByArtistID retrieves the tattoos uploaded by one artist, newest first.
	FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.Tattoo, error)

	// Create persists a new tattoo at the head of the collection.
	Create(ctx context.Context, tattoo *entity.Tattoo) error

	// Delete removes a tattoo. Reviews referencing it are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}
