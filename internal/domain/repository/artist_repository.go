package repository

import (
	"context"
	"errors"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrArtistNotFound is a domain-specific error returned when an artist is not found.
var ErrArtistNotFound = errors.New("artist not found")

// ArtistRepository defines the standard operations for artist persistence.
type ArtistRepository interface {
	// FindByID retrieves a single artist by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Artist, error)

	// FindAll retrieves every artist regardless of status.
	FindAll(ctx context.Context) ([]*entity.Artist, error)

	// FindByStatus retrieves artists filtered by moderation status.
	FindByStatus(ctx context.Context, status entity.ArtistStatus) ([]*entity.Artist, error)

	// Create persists a new artist entity.
	Create(ctx context.Context, artist *entity.Artist) error

	// Update modifies an existing artist entity.
	Update(ctx context.Context, artist *entity.Artist) error
}
