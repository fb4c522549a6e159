package repository

import (
	"context"
	"errors"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is a domain-specific error returned when an event is not found.
var ErrEventNotFound = errors.New("event not found")

// EventRepository defines the standard operations for promotion event persistence.
type EventRepository interface {
	// FindByID retrieves a single event by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// FindAll retrieves every event, newest first.
	FindAll(ctx context.Context) ([]*entity.Event, error)

	// FindByArtistID retrieves the events created by one artist, newest first.
	FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.Event, error)

	// Create persists a new event at the head of the collection.
	Create(ctx context.Context, event *entity.Event) error

	// Delete removes an event.
	Delete(ctx context.Context, id uuid.UUID) error
}
