package repository

import (
	"context"
	"errors"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is a domain-specific error returned when a session is not found.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the operations for server-side session state.
// Sessions are in-memory only; they never survive a restart.
type SessionRepository interface {
	// FindByID retrieves a single session by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindByAccountID retrieves every live session of an account. The
	// notification pipeline fans out over these.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error)

	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// Update modifies an existing session.
	Update(ctx context.Context, session *entity.Session) error

	// Delete removes a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
