// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"inkspot/internal/domain/entity"
	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/domain/repository"

	"github.com/google/uuid"
)

// loadSession resolves a session id to its live state. Unknown sessions map
// to an unauthorized error so expired tokens fail uniformly.
func loadSession(ctx context.Context, sessions repository.SessionRepository, id uuid.UUID) (*entity.Session, error) {
	session, err := sessions.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("session not found")
	}

	return session, nil
}

// loadArtistSession resolves the session and its artist profile in one go.
func loadArtistSession(
	ctx context.Context,
	sessions repository.SessionRepository,
	artists repository.ArtistRepository,
	id uuid.UUID,
) (*entity.Session, *entity.Artist, error) {
	session, err := loadSession(ctx, sessions, id)
	if err != nil {
		return nil, nil, err
	}
	if session.Role != entity.RoleArtist {
		return nil, nil, domainerrors.ErrForbidden.WrapMessage("artist role required")
	}

	artist, err := artists.FindByID(ctx, session.AccountID)
	if err != nil {
		return nil, nil, domainerrors.ErrNotFound.WrapMessage("artist profile not found")
	}

	return session, artist, nil
}
