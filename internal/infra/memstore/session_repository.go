package memstore

import (
	"context"

	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"

	"github.com/google/uuid"
)

type sessionRepository struct {
	store *Store
}

// NewSessionRepository creates a session repository backed by the store.
func NewSessionRepository(store *Store) repository.SessionRepository {
	return &sessionRepository{store: store}
}

func (r *sessionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	session, ok := r.store.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return cloneSession(session), nil
}

func (r *sessionRepository) FindByAccountID(_ context.Context, accountID uuid.UUID) ([]*entity.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Session, 0)
	for _, session := range r.store.sessions {
		if session.AccountID == accountID {
			out = append(out, cloneSession(session))
		}
	}

	return out, nil
}

func (r *sessionRepository) Create(_ context.Context, session *entity.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.sessions[session.ID] = cloneSession(session)

	return nil
}

func (r *sessionRepository) Update(_ context.Context, session *entity.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.sessions[session.ID]; !ok {
		return repository.ErrSessionNotFound
	}
	r.store.sessions[session.ID] = cloneSession(session)

	return nil
}

func (r *sessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.sessions, id)

	return nil
}
