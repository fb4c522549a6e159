package memstore

import (
	"context"

	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"

	"github.com/google/uuid"
)

type eventRepository struct {
	store *Store
}

// NewEventRepository creates an event repository backed by the store.
func NewEventRepository(store *Store) repository.EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, event := range r.store.events {
		if event.ID == id {
			return cloneEvent(event), nil
		}
	}

	return nil, repository.ErrEventNotFound
}

func (r *eventRepository) FindAll(_ context.Context) ([]*entity.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Event, 0, len(r.store.events))
	for _, event := range r.store.events {
		out = append(out, cloneEvent(event))
	}

	return out, nil
}

func (r *eventRepository) FindByArtistID(_ context.Context, artistID uuid.UUID) ([]*entity.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Event, 0)
	for _, event := range r.store.events {
		if event.ArtistID == artistID {
			out = append(out, cloneEvent(event))
		}
	}

	return out, nil
}

func (r *eventRepository) Create(_ context.Context, event *entity.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.events = prepend(r.store.events, cloneEvent(event))

	return nil
}

func (r *eventRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, event := range r.store.events {
		if event.ID == id {
			r.store.events = remove(r.store.events, i)

			return nil
		}
	}

	return repository.ErrEventNotFound
}
