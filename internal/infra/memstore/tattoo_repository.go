package memstore

import (
	"context"

	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"

	"github.com/google/uuid"
)

type tattooRepository struct {
	store *Store
}

// NewTattooRepository creates a tattoo repository backed by the store.
func NewTattooRepository(store *Store) repository.TattooRepository {
	return &tattooRepository{store: store}
}

func (r *tattooRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Tattoo, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, tattoo := range r.store.tattoos {
		if tattoo.ID == id {
			return cloneTattoo(tattoo), nil
		}
	}

	return nil, repository.ErrTattooNotFound
}

func (r *tattooRepository) FindAll(_ context.Context) ([]*entity.Tattoo, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Tattoo, 0, len(r.store.tattoos))
	for _, tattoo := range r.store.tattoos {
		out = append(out, cloneTattoo(tattoo))
	}

	return out, nil
}

func (r *tattooRepository) FindByArtistID(_ context.Context, artistID uuid.UUID) ([]*entity.Tattoo, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Tattoo, 0)
	for _, tattoo := range r.store.tattoos {
		if tattoo.ArtistID == artistID {
			out = append(out, cloneTattoo(tattoo))
		}
	}

	return out, nil
}

func (r *tattooRepository) Create(_ context.Context, tattoo *entity.Tattoo) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.tattoos = prepend(r.store.tattoos, cloneTattoo(tattoo))

	return nil
}

func (r *tattooRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, tattoo := range r.store.tattoos {
		if tattoo.ID == id {
			r.store.tattoos = remove(r.store.tattoos, i)

			return nil
		}
	}

	return repository.ErrTattooNotFound
}
