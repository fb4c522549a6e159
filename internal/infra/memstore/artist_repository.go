package memstore

import (
	"context"

	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"

	"github.com/google/uuid"
)

type artistRepository struct {
	store *Store
}

// NewArtistRepository creates an artist repository backed by the store.
func NewArtistRepository(store *Store) repository.ArtistRepository {
	return &artistRepository{store: store}
}

func (r *artistRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Artist, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, artist := range r.store.artists {
		if artist.ID == id {
			return cloneArtist(artist), nil
		}
	}

	return nil, repository.ErrArtistNotFound
}

func (r *artistRepository) FindAll(_ context.Context) ([]*entity.Artist, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Artist, 0, len(r.store.artists))
	for _, artist := range r.store.artists {
		out = append(out, cloneArtist(artist))
	}

	return out, nil
}

func (r *artistRepository) FindByStatus(_ context.Context, status entity.ArtistStatus) ([]*entity.Artist, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Artist, 0)
	for _, artist := range r.store.artists {
		if artist.Status == status {
			out = append(out, cloneArtist(artist))
		}
	}

	return out, nil
}

func (r *artistRepository) Create(_ context.Context, artist *entity.Artist) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.artists = prepend(r.store.artists, cloneArtist(artist))

	return nil
}

func (r *artistRepository) Update(_ context.Context, artist *entity.Artist) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, existing := range r.store.artists {
		if existing.ID == artist.ID {
			r.store.artists[i] = cloneArtist(artist)

			return nil
		}
	}

	return repository.ErrArtistNotFound
}
