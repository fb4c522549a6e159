package memstore

import (
	"context"

	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"

	"github.com/google/uuid"
)

type reviewRepository struct {
	store *Store
}

// NewReviewRepository creates a review repository backed by the store.
func NewReviewRepository(store *Store) repository.ReviewRepository {
	return &reviewRepository{store: store}
}

func (r *reviewRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, review := range r.store.reviews {
		if review.ID == id {
			return cloneReview(review), nil
		}
	}

	return nil, repository.ErrReviewNotFound
}

func (r *reviewRepository) FindAll(_ context.Context) ([]*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Review, 0, len(r.store.reviews))
	for _, review := range r.store.reviews {
		out = append(out, cloneReview(review))
	}

	return out, nil
}

func (r *reviewRepository) FindByTattooID(_ context.Context, tattooID uuid.UUID) ([]*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Review, 0)
	for _, review := range r.store.reviews {
		if review.TattooID == tattooID {
			out = append(out, cloneReview(review))
		}
	}

	return out, nil
}

func (r *reviewRepository) FindByArtistID(_ context.Context, artistID uuid.UUID) ([]*entity.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.Review, 0)
	for _, review := range r.store.reviews {
		if review.ArtistID == artistID {
			out = append(out, cloneReview(review))
		}
	}

	return out, nil
}

func (r *reviewRepository) ExistsByTattooAndReviewer(_ context.Context, tattooID, reviewerID uuid.UUID) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, review := range r.store.reviews {
		if review.TattooID == tattooID && review.ReviewerID == reviewerID {
			return true, nil
		}
	}

	return false, nil
}

func (r *reviewRepository) Create(_ context.Context, review *entity.Review) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.reviews = prepend(r.store.reviews, cloneReview(review))

	return nil
}

func (r *reviewRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, review := range r.store.reviews {
		if review.ID == id {
			r.store.reviews = remove(r.store.reviews, i)

			return nil
		}
	}

	return repository.ErrReviewNotFound
}
