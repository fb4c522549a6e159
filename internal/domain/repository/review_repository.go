package repository

import (
	"context"
	"errors"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReviewNotFound is a domain-specific error returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindAll retrieves every review, newest first.
	FindAll(ctx context.Context) ([]*entity.Review, error)

	// FindByTattooID retrieves the reviews attached to one tattoo, newest first.
	FindByTattooID(ctx context.Context, tattooID uuid.UUID) ([]*entity.Review, error)

	// FindByArtistID retrieves the reviews of one artist's work, newest first.
	FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.Review, error)

	// ExistsByTattooAndReviewer reports whether the reviewer has already
	// reviewed the tattoo. One review per reviewer per tattoo.
	ExistsByTattooAndReviewer(ctx context.Context, tattooID, reviewerID uuid.UUID) (bool, error)

	// Create persists a new review at the head of the collection.
	Create(ctx context.Context, review *entity.Review) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error
}
