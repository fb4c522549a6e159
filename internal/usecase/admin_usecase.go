package usecase

import (
	"context"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// AdminOverviewOutput returns the back-office headline counts.
type AdminOverviewOutput struct {
	ArtistCount  int
	PendingCount int
	TattooCount  int
	EventCount   int
	ReviewCount  int
	PaymentCount int
	PremiumCount int
	TotalRevenue int
}

// AdminUsecase defines the back-office operations. Every call requires an
// admin session; non-admin callers get a forbidden error.
type AdminUsecase interface {
	Overview(ctx context.Context, sessionID uuid.UUID) (*AdminOverviewOutput, error)

	Artists(ctx context.Context, sessionID uuid.UUID) ([]*entity.Artist, error)
	PendingArtists(ctx context.Context, sessionID uuid.UUID) ([]*entity.Artist, error)
	ApproveArtist(ctx context.Context, sessionID, artistID uuid.UUID) (*entity.Artist, error)
	RejectArtist(ctx context.Context, sessionID, artistID uuid.UUID) (*entity.Artist, error)

	// SetArtistSubscription overwrites an artist's subscription. A nil days
	// value clears it to the free tier; otherwise the artist becomes premium
	// until today plus the given number of days.
	SetArtistSubscription(ctx context.Context, sessionID, artistID uuid.UUID, days *int) (*entity.Artist, error)

	DeleteTattoo(ctx context.Context, sessionID, tattooID uuid.UUID) error
	DeleteEvent(ctx context.Context, sessionID, eventID uuid.UUID) error
	DeleteReview(ctx context.Context, sessionID, reviewID uuid.UUID) error

	Payments(ctx context.Context, sessionID uuid.UUID) ([]*entity.Payment, error)
}
