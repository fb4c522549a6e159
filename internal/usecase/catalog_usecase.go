package usecase

import (
	"context"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UploadTattooInput defines the data required to add a portfolio piece.
// Image carries the raw upload; it is recompressed before persisting.
type UploadTattooInput struct {
	Image       []byte
	Style       string
	Description string
	Tags        []string
}

// CreateEventInput defines the data required to create a promotion.
type CreateEventInput struct {
	Title         string
	Image         []byte
	OriginalPrice int
	DiscountPrice int
	StartDate     string
	EndDate       string
	Description   string
}

// SubmitReviewInput defines the data required to review a tattoo. Image is
// optional; when absent the review falls back to the tattoo image.
type SubmitReviewInput struct {
	TattooID uuid.UUID
	Rating   int
	Comment  string
	Image    []byte
}

// --- Output DTOs ---

// HomeOutput returns the landing page content. Artists are the active
// profiles with premium placements first.
type HomeOutput struct {
	Artists []*entity.Artist
	Tattoos []*entity.Tattoo
}

// ArtistDetailOutput returns an artist profile with its related content.
type ArtistDetailOutput struct {
	Artist  *entity.Artist
	Tattoos []*entity.Tattoo
	Reviews []*entity.Review
	Events  []*entity.Event
}

// TattooDetailOutput returns a tattoo with its owner, reviews and the
// owner's other work. Artist is nil when the owner is no longer active.
type TattooDetailOutput struct {
	Tattoo       *entity.Tattoo
	Artist       *entity.Artist
	Reviews      []*entity.Review
	OtherTattoos []*entity.Tattoo
	Liked        bool
}

// SearchOutput returns everything matching a free-text query.
type SearchOutput struct {
	Artists []*entity.Artist
	Tattoos []*entity.Tattoo
	Events  []*entity.Event
}

// LikedContentOutput returns the session's liked tattoos and artists.
// Liked artists exclude profiles that are no longer active.
type LikedContentOutput struct {
	Tattoos []*entity.Tattoo
	Artists []*entity.Artist
}

// DashboardStatsOutput returns the logged-in artist's content counts.
type DashboardStatsOutput struct {
	Artist      *entity.Artist
	TattooCount int
	EventCount  int
	ReviewCount int
	Payments    []*entity.Payment
}

// CatalogUsecase defines the read side of the marketplace plus the
// content commands available to authenticated accounts.
type CatalogUsecase interface {
	Home(ctx context.Context) (*HomeOutput, error)
	ActiveArtists(ctx context.Context) ([]*entity.Artist, error)
	ArtistDetail(ctx context.Context, artistID uuid.UUID) (*ArtistDetailOutput, error)
	TattooDetail(ctx context.Context, sessionID *uuid.UUID, tattooID uuid.UUID) (*TattooDetailOutput, error)
	Events(ctx context.Context) ([]*entity.Event, error)
	EventDetail(ctx context.Context, eventID uuid.UUID) (*entity.Event, error)
	Search(ctx context.Context, query string) (*SearchOutput, error)

	ToggleLikeTattoo(ctx context.Context, sessionID, tattooID uuid.UUID) (liked bool, err error)
	ToggleLikeArtist(ctx context.Context, sessionID, artistID uuid.UUID) (liked bool, err error)
	LikedContent(ctx context.Context, sessionID uuid.UUID) (*LikedContentOutput, error)

	UploadTattoo(ctx context.Context, sessionID uuid.UUID, input UploadTattooInput) (*entity.Tattoo, error)
	CreateEvent(ctx context.Context, sessionID uuid.UUID, input CreateEventInput) (*entity.Event, error)
	SubmitReview(ctx context.Context, sessionID uuid.UUID, input SubmitReviewInput) (*entity.Review, error)

	DashboardStats(ctx context.Context, sessionID uuid.UUID) (*DashboardStatsOutput, error)
	ShareQR(ctx context.Context, artistID uuid.UUID) ([]byte, error)
}
