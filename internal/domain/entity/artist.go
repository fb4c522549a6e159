package entity

import (
	"time"

	"github.com/google/uuid"
)

// ArtistType distinguishes the two artist categories of the marketplace.
type ArtistType string

const (
	// ArtistTypeTattoo indicates a tattoo artist.
	ArtistTypeTattoo ArtistType = "TATTOO"
	// ArtistTypePMU indicates a permanent-makeup artist.
	ArtistTypePMU ArtistType = "PMU"
)

// IsValid checks if the ArtistType is a valid value.
func (t ArtistType) IsValid() bool {
	return t == ArtistTypeTattoo || t == ArtistTypePMU
}

// ArtistStatus is the moderation state of an artist profile.
// Profiles start pending and become visible only once an admin approves them.
type ArtistStatus string

const (
	// ArtistStatusPending indicates a freshly signed-up, not yet moderated profile.
	ArtistStatusPending ArtistStatus = "pending"
	// ArtistStatusActive indicates an approved, publicly visible profile.
	ArtistStatusActive ArtistStatus = "active"
	// ArtistStatusRejected indicates a profile an admin declined.
	ArtistStatusRejected ArtistStatus = "rejected"
)

// SubscriptionTier is the artist's plan level.
type SubscriptionTier string

const (
	// TierFree is the default tier with no paid placement.
	TierFree SubscriptionTier = "FREE"
	// TierPremium is the paid tier with promotional placement.
	TierPremium SubscriptionTier = "PREMIUM"
)

// Subscription is an artist's current plan state. The premium predicate is
// always derived from it, never stored.
type Subscription struct {
	Tier       SubscriptionTier `json:"tier"`                  // Current plan tier.
	ExpiryDate *time.Time       `json:"expiry_date,omitempty"` // Calendar date the premium tier lapses; nil for free tier.
}

// Artist is a marketplace artist profile.
type Artist struct {
	ID            uuid.UUID    `json:"id"`                        // The unique identifier for the artist; content relations key on this.
	Name          string       `json:"name"`                      // Display name. Not unique; never used for joins.
	Email         string       `json:"email"`                     // Login identifier, mirrors the artist's account.
	AvatarURL     string       `json:"avatar_url"`                // Profile avatar image reference.
	CoverImageURL string       `json:"cover_image_url,omitempty"` // Profile cover image reference.
	Bio           string       `json:"bio,omitempty"`             // Free-form introduction text.
	Specialty     string       `json:"specialty"`                 // Headline style, e.g. "Fine Line".
	Rating        float64      `json:"rating"`                    // Aggregate rating in [0, 5].
	ReviewCount   int          `json:"review_count"`              // Number of reviews behind the rating.
	Location      string       `json:"location"`                  // Display location string; no geo semantics.
	ArtistType    ArtistType   `json:"artist_type"`               // Tattoo or PMU.
	WhatsApp      string       `json:"whatsapp,omitempty"`        // Optional contact link.
	KakaoTalk     string       `json:"kakao_talk,omitempty"`      // Optional contact link.
	Subscription  Subscription `json:"subscription"`              // Current plan state.
	Status        ArtistStatus `json:"status"`                    // Moderation state.
	CreatedAt     time.Time    `json:"created_at"`                // Timestamp of signup.
}

// IsPremiumAt reports whether the artist counts as premium on the given day:
// premium tier, an expiry date present, and the expiry not yet passed.
// An expiry equal to today still counts.
func (a *Artist) IsPremiumAt(now time.Time) bool {
	if a.Subscription.Tier != TierPremium {
		return false
	}
	if a.Subscription.ExpiryDate == nil {
		return false
	}

	return !DateOnly(*a.Subscription.ExpiryDate).Before(DateOnly(now))
}

// IsPremium reports whether the artist counts as premium today.
func (a *Artist) IsPremium() bool {
	return a.IsPremiumAt(time.Now())
}

// DateOnly truncates a timestamp to its calendar date in UTC. Subscription
// expiry and payment dates compare at this precision.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
