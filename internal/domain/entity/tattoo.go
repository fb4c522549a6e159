package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tattoo is a portfolio piece uploaded by an artist.
type Tattoo struct {
	ID              uuid.UUID  `json:"id"`                    // The unique identifier for the tattoo.
	ImageURL        string     `json:"image_url"`             // Image reference (URL or data URL).
	ArtistID        uuid.UUID  `json:"artist_id"`             // Owning artist; all joins key on this.
	ArtistName      string     `json:"artist_name"`           // Denormalized display copy of the owner's name.
	ArtistAvatarURL string     `json:"artist_avatar_url"`     // Denormalized display copy of the owner's avatar.
	Style           string     `json:"style"`                 // Style label, e.g. "Blackwork".
	Description     string     `json:"description,omitempty"` // Optional free-form description.
	Tags            []string   `json:"tags,omitempty"`        // Optional search tags.
	ArtistType      ArtistType `json:"artist_type"`           // Tattoo or PMU, copied from the owner.
	CreatedAt       time.Time  `json:"created_at"`            // Timestamp of upload.
}
