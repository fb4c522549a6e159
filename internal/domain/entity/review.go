package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is customer feedback on a tattoo. At most one review per
// (reviewer, tattoo) pair; deleting the tattoo leaves its reviews dangling.
type Review struct {
	ID             uuid.UUID `json:"id"`              // The unique identifier for the review.
	TattooID       uuid.UUID `json:"tattoo_id"`       // The reviewed tattoo.
	ReviewerID     uuid.UUID `json:"reviewer_id"`     // The reviewing account; the de-duplication key.
	ReviewerName   string    `json:"reviewer_name"`   // Display name of the reviewer.
	ReviewerAvatar string    `json:"reviewer_avatar"` // Avatar image reference of the reviewer.
	Rating         int       `json:"rating"`          // Star rating in [1, 5].
	Comment        string    `json:"comment"`         // Free-form feedback text.
	ImageURL       string    `json:"image_url"`       // Photo attached to the review; falls back to the tattoo image.
	ArtistID       uuid.UUID `json:"artist_id"`       // Artist who made the reviewed tattoo.
	ArtistName     string    `json:"artist_name"`     // Denormalized display copy of that artist's name.
	CreatedAt      time.Time `json:"created_at"`      // Timestamp of submission.
}
