package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is a time-bounded promotion created by an artist.
// discountPrice <= originalPrice is expected but not enforced.
type Event struct {
	ID            uuid.UUID  `json:"id"`             // The unique identifier for the event.
	ArtistID      uuid.UUID  `json:"artist_id"`      // Owning artist.
	ArtistName    string     `json:"artist_name"`    // Denormalized display copy of the owner's name.
	Title         string     `json:"title"`          // Promotion headline.
	ImageURL      string     `json:"image_url"`      // Banner image reference.
	OriginalPrice int        `json:"original_price"` // Regular price, positive.
	DiscountPrice int        `json:"discount_price"` // Promotional price, positive.
	StartDate     time.Time  `json:"start_date"`     // First day of the promotion.
	EndDate       time.Time  `json:"end_date"`       // Last day of the promotion.
	Description   string     `json:"description"`    // Promotion details.
	ArtistType    ArtistType `json:"artist_type"`    // Tattoo or PMU, copied from the owner.
	CreatedAt     time.Time  `json:"created_at"`     // Timestamp of creation.
}
