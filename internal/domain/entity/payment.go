package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payment is an append-only ledger entry recorded on each plan purchase.
type Payment struct {
	ID            uuid.UUID `json:"id"`              // The unique identifier for the ledger entry.
	ArtistID      uuid.UUID `json:"artist_id"`       // Paying artist.
	ArtistName    string    `json:"artist_name"`     // Denormalized display copy of the artist's name.
	PlanTitle     string    `json:"plan_title"`      // Title of the purchased plan.
	Amount        int       `json:"amount"`          // Amount charged.
	PaymentDate   time.Time `json:"payment_date"`    // Calendar date of the purchase.
	NewExpiryDate time.Time `json:"new_expiry_date"` // Subscription expiry after this purchase.
}

// Plan is a purchasable premium subscription package.
type Plan struct {
	Months        int    `json:"months"`             // Subscription length in calendar months.
	Title         string `json:"title"`              // Display title, e.g. "6-month plan".
	PricePerMonth int    `json:"price_per_month"`    // Monthly price.
	TotalPrice    int    `json:"total_price"`        // Total charged on purchase.
	Discount      string `json:"discount,omitempty"` // Display discount label.
	Popular       bool   `json:"popular,omitempty"`  // Marks the highlighted plan.
}
