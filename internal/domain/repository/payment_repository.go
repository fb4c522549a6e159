package repository

import (
	"context"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentRepository defines the operations for the append-only payment ledger.
type PaymentRepository interface {
	// FindAll retrieves every payment, newest first.
	FindAll(ctx context.Context) ([]*entity.Payment, error)

	// FindByArtistID retrieves the payments made by one artist, newest first.
	FindByArtistID(ctx context.Context, artistID uuid.UUID) ([]*entity.Payment, error)

	// Create appends a payment record at the head of the ledger.
	Create(ctx context.Context, payment *entity.Payment) error
}
