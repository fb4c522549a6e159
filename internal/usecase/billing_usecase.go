package usecase

import (
	"context"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// PurchasePlanOutput returns the artist's subscription state after a
// purchase together with the recorded ledger entry.
type PurchasePlanOutput struct {
	Artist  *entity.Artist
	Payment *entity.Payment
}

// BillingUsecase defines subscription plan listing and purchase.
type BillingUsecase interface {
	// Plans returns the purchasable plan catalog.
	Plans(ctx context.Context) []entity.Plan

	// PurchasePlan extends the logged-in artist's premium subscription.
	// The new expiry counts the plan months from the current expiry when it
	// is still in the future, otherwise from today.
	PurchasePlan(ctx context.Context, sessionID uuid.UUID, months int) (*PurchasePlanOutput, error)
}
