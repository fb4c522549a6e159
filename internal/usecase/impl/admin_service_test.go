package impl

import (
	"context"
	"testing"
	"time"

	"inkspot/internal/domain/entity"
	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminService_RequiresAdminRole(t *testing.T) {
	f := newFixture(t)

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")

	_, err := f.admin.PendingArtists(context.Background(), login.Session.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAdminService_ApprovalFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	account := f.signUpArtist(t, "Luna Ink", "luna@example.com")
	admin := f.adminLogin(t)

	pending, err := f.admin.PendingArtists(ctx, admin.Session.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, account.ID, pending[0].ID)

	approved, err := f.admin.ApproveArtist(ctx, admin.Session.ID, account.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ArtistStatusActive, approved.Status)

	pending, err = f.admin.PendingArtists(ctx, admin.Session.ID)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestAdminService_SetArtistSubscriptionOverwrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	admin := f.adminLogin(t)
	f.admin.(*adminService).now = func() time.Time {
		return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	}

	days := 30
	artist, err := f.admin.SetArtistSubscription(ctx, admin.Session.ID, artistLogin.Session.AccountID, &days)
	require.NoError(t, err)
	assert.Equal(t, entity.TierPremium, artist.Subscription.Tier)
	require.NotNil(t, artist.Subscription.ExpiryDate)
	assert.Equal(t, "2026-10-01", artist.Subscription.ExpiryDate.Format(time.DateOnly))

	// Overwrite, not extend: a shorter grant moves the expiry backwards.
	days = 7
	artist, err = f.admin.SetArtistSubscription(ctx, admin.Session.ID, artistLogin.Session.AccountID, &days)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-08", artist.Subscription.ExpiryDate.Format(time.DateOnly))

	// Clearing drops to the free tier with no expiry.
	artist, err = f.admin.SetArtistSubscription(ctx, admin.Session.ID, artistLogin.Session.AccountID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.TierFree, artist.Subscription.Tier)
	assert.Nil(t, artist.Subscription.ExpiryDate)
}

func TestAdminService_DeleteTattooLeavesReviews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	tattoo, err := f.catalog.UploadTattoo(ctx, artistLogin.Session.ID, usecase.UploadTattooInput{
		Image: []byte("img"),
		Style: "Blackwork",
	})
	require.NoError(t, err)

	reviewer := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	review, err := f.catalog.SubmitReview(ctx, reviewer.Session.ID, usecase.SubmitReviewInput{
		TattooID: tattoo.ID,
		Rating:   5,
		Comment:  "최고예요",
	})
	require.NoError(t, err)

	admin := f.adminLogin(t)
	require.NoError(t, f.admin.DeleteTattoo(ctx, admin.Session.ID, tattoo.ID))

	// The review dangles by design and still renders from its copies.
	kept, err := f.reviews.FindByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, tattoo.ID, kept.TattooID)
}

func TestAdminService_OverviewCounts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	f.signUpArtist(t, "Rexo", "rexo@example.com")
	_, err := f.billing.PurchasePlan(ctx, artistLogin.Session.ID, 1)
	require.NoError(t, err)

	admin := f.adminLogin(t)
	overview, err := f.admin.Overview(ctx, admin.Session.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, overview.ArtistCount)
	assert.Equal(t, 1, overview.PendingCount)
	assert.Equal(t, 1, overview.PremiumCount)
	assert.Equal(t, 1, overview.PaymentCount)
	assert.Equal(t, 30000, overview.TotalRevenue)
}
