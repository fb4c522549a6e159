package impl

import (
	"context"
	"testing"
	"time"

	"inkspot/internal/domain/entity"
	domainerrors "inkspot/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t *testing.T, f *fixture, day string) {
	t.Helper()

	now, err := time.Parse(time.DateOnly, day)
	require.NoError(t, err)
	f.billing.(*billingService).now = func() time.Time { return now }
}

func TestBillingService_PlansCatalog(t *testing.T) {
	f := newFixture(t)

	plans := f.billing.Plans(context.Background())
	require.Len(t, plans, 3)
	assert.Equal(t, 30000, plans[0].TotalPrice)
	assert.Equal(t, 81000, plans[1].TotalPrice)
	assert.True(t, plans[1].Popular)
	assert.Equal(t, 288000, plans[2].TotalPrice)
}

func TestBillingService_PurchaseFromLapsedStartsToday(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	fixedNow(t, f, "2026-09-01")

	out, err := f.billing.PurchasePlan(ctx, login.Session.ID, 3)
	require.NoError(t, err)

	assert.Equal(t, entity.TierPremium, out.Artist.Subscription.Tier)
	require.NotNil(t, out.Artist.Subscription.ExpiryDate)
	assert.Equal(t, "2026-12-01", out.Artist.Subscription.ExpiryDate.Format(time.DateOnly))
	assert.Equal(t, "3개월 플랜", out.Payment.PlanTitle)
	assert.Equal(t, 81000, out.Payment.Amount)
}

func TestBillingService_PurchaseExtendsFutureExpiry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	fixedNow(t, f, "2026-09-01")

	_, err := f.billing.PurchasePlan(ctx, login.Session.ID, 1)
	require.NoError(t, err)

	// Buying again before the expiry stacks onto it instead of resetting.
	out, err := f.billing.PurchasePlan(ctx, login.Session.ID, 12)
	require.NoError(t, err)
	assert.Equal(t, "2027-10-01", out.Artist.Subscription.ExpiryDate.Format(time.DateOnly))

	payments, err := f.payments.FindByArtistID(ctx, login.Session.AccountID)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestBillingService_UnknownPlanRejected(t *testing.T) {
	f := newFixture(t)

	login := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")

	_, err := f.billing.PurchasePlan(context.Background(), login.Session.ID, 6)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBillingService_GeneralAccountCannotPurchase(t *testing.T) {
	f := newFixture(t)

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")

	_, err := f.billing.PurchasePlan(context.Background(), login.Session.ID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
