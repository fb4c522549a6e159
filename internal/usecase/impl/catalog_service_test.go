package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ToggleLikeIsAnInvolution(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	tattoo, err := f.catalog.UploadTattoo(ctx, artistLogin.Session.ID, usecase.UploadTattooInput{
		Image: []byte("img"),
		Style: "Blackwork",
	})
	require.NoError(t, err)

	liked, err := f.catalog.ToggleLikeTattoo(ctx, login.Session.ID, tattoo.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = f.catalog.ToggleLikeTattoo(ctx, login.Session.ID, tattoo.ID)
	require.NoError(t, err)
	assert.False(t, liked)

	content, err := f.catalog.LikedContent(ctx, login.Session.ID)
	require.NoError(t, err)
	assert.Empty(t, content.Tattoos)
}

func TestCatalogService_LikedArtistsExcludeInactive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	artistID := artistLogin.Session.AccountID

	_, err := f.catalog.ToggleLikeArtist(ctx, login.Session.ID, artistID)
	require.NoError(t, err)

	content, err := f.catalog.LikedContent(ctx, login.Session.ID)
	require.NoError(t, err)
	require.Len(t, content.Artists, 1)

	// Rejecting the artist hides it from the liked list without touching
	// the liked set itself.
	admin := f.adminLogin(t)
	_, err = f.admin.RejectArtist(ctx, admin.Session.ID, artistID)
	require.NoError(t, err)

	content, err = f.catalog.LikedContent(ctx, login.Session.ID)
	require.NoError(t, err)
	assert.Empty(t, content.Artists)
}

func TestCatalogService_ActiveArtistsPremiumFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.activeArtistLogin(t, "Aria Page", "aria@example.com")
	premiumLogin := f.activeArtistLogin(t, "Zed", "zed@example.com")
	_, err := f.billing.PurchasePlan(ctx, premiumLogin.Session.ID, 1)
	require.NoError(t, err)

	artists, err := f.catalog.ActiveArtists(ctx)
	require.NoError(t, err)
	require.Len(t, artists, 2)
	assert.Equal(t, "Zed", artists[0].Name)
	assert.Equal(t, "Aria Page", artists[1].Name)
}

func TestCatalogService_TattooDetailHidesInactiveArtist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	tattoo, err := f.catalog.UploadTattoo(ctx, artistLogin.Session.ID, usecase.UploadTattooInput{
		Image: []byte("img"),
		Style: "Blackwork",
	})
	require.NoError(t, err)

	detail, err := f.catalog.TattooDetail(ctx, nil, tattoo.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Artist)

	admin := f.adminLogin(t)
	_, err = f.admin.RejectArtist(ctx, admin.Session.ID, artistLogin.Session.AccountID)
	require.NoError(t, err)

	// The tattoo still renders; only the artist link goes away.
	detail, err = f.catalog.TattooDetail(ctx, nil, tattoo.ID)
	require.NoError(t, err)
	assert.Nil(t, detail.Artist)
	assert.Equal(t, "Luna Ink", detail.Tattoo.ArtistName)
}

func TestCatalogService_SubmitReviewDeduplicatesByReviewer(t *testing.T) {
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
		Rating:   4,
		Comment:  "좋아요",
	})
	require.NoError(t, err)
	assert.Equal(t, tattoo.ImageURL, review.ImageURL)

	_, err = f.catalog.SubmitReview(ctx, reviewer.Session.ID, usecase.SubmitReviewInput{
		TattooID: tattoo.ID,
		Rating:   5,
		Comment:  "또 좋아요",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)

	// A different logged-in session of a different account may review.
	other := f.signUpGeneral(t, "Dana", "dana@example.com")
	_, err = f.catalog.SubmitReview(ctx, other.Session.ID, usecase.SubmitReviewInput{
		TattooID: tattoo.ID,
		Rating:   2,
		Comment:  "그저 그래요",
	})
	assert.NoError(t, err)
}

func TestCatalogService_SubmitReviewFoldsRatingIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	tattoo, err := f.catalog.UploadTattoo(ctx, artistLogin.Session.ID, usecase.UploadTattooInput{
		Image: []byte("img"),
		Style: "Blackwork",
	})
	require.NoError(t, err)

	first := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	_, err = f.catalog.SubmitReview(ctx, first.Session.ID, usecase.SubmitReviewInput{TattooID: tattoo.ID, Rating: 5})
	require.NoError(t, err)

	second := f.signUpGeneral(t, "Dana", "dana@example.com")
	_, err = f.catalog.SubmitReview(ctx, second.Session.ID, usecase.SubmitReviewInput{TattooID: tattoo.ID, Rating: 3})
	require.NoError(t, err)

	artist, err := f.artists.FindByID(ctx, artistLogin.Session.AccountID)
	require.NoError(t, err)
	assert.Equal(t, 2, artist.ReviewCount)
	assert.InDelta(t, 4.0, artist.Rating, 0.001)
}

func TestCatalogService_SearchMatchesAcrossKinds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	_, err := f.catalog.UploadTattoo(ctx, artistLogin.Session.ID, usecase.UploadTattooInput{
		Image: []byte("img"),
		Style: "Blackwork",
		Tags:  []string{"dragon", "back"},
	})
	require.NoError(t, err)
	_, err = f.catalog.CreateEvent(ctx, artistLogin.Session.ID, usecase.CreateEventInput{
		Title:         "가을 할인 이벤트",
		OriginalPrice: 300000,
		DiscountPrice: 200000,
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-30",
		Description:   "Blackwork 전 작품 할인",
	})
	require.NoError(t, err)

	out, err := f.catalog.Search(ctx, "blackwork")
	require.NoError(t, err)
	assert.Len(t, out.Tattoos, 1)
	assert.Len(t, out.Events, 1)
	assert.Empty(t, out.Artists)

	out, err = f.catalog.Search(ctx, "luna")
	require.NoError(t, err)
	assert.Len(t, out.Artists, 1)
	assert.Len(t, out.Tattoos, 1) // matches the denormalized artist name

	out, err = f.catalog.Search(ctx, "  ")
	require.NoError(t, err)
	assert.Empty(t, out.Artists)
	assert.Empty(t, out.Tattoos)
	assert.Empty(t, out.Events)
}

func TestCatalogService_UploadRequiresArtist(t *testing.T) {
	f := newFixture(t)

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")

	_, err := f.catalog.UploadTattoo(context.Background(), login.Session.ID, usecase.UploadTattooInput{
		Image: []byte("img"),
		Style: "Blackwork",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestCatalogService_CreateEventValidatesDates(t *testing.T) {
	f := newFixture(t)

	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")

	_, err := f.catalog.CreateEvent(context.Background(), artistLogin.Session.ID, usecase.CreateEventInput{
		Title:         "뒤집힌 기간",
		OriginalPrice: 100,
		DiscountPrice: 50,
		StartDate:     "2026-09-30",
		EndDate:       "2026-09-01",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UploadedImageStoredAsDataURL(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	tattoo, err := f.catalog.UploadTattoo(ctx, artistLogin.Session.ID, usecase.UploadTattooInput{
		Image: []byte("img-bytes"),
		Style: "Fine Line",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(tattoo.ImageURL, "data:image/jpeg;base64,"))
	assert.WithinDuration(t, time.Now(), tattoo.CreatedAt, time.Minute)
}

func TestCatalogService_ShareQRReturnsPNG(t *testing.T) {
	f := newFixture(t)

	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")

	png, err := f.catalog.ShareQR(context.Background(), artistLogin.Session.AccountID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
