package impl

import (
	"context"
	"testing"

	"inkspot/internal/domain/entity"
	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewService_NavigateClearsSelections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")

	_, err := f.view.SelectArtist(ctx, login.Session.ID, artistLogin.Session.AccountID)
	require.NoError(t, err)
	state, err := f.view.Search(ctx, login.Session.ID, "dragon")
	require.NoError(t, err)
	assert.Equal(t, entity.ViewSearchResults, state.Active)

	state, err = f.view.Navigate(ctx, login.Session.ID, entity.ViewEvents)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewEvents, state.Active)
	assert.Nil(t, state.SelectedArtistID)
	assert.Empty(t, state.SearchQuery)
	assert.Equal(t, entity.MyPageDashboard, state.MyPage)
}

func TestViewService_AdminViewGated(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	_, err := f.view.Navigate(ctx, login.Session.ID, entity.ViewAdmin)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	admin := f.adminLogin(t)
	state, err := f.view.Navigate(ctx, admin.Session.ID, entity.ViewAdmin)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewAdmin, state.Active)
}

func TestViewService_SelectArtistClosesTattooDetail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	artistLogin := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	tattoo, err := f.catalog.UploadTattoo(ctx, artistLogin.Session.ID, usecase.UploadTattooInput{
		Image: []byte("img"),
		Style: "Blackwork",
	})
	require.NoError(t, err)

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	_, err = f.view.SelectTattoo(ctx, login.Session.ID, tattoo.ID)
	require.NoError(t, err)

	state, err := f.view.SelectArtist(ctx, login.Session.ID, artistLogin.Session.AccountID)
	require.NoError(t, err)
	assert.Nil(t, state.SelectedTattooID)
	require.NotNil(t, state.SelectedArtistID)
	assert.Equal(t, artistLogin.Session.AccountID, *state.SelectedArtistID)
}

func TestViewService_BackFromSearchResultsGoesHome(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	_, err := f.view.Search(ctx, login.Session.ID, "dragon")
	require.NoError(t, err)

	state, err := f.view.Back(ctx, login.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewHome, state.Active)
	assert.Empty(t, state.SearchQuery)
}

func TestViewService_FooterPagesRememberOrigin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	_, err := f.view.Navigate(ctx, login.Session.ID, entity.ViewEvents)
	require.NoError(t, err)

	state, err := f.view.OpenFooterPage(ctx, login.Session.ID, entity.ViewTerms)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewTerms, state.Active)
	require.NotNil(t, state.Previous)
	assert.Equal(t, entity.ViewEvents, *state.Previous)

	// Hopping between footer pages keeps the original origin.
	state, err = f.view.OpenFooterPage(ctx, login.Session.ID, entity.ViewPrivacy)
	require.NoError(t, err)
	require.NotNil(t, state.Previous)
	assert.Equal(t, entity.ViewEvents, *state.Previous)

	state, err = f.view.BackFromFooter(ctx, login.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewEvents, state.Active)
	assert.Nil(t, state.Previous)

	// Without a remembered origin, footer back falls to home.
	state, err = f.view.BackFromFooter(ctx, login.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewHome, state.Active)
}

func TestViewService_NonFooterPageRejected(t *testing.T) {
	f := newFixture(t)

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	_, err := f.view.OpenFooterPage(context.Background(), login.Session.ID, entity.ViewEvents)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestViewService_FormFlags(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")

	state, err := f.view.SetUploadingTattoo(ctx, login.Session.ID, true)
	require.NoError(t, err)
	assert.True(t, state.UploadingTattoo)

	state, err = f.view.Back(ctx, login.Session.ID)
	require.NoError(t, err)
	assert.False(t, state.UploadingTattoo)
	assert.False(t, state.CreatingEvent)
}
