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

func TestAccountService_SignUpGeneralLogsIn(t *testing.T) {
	f := newFixture(t)

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")

	assert.NotEmpty(t, login.Token)
	assert.Equal(t, entity.RoleGeneral, login.Session.Role)
	assert.Equal(t, entity.ViewMyPage, login.Session.View.Active)
	assert.Equal(t, entity.MyPageDashboard, login.Session.View.MyPage)
}

func TestAccountService_SignUpArtistStaysPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	account := f.signUpArtist(t, "Luna Ink", "luna@example.com")

	artist, err := f.artists.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ArtistStatusPending, artist.Status)
	assert.Equal(t, entity.TierFree, artist.Subscription.Tier)
	assert.Equal(t, account.ID, artist.ID)

	// Pending artists cannot log in until an admin approves them.
	_, err = f.account.Login(ctx, usecase.LoginInput{Email: "luna@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domainerrors.ErrArtistPending)
}

func TestAccountService_RejectedArtistCannotLogIn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	account := f.signUpArtist(t, "Vex", "vex@example.com")
	admin := f.adminLogin(t)
	_, err := f.admin.RejectArtist(ctx, admin.Session.ID, account.ID)
	require.NoError(t, err)

	_, err = f.account.Login(ctx, usecase.LoginInput{Email: "vex@example.com", Password: "password123"})
	assert.ErrorIs(t, err, domainerrors.ErrArtistRejected)
}

func TestAccountService_SignUpDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	f.signUpGeneral(t, "Chris P.", "chris@example.com")

	_, err := f.account.SignUp(context.Background(), usecase.SignUpInput{
		Name:     "Other",
		Email:    "CHRIS@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestAccountService_LoginWrongPassword(t *testing.T) {
	f := newFixture(t)

	f.signUpGeneral(t, "Chris P.", "chris@example.com")

	_, err := f.account.Login(context.Background(), usecase.LoginInput{
		Email:    "chris@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_AdminLandsOnAdminView(t *testing.T) {
	f := newFixture(t)

	login := f.adminLogin(t)

	assert.Equal(t, entity.ViewAdmin, login.Session.View.Active)
}

func TestAccountService_LogoutInvalidatesSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	require.NoError(t, f.account.Logout(ctx, login.Session.ID))

	_, err := f.view.State(ctx, login.Session.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	// Logging out twice is harmless.
	assert.NoError(t, f.account.Logout(ctx, login.Session.ID))
}

func TestAccountService_SaveProfileUpdatesArtistRowOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	login := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")

	// An existing tattoo keeps its denormalized owner name.
	tattoo, err := f.catalog.UploadTattoo(ctx, login.Session.ID, usecase.UploadTattooInput{
		Image: []byte("img"),
		Style: "Blackwork",
	})
	require.NoError(t, err)

	out, err := f.account.SaveProfile(ctx, login.Session.ID, usecase.SaveProfileInput{
		Name:      "Luna Moon",
		Bio:       "new bio",
		Specialty: "Realism",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Artist)
	assert.Equal(t, "Luna Moon", out.Artist.Name)
	assert.Equal(t, "Realism", out.Artist.Specialty)

	kept, err := f.tattoos.FindByID(ctx, tattoo.ID)
	require.NoError(t, err)
	assert.Equal(t, "Luna Ink", kept.ArtistName)

	session, err := f.sessions.FindByID(ctx, login.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MyPageDashboard, session.View.MyPage)
}
