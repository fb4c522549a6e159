package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "inkspot/internal/delivery/context"
	"inkspot/internal/domain/entity"
	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/domain/repository"
	"inkspot/internal/domain/service"
	"inkspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const artistPendingNotice = "Artist registration submitted. Your profile will be visible after admin approval."

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	artistRepo   repository.ArtistRepository
	sessionRepo  repository.SessionRepository
	chatRepo     repository.ChatRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	realtime     usecase.RealtimeUsecase
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	ArtistRepo   repository.ArtistRepository
	SessionRepo  repository.SessionRepository
	ChatRepo     repository.ChatRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Realtime     usecase.RealtimeUsecase
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo:  params.AccountRepo,
		artistRepo:   params.ArtistRepo,
		sessionRepo:  params.SessionRepo,
		chatRepo:     params.ChatRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		realtime:     params.Realtime,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates an account and opens a fresh session. Admins land on
// the admin view, everyone else on their my-page dashboard. Artists whose
// profile is still pending or was rejected cannot log in.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if account.Role == entity.RoleArtist {
		artist, err := srv.artistRepo.FindByID(ctx, account.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load artist profile during login")
		}
		switch artist.Status {
		case entity.ArtistStatusPending:
			return nil, domainerrors.ErrArtistPending
		case entity.ArtistStatusRejected:
			return nil, domainerrors.ErrArtistRejected
		}
	}

	return srv.openSession(ctx, account)
}

func (srv *accountService) openSession(ctx context.Context, account *entity.Account) (*usecase.LoginOutput, error) {
	session := entity.NewSession(account)
	if account.Role == entity.RoleAdmin {
		session.View.Active = entity.ViewAdmin
	} else {
		session.View.Active = entity.ViewMyPage
		session.View.MyPage = entity.MyPageDashboard
	}

	if err := srv.sessionRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	token, err := srv.tokenService.GenerateToken(session.ID, account.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	srv.log(ctx).Info("Session opened",
		slog.Any("sessionID", session.ID),
		slog.Any("accountID", account.ID),
		slog.String("role", account.Role.String()))

	return &usecase.LoginOutput{Token: token, Session: session, Account: account}, nil
}

// SignUp registers a new account. General accounts are logged in right away;
// artist accounts are stored pending admin approval and stay logged out.
func (srv *accountService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name, email and password are required")
	}
	if input.Artist != nil && !input.Artist.ArtistType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown artist type")
	}

	if _, err := srv.accountRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	role := entity.RoleGeneral
	if input.Artist != nil {
		role = entity.RoleArtist
	}

	account := &entity.Account{
		ID:           uuid.New(),
		Role:         role,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	if input.Artist == nil {
		login, err := srv.openSession(ctx, account)
		if err != nil {
			return nil, err
		}

		return &usecase.SignUpOutput{Account: account, Login: login}, nil
	}

	// The artist profile shares the account id so content joins stay simple.
	artist := &entity.Artist{
		ID:         account.ID,
		Name:       name,
		Email:      email,
		AvatarURL:  input.Artist.AvatarURL,
		Specialty:  input.Artist.Specialty,
		Location:   input.Artist.Location,
		ArtistType: input.Artist.ArtistType,
		WhatsApp:   input.Artist.WhatsApp,
		KakaoTalk:  input.Artist.KakaoTalk,
		Subscription: entity.Subscription{
			Tier: entity.TierFree,
		},
		Status:    entity.ArtistStatusPending,
		CreatedAt: account.CreatedAt,
	}
	if err := srv.artistRepo.Create(ctx, artist); err != nil {
		return nil, errors.Wrap(err, "failed to create artist profile")
	}

	srv.log(ctx).Info("Artist signed up pending approval", slog.Any("artistID", artist.ID))

	return &usecase.SignUpOutput{Account: account, Message: artistPendingNotice}, nil
}

// Logout deletes the session and cancels any auto-replies still pending for
// the account's rooms.
func (srv *accountService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	session, err := srv.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		// Already gone; logout is idempotent.
		return nil
	}

	rooms, err := srv.chatRepo.FindRoomsByParticipant(ctx, session.AccountID)
	if err != nil {
		srv.log(ctx).Warn("Failed to list rooms during logout", slog.Any("error", err))
	}
	for _, room := range rooms {
		srv.realtime.CancelRoom(room.ID)
	}

	if err := srv.sessionRepo.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	srv.log(ctx).Info("Session closed", slog.Any("sessionID", sessionID))

	return nil
}

// SaveProfile updates the account's display data and, for artists, the
// matching artist row. Denormalized copies on existing content are left as
// they were written.
func (srv *accountService) SaveProfile(ctx context.Context, sessionID uuid.UUID, input usecase.SaveProfileInput) (*usecase.SaveProfileOutput, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		account.Name = name
	}
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	out := &usecase.SaveProfileOutput{Account: account}
	if session.Role != entity.RoleArtist {
		srv.returnToDashboard(ctx, session)

		return out, nil
	}

	artist, err := srv.artistRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load artist profile")
	}

	artist.Name = account.Name
	if input.AvatarURL != "" {
		artist.AvatarURL = input.AvatarURL
	}
	if input.CoverImageURL != "" {
		artist.CoverImageURL = input.CoverImageURL
	}
	artist.Bio = input.Bio
	if input.Specialty != "" {
		artist.Specialty = input.Specialty
	}
	if input.Location != "" {
		artist.Location = input.Location
	}
	artist.WhatsApp = input.WhatsApp
	artist.KakaoTalk = input.KakaoTalk

	if err := srv.artistRepo.Update(ctx, artist); err != nil {
		return nil, errors.Wrap(err, "failed to update artist profile")
	}
	out.Artist = artist

	srv.returnToDashboard(ctx, session)

	return out, nil
}

// returnToDashboard puts the session back on the my-page dashboard after a
// profile save. A stale session here is not worth failing the save.
func (srv *accountService) returnToDashboard(ctx context.Context, session *entity.Session) {
	session.View.MyPage = entity.MyPageDashboard
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		srv.log(ctx).Warn("Failed to update session view after profile save", slog.Any("error", err))
	}
}
