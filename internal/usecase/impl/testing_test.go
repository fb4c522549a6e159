package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"inkspot/config"
	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"
	"inkspot/internal/infra/auth"
	"inkspot/internal/infra/memstore"
	"inkspot/internal/infra/notify"
	"inkspot/internal/infra/qrcode"
	"inkspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fixture wires the full usecase layer onto a fresh in-memory store.
type fixture struct {
	store    *memstore.Store
	center   *notify.Center
	accounts repository.AccountRepository
	artists  repository.ArtistRepository
	tattoos  repository.TattooRepository
	events   repository.EventRepository
	reviews  repository.ReviewRepository
	payments repository.PaymentRepository
	rooms    repository.ChatRepository
	sessions repository.SessionRepository

	account  usecase.AccountUsecase
	view     usecase.ViewUsecase
	catalog  usecase.CatalogUsecase
	billing  usecase.BillingUsecase
	admin    usecase.AdminUsecase
	chat     usecase.ChatUsecase
	realtime usecase.RealtimeUsecase
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: 4}
	cfg.Chat = &config.ChatConfig{AutoReplyDelay: 20 * time.Millisecond}
	cfg.Imaging = &config.ImagingConfig{MaxDimension: 64, Quality: 70}

	return cfg
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.New()
	center := notify.NewCenter(logger)
	notifier := notify.NewNotifier(center)

	f := &fixture{
		store:    store,
		center:   center,
		accounts: memstore.NewAccountRepository(store),
		artists:  memstore.NewArtistRepository(store),
		tattoos:  memstore.NewTattooRepository(store),
		events:   memstore.NewEventRepository(store),
		reviews:  memstore.NewReviewRepository(store),
		payments: memstore.NewPaymentRepository(store),
		rooms:    memstore.NewChatRepository(store),
		sessions: memstore.NewSessionRepository(store),
	}

	hasher := auth.NewBcryptHasher(cfg)
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	f.realtime = NewRealtimeService(RealtimeServiceParams{
		ChatRepo:    f.rooms,
		AccountRepo: f.accounts,
		ArtistRepo:  f.artists,
		SessionRepo: f.sessions,
		Notifier:    notifier,
		Config:      cfg,
		Logger:      logger,
	})
	f.account = NewAccountService(AccountServiceParams{
		AccountRepo:  f.accounts,
		ArtistRepo:   f.artists,
		SessionRepo:  f.sessions,
		ChatRepo:     f.rooms,
		Hasher:       hasher,
		TokenService: tokenService,
		Realtime:     f.realtime,
		Logger:       logger,
	})
	f.view = NewViewService(ViewServiceParams{
		SessionRepo: f.sessions,
		ArtistRepo:  f.artists,
		TattooRepo:  f.tattoos,
		EventRepo:   f.events,
		Logger:      logger,
	})
	f.catalog = NewCatalogService(CatalogServiceParams{
		AccountRepo: f.accounts,
		ArtistRepo:  f.artists,
		TattooRepo:  f.tattoos,
		EventRepo:   f.events,
		ReviewRepo:  f.reviews,
		PaymentRepo: f.payments,
		SessionRepo: f.sessions,
		Compressor:  passthroughCompressor{},
		QRService:   qrcode.NewQRCodeService(128, "M", "https://inkspot.example.com"),
		Logger:      logger,
	})
	f.billing = NewBillingService(BillingServiceParams{
		ArtistRepo:  f.artists,
		PaymentRepo: f.payments,
		SessionRepo: f.sessions,
		Logger:      logger,
	})
	f.admin = NewAdminService(AdminServiceParams{
		ArtistRepo:  f.artists,
		TattooRepo:  f.tattoos,
		EventRepo:   f.events,
		ReviewRepo:  f.reviews,
		PaymentRepo: f.payments,
		SessionRepo: f.sessions,
		Logger:      logger,
	})
	f.chat = NewChatService(ChatServiceParams{
		ChatRepo:    f.rooms,
		AccountRepo: f.accounts,
		ArtistRepo:  f.artists,
		SessionRepo: f.sessions,
		Realtime:    f.realtime,
		Notifier:    notifier,
		Logger:      logger,
	})

	t.Cleanup(f.realtime.Shutdown)

	return f
}

// passthroughCompressor keeps test fixtures free of real image payloads.
type passthroughCompressor struct{}

func (passthroughCompressor) Compress(_ context.Context, data []byte) ([]byte, error) {
	return data, nil
}

// signUpGeneral registers a general account and returns its logged-in session.
func (f *fixture) signUpGeneral(t *testing.T, name, email string) *usecase.LoginOutput {
	t.Helper()

	out, err := f.account.SignUp(context.Background(), usecase.SignUpInput{
		Name:     name,
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Login)

	return out.Login
}

// signUpArtist registers an artist account, leaves it pending and returns it.
func (f *fixture) signUpArtist(t *testing.T, name, email string) *entity.Account {
	t.Helper()

	out, err := f.account.SignUp(context.Background(), usecase.SignUpInput{
		Name:     name,
		Email:    email,
		Password: "password123",
		Artist: &usecase.ArtistSignUpInput{
			Specialty:  "Fine Line",
			Location:   "서울 강남구",
			ArtistType: entity.ArtistTypeTattoo,
		},
	})
	require.NoError(t, err)
	require.Nil(t, out.Login)

	return out.Account
}

// activeArtistLogin registers an artist, approves it through an admin and
// logs it in.
func (f *fixture) activeArtistLogin(t *testing.T, name, email string) *usecase.LoginOutput {
	t.Helper()

	account := f.signUpArtist(t, name, email)
	admin := f.adminLogin(t)
	_, err := f.admin.ApproveArtist(context.Background(), admin.Session.ID, account.ID)
	require.NoError(t, err)

	login, err := f.account.Login(context.Background(), usecase.LoginInput{
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)

	return login
}

// adminLogin seeds an admin account on first use and opens a session for it.
func (f *fixture) adminLogin(t *testing.T) *usecase.LoginOutput {
	t.Helper()

	ctx := context.Background()
	const email = "admin@test.local"
	if _, err := f.accounts.FindByEmail(ctx, email); err != nil {
		hash, err := auth.NewBcryptHasher(testConfig()).Hash("adminpassword")
		require.NoError(t, err)
		require.NoError(t, f.accounts.Create(ctx, &entity.Account{
			ID:           uuid.New(),
			Role:         entity.RoleAdmin,
			Name:         "Admin",
			Email:        email,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		}))
	}

	login, err := f.account.Login(ctx, usecase.LoginInput{Email: email, Password: "adminpassword"})
	require.NoError(t, err)

	return login
}
