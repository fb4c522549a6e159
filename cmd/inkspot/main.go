package main

import (
	"context"
	"log/slog"
	"os"

	"inkspot/config"
	"inkspot/internal/delivery"
	"inkspot/internal/delivery/http"
	"inkspot/internal/delivery/http/middleware"
	"inkspot/internal/delivery/http/router/handler"
	"inkspot/internal/domain/repository"
	"inkspot/internal/domain/service"
	"inkspot/internal/infra/ai"
	"inkspot/internal/infra/auth"
	"inkspot/internal/infra/imaging"
	logs "inkspot/internal/infra/log"
	"inkspot/internal/infra/memstore"
	"inkspot/internal/infra/notify"
	"inkspot/internal/infra/persistence/postgres"
	"inkspot/internal/infra/qrcode"
	"inkspot/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

type storageParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Hasher service.PasswordHasher
}

type repositories struct {
	fx.Out

	Accounts repository.AccountRepository
	Artists  repository.ArtistRepository
	Sessions repository.SessionRepository
	Tattoos  repository.TattooRepository
	Events   repository.EventRepository
	Reviews  repository.ReviewRepository
	Payments repository.PaymentRepository
	Chats    repository.ChatRepository
}

// newRepositories selects the storage backend. With a postgres section in the
// config the catalog lives in the database; otherwise a seeded in-memory store
// is the system of record. Sessions are always in-memory, so a restart logs
// everyone out.
func newRepositories(params storageParams) (repositories, error) {
	store := memstore.New()

	if params.Config.Postgres != nil {
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			Accounts: postgres.NewAccountRepository(db),
			Artists:  postgres.NewArtistRepository(db),
			Sessions: memstore.NewSessionRepository(store),
			Tattoos:  postgres.NewTattooRepository(db),
			Events:   postgres.NewEventRepository(db),
			Reviews:  postgres.NewReviewRepository(db),
			Payments: postgres.NewPaymentRepository(db),
			Chats:    postgres.NewChatRepository(db),
		}, nil
	}

	if err := store.Seed(params.Hasher); err != nil {
		return repositories{}, errors.Wrap(err, "seed in-memory store")
	}

	return repositories{
		Accounts: memstore.NewAccountRepository(store),
		Artists:  memstore.NewArtistRepository(store),
		Sessions: memstore.NewSessionRepository(store),
		Tattoos:  memstore.NewTattooRepository(store),
		Events:   memstore.NewEventRepository(store),
		Reviews:  memstore.NewReviewRepository(store),
		Payments: memstore.NewPaymentRepository(store),
		Chats:    memstore.NewChatRepository(store),
	}, nil
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			ai.NewGeminiService,
			imaging.NewCompressor,
			notify.NewCenter,
			notify.NewNotifier,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "https://inkspot.app")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewViewService,
			impl.NewCatalogService,
			impl.NewBillingService,
			impl.NewAdminService,
			impl.NewChatService,
			impl.NewRealtimeService,
			impl.NewAIService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewLoggerMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewViewHandler,
			handler.NewCatalogHandler,
			handler.NewChatHandler,
			handler.NewBillingHandler,
			handler.NewAdminHandler,
			handler.NewAIHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
