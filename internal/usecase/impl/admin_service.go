package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "inkspot/internal/delivery/context"
	"inkspot/internal/domain/entity"
	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/domain/repository"
	"inkspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	artistRepo  repository.ArtistRepository
	tattooRepo  repository.TattooRepository
	eventRepo   repository.EventRepository
	reviewRepo  repository.ReviewRepository
	paymentRepo repository.PaymentRepository
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
	now         func() time.Time
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	ArtistRepo  repository.ArtistRepository
	TattooRepo  repository.TattooRepository
	EventRepo   repository.EventRepository
	ReviewRepo  repository.ReviewRepository
	PaymentRepo repository.PaymentRepository
	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		artistRepo:  params.ArtistRepo,
		tattooRepo:  params.TattooRepo,
		eventRepo:   params.EventRepo,
		reviewRepo:  params.ReviewRepo,
		paymentRepo: params.PaymentRepo,
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireAdmin resolves the session and rejects non-admin callers.
func (srv *adminService) requireAdmin(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Role != entity.RoleAdmin {
		return nil, domainerrors.ErrForbidden.WrapMessage("admin role required")
	}

	return session, nil
}

func (srv *adminService) Overview(ctx context.Context, sessionID uuid.UUID) (*usecase.AdminOverviewOutput, error) {
	if _, err := srv.requireAdmin(ctx, sessionID); err != nil {
		return nil, err
	}

	artists, err := srv.artistRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artists")
	}
	tattoos, err := srv.tattooRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tattoos")
	}
	events, err := srv.eventRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}
	reviews, err := srv.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}
	payments, err := srv.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	out := &usecase.AdminOverviewOutput{
		ArtistCount:  len(artists),
		TattooCount:  len(tattoos),
		EventCount:   len(events),
		ReviewCount:  len(reviews),
		PaymentCount: len(payments),
	}
	today := srv.now()
	for _, artist := range artists {
		if artist.Status == entity.ArtistStatusPending {
			out.PendingCount++
		}
		if artist.IsPremiumAt(today) {
			out.PremiumCount++
		}
	}
	for _, payment := range payments {
		out.TotalRevenue += payment.Amount
	}

	return out, nil
}

func (srv *adminService) Artists(ctx context.Context, sessionID uuid.UUID) ([]*entity.Artist, error) {
	if _, err := srv.requireAdmin(ctx, sessionID); err != nil {
		return nil, err
	}

	artists, err := srv.artistRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list artists")
	}

	return artists, nil
}

func (srv *adminService) PendingArtists(ctx context.Context, sessionID uuid.UUID) ([]*entity.Artist, error) {
	if _, err := srv.requireAdmin(ctx, sessionID); err != nil {
		return nil, err
	}

	artists, err := srv.artistRepo.FindByStatus(ctx, entity.ArtistStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending artists")
	}

	return artists, nil
}

func (srv *adminService) ApproveArtist(ctx context.Context, sessionID, artistID uuid.UUID) (*entity.Artist, error) {
	return srv.setArtistStatus(ctx, sessionID, artistID, entity.ArtistStatusActive)
}

func (srv *adminService) RejectArtist(ctx context.Context, sessionID, artistID uuid.UUID) (*entity.Artist, error) {
	return srv.setArtistStatus(ctx, sessionID, artistID, entity.ArtistStatusRejected)
}

func (srv *adminService) setArtistStatus(ctx context.Context, sessionID, artistID uuid.UUID, status entity.ArtistStatus) (*entity.Artist, error) {
	if _, err := srv.requireAdmin(ctx, sessionID); err != nil {
		return nil, err
	}

	artist, err := srv.artistRepo.FindByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("artist not found")
		}

		return nil, errors.Wrap(err, "failed to find artist")
	}

	artist.Status = status
	if err := srv.artistRepo.Update(ctx, artist); err != nil {
		return nil, errors.Wrap(err, "failed to update artist status")
	}

	srv.log(ctx).Info("Artist moderation decision",
		slog.Any("artistID", artistID),
		slog.String("status", string(status)))

	return artist, nil
}

// SetArtistSubscription overwrites the subscription outright, unlike a
// purchase which extends it.
func (srv *adminService) SetArtistSubscription(ctx context.Context, sessionID, artistID uuid.UUID, days *int) (*entity.Artist, error) {
	if _, err := srv.requireAdmin(ctx, sessionID); err != nil {
		return nil, err
	}

	artist, err := srv.artistRepo.FindByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("artist not found")
		}

		return nil, errors.Wrap(err, "failed to find artist")
	}

	if days == nil {
		artist.Subscription = entity.Subscription{Tier: entity.TierFree}
	} else {
		expiry := entity.DateOnly(srv.now()).AddDate(0, 0, *days)
		artist.Subscription = entity.Subscription{
			Tier:       entity.TierPremium,
			ExpiryDate: &expiry,
		}
	}

	if err := srv.artistRepo.Update(ctx, artist); err != nil {
		return nil, errors.Wrap(err, "failed to update artist subscription")
	}

	return artist, nil
}

// DeleteTattoo removes the tattoo only. Its reviews stay behind and keep
// rendering from their denormalized copies.
func (srv *adminService) DeleteTattoo(ctx context.Context, sessionID, tattooID uuid.UUID) error {
	if _, err := srv.requireAdmin(ctx, sessionID); err != nil {
		return err
	}

	if err := srv.tattooRepo.Delete(ctx, tattooID); err != nil {
		if errors.Is(err, repository.ErrTattooNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("tattoo not found")
		}

		return errors.Wrap(err, "failed to delete tattoo")
	}

	return nil
}

func (srv *adminService) DeleteEvent(ctx context.Context, sessionID, eventID uuid.UUID) error {
	if _, err := srv.requireAdmin(ctx, sessionID); err != nil {
		return err
	}

	if err := srv.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("event not found")
		}

		return errors.Wrap(err, "failed to delete event")
	}

	return nil
}

func (srv *adminService) DeleteReview(ctx context.Context, sessionID, reviewID uuid.UUID) error {
	if _, err := srv.requireAdmin(ctx, sessionID); err != nil {
		return err
	}

	if err := srv.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("review not found")
		}

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}

func (srv *adminService) Payments(ctx context.Context, sessionID uuid.UUID) ([]*entity.Payment, error) {
	if _, err := srv.requireAdmin(ctx, sessionID); err != nil {
		return nil, err
	}

	payments, err := srv.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}
