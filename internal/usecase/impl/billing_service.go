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

// plans is the fixed plan catalog. Prices are KRW.
var plans = []entity.Plan{
	{Months: 1, Title: "1개월 플랜", PricePerMonth: 30000, TotalPrice: 30000},
	{Months: 3, Title: "3개월 플랜", PricePerMonth: 27000, TotalPrice: 81000, Discount: "10% 할인", Popular: true},
	{Months: 12, Title: "1년 플랜", PricePerMonth: 24000, TotalPrice: 288000, Discount: "20% 할인"},
}

// billingService implements the BillingUsecase interface.
type billingService struct {
	artistRepo  repository.ArtistRepository
	paymentRepo repository.PaymentRepository
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
	now         func() time.Time
}

// BillingServiceParams holds dependencies for billingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	ArtistRepo  repository.ArtistRepository
	PaymentRepo repository.PaymentRepository
	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewBillingService is the constructor for billingService.
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	return &billingService{
		artistRepo:  params.ArtistRepo,
		paymentRepo: params.PaymentRepo,
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *billingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *billingService) Plans(_ context.Context) []entity.Plan {
	out := make([]entity.Plan, len(plans))
	copy(out, plans)

	return out
}

// PurchasePlan extends the artist's premium subscription by the plan's
// months. A still-running subscription extends from its current expiry,
// a lapsed or missing one from today.
func (srv *billingService) PurchasePlan(ctx context.Context, sessionID uuid.UUID, months int) (*usecase.PurchasePlanOutput, error) {
	session, artist, err := loadArtistSession(ctx, srv.sessionRepo, srv.artistRepo, sessionID)
	if err != nil {
		return nil, err
	}

	plan, ok := planByMonths(months)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown plan")
	}

	today := entity.DateOnly(srv.now())
	startDate := today
	if artist.Subscription.ExpiryDate != nil {
		if expiry := entity.DateOnly(*artist.Subscription.ExpiryDate); expiry.After(today) {
			startDate = expiry
		}
	}
	newExpiry := startDate.AddDate(0, plan.Months, 0)

	artist.Subscription = entity.Subscription{
		Tier:       entity.TierPremium,
		ExpiryDate: &newExpiry,
	}
	if err := srv.artistRepo.Update(ctx, artist); err != nil {
		return nil, errors.Wrap(err, "failed to update artist subscription")
	}

	payment := &entity.Payment{
		ID:            uuid.New(),
		ArtistID:      artist.ID,
		ArtistName:    artist.Name,
		PlanTitle:     plan.Title,
		Amount:        plan.TotalPrice,
		PaymentDate:   today,
		NewExpiryDate: newExpiry,
	}
	if err := srv.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to record payment")
	}

	session.View.MyPage = entity.MyPageDashboard
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		srv.log(ctx).Warn("Failed to update session view after purchase", slog.Any("error", err))
	}

	srv.log(ctx).Info("Plan purchased",
		slog.Any("artistID", artist.ID),
		slog.String("plan", plan.Title),
		slog.Time("newExpiry", newExpiry))

	return &usecase.PurchasePlanOutput{Artist: artist, Payment: payment}, nil
}

func planByMonths(months int) (entity.Plan, bool) {
	for _, plan := range plans {
		if plan.Months == months {
			return plan, true
		}
	}

	return entity.Plan{}, false
}
