package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "inkspot/internal/delivery/context"
	"inkspot/internal/domain/entity"
	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/domain/repository"
	"inkspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// viewService implements the ViewUsecase interface. All mutations go
// through mutate so every operation persists the session exactly once.
type viewService struct {
	sessionRepo repository.SessionRepository
	artistRepo  repository.ArtistRepository
	tattooRepo  repository.TattooRepository
	eventRepo   repository.EventRepository
	logger      *slog.Logger
}

// ViewServiceParams holds dependencies for viewService, injected by Fx.
type ViewServiceParams struct {
	fx.In

	SessionRepo repository.SessionRepository
	ArtistRepo  repository.ArtistRepository
	TattooRepo  repository.TattooRepository
	EventRepo   repository.EventRepository
	Logger      *slog.Logger
}

// NewViewService is the constructor for viewService.
func NewViewService(params ViewServiceParams) usecase.ViewUsecase {
	return &viewService{
		sessionRepo: params.SessionRepo,
		artistRepo:  params.ArtistRepo,
		tattooRepo:  params.TattooRepo,
		eventRepo:   params.EventRepo,
		logger:      params.Logger,
	}
}

func (srv *viewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// mutate loads the session, applies fn to its view state and persists it.
func (srv *viewService) mutate(ctx context.Context, sessionID uuid.UUID, fn func(*entity.Session) error) (*entity.ViewState, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session view state")
	}

	return &session.View, nil
}

func (srv *viewService) State(ctx context.Context, sessionID uuid.UUID) (*entity.ViewState, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}

	return &session.View, nil
}

func (srv *viewService) Navigate(ctx context.Context, sessionID uuid.UUID, view entity.View) (*entity.ViewState, error) {
	if !view.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown view")
	}

	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		if view == entity.ViewAdmin && session.Role != entity.RoleAdmin {
			return domainerrors.ErrForbidden.WrapMessage("admin view requires the admin role")
		}

		session.View.ClearSelections()
		session.View.MyPage = entity.MyPageDashboard
		session.View.Previous = nil
		session.View.Active = view

		return nil
	})
}

func (srv *viewService) SelectArtist(ctx context.Context, sessionID, artistID uuid.UUID) (*entity.ViewState, error) {
	if _, err := srv.artistRepo.FindByID(ctx, artistID); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("artist not found")
		}

		return nil, errors.Wrap(err, "failed to find artist")
	}

	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		// Opening an artist closes any tattoo detail underneath it.
		session.View.SelectedTattooID = nil
		session.View.SelectedArtistID = &artistID

		return nil
	})
}

func (srv *viewService) SelectTattoo(ctx context.Context, sessionID, tattooID uuid.UUID) (*entity.ViewState, error) {
	if _, err := srv.tattooRepo.FindByID(ctx, tattooID); err != nil {
		if errors.Is(err, repository.ErrTattooNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("tattoo not found")
		}

		return nil, errors.Wrap(err, "failed to find tattoo")
	}

	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		session.View.SelectedTattooID = &tattooID

		return nil
	})
}

func (srv *viewService) SelectEvent(ctx context.Context, sessionID, eventID uuid.UUID) (*entity.ViewState, error) {
	if _, err := srv.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("event not found")
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		session.View.SelectedEventID = &eventID

		return nil
	})
}

func (srv *viewService) Search(ctx context.Context, sessionID uuid.UUID, query string) (*entity.ViewState, error) {
	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		session.View.SelectedArtistID = nil
		session.View.SelectedTattooID = nil
		session.View.SelectedEventID = nil
		session.View.SearchQuery = strings.TrimSpace(query)
		session.View.Active = entity.ViewSearchResults

		return nil
	})
}

func (srv *viewService) Back(ctx context.Context, sessionID uuid.UUID) (*entity.ViewState, error) {
	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		session.View.ClearSelections()
		session.View.MyPage = entity.MyPageDashboard
		if session.View.Active == entity.ViewSearchResults {
			session.View.Active = entity.ViewHome
		}

		return nil
	})
}

func (srv *viewService) BackToArtist(ctx context.Context, sessionID uuid.UUID) (*entity.ViewState, error) {
	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		session.View.SelectedEventID = nil

		return nil
	})
}

func (srv *viewService) OpenFooterPage(ctx context.Context, sessionID uuid.UUID, view entity.View) (*entity.ViewState, error) {
	if !view.IsFooterPage() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("not a footer page")
	}

	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		// Hopping between footer pages keeps the original return target.
		if !session.View.Active.IsFooterPage() {
			previous := session.View.Active
			session.View.Previous = &previous
		}
		session.View.Active = view

		return nil
	})
}

func (srv *viewService) BackFromFooter(ctx context.Context, sessionID uuid.UUID) (*entity.ViewState, error) {
	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		if session.View.Previous != nil {
			session.View.Active = *session.View.Previous
			session.View.Previous = nil
		} else {
			session.View.Active = entity.ViewHome
		}

		return nil
	})
}

func (srv *viewService) SetMyPageView(ctx context.Context, sessionID uuid.UUID, view entity.MyPageView) (*entity.ViewState, error) {
	switch view {
	case entity.MyPageDashboard, entity.MyPageEditProfile, entity.MyPageChatHistory, entity.MyPageManagePlan:
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown my-page view")
	}

	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		session.View.MyPage = view

		return nil
	})
}

func (srv *viewService) SetCreatingEvent(ctx context.Context, sessionID uuid.UUID, open bool) (*entity.ViewState, error) {
	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		session.View.CreatingEvent = open

		return nil
	})
}

func (srv *viewService) SetUploadingTattoo(ctx context.Context, sessionID uuid.UUID, open bool) (*entity.ViewState, error) {
	return srv.mutate(ctx, sessionID, func(session *entity.Session) error {
		session.View.UploadingTattoo = open

		return nil
	})
}
