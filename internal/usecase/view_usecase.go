package usecase

import (
	"context"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ViewUsecase drives the navigation state machine of a session. Every
// operation returns the resulting view state so the caller can render it.
type ViewUsecase interface {
	// State returns the current navigation state.
	State(ctx context.Context, sessionID uuid.UUID) (*entity.ViewState, error)

	// Navigate switches to a top-level view and clears all selections,
	// creation flags and the search query. Admin view requires the admin
	// role; my-page requires any authenticated session.
	Navigate(ctx context.Context, sessionID uuid.UUID, view entity.View) (*entity.ViewState, error)

	// SelectArtist opens an artist detail, clearing any tattoo selection.
	SelectArtist(ctx context.Context, sessionID, artistID uuid.UUID) (*entity.ViewState, error)

	// SelectTattoo opens a tattoo detail.
	SelectTattoo(ctx context.Context, sessionID, tattooID uuid.UUID) (*entity.ViewState, error)

	// SelectEvent opens an event detail.
	SelectEvent(ctx context.Context, sessionID, eventID uuid.UUID) (*entity.ViewState, error)

	// Search records the query and moves to the search-results view.
	Search(ctx context.Context, sessionID uuid.UUID, query string) (*entity.ViewState, error)

	// Back clears all selections and form flags, resets the my-page subview
	// to the dashboard and, from search results, returns to home.
	Back(ctx context.Context, sessionID uuid.UUID) (*entity.ViewState, error)

	// BackToArtist closes an event detail opened from an artist profile,
	// leaving the artist selection in place.
	BackToArtist(ctx context.Context, sessionID uuid.UUID) (*entity.ViewState, error)

	// OpenFooterPage moves to a footer page, remembering the view it was
	// opened from unless the session is already on one.
	OpenFooterPage(ctx context.Context, sessionID uuid.UUID, view entity.View) (*entity.ViewState, error)

	// BackFromFooter returns to the remembered previous view, or home.
	BackFromFooter(ctx context.Context, sessionID uuid.UUID) (*entity.ViewState, error)

	// SetMyPageView switches the nested my-page subview.
	SetMyPageView(ctx context.Context, sessionID uuid.UUID, view entity.MyPageView) (*entity.ViewState, error)

	// SetCreatingEvent opens or closes the event creation form.
	SetCreatingEvent(ctx context.Context, sessionID uuid.UUID, open bool) (*entity.ViewState, error)

	// SetUploadingTattoo opens or closes the tattoo upload form.
	SetUploadingTattoo(ctx context.Context, sessionID uuid.UUID, open bool) (*entity.ViewState, error)
}
