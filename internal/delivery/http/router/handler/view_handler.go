package handler

import (
	"context"
	"log/slog"
	"net/http"

	"inkspot/internal/delivery/http/middleware"
	"inkspot/internal/delivery/http/response"
	"inkspot/internal/domain/entity"
	"inkspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ViewHandler exposes the navigation state machine.
type ViewHandler struct {
	uc     usecase.ViewUsecase
	logger *slog.Logger
}

// NewViewHandler is the constructor for ViewHandler, injected by Fx.
func NewViewHandler(uc usecase.ViewUsecase, logger *slog.Logger) *ViewHandler {
	return &ViewHandler{uc: uc, logger: logger}
}

// State returns the session's current view state.
func (h *ViewHandler) State(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	state, err := h.uc.State(c.Request().Context(), session.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

type navigateRequest struct {
	View string `json:"view" validate:"required"`
}

// Navigate switches the session to a top-level view.
func (h *ViewHandler) Navigate(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid navigation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	state, err := h.uc.Navigate(c.Request().Context(), session.ID, entity.View(req.View))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// SelectArtist opens an artist detail.
func (h *ViewHandler) SelectArtist(c echo.Context) error {
	return h.selectByParam(c, h.uc.SelectArtist)
}

// SelectTattoo opens a tattoo detail.
func (h *ViewHandler) SelectTattoo(c echo.Context) error {
	return h.selectByParam(c, h.uc.SelectTattoo)
}

// SelectEvent opens an event detail.
func (h *ViewHandler) SelectEvent(c echo.Context) error {
	return h.selectByParam(c, h.uc.SelectEvent)
}

type searchRequest struct {
	Query string `json:"query"`
}

// Search records the query and moves to the search results view.
func (h *ViewHandler) Search(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	state, err := h.uc.Search(c.Request().Context(), session.ID, req.Query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// Back clears selections and returns to the previous context.
func (h *ViewHandler) Back(c echo.Context) error {
	return h.simple(c, h.uc.Back)
}

// BackToArtist closes an event detail without leaving the artist profile.
func (h *ViewHandler) BackToArtist(c echo.Context) error {
	return h.simple(c, h.uc.BackToArtist)
}

// OpenFooterPage moves to a legal/footer page.
func (h *ViewHandler) OpenFooterPage(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid navigation input")
	}

	state, err := h.uc.OpenFooterPage(c.Request().Context(), session.ID, entity.View(req.View))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

// BackFromFooter returns from a footer page to its origin view.
func (h *ViewHandler) BackFromFooter(c echo.Context) error {
	return h.simple(c, h.uc.BackFromFooter)
}

type myPageViewRequest struct {
	View string `json:"view" validate:"required"`
}

// SetMyPageView switches the nested my-page subview.
func (h *ViewHandler) SetMyPageView(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req myPageViewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid my-page view input")
	}

	state, err := h.uc.SetMyPageView(c.Request().Context(), session.ID, entity.MyPageView(req.View))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

type formFlagRequest struct {
	Open bool `json:"open"`
}

// SetCreatingEvent toggles the event creation form.
func (h *ViewHandler) SetCreatingEvent(c echo.Context) error {
	return h.flag(c, h.uc.SetCreatingEvent)
}

// SetUploadingTattoo toggles the tattoo upload form.
func (h *ViewHandler) SetUploadingTattoo(c echo.Context) error {
	return h.flag(c, h.uc.SetUploadingTattoo)
}

func (h *ViewHandler) simple(c echo.Context, op func(ctx context.Context, sessionID uuid.UUID) (*entity.ViewState, error)) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	state, err := op(c.Request().Context(), session.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

func (h *ViewHandler) selectByParam(c echo.Context, op func(ctx context.Context, sessionID, id uuid.UUID) (*entity.ViewState, error)) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid id")
	}

	state, err := op(c.Request().Context(), session.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}

func (h *ViewHandler) flag(c echo.Context, op func(ctx context.Context, sessionID uuid.UUID, open bool) (*entity.ViewState, error)) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req formFlagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid flag input")
	}

	state, err := op(c.Request().Context(), session.ID, req.Open)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "")
}
