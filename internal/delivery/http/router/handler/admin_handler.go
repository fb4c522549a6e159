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

// AdminHandler exposes the back-office endpoints. Route-level role checks
// keep non-admins out; the usecase re-checks on every call.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// Overview returns the back-office headline counts.
func (h *AdminHandler) Overview(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	output, err := h.uc.Overview(c.Request().Context(), session.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Artists lists every artist regardless of status.
func (h *AdminHandler) Artists(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	artists, err := h.uc.Artists(c.Request().Context(), session.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artists, "")
}

// PendingArtists lists artists waiting for approval.
func (h *AdminHandler) PendingArtists(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	artists, err := h.uc.PendingArtists(c.Request().Context(), session.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artists, "")
}

// ApproveArtist activates a pending artist profile.
func (h *AdminHandler) ApproveArtist(c echo.Context) error {
	return h.moderate(c, h.uc.ApproveArtist)
}

// RejectArtist declines a pending artist profile.
func (h *AdminHandler) RejectArtist(c echo.Context) error {
	return h.moderate(c, h.uc.RejectArtist)
}

type subscriptionRequest struct {
	// Days extends premium until today plus this many days.
	// Omitting it resets the artist to the free tier.
	Days *int `json:"days" validate:"omitempty,gt=0"`
}

// SetSubscription overwrites an artist's subscription.
func (h *AdminHandler) SetSubscription(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid artist id")
	}

	var req subscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	artist, err := h.uc.SetArtistSubscription(c.Request().Context(), session.ID, artistID, req.Days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artist, "Subscription updated")
}

// DeleteTattoo removes a tattoo from the catalog.
func (h *AdminHandler) DeleteTattoo(c echo.Context) error {
	return h.remove(c, h.uc.DeleteTattoo)
}

// DeleteEvent removes a promotion.
func (h *AdminHandler) DeleteEvent(c echo.Context) error {
	return h.remove(c, h.uc.DeleteEvent)
}

// DeleteReview removes a review.
func (h *AdminHandler) DeleteReview(c echo.Context) error {
	return h.remove(c, h.uc.DeleteReview)
}

// Payments lists every recorded payment.
func (h *AdminHandler) Payments(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	payments, err := h.uc.Payments(c.Request().Context(), session.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "")
}

func (h *AdminHandler) moderate(c echo.Context, op func(ctx context.Context, sessionID, artistID uuid.UUID) (*entity.Artist, error)) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	artistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid artist id")
	}

	artist, err := op(c.Request().Context(), session.ID, artistID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artist, "")
}

func (h *AdminHandler) remove(c echo.Context, op func(ctx context.Context, sessionID, id uuid.UUID) error) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid id")
	}

	if err := op(c.Request().Context(), session.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Deleted")
}
