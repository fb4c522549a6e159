package handler

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"

	"inkspot/internal/delivery/http/middleware"
	"inkspot/internal/delivery/http/response"
	"inkspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler exposes the marketplace read side and content commands.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// Home returns the landing page content.
func (h *CatalogHandler) Home(c echo.Context) error {
	output, err := h.uc.Home(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Artists lists the active artist profiles.
func (h *CatalogHandler) Artists(c echo.Context) error {
	artists, err := h.uc.ActiveArtists(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, artists, "")
}

// ArtistDetail returns one artist with its content.
func (h *CatalogHandler) ArtistDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid artist id")
	}

	output, err := h.uc.ArtistDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// TattooDetail returns one tattoo with its owner and reviews.
func (h *CatalogHandler) TattooDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid tattoo id")
	}

	var sessionID *uuid.UUID
	if session, ok := middleware.SessionFrom(c); ok {
		sessionID = &session.ID
	}

	output, err := h.uc.TattooDetail(c.Request().Context(), sessionID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// Events lists all promotions.
func (h *CatalogHandler) Events(c echo.Context) error {
	events, err := h.uc.Events(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// EventDetail returns one promotion.
func (h *CatalogHandler) EventDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid event id")
	}

	event, err := h.uc.EventDetail(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

// Search matches a free-text query across artists, tattoos and events.
func (h *CatalogHandler) Search(c echo.Context) error {
	output, err := h.uc.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ToggleLikeTattoo flips the session's like on a tattoo.
func (h *CatalogHandler) ToggleLikeTattoo(c echo.Context) error {
	return h.toggleLike(c, h.uc.ToggleLikeTattoo)
}

// ToggleLikeArtist flips the session's like on an artist.
func (h *CatalogHandler) ToggleLikeArtist(c echo.Context) error {
	return h.toggleLike(c, h.uc.ToggleLikeArtist)
}

// LikedContent resolves the session's liked tattoos and artists.
func (h *CatalogHandler) LikedContent(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	output, err := h.uc.LikedContent(c.Request().Context(), session.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

type uploadTattooRequest struct {
	ImageBase64 string   `json:"imageBase64" validate:"required"`
	Style       string   `json:"style" validate:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// UploadTattoo adds a portfolio piece for the logged-in artist.
func (h *CatalogHandler) UploadTattoo(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req uploadTattooRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tattoo input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return response.BindingError(c, "INVALID_IMAGE", "Image must be base64 encoded")
	}

	tattoo, err := h.uc.UploadTattoo(c.Request().Context(), session.ID, usecase.UploadTattooInput{
		Image:       image,
		Style:       req.Style,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tattoo, "Tattoo uploaded")
}

type createEventRequest struct {
	Title         string `json:"title" validate:"required"`
	ImageBase64   string `json:"imageBase64"`
	OriginalPrice int    `json:"originalPrice" validate:"required,gt=0"`
	DiscountPrice int    `json:"discountPrice" validate:"required,gt=0"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate" validate:"required"`
	Description   string `json:"description"`
}

// CreateEvent publishes a promotion for the logged-in artist.
func (h *CatalogHandler) CreateEvent(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var image []byte
	if req.ImageBase64 != "" {
		var err error
		image, err = base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return response.BindingError(c, "INVALID_IMAGE", "Image must be base64 encoded")
		}
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), session.ID, usecase.CreateEventInput{
		Title:         req.Title,
		Image:         image,
		OriginalPrice: req.OriginalPrice,
		DiscountPrice: req.DiscountPrice,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Description:   req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Event created")
}

type submitReviewRequest struct {
	TattooID    uuid.UUID `json:"tattooId" validate:"required"`
	Rating      int       `json:"rating" validate:"required,min=1,max=5"`
	Comment     string    `json:"comment"`
	ImageBase64 string    `json:"imageBase64"`
}

// SubmitReview records feedback on a tattoo.
func (h *CatalogHandler) SubmitReview(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req submitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var image []byte
	if req.ImageBase64 != "" {
		var err error
		image, err = base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return response.BindingError(c, "INVALID_IMAGE", "Image must be base64 encoded")
		}
	}

	review, err := h.uc.SubmitReview(c.Request().Context(), session.ID, usecase.SubmitReviewInput{
		TattooID: req.TattooID,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Image:    image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted")
}

// Dashboard summarizes the logged-in artist's content.
func (h *CatalogHandler) Dashboard(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	output, err := h.uc.DashboardStats(c.Request().Context(), session.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// ShareQR renders an artist's profile share code as a PNG image.
func (h *CatalogHandler) ShareQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid artist id")
	}

	png, err := h.uc.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *CatalogHandler) toggleLike(c echo.Context, op func(ctx context.Context, sessionID, id uuid.UUID) (bool, error)) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid id")
	}

	liked, err := op(c.Request().Context(), session.ID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"liked": liked}, "")
}
