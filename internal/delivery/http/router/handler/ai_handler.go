package handler

import (
	"log/slog"
	"net/http"

	"inkspot/internal/delivery/http/response"
	"inkspot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AIHandler exposes the generation endpoints.
type AIHandler struct {
	uc     usecase.AIUsecase
	logger *slog.Logger
}

// NewAIHandler is the constructor for AIHandler, injected by Fx.
func NewAIHandler(uc usecase.AIUsecase, logger *slog.Logger) *AIHandler {
	return &AIHandler{uc: uc, logger: logger}
}

type generateRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// GenerateIdea produces a text design concept from a prompt.
func (h *AIHandler) GenerateIdea(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid prompt input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.GenerateIdea(c.Request().Context(), usecase.GenerateIdeaInput{Prompt: req.Prompt})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// GenerateImage produces a preview image from a prompt.
func (h *AIHandler) GenerateImage(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid prompt input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.GenerateImage(c.Request().Context(), usecase.GenerateImageInput{Prompt: req.Prompt})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
