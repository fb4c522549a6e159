package handler

import (
	"log/slog"
	"net/http"

	"inkspot/internal/delivery/http/middleware"
	"inkspot/internal/delivery/http/response"
	"inkspot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BillingHandler exposes the subscription plan endpoints.
type BillingHandler struct {
	uc     usecase.BillingUsecase
	logger *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler, injected by Fx.
func NewBillingHandler(uc usecase.BillingUsecase, logger *slog.Logger) *BillingHandler {
	return &BillingHandler{uc: uc, logger: logger}
}

// Plans lists the purchasable premium plans.
func (h *BillingHandler) Plans(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Plans(c.Request().Context()), "")
}

type purchasePlanRequest struct {
	Months int `json:"months" validate:"required,gt=0"`
}

// PurchasePlan buys premium time for the logged-in artist.
func (h *BillingHandler) PurchasePlan(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req purchasePlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.PurchasePlan(c.Request().Context(), session.ID, req.Months)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Plan purchased")
}
