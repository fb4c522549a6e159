package handler

import (
	"log/slog"
	"net/http"

	"inkspot/internal/delivery/http/middleware"
	"inkspot/internal/delivery/http/response"
	"inkspot/internal/domain/entity"
	"inkspot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for auth and profile handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{uc: uc, logger: logger}
}

type signUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`

	// Artist-only fields; Artist switches the signup kind.
	Artist     bool   `json:"artist"`
	AvatarURL  string `json:"avatarUrl"`
	Specialty  string `json:"specialty"`
	Location   string `json:"location"`
	ArtistType string `json:"artistType"`
	WhatsApp   string `json:"whatsapp"`
	KakaoTalk  string `json:"kakaoTalk"`
}

// SignUp handles account registration for both kinds of accounts.
func (h *AccountHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := usecase.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}
	if req.Artist {
		input.Artist = &usecase.ArtistSignUpInput{
			AvatarURL:  req.AvatarURL,
			Specialty:  req.Specialty,
			Location:   req.Location,
			ArtistType: entity.ArtistType(req.ArtistType),
			WhatsApp:   req.WhatsApp,
			KakaoTalk:  req.KakaoTalk,
		}
	}

	output, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Account registered successfully")
}

// Login opens a session for an account.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Logout closes the authenticated session.
func (h *AccountHandler) Logout(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	if err := h.uc.Logout(c.Request().Context(), session.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// SaveProfile updates the authenticated account's profile.
func (h *AccountHandler) SaveProfile(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var input usecase.SaveProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	output, err := h.uc.SaveProfile(c.Request().Context(), session.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile saved")
}

// Me returns the authenticated session state.
func (h *AccountHandler) Me(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	return response.Success(c, http.StatusOK, session, "")
}
