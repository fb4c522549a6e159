package handler

import (
	"log/slog"
	"net/http"

	"inkspot/internal/delivery/http/middleware"
	"inkspot/internal/delivery/http/response"
	"inkspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler exposes the conversation endpoints.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, logger: logger}
}

type startChatRequest struct {
	AccountID uuid.UUID `json:"accountId" validate:"required"`
}

// Start finds or creates the room with another account.
func (h *ChatHandler) Start(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req startChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.StartChat(c.Request().Context(), session.ID, req.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}

	return response.Success(c, status, output, "")
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// Send appends a message to a room.
func (h *ChatHandler) Send(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid room id")
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	message, err := h.uc.SendMessage(c.Request().Context(), session.ID, roomID, req.Content)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "")
}

// Select makes a room the session's active room.
func (h *ChatHandler) Select(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid room id")
	}

	if err := h.uc.SelectChat(c.Request().Context(), session.ID, roomID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// Close clears the session's active room.
func (h *ChatHandler) Close(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	if err := h.uc.CloseChat(c.Request().Context(), session.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// Rooms lists the account's conversations.
func (h *ChatHandler) Rooms(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	rooms, err := h.uc.Rooms(c.Request().Context(), session.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rooms, "")
}

// Messages lists a room's messages in append order.
func (h *ChatHandler) Messages(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid room id")
	}

	messages, err := h.uc.Messages(c.Request().Context(), session.ID, roomID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "")
}

// MarkInteracted sets the session's one-time interaction latch.
func (h *ChatHandler) MarkInteracted(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	if err := h.uc.MarkInteracted(c.Request().Context(), session.ID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type permissionRequest struct {
	Granted bool `json:"granted"`
}

// SetNotificationPermission records the notification permission grant.
func (h *ChatHandler) SetNotificationPermission(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req permissionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid permission input")
	}

	if err := h.uc.SetNotificationPermission(c.Request().Context(), session.ID, req.Granted); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}

type foregroundRequest struct {
	Foreground bool `json:"foreground"`
}

// SetForeground records whether the client is focused.
func (h *ChatHandler) SetForeground(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	var req foregroundRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid foreground input")
	}

	if err := h.uc.SetForeground(c.Request().Context(), session.ID, req.Foreground); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "")
}

// OpenNotification handles a notification click.
func (h *ChatHandler) OpenNotification(c echo.Context) error {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_SESSION", "Authentication required")
	}

	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_ID", "Invalid room id")
	}

	output, err := h.uc.OpenNotification(c.Request().Context(), session.ID, roomID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
