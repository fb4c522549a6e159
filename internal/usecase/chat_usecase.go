package usecase

import (
	"context"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// RoomSummary is a chat room decorated with the counterpart's display data,
// shaped for the chat history list.
type RoomSummary struct {
	Room        *entity.ChatRoom
	OtherID     uuid.UUID
	OtherName   string
	OtherAvatar string
}

// StartChatOutput returns the room a conversation landed in. Created is
// true when no room existed for the pair before this call.
type StartChatOutput struct {
	Room    *entity.ChatRoom
	Created bool
}

// OpenNotificationOutput returns where a notification click landed: the
// session navigates to the chat history with the tagged room active.
type OpenNotificationOutput struct {
	View   *entity.ViewState
	RoomID uuid.UUID
}

// ChatUsecase defines the conversation operations plus the session-side
// switches the notification pipeline reads.
type ChatUsecase interface {
	// StartChat finds or creates the room between the session's account and
	// the target, and makes it the session's active room. Chatting with
	// oneself is rejected.
	StartChat(ctx context.Context, sessionID, otherAccountID uuid.UUID) (*StartChatOutput, error)

	// SendMessage appends a message to a room the session participates in.
	// Content that trims to empty is rejected. The append also updates the
	// room preview and hands the message to the realtime pipeline.
	SendMessage(ctx context.Context, sessionID, roomID uuid.UUID, content string) (*entity.ChatMessage, error)

	// SelectChat makes a room the session's active room.
	SelectChat(ctx context.Context, sessionID, roomID uuid.UUID) error

	// CloseChat clears the session's active room.
	CloseChat(ctx context.Context, sessionID uuid.UUID) error

	// Rooms lists the session account's rooms, most recent first.
	Rooms(ctx context.Context, sessionID uuid.UUID) ([]*RoomSummary, error)

	// Messages lists a room's messages in append order.
	Messages(ctx context.Context, sessionID, roomID uuid.UUID) ([]*entity.ChatMessage, error)

	// MarkInteracted sets the session's one-time interaction latch.
	MarkInteracted(ctx context.Context, sessionID uuid.UUID) error

	// SetNotificationPermission records the notification permission grant.
	SetNotificationPermission(ctx context.Context, sessionID uuid.UUID, granted bool) error

	// SetForeground records whether the client is focused.
	SetForeground(ctx context.Context, sessionID uuid.UUID, foreground bool) error

	// OpenNotification handles a notification click: it routes the session
	// to the chat history with the room open and dismisses the pending
	// notification for that room.
	OpenNotification(ctx context.Context, sessionID, roomID uuid.UUID) (*OpenNotificationOutput, error)
}
