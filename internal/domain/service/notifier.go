package service

import (
	"context"

	"github.com/google/uuid"
)

// Notification is one system notification about chat activity. Tag carries
// the room ID so consecutive notifications for the same room coalesce into
// one instead of stacking.
type Notification struct {
	SessionID uuid.UUID // Session the notification targets.
	Title     string    // Notification title, the sender's display name.
	Body      string    // Notification body, the message preview.
	Tag       string    // Coalescing key, one per chat room.
	RoomID    uuid.UUID // Room to open when the notification is clicked.
}

// Notifier defines the interface for delivering chat alerts to a session.
type Notifier interface {
	// PlaySound plays the short alert sound for a session.
	PlaySound(ctx context.Context, sessionID uuid.UUID) error

	// Notify posts a system notification. Implementations replace any
	// pending notification carrying the same tag.
	Notify(ctx context.Context, n Notification) error

	// Dismiss drops the session's pending notification with the given tag.
	Dismiss(ctx context.Context, sessionID uuid.UUID, tag string) error
}
