// Package notify implements the headless notification sink. There is no real
// OS notification surface here; delivered notifications are logged and kept
// queryable per session so the realtime pipeline can be observed and tested.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"inkspot/internal/domain/service"
)

// Center records alert sounds and system notifications per session.
// Notifications sharing a tag coalesce: a new one replaces the pending one
// with the same tag instead of stacking.
type Center struct {
	mu     sync.Mutex
	logger *slog.Logger

	sounds        map[uuid.UUID]int
	notifications map[uuid.UUID]map[string]service.Notification
}

// NewCenter creates a notification center.
func NewCenter(logger *slog.Logger) *Center {
	return &Center{
		logger:        logger,
		sounds:        make(map[uuid.UUID]int),
		notifications: make(map[uuid.UUID]map[string]service.Notification),
	}
}

// NewNotifier exposes the center through the domain Notifier port.
func NewNotifier(center *Center) service.Notifier {
	return center
}

// PlaySound records one alert sound for the session.
func (c *Center) PlaySound(_ context.Context, sessionID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sounds[sessionID]++
	c.logger.Debug("notification sound played", slog.String("session_id", sessionID.String()))

	return nil
}

// Notify posts a system notification, replacing any pending one with the
// same tag for that session.
func (c *Center) Notify(_ context.Context, n service.Notification) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending, ok := c.notifications[n.SessionID]
	if !ok {
		pending = make(map[string]service.Notification)
		c.notifications[n.SessionID] = pending
	}
	pending[n.Tag] = n
	c.logger.Info("notification posted",
		slog.String("session_id", n.SessionID.String()),
		slog.String("tag", n.Tag),
		slog.String("title", n.Title),
	)

	return nil
}

// SoundCount returns how many alert sounds the session has received.
func (c *Center) SoundCount(sessionID uuid.UUID) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.sounds[sessionID]
}

// Pending returns the session's pending notifications, one per tag.
func (c *Center) Pending(sessionID uuid.UUID) []service.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	pending := c.notifications[sessionID]
	out := make([]service.Notification, 0, len(pending))
	for _, n := range pending {
		out = append(out, n)
	}

	return out
}

// Dismiss drops the pending notification with the given tag, if any.
func (c *Center) Dismiss(_ context.Context, sessionID uuid.UUID, tag string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pending, ok := c.notifications[sessionID]; ok {
		delete(pending, tag)
	}

	return nil
}
