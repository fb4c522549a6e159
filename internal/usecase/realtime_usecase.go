package usecase

import (
	"context"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// RealtimeUsecase is the simulated-realtime pipeline behind chat. It runs
// the auto-reply timer and fans arrival effects out to recipient sessions.
type RealtimeUsecase interface {
	// MessageAppended reacts to a freshly appended message: it schedules an
	// auto-reply when the counterpart is an artist and notifies every
	// session of the recipient account. Notifier failures are logged, never
	// surfaced.
	MessageAppended(ctx context.Context, room *entity.ChatRoom, message *entity.ChatMessage)

	// CancelRoom drops the pending auto-reply for a room, if any.
	CancelRoom(roomID uuid.UUID)

	// Shutdown cancels every pending auto-reply.
	Shutdown()
}
