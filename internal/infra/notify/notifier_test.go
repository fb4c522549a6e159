package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"inkspot/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCenter() *Center {
	return NewCenter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCenter_NotifyCoalescesByTag(t *testing.T) {
	center := testCenter()
	ctx := context.Background()
	sessionID := uuid.New()
	roomID := uuid.New()
	tag := "chat-" + roomID.String()

	require.NoError(t, center.Notify(ctx, service.Notification{
		SessionID: sessionID, Title: "Luna Ink", Body: "first", Tag: tag, RoomID: roomID,
	}))
	require.NoError(t, center.Notify(ctx, service.Notification{
		SessionID: sessionID, Title: "Luna Ink", Body: "second", Tag: tag, RoomID: roomID,
	}))

	pending := center.Pending(sessionID)
	require.Len(t, pending, 1)
	assert.Equal(t, "second", pending[0].Body)
}

func TestCenter_DistinctTagsStack(t *testing.T) {
	center := testCenter()
	ctx := context.Background()
	sessionID := uuid.New()

	require.NoError(t, center.Notify(ctx, service.Notification{SessionID: sessionID, Tag: "chat-a"}))
	require.NoError(t, center.Notify(ctx, service.Notification{SessionID: sessionID, Tag: "chat-b"}))

	assert.Len(t, center.Pending(sessionID), 2)
}

func TestCenter_SoundCountAndDismiss(t *testing.T) {
	center := testCenter()
	ctx := context.Background()
	sessionID := uuid.New()

	require.NoError(t, center.PlaySound(ctx, sessionID))
	require.NoError(t, center.PlaySound(ctx, sessionID))
	assert.Equal(t, 2, center.SoundCount(sessionID))
	assert.Equal(t, 0, center.SoundCount(uuid.New()))

	require.NoError(t, center.Notify(ctx, service.Notification{SessionID: sessionID, Tag: "chat-a"}))
	require.NoError(t, center.Dismiss(ctx, sessionID, "chat-a"))
	assert.Empty(t, center.Pending(sessionID))
}
