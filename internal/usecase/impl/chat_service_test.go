package impl

import (
	"context"
	"testing"
	"time"

	"inkspot/internal/domain/entity"
	domainerrors "inkspot/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService_SelfChatRejected(t *testing.T) {
	f := newFixture(t)

	login := f.signUpGeneral(t, "Chris P.", "chris@example.com")

	_, err := f.chat.StartChat(context.Background(), login.Session.ID, login.Session.AccountID)
	assert.ErrorIs(t, err, domainerrors.ErrSelfChat)
}

func TestChatService_OneRoomPerPair(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artist := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")

	first, err := f.chat.StartChat(ctx, user.Session.ID, artist.Session.AccountID)
	require.NoError(t, err)
	assert.True(t, first.Created)

	// Starting from the other side lands in the same room.
	second, err := f.chat.StartChat(ctx, artist.Session.ID, user.Session.AccountID)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Room.ID, second.Room.ID)

	session, err := f.sessions.FindByID(ctx, artist.Session.ID)
	require.NoError(t, err)
	require.NotNil(t, session.ActiveChatRoomID)
	assert.Equal(t, first.Room.ID, *session.ActiveChatRoomID)
}

func TestChatService_SendMessageRejectsBlankContent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artist := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	start, err := f.chat.StartChat(ctx, user.Session.ID, artist.Session.AccountID)
	require.NoError(t, err)

	_, err = f.chat.SendMessage(ctx, user.Session.ID, start.Room.ID, "   \n\t ")
	assert.ErrorIs(t, err, domainerrors.ErrEmptyContent)
}

func TestChatService_SendMessageUpdatesPreview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artist := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	start, err := f.chat.StartChat(ctx, user.Session.ID, artist.Session.AccountID)
	require.NoError(t, err)

	// Keep the auto-reply out of this test's way.
	f.realtime.(*realtimeService).replyDelay = time.Hour

	message, err := f.chat.SendMessage(ctx, user.Session.ID, start.Room.ID, "  예약 문의드립니다  ")
	require.NoError(t, err)
	assert.Equal(t, "예약 문의드립니다", message.Content)

	room, err := f.rooms.FindRoomByID(ctx, start.Room.ID)
	require.NoError(t, err)
	assert.Equal(t, "예약 문의드립니다", room.LastMessageText)
	require.NotNil(t, room.LastMessageTimestamp)
	assert.Equal(t, message.CreatedAt.Unix(), room.LastMessageTimestamp.Unix())
}

func TestChatService_NonParticipantCannotRead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artist := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	stranger := f.signUpGeneral(t, "Dana", "dana@example.com")

	start, err := f.chat.StartChat(ctx, user.Session.ID, artist.Session.AccountID)
	require.NoError(t, err)

	_, err = f.chat.Messages(ctx, stranger.Session.ID, start.Room.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = f.chat.SendMessage(ctx, stranger.Session.ID, start.Room.ID, "끼어들기")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestChatService_RoomsCarryCounterpartDisplayData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artist := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	_, err := f.chat.StartChat(ctx, user.Session.ID, artist.Session.AccountID)
	require.NoError(t, err)

	rooms, err := f.chat.Rooms(ctx, user.Session.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, artist.Session.AccountID, rooms[0].OtherID)
	assert.Equal(t, "Luna Ink", rooms[0].OtherName)
}

func TestChatService_CloseChatClearsActiveRoomOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artist := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	start, err := f.chat.StartChat(ctx, user.Session.ID, artist.Session.AccountID)
	require.NoError(t, err)

	require.NoError(t, f.chat.CloseChat(ctx, user.Session.ID))

	session, err := f.sessions.FindByID(ctx, user.Session.ID)
	require.NoError(t, err)
	assert.Nil(t, session.ActiveChatRoomID)

	// The room itself is untouched.
	_, err = f.rooms.FindRoomByID(ctx, start.Room.ID)
	assert.NoError(t, err)
}

func TestRealtime_AutoReplyArrivesAfterDelay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artist := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	start, err := f.chat.StartChat(ctx, user.Session.ID, artist.Session.AccountID)
	require.NoError(t, err)

	_, err = f.chat.SendMessage(ctx, user.Session.ID, start.Room.ID, "안녕하세요")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		messages, err := f.rooms.FindMessagesByRoomID(ctx, start.Room.ID)

		return err == nil && len(messages) == 2
	}, time.Second, 5*time.Millisecond)

	messages, err := f.rooms.FindMessagesByRoomID(ctx, start.Room.ID)
	require.NoError(t, err)
	reply := messages[1]
	assert.Equal(t, artist.Session.AccountID, reply.SenderID)
	assert.Equal(t, defaultAutoReplyText, reply.Content)

	// The preview follows the synthetic reply too.
	room, err := f.rooms.FindRoomByID(ctx, start.Room.ID)
	require.NoError(t, err)
	assert.Equal(t, defaultAutoReplyText, room.LastMessageText)
}

func TestRealtime_CancelRoomStopsPendingReply(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artist := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	start, err := f.chat.StartChat(ctx, user.Session.ID, artist.Session.AccountID)
	require.NoError(t, err)

	_, err = f.chat.SendMessage(ctx, user.Session.ID, start.Room.ID, "안녕하세요")
	require.NoError(t, err)
	f.realtime.CancelRoom(start.Room.ID)

	time.Sleep(100 * time.Millisecond)
	messages, err := f.rooms.FindMessagesByRoomID(ctx, start.Room.ID)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

func TestRealtime_NotificationGating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artist := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	start, err := f.chat.StartChat(ctx, user.Session.ID, artist.Session.AccountID)
	require.NoError(t, err)
	// The user is no longer looking at the room and has granted permission.
	require.NoError(t, f.chat.CloseChat(ctx, user.Session.ID))
	require.NoError(t, f.chat.MarkInteracted(ctx, user.Session.ID))
	require.NoError(t, f.chat.SetNotificationPermission(ctx, user.Session.ID, true))
	require.NoError(t, f.chat.SetForeground(ctx, user.Session.ID, false))

	_, err = f.chat.SendMessage(ctx, artist.Session.ID, start.Room.ID, "예약 확정입니다")
	require.NoError(t, err)

	assert.Equal(t, 1, f.center.SoundCount(user.Session.ID))
	pending := f.center.Pending(user.Session.ID)
	require.Len(t, pending, 1)
	assert.Equal(t, "Luna Ink님으로부터 새 메시지", pending[0].Title)
	assert.Equal(t, "예약 확정입니다", pending[0].Body)

	// A second message coalesces by room tag instead of stacking.
	_, err = f.chat.SendMessage(ctx, artist.Session.ID, start.Room.ID, "내일 뵙겠습니다")
	require.NoError(t, err)
	pending = f.center.Pending(user.Session.ID)
	require.Len(t, pending, 1)
	assert.Equal(t, "내일 뵙겠습니다", pending[0].Body)
}

func TestRealtime_NoEffectsWhileViewingRoom(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artist := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	start, err := f.chat.StartChat(ctx, user.Session.ID, artist.Session.AccountID)
	require.NoError(t, err)
	require.NoError(t, f.chat.MarkInteracted(ctx, user.Session.ID))
	require.NoError(t, f.chat.SetNotificationPermission(ctx, user.Session.ID, true))
	require.NoError(t, f.chat.SetForeground(ctx, user.Session.ID, false))

	// StartChat left the room active, so arrival effects are suppressed.
	_, err = f.chat.SendMessage(ctx, artist.Session.ID, start.Room.ID, "확인했습니다")
	require.NoError(t, err)

	assert.Zero(t, f.center.SoundCount(user.Session.ID))
	assert.Empty(t, f.center.Pending(user.Session.ID))
}

func TestChatService_OpenNotificationRoutesToChatHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUpGeneral(t, "Chris P.", "chris@example.com")
	artist := f.activeArtistLogin(t, "Luna Ink", "luna@example.com")
	start, err := f.chat.StartChat(ctx, user.Session.ID, artist.Session.AccountID)
	require.NoError(t, err)
	require.NoError(t, f.chat.CloseChat(ctx, user.Session.ID))
	require.NoError(t, f.chat.MarkInteracted(ctx, user.Session.ID))
	require.NoError(t, f.chat.SetNotificationPermission(ctx, user.Session.ID, true))
	require.NoError(t, f.chat.SetForeground(ctx, user.Session.ID, false))

	_, err = f.chat.SendMessage(ctx, artist.Session.ID, start.Room.ID, "예약 확정입니다")
	require.NoError(t, err)
	require.Len(t, f.center.Pending(user.Session.ID), 1)

	out, err := f.chat.OpenNotification(ctx, user.Session.ID, start.Room.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewMyPage, out.View.Active)
	assert.Equal(t, entity.MyPageChatHistory, out.View.MyPage)
	assert.Equal(t, start.Room.ID, out.RoomID)

	session, err := f.sessions.FindByID(ctx, user.Session.ID)
	require.NoError(t, err)
	require.NotNil(t, session.ActiveChatRoomID)
	assert.Equal(t, start.Room.ID, *session.ActiveChatRoomID)

	assert.Empty(t, f.center.Pending(user.Session.ID))
}
