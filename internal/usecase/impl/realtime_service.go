package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"inkspot/config"
	deliverycontext "inkspot/internal/delivery/context"
	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/lifecycle"
	"inkspot/internal/domain/repository"
	"inkspot/internal/domain/service"
	"inkspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAutoReplyText = "네, 확인했습니다. 잠시만 기다려주세요!"

// roomTag is the coalescing key for chat notifications: one per room, so a
// burst of messages collapses into a single pending notification.
func roomTag(roomID uuid.UUID) string {
	return fmt.Sprintf("chat-message-%s", roomID)
}

// realtimeService implements the RealtimeUsecase interface. It simulates
// the realtime side of chat: a delayed canned reply from the counterpart
// and arrival effects (sound, system notification) on recipient sessions.
type realtimeService struct {
	chatRepo    repository.ChatRepository
	accountRepo repository.AccountRepository
	artistRepo  repository.ArtistRepository
	sessionRepo repository.SessionRepository
	notifier    service.Notifier
	logger      *slog.Logger

	replyDelay time.Duration
	replyText  string

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

// RealtimeServiceParams holds dependencies for realtimeService, injected by Fx.
type RealtimeServiceParams struct {
	fx.In

	ChatRepo    repository.ChatRepository
	AccountRepo repository.AccountRepository
	ArtistRepo  repository.ArtistRepository
	SessionRepo repository.SessionRepository
	Notifier    service.Notifier
	Config      *config.Config
	Logger      *slog.Logger
	Lifecycle   fx.Lifecycle
}

// NewRealtimeService is the constructor for realtimeService. Pending
// auto-replies are cancelled on shutdown through the fx lifecycle.
func NewRealtimeService(params RealtimeServiceParams) usecase.RealtimeUsecase {
	replyDelay := 2500 * time.Millisecond
	replyText := defaultAutoReplyText
	if params.Config != nil && params.Config.Chat != nil {
		if params.Config.Chat.AutoReplyDelay > 0 {
			replyDelay = params.Config.Chat.AutoReplyDelay
		}
		if params.Config.Chat.AutoReplyText != "" {
			replyText = params.Config.Chat.AutoReplyText
		}
	}

	srv := &realtimeService{
		chatRepo:    params.ChatRepo,
		accountRepo: params.AccountRepo,
		artistRepo:  params.ArtistRepo,
		sessionRepo: params.SessionRepo,
		notifier:    params.Notifier,
		logger:      params.Logger,
		replyDelay:  replyDelay,
		replyText:   replyText,
		timers:      make(map[uuid.UUID]*time.Timer),
	}

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(context.Context) error {
				srv.Shutdown()

				return nil
			},
		})
	}

	return srv
}

func (srv *realtimeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// MessageAppended reacts to a message a user just sent: it notifies the
// recipient's sessions and schedules the counterpart's auto-reply. A newer
// message in the same room replaces the pending reply.
func (srv *realtimeService) MessageAppended(ctx context.Context, room *entity.ChatRoom, message *entity.ChatMessage) {
	recipientID, ok := room.OtherParticipant(message.SenderID)
	if !ok {
		srv.log(ctx).Warn("Message sender is not in the room", slog.Any("roomID", room.ID))

		return
	}

	srv.notifyRecipient(ctx, room.ID, message, recipientID)
	srv.scheduleAutoReply(room.ID, recipientID, message.SenderID)
}

// CancelRoom drops the pending auto-reply for a room, if any.
func (srv *realtimeService) CancelRoom(roomID uuid.UUID) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if timer, ok := srv.timers[roomID]; ok {
		timer.Stop()
		delete(srv.timers, roomID)
	}
}

// Shutdown cancels every pending auto-reply.
func (srv *realtimeService) Shutdown() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	for roomID, timer := range srv.timers {
		timer.Stop()
		delete(srv.timers, roomID)
	}
}

// scheduleAutoReply arms the reply timer for the room, replacing any timer
// already pending there.
func (srv *realtimeService) scheduleAutoReply(roomID, replierID, recipientID uuid.UUID) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if timer, ok := srv.timers[roomID]; ok {
		timer.Stop()
	}
	srv.timers[roomID] = time.AfterFunc(srv.replyDelay, func() {
		srv.fireAutoReply(roomID, replierID, recipientID)
	})
}

// fireAutoReply appends the canned reply and notifies the original sender's
// sessions. It runs on the timer goroutine with its own deadline.
func (srv *realtimeService) fireAutoReply(roomID, replierID, recipientID uuid.UUID) {
	srv.mu.Lock()
	delete(srv.timers, roomID)
	srv.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	reply := &entity.ChatMessage{
		ID:         uuid.New(),
		ChatRoomID: roomID,
		SenderID:   replierID,
		Content:    srv.replyText,
		CreatedAt:  time.Now(),
	}
	if err := srv.chatRepo.AppendMessage(ctx, reply); err != nil {
		srv.logger.Error("Failed to append auto-reply", slog.Any("roomID", roomID), slog.Any("error", errors.WithStack(err)))

		return
	}

	srv.notifyRecipient(ctx, roomID, reply, recipientID)
}

// notifyRecipient fans the arrival effects out to every session of the
// recipient account. Failures are logged and swallowed so delivery of the
// message itself is never blocked.
func (srv *realtimeService) notifyRecipient(ctx context.Context, roomID uuid.UUID, message *entity.ChatMessage, recipientID uuid.UUID) {
	sessions, err := srv.sessionRepo.FindByAccountID(ctx, recipientID)
	if err != nil {
		srv.log(ctx).Warn("Failed to list recipient sessions", slog.Any("error", err))

		return
	}
	if len(sessions) == 0 {
		return
	}

	senderName := srv.senderName(ctx, message.SenderID)
	for _, session := range sessions {
		// No effects while the recipient is looking at the room.
		if session.ActiveChatRoomID != nil && *session.ActiveChatRoomID == roomID {
			continue
		}

		if session.HasInteracted {
			if err := srv.notifier.PlaySound(ctx, session.ID); err != nil {
				srv.log(ctx).Warn("Failed to play notification sound", slog.Any("error", err))
			}
		}

		if session.NotifyGranted && !session.Foreground {
			n := service.Notification{
				SessionID: session.ID,
				Title:     fmt.Sprintf("%s님으로부터 새 메시지", senderName),
				Body:      message.Content,
				Tag:       roomTag(roomID),
				RoomID:    roomID,
			}
			if err := srv.notifier.Notify(ctx, n); err != nil {
				srv.log(ctx).Warn("Failed to post notification", slog.Any("error", err))
			}
		}
	}
}

func (srv *realtimeService) senderName(ctx context.Context, senderID uuid.UUID) string {
	if artist, err := srv.artistRepo.FindByID(ctx, senderID); err == nil {
		return artist.Name
	}
	if account, err := srv.accountRepo.FindByID(ctx, senderID); err == nil {
		return account.Name
	}

	return "알 수 없음"
}
