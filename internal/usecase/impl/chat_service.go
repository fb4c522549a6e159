package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "inkspot/internal/delivery/context"
	"inkspot/internal/domain/entity"
	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/domain/repository"
	"inkspot/internal/domain/service"
	"inkspot/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	chatRepo    repository.ChatRepository
	accountRepo repository.AccountRepository
	artistRepo  repository.ArtistRepository
	sessionRepo repository.SessionRepository
	realtime    usecase.RealtimeUsecase
	notifier    service.Notifier
	logger      *slog.Logger
}

// ChatServiceParams holds dependencies for chatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo    repository.ChatRepository
	AccountRepo repository.AccountRepository
	ArtistRepo  repository.ArtistRepository
	SessionRepo repository.SessionRepository
	Realtime    usecase.RealtimeUsecase
	Notifier    service.Notifier
	Logger      *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo:    params.ChatRepo,
		accountRepo: params.AccountRepo,
		artistRepo:  params.ArtistRepo,
		sessionRepo: params.SessionRepo,
		realtime:    params.Realtime,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartChat finds or creates the room between the session account and the
// counterpart, then makes it the session's active room.
func (srv *chatService) StartChat(ctx context.Context, sessionID, otherAccountID uuid.UUID) (*usecase.StartChatOutput, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if otherAccountID == session.AccountID {
		return nil, domainerrors.ErrSelfChat
	}
	if _, err := srv.accountRepo.FindByID(ctx, otherAccountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("account not found")
		}

		return nil, errors.Wrap(err, "failed to find chat counterpart")
	}

	created := false
	room, err := srv.chatRepo.FindRoomByParticipants(ctx, session.AccountID, otherAccountID)
	if errors.Is(err, repository.ErrChatRoomNotFound) {
		room = &entity.ChatRoom{
			ID:             uuid.New(),
			ParticipantIDs: [2]uuid.UUID{session.AccountID, otherAccountID},
			CreatedAt:      time.Now(),
		}
		if err := srv.chatRepo.CreateRoom(ctx, room); err != nil {
			return nil, errors.Wrap(err, "failed to create chat room")
		}
		created = true
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to find chat room")
	}

	session.ActiveChatRoomID = &room.ID
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to set active chat room")
	}

	if created {
		srv.log(ctx).Info("Chat room created", slog.Any("roomID", room.ID))
	}

	return &usecase.StartChatOutput{Room: room, Created: created}, nil
}

// SendMessage appends a message and hands it to the realtime pipeline.
func (srv *chatService) SendMessage(ctx context.Context, sessionID, roomID uuid.UUID, content string) (*entity.ChatMessage, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domainerrors.ErrEmptyContent
	}

	room, err := srv.loadParticipantRoom(ctx, session, roomID)
	if err != nil {
		return nil, err
	}

	message := &entity.ChatMessage{
		ID:         uuid.New(),
		ChatRoomID: room.ID,
		SenderID:   session.AccountID,
		Content:    content,
		CreatedAt:  time.Now(),
	}
	if err := srv.chatRepo.AppendMessage(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to append chat message")
	}

	room.LastMessageText = message.Content
	room.LastMessageTimestamp = &message.CreatedAt
	srv.realtime.MessageAppended(ctx, room, message)

	return message, nil
}

func (srv *chatService) SelectChat(ctx context.Context, sessionID, roomID uuid.UUID) error {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return err
	}
	if _, err := srv.loadParticipantRoom(ctx, session, roomID); err != nil {
		return err
	}

	session.ActiveChatRoomID = &roomID
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return errors.Wrap(err, "failed to set active chat room")
	}

	return nil
}

func (srv *chatService) CloseChat(ctx context.Context, sessionID uuid.UUID) error {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return err
	}

	session.ActiveChatRoomID = nil
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return errors.Wrap(err, "failed to clear active chat room")
	}

	return nil
}

// Rooms lists the account's rooms decorated with the counterpart's display
// data, most recent first.
func (srv *chatService) Rooms(ctx context.Context, sessionID uuid.UUID) ([]*usecase.RoomSummary, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}

	rooms, err := srv.chatRepo.FindRoomsByParticipant(ctx, session.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat rooms")
	}

	out := make([]*usecase.RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		otherID, ok := room.OtherParticipant(session.AccountID)
		if !ok {
			continue
		}

		name, avatar := srv.displayData(ctx, otherID)
		out = append(out, &usecase.RoomSummary{
			Room:        room,
			OtherID:     otherID,
			OtherName:   name,
			OtherAvatar: avatar,
		})
	}

	return out, nil
}

func (srv *chatService) Messages(ctx context.Context, sessionID, roomID uuid.UUID) ([]*entity.ChatMessage, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := srv.loadParticipantRoom(ctx, session, roomID); err != nil {
		return nil, err
	}

	messages, err := srv.chatRepo.FindMessagesByRoomID(ctx, roomID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	return messages, nil
}

func (srv *chatService) MarkInteracted(ctx context.Context, sessionID uuid.UUID) error {
	return srv.mutateSession(ctx, sessionID, func(session *entity.Session) {
		session.HasInteracted = true
	})
}

func (srv *chatService) SetNotificationPermission(ctx context.Context, sessionID uuid.UUID, granted bool) error {
	return srv.mutateSession(ctx, sessionID, func(session *entity.Session) {
		session.NotifyGranted = granted
	})
}

func (srv *chatService) SetForeground(ctx context.Context, sessionID uuid.UUID, foreground bool) error {
	return srv.mutateSession(ctx, sessionID, func(session *entity.Session) {
		session.Foreground = foreground
	})
}

// OpenNotification routes a notification click: the session lands on the
// chat history with the room active and the pending notification cleared.
func (srv *chatService) OpenNotification(ctx context.Context, sessionID, roomID uuid.UUID) (*usecase.OpenNotificationOutput, error) {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := srv.loadParticipantRoom(ctx, session, roomID); err != nil {
		return nil, err
	}

	session.View.ClearSelections()
	session.View.Previous = nil
	session.View.Active = entity.ViewMyPage
	session.View.MyPage = entity.MyPageChatHistory
	session.ActiveChatRoomID = &roomID
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to update session for notification open")
	}

	if err := srv.notifier.Dismiss(ctx, sessionID, roomTag(roomID)); err != nil {
		srv.log(ctx).Warn("Failed to dismiss notification", slog.Any("error", err))
	}

	return &usecase.OpenNotificationOutput{View: &session.View, RoomID: roomID}, nil
}

func (srv *chatService) mutateSession(ctx context.Context, sessionID uuid.UUID, fn func(*entity.Session)) error {
	session, err := loadSession(ctx, srv.sessionRepo, sessionID)
	if err != nil {
		return err
	}

	fn(session)
	if err := srv.sessionRepo.Update(ctx, session); err != nil {
		return errors.Wrap(err, "failed to update session")
	}

	return nil
}

// loadParticipantRoom resolves a room and checks the session account is one
// of its two parties.
func (srv *chatService) loadParticipantRoom(ctx context.Context, session *entity.Session, roomID uuid.UUID) (*entity.ChatRoom, error) {
	room, err := srv.chatRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrChatRoomNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("chat room not found")
		}

		return nil, errors.Wrap(err, "failed to find chat room")
	}
	if !room.HasParticipant(session.AccountID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("not a participant of this room")
	}

	return room, nil
}

// displayData resolves a counterpart's name and avatar. Artists carry their
// own avatar; everyone else gets the stock one.
func (srv *chatService) displayData(ctx context.Context, accountID uuid.UUID) (string, string) {
	if artist, err := srv.artistRepo.FindByID(ctx, accountID); err == nil {
		return artist.Name, artist.AvatarURL
	}

	if account, err := srv.accountRepo.FindByID(ctx, accountID); err == nil {
		return account.Name, fallbackReviewerAvatar
	}

	return "알 수 없음", fallbackReviewerAvatar
}
