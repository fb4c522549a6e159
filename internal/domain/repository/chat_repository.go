package repository

import (
	"context"
	"errors"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrChatRoomNotFound is a domain-specific error returned when a chat room is not found.
var ErrChatRoomNotFound = errors.New("chat room not found")

// ChatRepository defines the operations for chat rooms and their messages.
// Rooms are unique per unordered participant pair; messages are append-only.
type ChatRepository interface {
	// FindRoomByID retrieves a single room by its unique ID.
	FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.ChatRoom, error)

	// FindRoomByParticipants retrieves the room for an unordered pair of
	// participants, or ErrChatRoomNotFound when none exists.
	FindRoomByParticipants(ctx context.Context, a, b uuid.UUID) (*entity.ChatRoom, error)

	// FindRoomsByParticipant retrieves every room the account takes part in,
	// newest first.
	FindRoomsByParticipant(ctx context.Context, accountID uuid.UUID) ([]*entity.ChatRoom, error)

	// CreateRoom persists a new room at the head of the collection.
	CreateRoom(ctx context.Context, room *entity.ChatRoom) error

	// FindMessagesByRoomID retrieves the messages of a room in append order.
	FindMessagesByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.ChatMessage, error)

	// AppendMessage appends a message and updates the room preview fields in
	// one atomic operation. No observer may see the message without the
	// updated preview.
	AppendMessage(ctx context.Context, message *entity.ChatMessage) error
}
