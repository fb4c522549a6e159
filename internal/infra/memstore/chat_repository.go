package memstore

import (
	"context"

	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"

	"github.com/google/uuid"
)

type chatRepository struct {
	store *Store
}

// NewChatRepository creates a chat repository backed by the store.
func NewChatRepository(store *Store) repository.ChatRepository {
	return &chatRepository{store: store}
}

func (r *chatRepository) FindRoomByID(_ context.Context, id uuid.UUID) (*entity.ChatRoom, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, room := range r.store.rooms {
		if room.ID == id {
			return cloneRoom(room), nil
		}
	}

	return nil, repository.ErrChatRoomNotFound
}

func (r *chatRepository) FindRoomByParticipants(_ context.Context, a, b uuid.UUID) (*entity.ChatRoom, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, room := range r.store.rooms {
		if room.HasParticipant(a) && room.HasParticipant(b) {
			return cloneRoom(room), nil
		}
	}

	return nil, repository.ErrChatRoomNotFound
}

func (r *chatRepository) FindRoomsByParticipant(_ context.Context, accountID uuid.UUID) ([]*entity.ChatRoom, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*entity.ChatRoom, 0)
	for _, room := range r.store.rooms {
		if room.HasParticipant(accountID) {
			out = append(out, cloneRoom(room))
		}
	}

	return out, nil
}

func (r *chatRepository) CreateRoom(_ context.Context, room *entity.ChatRoom) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.rooms = prepend(r.store.rooms, cloneRoom(room))

	return nil
}

func (r *chatRepository) FindMessagesByRoomID(_ context.Context, roomID uuid.UUID) ([]*entity.ChatMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	messages := r.store.messages[roomID]
	out := make([]*entity.ChatMessage, 0, len(messages))
	for _, message := range messages {
		out = append(out, cloneMessage(message))
	}

	return out, nil
}

// AppendMessage appends the message and refreshes the room preview under one
// lock acquisition so no reader sees them out of sync.
func (r *chatRepository) AppendMessage(_ context.Context, message *entity.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, room := range r.store.rooms {
		if room.ID == message.ChatRoomID {
			r.store.messages[room.ID] = append(r.store.messages[room.ID], cloneMessage(message))
			room.LastMessageText = message.Content
			t := message.CreatedAt
			room.LastMessageTimestamp = &t

			return nil
		}
	}

	return repository.ErrChatRoomNotFound
}
