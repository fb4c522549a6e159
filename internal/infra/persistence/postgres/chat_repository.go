package postgres

import (
	"bytes"
	"context"

	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"
	"inkspot/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// chatRepository implements repository.ChatRepository using GORM.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

func (repo *chatRepository) FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.ChatRoom, error) {
	var m model.ChatRoomModel
	err := repo.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat room by id")
	}

	return toRoomDomain(&m), nil
}

func (repo *chatRepository) FindRoomByParticipants(ctx context.Context, a, b uuid.UUID) (*entity.ChatRoom, error) {
	first, second := orderPair(a, b)

	var m model.ChatRoomModel
	err := repo.db.WithContext(ctx).
		First(&m, "participant_a = ? AND participant_b = ?", first, second).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChatRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat room by participants")
	}

	return toRoomDomain(&m), nil
}

func (repo *chatRepository) FindRoomsByParticipant(ctx context.Context, accountID uuid.UUID) ([]*entity.ChatRoom, error) {
	var models []model.ChatRoomModel
	err := repo.db.WithContext(ctx).
		Where("participant_a = ? OR participant_b = ?", accountID, accountID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat rooms")
	}

	out := make([]*entity.ChatRoom, 0, len(models))
	for i := range models {
		out = append(out, toRoomDomain(&models[i]))
	}

	return out, nil
}

func (repo *chatRepository) CreateRoom(ctx context.Context, room *entity.ChatRoom) error {
	if err := repo.db.WithContext(ctx).Create(fromRoomDomain(room)).Error; err != nil {
		return errors.Wrap(err, "failed to create chat room")
	}

	return nil
}

func (repo *chatRepository) FindMessagesByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.ChatMessage, error) {
	var models []model.ChatMessageModel
	err := repo.db.WithContext(ctx).
		Where("chat_room_id = ?", roomID).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat messages")
	}

	out := make([]*entity.ChatMessage, 0, len(models))
	for i := range models {
		out = append(out, toMessageDomain(&models[i]))
	}

	return out, nil
}

// AppendMessage inserts the message and updates the room preview inside one
// transaction so readers never see them out of sync.
func (repo *chatRepository) AppendMessage(ctx context.Context, message *entity.ChatMessage) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fromMessageDomain(message)).Error; err != nil {
			return errors.Wrap(err, "failed to create chat message")
		}

		result := tx.Model(&model.ChatRoomModel{}).
			Where("id = ?", message.ChatRoomID).
			Updates(map[string]any{
				"last_message_text":      message.Content,
				"last_message_timestamp": message.CreatedAt,
			})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to update chat room preview")
		}
		if result.RowsAffected == 0 {
			return repository.ErrChatRoomNotFound
		}

		return nil
	})
}

// orderPair normalizes a participant pair so the lexicographically smaller
// UUID always lands in participant_a.
func orderPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}

	return b, a
}

func toRoomDomain(data *model.ChatRoomModel) *entity.ChatRoom {
	return &entity.ChatRoom{
		ID:                   data.ID,
		ParticipantIDs:       [2]uuid.UUID{data.ParticipantA, data.ParticipantB},
		CreatedAt:            data.CreatedAt,
		LastMessageText:      data.LastMessageText,
		LastMessageTimestamp: data.LastMessageTimestamp,
	}
}

func fromRoomDomain(room *entity.ChatRoom) *model.ChatRoomModel {
	first, second := orderPair(room.ParticipantIDs[0], room.ParticipantIDs[1])

	return &model.ChatRoomModel{
		ID:                   room.ID,
		ParticipantA:         first,
		ParticipantB:         second,
		CreatedAt:            room.CreatedAt,
		LastMessageText:      room.LastMessageText,
		LastMessageTimestamp: room.LastMessageTimestamp,
	}
}

func toMessageDomain(data *model.ChatMessageModel) *entity.ChatMessage {
	return &entity.ChatMessage{
		ID:         data.ID,
		ChatRoomID: data.ChatRoomID,
		SenderID:   data.SenderID,
		Content:    data.Content,
		CreatedAt:  data.CreatedAt,
	}
}

func fromMessageDomain(message *entity.ChatMessage) *model.ChatMessageModel {
	return &model.ChatMessageModel{
		ID:         message.ID,
		ChatRoomID: message.ChatRoomID,
		SenderID:   message.SenderID,
		Content:    message.Content,
		CreatedAt:  message.CreatedAt,
	}
}
