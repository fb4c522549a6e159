package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatRoomModel mirrors the 'chat_rooms' table. The participant pair is
// stored normalized (lexicographically smaller UUID first) so the unique
// index enforces one room per unordered pair.
type ChatRoomModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key"`
	ParticipantA         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_rooms_pair"`
	ParticipantB         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_rooms_pair"`
	CreatedAt            time.Time `gorm:"index"`
	LastMessageText      string    `gorm:"type:text"`
	LastMessageTimestamp *time.Time

	Messages []ChatMessageModel `gorm:"foreignKey:ChatRoomID"`
}

// TableName explicitly sets the table name for GORM.
func (ChatRoomModel) TableName() string {
	return "chat_rooms"
}

// ChatMessageModel mirrors the 'chat_messages' table.
type ChatMessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	ChatRoomID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
