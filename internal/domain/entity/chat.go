package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRoom is a two-party conversation. At most one room exists per
// unordered participant pair; the preview fields mirror the newest message
// and are updated atomically with each append.
type ChatRoom struct {
	ID                   uuid.UUID   `json:"id"`                               // The unique identifier for the room.
	ParticipantIDs       [2]uuid.UUID `json:"participant_ids"`                 // Exactly two participants, order irrelevant.
	CreatedAt            time.Time   `json:"created_at"`                       // Timestamp of room creation.
	LastMessageText      string      `json:"last_message_text,omitempty"`      // Preview of the newest message.
	LastMessageTimestamp *time.Time  `json:"last_message_timestamp,omitempty"` // Timestamp of the newest message.
}

// HasParticipant reports whether the given account is one of the two parties.
func (r *ChatRoom) HasParticipant(id uuid.UUID) bool {
	return r.ParticipantIDs[0] == id || r.ParticipantIDs[1] == id
}

// OtherParticipant returns the counterpart of the given participant.
// The second return is false when the id is not in the room.
func (r *ChatRoom) OtherParticipant(id uuid.UUID) (uuid.UUID, bool) {
	switch id {
	case r.ParticipantIDs[0]:
		return r.ParticipantIDs[1], true
	case r.ParticipantIDs[1]:
		return r.ParticipantIDs[0], true
	default:
		return uuid.Nil, false
	}
}

// ChatMessage is a single append-only message. Ordering is insertion order;
// timestamps are generated at append time.
type ChatMessage struct {
	ID         uuid.UUID `json:"id"`           // The unique identifier for the message.
	ChatRoomID uuid.UUID `json:"chat_room_id"` // Room the message belongs to.
	SenderID   uuid.UUID `json:"sender_id"`    // Account that sent the message.
	Content    string    `json:"content"`      // Message text; never empty after trimming.
	CreatedAt  time.Time `json:"created_at"`   // Timestamp of the append.
}
