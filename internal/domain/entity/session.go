package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side state of one authenticated (or browsing)
// client: who is logged in, where they are in the view state machine, their
// liked sets and the gating state of the notification pipeline. Liked sets
// live here because they are scoped to the session, not persisted.
type Session struct {
	ID        uuid.UUID `json:"id"`         // The unique identifier for the session; the JWT subject.
	AccountID uuid.UUID `json:"account_id"` // The authenticated account.
	Role      Role      `json:"role"`       // Role of the authenticated account.
	CreatedAt time.Time `json:"created_at"` // Timestamp of login.

	View ViewState `json:"view"` // Navigation state machine.

	LikedTattooIDs map[uuid.UUID]struct{} `json:"-"` // Liked tattoo ids, toggle semantics.
	LikedArtistIDs map[uuid.UUID]struct{} `json:"-"` // Liked artist ids, toggle semantics.

	ActiveChatRoomID *uuid.UUID `json:"active_chat_room_id,omitempty"` // The one open chat room, if any.

	// Notification gating state.
	HasInteracted bool `json:"has_interacted"` // One-time latch; sound only plays after the first gesture.
	NotifyGranted bool `json:"notify_granted"` // System notification permission.
	Foreground    bool `json:"foreground"`     // Whether the client tab is focused.
}

// NewSession creates a fresh session for an account.
func NewSession(account *Account) *Session {
	return &Session{
		ID:             uuid.New(),
		AccountID:      account.ID,
		Role:           account.Role,
		CreatedAt:      time.Now(),
		View:           NewViewState(),
		LikedTattooIDs: make(map[uuid.UUID]struct{}),
		LikedArtistIDs: make(map[uuid.UUID]struct{}),
		Foreground:     true,
	}
}

// ToggleLikedTattoo flips membership of the id in the liked-tattoo set.
func (s *Session) ToggleLikedTattoo(id uuid.UUID) {
	toggle(s.LikedTattooIDs, id)
}

// ToggleLikedArtist flips membership of the id in the liked-artist set.
func (s *Session) ToggleLikedArtist(id uuid.UUID) {
	toggle(s.LikedArtistIDs, id)
}

func toggle(set map[uuid.UUID]struct{}, id uuid.UUID) {
	if _, ok := set[id]; ok {
		delete(set, id)
	} else {
		set[id] = struct{}{}
	}
}
