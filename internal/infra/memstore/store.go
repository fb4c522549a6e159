// Package memstore provides the in-memory persistence layer. All state lives
// in one mutex-guarded Store; every read hands out clones so callers can
// never mutate shared state behind the lock. Ordered collections keep newest
// entries first, matching how the catalog presents them.
package memstore

import (
	"sync"

	"inkspot/internal/domain/entity"

	"github.com/google/uuid"
)

// Store is the single in-memory state container. Repository implementations
// in this package share one Store and its lock.
type Store struct {
	mu sync.RWMutex

	accounts map[uuid.UUID]*entity.Account
	sessions map[uuid.UUID]*entity.Session

	// Ordered collections, newest first.
	artists  []*entity.Artist
	tattoos  []*entity.Tattoo
	events   []*entity.Event
	reviews  []*entity.Review
	payments []*entity.Payment
	rooms    []*entity.ChatRoom

	// Messages per room, append order.
	messages map[uuid.UUID][]*entity.ChatMessage
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		accounts: make(map[uuid.UUID]*entity.Account),
		sessions: make(map[uuid.UUID]*entity.Session),
		messages: make(map[uuid.UUID][]*entity.ChatMessage),
	}
}

func cloneAccount(a *entity.Account) *entity.Account {
	cp := *a

	return &cp
}

func cloneArtist(a *entity.Artist) *entity.Artist {
	cp := *a
	if a.Subscription.ExpiryDate != nil {
		t := *a.Subscription.ExpiryDate
		cp.Subscription.ExpiryDate = &t
	}

	return &cp
}

func cloneTattoo(t *entity.Tattoo) *entity.Tattoo {
	cp := *t
	if len(t.Tags) != 0 {
		cp.Tags = append([]string(nil), t.Tags...)
	}

	return &cp
}

func cloneEvent(e *entity.Event) *entity.Event {
	cp := *e

	return &cp
}

func cloneReview(r *entity.Review) *entity.Review {
	cp := *r

	return &cp
}

func clonePayment(p *entity.Payment) *entity.Payment {
	cp := *p

	return &cp
}

func cloneRoom(r *entity.ChatRoom) *entity.ChatRoom {
	cp := *r
	if r.LastMessageTimestamp != nil {
		t := *r.LastMessageTimestamp
		cp.LastMessageTimestamp = &t
	}

	return &cp
}

func cloneMessage(m *entity.ChatMessage) *entity.ChatMessage {
	cp := *m

	return &cp
}

func cloneSession(s *entity.Session) *entity.Session {
	cp := *s
	cp.LikedTattooIDs = cloneIDSet(s.LikedTattooIDs)
	cp.LikedArtistIDs = cloneIDSet(s.LikedArtistIDs)
	if s.ActiveChatRoomID != nil {
		id := *s.ActiveChatRoomID
		cp.ActiveChatRoomID = &id
	}
	cp.View = cloneViewState(s.View)

	return &cp
}

func cloneIDSet(set map[uuid.UUID]struct{}) map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(set))
	for id := range set {
		out[id] = struct{}{}
	}

	return out
}

func cloneViewState(v entity.ViewState) entity.ViewState {
	cp := v
	cp.Previous = cloneViewPtr(v.Previous)
	cp.SelectedArtistID = cloneIDPtr(v.SelectedArtistID)
	cp.SelectedTattooID = cloneIDPtr(v.SelectedTattooID)
	cp.SelectedEventID = cloneIDPtr(v.SelectedEventID)

	return cp
}

func cloneViewPtr(v *entity.View) *entity.View {
	if v == nil {
		return nil
	}
	cp := *v

	return &cp
}

func cloneIDPtr(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	cp := *id

	return &cp
}

// prepend puts a new element at the head so ordered collections stay newest
// first.
func prepend[T any](items []*T, item *T) []*T {
	out := make([]*T, 0, len(items)+1)
	out = append(out, item)

	return append(out, items...)
}

// remove drops the element at index i, preserving order.
func remove[T any](items []*T, i int) []*T {
	return append(items[:i], items[i+1:]...)
}
