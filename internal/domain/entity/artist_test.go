package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestArtist_IsPremiumAt(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.UTC)

	datePtr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name string
		sub  Subscription
		want bool
	}{
		{
			name: "free tier never premium",
			sub:  Subscription{Tier: TierFree},
			want: false,
		},
		{
			name: "premium tier without expiry is not premium",
			sub:  Subscription{Tier: TierPremium, ExpiryDate: nil},
			want: false,
		},
		{
			name: "expiry yesterday is not premium",
			sub:  Subscription{Tier: TierPremium, ExpiryDate: datePtr(now.AddDate(0, 0, -1))},
			want: false,
		},
		{
			name: "expiry today is still premium",
			sub:  Subscription{Tier: TierPremium, ExpiryDate: datePtr(DateOnly(now))},
			want: true,
		},
		{
			name: "expiry later today is still premium",
			sub:  Subscription{Tier: TierPremium, ExpiryDate: datePtr(now.Add(2 * time.Hour))},
			want: true,
		},
		{
			name: "future expiry is premium",
			sub:  Subscription{Tier: TierPremium, ExpiryDate: datePtr(now.AddDate(0, 1, 0))},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artist := &Artist{Subscription: tt.sub}
			assert.Equal(t, tt.want, artist.IsPremiumAt(now))
		})
	}
}

func TestChatRoom_OtherParticipant(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	room := &ChatRoom{ParticipantIDs: [2]uuid.UUID{a, b}}

	other, ok := room.OtherParticipant(a)
	assert.True(t, ok)
	assert.Equal(t, b, other)

	other, ok = room.OtherParticipant(b)
	assert.True(t, ok)
	assert.Equal(t, a, other)

	_, ok = room.OtherParticipant(uuid.New())
	assert.False(t, ok)
}
