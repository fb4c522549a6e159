package memstore

import (
	"context"
	"testing"
	"time"

	"inkspot/internal/domain/entity"
	"inkspot/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_EmailUniqueness(t *testing.T) {
	store := New()
	repo := NewAccountRepository(store)
	ctx := context.Background()

	first := &entity.Account{ID: uuid.New(), Role: entity.RoleGeneral, Name: "A", Email: "user@example.com"}
	require.NoError(t, repo.Create(ctx, first))

	dup := &entity.Account{ID: uuid.New(), Role: entity.RoleGeneral, Name: "B", Email: "USER@example.com"}
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	found, err := repo.FindByEmail(ctx, "User@Example.Com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestTattooRepository_NewestFirst(t *testing.T) {
	store := New()
	repo := NewTattooRepository(store)
	ctx := context.Background()

	older := &entity.Tattoo{ID: uuid.New(), ArtistID: uuid.New(), Style: "Blackwork"}
	newer := &entity.Tattoo{ID: uuid.New(), ArtistID: uuid.New(), Style: "Fine Line"}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, newer.ID, all[0].ID)
	assert.Equal(t, older.ID, all[1].ID)
}

func TestTattooRepository_CloneIsolation(t *testing.T) {
	store := New()
	repo := NewTattooRepository(store)
	ctx := context.Background()

	tattoo := &entity.Tattoo{ID: uuid.New(), ArtistID: uuid.New(), Tags: []string{"koi"}}
	require.NoError(t, repo.Create(ctx, tattoo))

	got, err := repo.FindByID(ctx, tattoo.ID)
	require.NoError(t, err)
	got.Tags[0] = "mutated"
	got.Style = "mutated"

	again, err := repo.FindByID(ctx, tattoo.ID)
	require.NoError(t, err)
	assert.Equal(t, "koi", again.Tags[0])
	assert.Empty(t, again.Style)
}

func TestChatRepository_AppendMessageUpdatesPreview(t *testing.T) {
	store := New()
	repo := NewChatRepository(store)
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()
	room := &entity.ChatRoom{ID: uuid.New(), ParticipantIDs: [2]uuid.UUID{a, b}, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateRoom(ctx, room))

	at := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	msg := &entity.ChatMessage{ID: uuid.New(), ChatRoomID: room.ID, SenderID: a, Content: "hello", CreatedAt: at}
	require.NoError(t, repo.AppendMessage(ctx, msg))

	got, err := repo.FindRoomByID(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", got.LastMessageText)
	require.NotNil(t, got.LastMessageTimestamp)
	assert.True(t, got.LastMessageTimestamp.Equal(at))

	messages, err := repo.FindMessagesByRoomID(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].Content)
}

func TestChatRepository_FindRoomByParticipants_UnorderedPair(t *testing.T) {
	store := New()
	repo := NewChatRepository(store)
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()
	room := &entity.ChatRoom{ID: uuid.New(), ParticipantIDs: [2]uuid.UUID{a, b}}
	require.NoError(t, repo.CreateRoom(ctx, room))

	got, err := repo.FindRoomByParticipants(ctx, b, a)
	require.NoError(t, err)
	assert.Equal(t, room.ID, got.ID)

	_, err = repo.FindRoomByParticipants(ctx, a, uuid.New())
	assert.ErrorIs(t, err, repository.ErrChatRoomNotFound)
}

func TestReviewRepository_ExistsByTattooAndReviewer(t *testing.T) {
	store := New()
	repo := NewReviewRepository(store)
	ctx := context.Background()

	tattooID, reviewerID := uuid.New(), uuid.New()
	review := &entity.Review{ID: uuid.New(), TattooID: tattooID, ReviewerID: reviewerID, Rating: 5}
	require.NoError(t, repo.Create(ctx, review))

	exists, err := repo.ExistsByTattooAndReviewer(ctx, tattooID, reviewerID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByTattooAndReviewer(ctx, tattooID, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTattooRepository_DeleteLeavesReviews(t *testing.T) {
	store := New()
	tattoos := NewTattooRepository(store)
	reviews := NewReviewRepository(store)
	ctx := context.Background()

	tattoo := &entity.Tattoo{ID: uuid.New(), ArtistID: uuid.New()}
	require.NoError(t, tattoos.Create(ctx, tattoo))
	review := &entity.Review{ID: uuid.New(), TattooID: tattoo.ID, ReviewerID: uuid.New(), Rating: 4}
	require.NoError(t, reviews.Create(ctx, review))

	require.NoError(t, tattoos.Delete(ctx, tattoo.ID))

	_, err := tattoos.FindByID(ctx, tattoo.ID)
	assert.ErrorIs(t, err, repository.ErrTattooNotFound)

	remaining, err := reviews.FindByTattooID(ctx, tattoo.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestSessionRepository_DeleteUnknownIsNoError(t *testing.T) {
	store := New()
	repo := NewSessionRepository(store)
	ctx := context.Background()

	assert.NoError(t, repo.Delete(ctx, uuid.New()))
}
