package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/store"
	"github.com/MKhiriev/warm-whisper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.ChatRepository
// ─────────────────────────────────────────────

type mockChatRepository struct {
	upsertFn func(ctx context.Context, chat models.Chat) (models.Chat, bool, error)
	listFn   func(ctx context.Context, email string) ([]models.Chat, error)
	findFn   func(ctx context.Context, email, sessionID string) (models.Chat, error)
}

func (m *mockChatRepository) UpsertChat(ctx context.Context, chat models.Chat) (models.Chat, bool, error) {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, chat)
	}
	return chat, false, nil
}

func (m *mockChatRepository) ListChatsByEmail(ctx context.Context, email string) ([]models.Chat, error) {
	if m.listFn != nil {
		return m.listFn(ctx, email)
	}
	return nil, nil
}

func (m *mockChatRepository) FindChat(ctx context.Context, email, sessionID string) (models.Chat, error) {
	if m.findFn != nil {
		return m.findFn(ctx, email, sessionID)
	}
	return models.Chat{}, nil
}

func newTestChatService(repo store.ChatRepository) ChatService {
	return NewChatService(repo, logger.Nop())
}

func TestSaveChat_Created(t *testing.T) {
	repo := &mockChatRepository{
		upsertFn: func(_ context.Context, chat models.Chat) (models.Chat, bool, error) {
			chat.SavedAt = time.Now()
			return chat, true, nil
		},
	}
	svc := newTestChatService(repo)

	saved, created, err := svc.SaveChat(context.Background(), models.Chat{
		Email:     "a@x.com",
		SessionID: "s1",
		Messages:  []models.Message{models.UserMessage("hi")},
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, saved.SavedAt.IsZero())
}

func TestSaveChat_Updated(t *testing.T) {
	repo := &mockChatRepository{
		upsertFn: func(_ context.Context, chat models.Chat) (models.Chat, bool, error) {
			return chat, false, nil
		},
	}
	svc := newTestChatService(repo)

	_, created, err := svc.SaveChat(context.Background(), models.Chat{
		Email:     "a@x.com",
		SessionID: "s1",
		Messages:  []models.Message{models.UserMessage("hi"), models.BotMessage("hello")},
	})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestSaveChat_EmptyMessagesIsNoOp(t *testing.T) {
	repo := &mockChatRepository{
		upsertFn: func(_ context.Context, _ models.Chat) (models.Chat, bool, error) {
			t.Fatal("store must not be touched for an empty transcript")
			return models.Chat{}, false, nil
		},
	}
	svc := newTestChatService(repo)

	_, created, err := svc.SaveChat(context.Background(), models.Chat{Email: "a@x.com", SessionID: "s1"})
	require.NoError(t, err)
	assert.False(t, created)
}

func TestSaveChat_MissingKey(t *testing.T) {
	svc := newTestChatService(&mockChatRepository{})

	_, _, err := svc.SaveChat(context.Background(), models.Chat{SessionID: "s1"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	_, _, err = svc.SaveChat(context.Background(), models.Chat{Email: "a@x.com"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestListChats_PassesThroughOrder(t *testing.T) {
	t3 := time.Now()
	t2 := t3.Add(-time.Hour)
	t1 := t2.Add(-time.Hour)
	repo := &mockChatRepository{
		listFn: func(_ context.Context, _ string) ([]models.Chat, error) {
			return []models.Chat{
				{SessionID: "s3", SavedAt: t3},
				{SessionID: "s2", SavedAt: t2},
				{SessionID: "s1", SavedAt: t1},
			}, nil
		},
	}
	svc := newTestChatService(repo)

	chats, err := svc.ListChats(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, chats, 3)
	assert.Equal(t, "s3", chats[0].SessionID)
	assert.Equal(t, "s1", chats[2].SessionID)
}

func TestListChats_NoHistory(t *testing.T) {
	repo := &mockChatRepository{
		listFn: func(_ context.Context, _ string) ([]models.Chat, error) {
			return nil, store.ErrChatNotFound
		},
	}
	svc := newTestChatService(repo)

	_, err := svc.ListChats(context.Background(), "a@x.com")
	require.ErrorIs(t, err, store.ErrChatNotFound)
}

func TestGetChat_NotFound(t *testing.T) {
	repo := &mockChatRepository{
		findFn: func(_ context.Context, _, _ string) (models.Chat, error) {
			return models.Chat{}, store.ErrChatNotFound
		},
	}
	svc := newTestChatService(repo)

	_, err := svc.GetChat(context.Background(), "a@x.com", "absent")
	require.ErrorIs(t, err, store.ErrChatNotFound)
}
