package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/models"
)

func newTestChatRepo(t *testing.T) (*chatRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &chatRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func encodeMessages(t *testing.T, msgs []models.Message) []byte {
	t.Helper()
	b, err := json.Marshal(msgs)
	if err != nil {
		t.Fatalf("failed to encode messages: %v", err)
	}
	return b
}

func chatColumns() []string {
	return []string{"chat_id", "email", "session_id", "messages", "saved_at"}
}

func TestUpsertChat_Created(t *testing.T) {
	repo, mock, db := newTestChatRepo(t)
	defer db.Close()

	msgs := []models.Message{models.UserMessage("hi")}
	now := time.Now()

	mock.ExpectQuery("INSERT INTO chats").
		WithArgs("a@x.com", "s1", encodeMessages(t, msgs)).
		WillReturnRows(sqlmock.NewRows([]string{"chat_id", "saved_at", "inserted"}).AddRow(1, now, true))

	saved, created, err := repo.UpsertChat(context.Background(), models.Chat{
		Email:     "a@x.com",
		SessionID: "s1",
		Messages:  msgs,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Error("expected created=true for first save")
	}
	if saved.ChatID != 1 || !saved.SavedAt.Equal(now) {
		t.Errorf("wrong saved chat: %+v", saved)
	}
}

func TestUpsertChat_OverwritesExisting(t *testing.T) {
	repo, mock, db := newTestChatRepo(t)
	defer db.Close()

	msgs := []models.Message{models.UserMessage("hi"), models.BotMessage("hello")}

	mock.ExpectQuery("INSERT INTO chats").
		WithArgs("a@x.com", "s1", encodeMessages(t, msgs)).
		WillReturnRows(sqlmock.NewRows([]string{"chat_id", "saved_at", "inserted"}).AddRow(1, time.Now(), false))

	saved, created, err := repo.UpsertChat(context.Background(), models.Chat{
		Email:     "a@x.com",
		SessionID: "s1",
		Messages:  msgs,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Error("expected created=false for second save of same key")
	}
	if len(saved.Messages) != 2 {
		t.Errorf("expected latest message sequence to be kept, got %d messages", len(saved.Messages))
	}
}

func TestUpsertChat_RetriesTransientError(t *testing.T) {
	repo, mock, db := newTestChatRepo(t)
	defer db.Close()

	msgs := []models.Message{models.UserMessage("hi")}

	mock.ExpectQuery("INSERT INTO chats").
		WillReturnError(pgError("40001")) // serialization failure
	mock.ExpectQuery("INSERT INTO chats").
		WillReturnRows(sqlmock.NewRows([]string{"chat_id", "saved_at", "inserted"}).AddRow(1, time.Now(), true))

	_, created, err := repo.UpsertChat(context.Background(), models.Chat{
		Email:     "a@x.com",
		SessionID: "s1",
		Messages:  msgs,
	})
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if !created {
		t.Error("expected created=true after retry")
	}
}

func TestUpsertChat_NonRetryableErrorFails(t *testing.T) {
	repo, mock, db := newTestChatRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO chats").
		WillReturnError(errors.New("boom"))

	_, _, err := repo.UpsertChat(context.Background(), models.Chat{
		Email:     "a@x.com",
		SessionID: "s1",
		Messages:  []models.Message{models.UserMessage("hi")},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestListChatsByEmail_OrderPreserved(t *testing.T) {
	repo, mock, db := newTestChatRepo(t)
	defer db.Close()

	t3 := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
	t2 := t3.Add(-time.Hour)
	t1 := t3.Add(-2 * time.Hour)

	rows := sqlmock.NewRows(chatColumns()).
		AddRow(3, "a@x.com", "s3", encodeMessages(t, []models.Message{models.UserMessage("three")}), t3).
		AddRow(2, "a@x.com", "s2", encodeMessages(t, []models.Message{models.UserMessage("two")}), t2).
		AddRow(1, "a@x.com", "s1", encodeMessages(t, []models.Message{models.UserMessage("one")}), t1)

	mock.ExpectQuery("SELECT (.+) FROM chats").
		WithArgs("a@x.com").
		WillReturnRows(rows)

	chats, err := repo.ListChatsByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chats) != 3 {
		t.Fatalf("expected 3 chats, got %d", len(chats))
	}
	if chats[0].SessionID != "s3" || chats[1].SessionID != "s2" || chats[2].SessionID != "s1" {
		t.Errorf("expected [s3 s2 s1] order, got [%s %s %s]",
			chats[0].SessionID, chats[1].SessionID, chats[2].SessionID)
	}
}

func TestListChatsByEmail_Empty(t *testing.T) {
	repo, mock, db := newTestChatRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM chats").
		WithArgs("ghost@x.com").
		WillReturnRows(sqlmock.NewRows(chatColumns()))

	_, err := repo.ListChatsByEmail(context.Background(), "ghost@x.com")
	if !errors.Is(err, ErrChatNotFound) {
		t.Fatalf("expected ErrChatNotFound, got %v", err)
	}
}

func TestFindChat_Success(t *testing.T) {
	repo, mock, db := newTestChatRepo(t)
	defer db.Close()

	msgs := []models.Message{models.UserMessage("hi"), models.BotMessage("hello")}
	rows := sqlmock.NewRows(chatColumns()).
		AddRow(1, "a@x.com", "s1", encodeMessages(t, msgs), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM chats").
		WithArgs("a@x.com", "s1").
		WillReturnRows(rows)

	chat, err := repo.FindChat(context.Background(), "a@x.com", "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chat.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(chat.Messages))
	}
	if chat.Messages[0].From != models.RoleUser || chat.Messages[1].From != models.RoleBot {
		t.Error("message order/roles not preserved on load")
	}
}

func TestFindChat_NotFound(t *testing.T) {
	repo, mock, db := newTestChatRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM chats").
		WithArgs("a@x.com", "missing").
		WillReturnRows(sqlmock.NewRows(chatColumns()))

	_, err := repo.FindChat(context.Background(), "a@x.com", "missing")
	if !errors.Is(err, ErrChatNotFound) {
		t.Fatalf("expected ErrChatNotFound, got %v", err)
	}
}

func TestFindChat_CorruptMessagesColumn(t *testing.T) {
	repo, mock, db := newTestChatRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(chatColumns()).
		AddRow(1, "a@x.com", "s1", []byte(`{"not":"an array"`), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM chats").
		WithArgs("a@x.com", "s1").
		WillReturnRows(rows)

	_, err := repo.FindChat(context.Background(), "a@x.com", "s1")
	if !errors.Is(err, ErrEncodingMessages) {
		t.Fatalf("expected ErrEncodingMessages, got %v", err)
	}
}
