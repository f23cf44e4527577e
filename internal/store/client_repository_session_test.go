package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/models"
)

func newTestSessionStore(t *testing.T, clock func() time.Time) (*sessionStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	if clock == nil {
		clock = time.Now
	}
	s := &sessionStore{
		DB:     &DB{DB: db, logger: l},
		logger: l,
		clock:  clock,
	}
	return s, mock, db
}

func TestSaveSession_Upserts(t *testing.T) {
	s, mock, db := newTestSessionStore(t, nil)
	defer db.Close()

	savedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO session").
		WithArgs("nick@mail.com", "s-1", "jwt-token", savedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.SaveSession(context.Background(), models.LocalSession{
		Email:     "nick@mail.com",
		SessionID: "s-1",
		Token:     "jwt-token",
		SavedAt:   savedAt,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRestoreSession_ReturnsMostRecent(t *testing.T) {
	s, mock, db := newTestSessionStore(t, nil)
	defer db.Close()

	savedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT email, session_id, token, saved_at FROM session").
		WillReturnRows(sqlmock.NewRows([]string{"email", "session_id", "token", "saved_at"}).
			AddRow("nick@mail.com", "s-2", "jwt-token", savedAt))

	session, err := s.RestoreSession(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Email != "nick@mail.com" || session.SessionID != "s-2" || session.Token != "jwt-token" {
		t.Fatalf("unexpected session: %+v", session)
	}
}

func TestRestoreSession_Empty(t *testing.T) {
	s, mock, db := newTestSessionStore(t, nil)
	defer db.Close()

	mock.ExpectQuery("SELECT email, session_id, token, saved_at FROM session").
		WillReturnError(sql.ErrNoRows)

	_, err := s.RestoreSession(context.Background())
	if !errors.Is(err, ErrLocalSessionNotFound) {
		t.Fatalf("expected ErrLocalSessionNotFound, got %v", err)
	}
}

func TestClearSession(t *testing.T) {
	s, mock, db := newTestSessionStore(t, nil)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session").
		WithArgs("nick@mail.com").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.ClearSession(context.Background(), "nick@mail.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveDraft_EncodesMessages(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	s, mock, db := newTestSessionStore(t, func() time.Time { return now })
	defer db.Close()

	msgs := []models.Message{models.BotMessage("hello"), models.UserMessage("hi")}

	mock.ExpectExec("INSERT INTO drafts").
		WithArgs("nick@mail.com", "s-1", string(encodeMessages(t, msgs)), now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.SaveDraft(context.Background(), models.Chat{
		Email:     "nick@mail.com",
		SessionID: "s-1",
		Messages:  msgs,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoadDraft_RoundTrip(t *testing.T) {
	s, mock, db := newTestSessionStore(t, nil)
	defer db.Close()

	updated := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	raw := `[{"bot":"hello"},{"user":"hi"}]`

	mock.ExpectQuery("SELECT email, session_id, messages, updated_at FROM drafts").
		WithArgs("nick@mail.com", "s-1").
		WillReturnRows(sqlmock.NewRows([]string{"email", "session_id", "messages", "updated_at"}).
			AddRow("nick@mail.com", "s-1", []byte(raw), updated))

	chat, err := s.LoadDraft(context.Background(), "nick@mail.com", "s-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chat.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(chat.Messages))
	}
	if chat.Messages[0].From != models.RoleBot || chat.Messages[1].From != models.RoleUser {
		t.Fatalf("roles mangled: %+v", chat.Messages)
	}
	if !chat.SavedAt.Equal(updated) {
		t.Fatalf("expected SavedAt %v, got %v", updated, chat.SavedAt)
	}
}

func TestLoadDraft_NotFound(t *testing.T) {
	s, mock, db := newTestSessionStore(t, nil)
	defer db.Close()

	mock.ExpectQuery("SELECT email, session_id, messages, updated_at FROM drafts").
		WithArgs("nick@mail.com", "s-absent").
		WillReturnError(sql.ErrNoRows)

	_, err := s.LoadDraft(context.Background(), "nick@mail.com", "s-absent")
	if !errors.Is(err, ErrDraftNotFound) {
		t.Fatalf("expected ErrDraftNotFound, got %v", err)
	}
}

func TestDeleteDraft_AbsentIsNoError(t *testing.T) {
	s, mock, db := newTestSessionStore(t, nil)
	defer db.Close()

	mock.ExpectExec("DELETE FROM drafts").
		WithArgs("nick@mail.com", "s-gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := s.DeleteDraft(context.Background(), "nick@mail.com", "s-gone"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
