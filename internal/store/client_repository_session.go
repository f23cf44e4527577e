package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/models"
)

type sessionStore struct {
	*DB
	logger *logger.Logger
	clock  func() time.Time
}

// NewSessionStore returns the SQLite-backed SessionStore.
func NewSessionStore(db *DB, logger *logger.Logger) SessionStore {
	return &sessionStore{
		DB:     db,
		logger: logger,
		clock:  time.Now,
	}
}

func (s *sessionStore) SaveSession(ctx context.Context, session models.LocalSession) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSessionQuery(ctx, session)
	if err != nil {
		return fmt.Errorf("failed to build save session query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionStore.SaveSession").
			Str("email", session.Email).
			Msg("failed to execute upsert for session handle")
		return fmt.Errorf("failed to save session handle: %w", err)
	}

	return nil
}

func (s *sessionStore) RestoreSession(ctx context.Context) (models.LocalSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRestoreSessionQuery(ctx)
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("failed to build restore session query: %w", err)
	}

	var session models.LocalSession
	row := s.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&session.Email, &session.SessionID, &session.Token, &session.SavedAt)
	if scanErr != nil {
		if isNoRows(scanErr) {
			return models.LocalSession{}, ErrLocalSessionNotFound
		}
		log.Err(scanErr).
			Str("func", "sessionStore.RestoreSession").
			Msg("failed to scan session handle row")
		return models.LocalSession{}, fmt.Errorf("failed to scan session handle row: %w", scanErr)
	}

	return session, nil
}

func (s *sessionStore) ClearSession(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildClearSessionQuery(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to build clear session query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionStore.ClearSession").
			Str("email", email).
			Msg("failed to delete session handle")
		return fmt.Errorf("failed to clear session handle: %w", err)
	}

	return nil
}

func (s *sessionStore) SaveDraft(ctx context.Context, chat models.Chat) error {
	log := logger.FromContext(ctx)

	encoded, err := json.Marshal(chat.Messages)
	if err != nil {
		log.Err(err).
			Str("func", "sessionStore.SaveDraft").
			Str("session_id", chat.SessionID).
			Msg("failed to encode draft messages")
		return fmt.Errorf("%w: %v", ErrEncodingMessages, err)
	}

	query, args, err := buildSaveDraftQuery(ctx, chat, encoded, s.clock().UTC())
	if err != nil {
		return fmt.Errorf("failed to build save draft query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionStore.SaveDraft").
			Str("email", chat.Email).
			Str("session_id", chat.SessionID).
			Msg("failed to execute upsert for transcript draft")
		return fmt.Errorf("failed to save transcript draft: %w", err)
	}

	return nil
}

func (s *sessionStore) LoadDraft(ctx context.Context, email, sessionID string) (models.Chat, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadDraftQuery(ctx, email, sessionID)
	if err != nil {
		return models.Chat{}, fmt.Errorf("failed to build load draft query: %w", err)
	}

	var (
		chat    models.Chat
		raw     []byte
		updated time.Time
	)
	row := s.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(&chat.Email, &chat.SessionID, &raw, &updated)
	if scanErr != nil {
		if isNoRows(scanErr) {
			return models.Chat{}, ErrDraftNotFound
		}
		log.Err(scanErr).
			Str("func", "sessionStore.LoadDraft").
			Str("email", email).
			Str("session_id", sessionID).
			Msg("failed to scan transcript draft row")
		return models.Chat{}, fmt.Errorf("failed to scan transcript draft row: %w", scanErr)
	}

	if err = json.Unmarshal(raw, &chat.Messages); err != nil {
		log.Err(err).
			Str("func", "sessionStore.LoadDraft").
			Str("session_id", sessionID).
			Msg("failed to decode draft messages")
		return models.Chat{}, fmt.Errorf("%w: %v", ErrEncodingMessages, err)
	}
	chat.SavedAt = updated

	return chat, nil
}

func (s *sessionStore) DeleteDraft(ctx context.Context, email, sessionID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDraftQuery(ctx, email, sessionID)
	if err != nil {
		return fmt.Errorf("failed to build delete draft query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionStore.DeleteDraft").
			Str("email", email).
			Str("session_id", sessionID).
			Msg("failed to delete transcript draft")
		return fmt.Errorf("failed to delete transcript draft: %w", err)
	}

	return nil
}
