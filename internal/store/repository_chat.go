package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/models"
)

// chatRepository is the PostgreSQL-backed implementation of [ChatRepository].
// One row per (email, session_id); the unique constraint plus the atomic
// ON CONFLICT upsert make concurrent saves to the same key last-write-wins
// without a read-modify-write window.
type chatRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewChatRepository constructs a [ChatRepository] backed by the provided
// database connection and logger.
func NewChatRepository(db *DB, logger *logger.Logger) ChatRepository {
	logger.Debug().Msg("creating chat repository")
	return &chatRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertChat inserts the transcript or overwrites the stored message list
// wholesale, refreshing saved_at in the same statement. A transient
// (retryable) driver failure is retried once before giving up.
func (r *chatRepository) UpsertChat(ctx context.Context, chat models.Chat) (models.Chat, bool, error) {
	log := logger.FromContext(ctx)

	encoded, err := json.Marshal(chat.Messages)
	if err != nil {
		log.Err(err).Str("func", "*chatRepository.UpsertChat").Msg("error: messages not encodable")
		return models.Chat{}, false, fmt.Errorf("%w: %w", ErrEncodingMessages, err)
	}

	saved, created, err := r.upsertOnce(ctx, chat, encoded)
	if err != nil && r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		log.Warn().Str("func", "*chatRepository.UpsertChat").Msg("retrying upsert after transient error")
		saved, created, err = r.upsertOnce(ctx, chat, encoded)
	}
	if err != nil {
		log.Err(err).Str("func", "*chatRepository.UpsertChat").Msg("error: upsert failed")
		return models.Chat{}, false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, created, nil
}

func (r *chatRepository) upsertOnce(ctx context.Context, chat models.Chat, encoded []byte) (models.Chat, bool, error) {
	row := r.db.QueryRowContext(ctx, upsertChat, chat.Email, chat.SessionID, encoded)
	if err := row.Err(); err != nil {
		return models.Chat{}, false, err
	}

	saved := models.Chat{
		Email:     chat.Email,
		SessionID: chat.SessionID,
		Messages:  chat.Messages,
	}

	var created bool
	if err := row.Scan(&saved.ChatID, &saved.SavedAt, &created); err != nil {
		return models.Chat{}, false, err
	}

	return saved, created, nil
}

// ListChatsByEmail returns every transcript of the user, most recently
// saved first. An empty result set is reported as [ErrChatNotFound] so the
// API layer can answer "no chat history found".
func (r *chatRepository) ListChatsByEmail(ctx context.Context, email string) ([]models.Chat, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listChatsByEmail, email)
	if err != nil {
		log.Err(err).Str("func", "*chatRepository.ListChatsByEmail").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var chats []models.Chat
	for rows.Next() {
		chat, err := scanChat(rows)
		if err != nil {
			log.Err(err).Str("func", "*chatRepository.ListChatsByEmail").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		chats = append(chats, chat)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*chatRepository.ListChatsByEmail").Msg("error: iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(chats) == 0 {
		return nil, ErrChatNotFound
	}

	return chats, nil
}

// FindChat returns the transcript keyed by (email, sessionId), or
// [ErrChatNotFound].
func (r *chatRepository) FindChat(ctx context.Context, email, sessionID string) (models.Chat, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findChat, email, sessionID)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*chatRepository.FindChat").Msg("error: query failed")
		return models.Chat{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	chat, err := scanChat(row)
	if err != nil {
		if isNoRows(err) {
			return models.Chat{}, ErrChatNotFound
		}
		log.Err(err).Str("func", "*chatRepository.FindChat").Msg("error: scanning error")
		return models.Chat{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return chat, nil
}

func scanChat(row rowScanner) (models.Chat, error) {
	var chat models.Chat
	var encoded []byte

	if err := row.Scan(&chat.ChatID, &chat.Email, &chat.SessionID, &encoded, &chat.SavedAt); err != nil {
		return models.Chat{}, err
	}

	if err := json.Unmarshal(encoded, &chat.Messages); err != nil {
		return models.Chat{}, fmt.Errorf("%w: %w", ErrEncodingMessages, err)
	}

	return chat, nil
}
