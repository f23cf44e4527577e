// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/warm-whisper/models"
)

// Local query builders. SQLite uses `?` placeholders, squirrel's default.

func buildSaveSessionQuery(_ context.Context, session models.LocalSession) (string, []any, error) {
	return sq.Insert("session").
		Columns("email", "session_id", "token", "saved_at").
		Values(session.Email, session.SessionID, session.Token, session.SavedAt).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			session_id = excluded.session_id,
			token      = excluded.token,
			saved_at   = excluded.saved_at`).
		ToSql()
}

func buildRestoreSessionQuery(_ context.Context) (string, []any, error) {
	return sq.Select("email", "session_id", "token", "saved_at").
		From("session").
		OrderBy("saved_at DESC").
		Limit(1).
		ToSql()
}

func buildClearSessionQuery(_ context.Context, email string) (string, []any, error) {
	return sq.Delete("session").
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSaveDraftQuery(_ context.Context, chat models.Chat, encoded []byte, now time.Time) (string, []any, error) {
	return sq.Insert("drafts").
		Columns("email", "session_id", "messages", "updated_at").
		Values(chat.Email, chat.SessionID, string(encoded), now).
		Suffix(`ON CONFLICT (email, session_id) DO UPDATE SET
			messages   = excluded.messages,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildLoadDraftQuery(_ context.Context, email, sessionID string) (string, []any, error) {
	return sq.Select("email", "session_id", "messages", "updated_at").
		From("drafts").
		Where(sq.Eq{"email": email, "session_id": sessionID}).
		ToSql()
}

func buildDeleteDraftQuery(_ context.Context, email, sessionID string) (string, []any, error) {
	return sq.Delete("drafts").
		Where(sq.Eq{"email": email, "session_id": sessionID}).
		ToSql()
}
