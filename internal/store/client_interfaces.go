package store

import (
	"context"

	"github.com/MKhiriev/warm-whisper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore is the chat client's local persistence contract. It keeps
// the session handle (who is logged in, which chat is open) and a draft of
// the in-progress transcript so an interrupted client can recover work the
// backend never received.
type SessionStore interface {
	// SaveSession inserts or overwrites the session handle for the
	// session's email.
	SaveSession(ctx context.Context, session models.LocalSession) error

	// RestoreSession returns the most recently saved session handle, or
	// ErrLocalSessionNotFound when no one has logged in on this machine.
	RestoreSession(ctx context.Context) (models.LocalSession, error)

	// ClearSession removes the session handle of the given account.
	ClearSession(ctx context.Context, email string) error

	// SaveDraft inserts or overwrites the local transcript draft keyed by
	// (email, sessionId).
	SaveDraft(ctx context.Context, chat models.Chat) error

	// LoadDraft returns the draft for (email, sessionId), or
	// ErrDraftNotFound.
	LoadDraft(ctx context.Context, email, sessionID string) (models.Chat, error)

	// DeleteDraft removes the draft for (email, sessionId). Deleting an
	// absent draft is not an error.
	DeleteDraft(ctx context.Context, email, sessionID string) error
}
