package store

import (
	"context"

	"github.com/MKhiriev/warm-whisper/models"
)

// UserRepository is the persistence contract of the account store.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Duplicate email yields ErrEmailAlreadyRegistered.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account identified by email, or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdateLastLogin overwrites the last_login timestamp string of the
	// account. Missing account yields ErrNoUserWasFound.
	UpdateLastLogin(ctx context.Context, email string, at string) error

	// UpdateLastLogout overwrites the last_logout timestamp string of the
	// account. Missing account yields ErrNoUserWasFound.
	UpdateLastLogout(ctx context.Context, email string, at string) error
}

// ChatRepository is the persistence contract of the transcript store.
// It enforces the one-transcript-per-(email, sessionId) invariant through
// a single atomic upsert.
type ChatRepository interface {
	// UpsertChat inserts or fully overwrites the transcript keyed by
	// (email, sessionId), refreshing saved_at. Concurrent writers to the
	// same key resolve last-write-wins. The created flag reports whether a
	// new row was inserted (true) or an existing one overwritten (false).
	UpsertChat(ctx context.Context, chat models.Chat) (saved models.Chat, created bool, err error)

	// ListChatsByEmail returns every transcript of the user ordered by
	// saved_at descending. No transcripts at all yields ErrChatNotFound.
	ListChatsByEmail(ctx context.Context, email string) ([]models.Chat, error)

	// FindChat returns the single transcript keyed by (email, sessionId),
	// or ErrChatNotFound.
	FindChat(ctx context.Context, email, sessionID string) (models.Chat, error)
}
