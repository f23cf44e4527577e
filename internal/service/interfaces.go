package service

import (
	"context"

	"github.com/MKhiriev/warm-whisper/models"
)

type AuthService interface {
	// Register creates a new account from signup fields. The plaintext
	// password is hashed before it reaches the store.
	Register(ctx context.Context, user models.User, password string) (models.User, error)

	// Login verifies credentials and stamps lastLogin with the server
	// clock on success.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Logout stamps lastLogout with the server clock.
	Logout(ctx context.Context, email string) error

	// GetUser returns the account identified by email.
	GetUser(ctx context.Context, email string) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ChatService interface {
	// SaveChat upserts the full transcript keyed by (email, sessionId).
	// The created flag reports whether a new transcript was inserted.
	// Saving an empty message list is a no-op.
	SaveChat(ctx context.Context, chat models.Chat) (models.Chat, bool, error)

	// ListChats returns all transcripts of the user, newest first.
	ListChats(ctx context.Context, email string) ([]models.Chat, error)

	// GetChat returns the single transcript keyed by (email, sessionId).
	GetChat(ctx context.Context, email, sessionID string) (models.Chat, error)
}
