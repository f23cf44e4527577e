package service

import (
	"context"
	"time"

	"github.com/MKhiriev/warm-whisper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientAuthService defines the client-side contract for account access.
// Implementations talk to the server through the adapter and keep the local
// session handle (the replacement for the browser's localStorage) in sync.
type ClientAuthService interface {
	// Signup creates a new account on the server. Signing up does not log
	// the user in; a Login call must follow.
	Signup(ctx context.Context, user models.User, password string) error

	// Login authenticates against the server, stores the bearer token in the
	// adapter, and persists the local session handle. Returns the account
	// profile including the LastLogout value the session manager needs.
	Login(ctx context.Context, email, password string) (models.User, error)

	// Resume restores the last saved local session handle and re-arms the
	// adapter with its bearer token. Returns ErrNoLocalSession when nobody
	// has logged in on this machine.
	Resume(ctx context.Context) (models.LocalSession, error)

	// Account fetches the account profile for email using the stored bearer
	// token. Used after Resume, when the profile was never seen by this
	// process. Fails when the stored token has expired.
	Account(ctx context.Context, email string) (models.User, error)

	// Logout records the logout time on the server, clears the local session
	// handle, and drops the bearer token. The server call is best-effort:
	// local state is cleared even when the server is unreachable.
	Logout(ctx context.Context, email string) error
}

// SessionService decides which conversation a login lands in and hands out
// fresh session identifiers.
type SessionService interface {
	// StartOrResume returns the transcript the user should see after login.
	// An account that has never logged out gets a brand-new session opened
	// by the welcome message. Anyone else resumes their most recent saved
	// transcript; if a newer local draft of that transcript survives a
	// crash, the draft wins. When history cannot be fetched the user still
	// gets a fresh session rather than an error.
	StartOrResume(ctx context.Context, user models.User) (models.Chat, error)

	// BeginNewSession persists the current transcript (when it has any
	// messages) and opens a fresh session for the same account.
	BeginNewSession(ctx context.Context, current models.Chat) (models.Chat, error)

	// LoadSession fetches one saved transcript by its session id so the
	// user can reread an old conversation. Returns ErrSessionNotFound when
	// no such transcript exists.
	LoadSession(ctx context.Context, email, sessionID string) (models.Chat, error)
}

// ConversationService drives an open chat: message exchange with the agent,
// transcript uploads, and local draft housekeeping.
type ConversationService interface {
	// Exchange appends the user's utterance and the agent's replies to the
	// transcript and returns the grown transcript. The agent gateway is
	// fail-soft, so Exchange always produces at least one bot reply.
	Exchange(ctx context.Context, chat models.Chat, text string) models.Chat

	// Persist uploads the transcript to the server and removes the local
	// draft that backed it. created reports whether the server stored a new
	// record rather than overwriting an existing one. Transcripts without
	// messages are not uploaded.
	Persist(ctx context.Context, chat models.Chat) (created bool, err error)

	// Draft writes the in-progress transcript to the local store so a
	// crashed client can recover it. Empty transcripts are skipped.
	Draft(ctx context.Context, chat models.Chat) error

	// History lists the account's saved transcripts, most recently saved
	// first. Returns ErrNoChatHistory when nothing has been saved yet.
	History(ctx context.Context, email string) ([]models.Chat, error)
}

// AutosaveJob is a background worker that periodically drafts the open
// transcript to the local store.
type AutosaveJob interface {
	// Start launches the background goroutine. Every interval it asks
	// snapshot for the current transcript and drafts it; snapshot returns
	// false when no chat is open. An interval of zero or less defaults to
	// 30 seconds. Any previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration, snapshot func() (models.Chat, bool))

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
