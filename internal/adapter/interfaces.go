// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the warm-whisper server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) speaking the same wire contract the
// original browser frontend used.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/warm-whisper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// warm-whisper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Signup creates a new account from the public user fields plus the
	// plaintext password. Signing up does not log the user in; a Login call
	// must follow. Returns [ErrBadRequest] (wrapped) when the password is too
	// short or the email is already registered.
	Signup(ctx context.Context, user models.User, password string) error

	// Login authenticates the user with email and password. On success it
	// stores the returned bearer token via SetToken and returns the
	// server-side user record, including the LastLogout value the session
	// manager needs to decide between resuming and starting a session.
	// Returns [ErrNotFound] for an unknown email and [ErrUnauthorized] for a
	// wrong password.
	Login(ctx context.Context, email, password string) (models.User, error)

	// FetchUser retrieves the account profile for email. Requires a valid
	// bearer token for the same account.
	FetchUser(ctx context.Context, email string) (models.User, error)

	// RecordLogout stamps the account's last-logout time on the server.
	// Requires a valid bearer token.
	RecordLogout(ctx context.Context, email string) error

	// SaveChat uploads a full transcript. The server upserts by
	// (email, sessionId); created reports whether a new record was inserted
	// rather than an existing one overwritten. Requires a valid bearer token.
	SaveChat(ctx context.Context, chat models.Chat) (created bool, err error)

	// ListChats fetches every saved transcript of the account, most recently
	// saved first. Returns [ErrNotFound] (wrapped) when the account has no
	// history yet. Requires a valid bearer token.
	ListChats(ctx context.Context, email string) ([]models.Chat, error)

	// FetchChat retrieves one transcript by its session id. Returns
	// [ErrNotFound] (wrapped) when no such transcript exists. Requires a
	// valid bearer token.
	FetchChat(ctx context.Context, email, sessionID string) (models.Chat, error)
}
