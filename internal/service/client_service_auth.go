package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/warm-whisper/internal/adapter"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/store"
	"github.com/MKhiriev/warm-whisper/models"
)

type clientAuthService struct {
	sessionStore store.SessionStore
	adapter      adapter.ServerAdapter

	clock  func() time.Time
	logger *logger.Logger
}

func NewClientAuthService(sessionStore store.SessionStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessionStore: sessionStore,
		adapter:      serverAdapter,
		clock:        time.Now,
		logger:       logger,
	}
}

// Signup implements [ClientAuthService].
func (a *clientAuthService) Signup(ctx context.Context, user models.User, password string) error {
	if err := a.adapter.Signup(ctx, user, password); err != nil {
		return fmt.Errorf("%w: %v", ErrSignupOnServer, err)
	}
	return nil
}

// Login implements [ClientAuthService]. The adapter keeps the bearer token;
// the session handle written here lets the next client start skip the login
// screen.
func (a *clientAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	user, err := a.adapter.Login(ctx, email, password)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	session := models.LocalSession{
		Email:   user.Email,
		Token:   a.adapter.Token(),
		SavedAt: a.clock().UTC(),
	}
	if err = a.sessionStore.SaveSession(ctx, session); err != nil {
		// The login itself succeeded; a failed handle write only costs the
		// user a login prompt on the next start.
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.Login").Msg("failed to persist session handle")
	}

	return user, nil
}

// Resume implements [ClientAuthService].
func (a *clientAuthService) Resume(ctx context.Context) (models.LocalSession, error) {
	session, err := a.sessionStore.RestoreSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrLocalSessionNotFound) {
			return models.LocalSession{}, ErrNoLocalSession
		}
		return models.LocalSession{}, fmt.Errorf("restore session handle: %w", err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}

// Account implements [ClientAuthService].
func (a *clientAuthService) Account(ctx context.Context, email string) (models.User, error) {
	user, err := a.adapter.FetchUser(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("fetch account %s: %w", email, err)
	}
	return user, nil
}

// Logout implements [ClientAuthService].
func (a *clientAuthService) Logout(ctx context.Context, email string) error {
	if err := a.adapter.RecordLogout(ctx, email); err != nil {
		a.logger.Warn().Err(err).Str("func", "*clientAuthService.Logout").Msg("failed to record logout on server")
	}

	if err := a.sessionStore.ClearSession(ctx, email); err != nil {
		return fmt.Errorf("clear session handle: %w", err)
	}

	a.adapter.SetToken("")
	return nil
}
