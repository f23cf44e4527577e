package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/warm-whisper/internal/config"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/service"
	"github.com/MKhiriev/warm-whisper/internal/tui"
	"github.com/MKhiriev/warm-whisper/models"
)

type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  config.ClientWorkers

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, workersCfg config.ClientWorkers, logger *logger.Logger) *App {
	return &App{services: services, ui: ui, workers: workersCfg, logger: logger}
}

// Run implements [Client]. It authenticates the user (resuming the stored
// local session when possible), opens the right conversation, and keeps the
// chat screen alive until logout or quit. After a logout the flow restarts at
// the login screen.
func (a *App) Run() error {
	ctx := context.Background()

	user, err := a.authenticate(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	chat, err := a.services.SessionService.StartOrResume(ctx, user)
	if err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	a.services.AutosaveJob.Start(ctx, a.workers.AutosaveInterval, a.ui.Snapshot)
	defer a.services.AutosaveJob.Stop()

	logout, final, err := a.ui.ChatLoop(ctx, user, chat)
	if err != nil {
		return err
	}

	if !logout {
		// Quit without logout keeps the session resumable; the transcript
		// still must not be lost.
		if _, err = a.services.ConversationService.Persist(ctx, final); err != nil {
			a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("failed to upload transcript, keeping local draft")
			if err = a.services.ConversationService.Draft(ctx, final); err != nil {
				return fmt.Errorf("preserve transcript: %w", err)
			}
		}
		return nil
	}

	a.services.AutosaveJob.Stop()
	return a.Run()
}

// authenticate resumes the stored session when its token is still accepted by
// the server, and falls back to the interactive login flow otherwise.
func (a *App) authenticate(ctx context.Context) (models.User, error) {
	session, err := a.services.AuthService.Resume(ctx)
	if err == nil {
		user, accountErr := a.services.AuthService.Account(ctx, session.Email)
		if accountErr == nil {
			return user, nil
		}
		a.logger.Debug().Err(accountErr).Msg("stored session rejected, falling back to login screen")
	} else if !errors.Is(err, service.ErrNoLocalSession) {
		a.logger.Warn().Err(err).Str("func", "*App.authenticate").Msg("failed to restore local session")
	}

	return a.ui.LoginFlow(ctx)
}
