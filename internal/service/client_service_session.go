// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/warm-whisper/internal/adapter"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/store"
	"github.com/MKhiriev/warm-whisper/internal/utils"
	"github.com/MKhiriev/warm-whisper/models"
)

type sessionService struct {
	sessionStore store.SessionStore
	adapter      adapter.ServerAdapter
	uuid         *utils.UUIDGenerator

	welcomeMessage string
	logger         *logger.Logger
}

func NewSessionService(sessionStore store.SessionStore, serverAdapter adapter.ServerAdapter, welcomeMessage string, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionStore:   sessionStore,
		adapter:        serverAdapter,
		uuid:           utils.NewUUIDGenerator(),
		welcomeMessage: welcomeMessage,
		logger:         logger,
	}
}

// StartOrResume implements [SessionService].
func (s *sessionService) StartOrResume(ctx context.Context, user models.User) (models.Chat, error) {
	log := s.logger

	// An account that has never logged out is in its first-ever visit, so
	// there is nothing to resume.
	if !user.HasLoggedOutBefore() {
		return s.newSession(ctx, user.Email), nil
	}

	chats, err := s.adapter.ListChats(ctx, user.Email)
	if err != nil {
		if !errors.Is(err, adapter.ErrNotFound) {
			// Degrade to a fresh conversation instead of blocking the login.
			log.Warn().Err(err).Str("func", "*sessionService.StartOrResume").Msg("failed to fetch chat history, starting fresh")
		}
		return s.newSession(ctx, user.Email), nil
	}
	if len(chats) == 0 {
		return s.newSession(ctx, user.Email), nil
	}

	latest := chats[0]

	// A local draft newer than the uploaded transcript means the previous
	// client run died before its save went through. The draft wins.
	draft, err := s.sessionStore.LoadDraft(ctx, user.Email, latest.SessionID)
	if err == nil && len(draft.Messages) > len(latest.Messages) {
		log.Info().Str("sessionId", latest.SessionID).Msg("recovered transcript draft newer than server copy")
		latest = draft
	}

	s.rememberSession(ctx, user.Email, latest.SessionID)
	return latest, nil
}

// BeginNewSession implements [SessionService].
func (s *sessionService) BeginNewSession(ctx context.Context, current models.Chat) (models.Chat, error) {
	if len(current.Messages) > 0 {
		if _, err := s.adapter.SaveChat(ctx, current); err != nil {
			// Keep the transcript recoverable locally before abandoning it.
			if draftErr := s.sessionStore.SaveDraft(ctx, current); draftErr != nil {
				return models.Chat{}, fmt.Errorf("save current transcript: %w", err)
			}
			s.logger.Warn().Err(err).Str("func", "*sessionService.BeginNewSession").Msg("upload failed, transcript kept as local draft")
		} else {
			_ = s.sessionStore.DeleteDraft(ctx, current.Email, current.SessionID)
		}
	}

	return s.newSession(ctx, current.Email), nil
}

// LoadSession implements [SessionService].
func (s *sessionService) LoadSession(ctx context.Context, email, sessionID string) (models.Chat, error) {
	chat, err := s.adapter.FetchChat(ctx, email, sessionID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return models.Chat{}, ErrSessionNotFound
		}
		return models.Chat{}, fmt.Errorf("fetch session %s: %w", sessionID, err)
	}
	return chat, nil
}

func (s *sessionService) newSession(ctx context.Context, email string) models.Chat {
	chat := models.Chat{
		Email:     email,
		SessionID: s.uuid.Generate(),
		Messages:  []models.Message{models.BotMessage(s.welcomeMessage)},
	}

	s.rememberSession(ctx, email, chat.SessionID)
	return chat
}

// rememberSession stores the open session id in the local handle so the next
// client start lands in the same conversation. Best-effort.
func (s *sessionService) rememberSession(ctx context.Context, email, sessionID string) {
	session, err := s.sessionStore.RestoreSession(ctx)
	if err != nil {
		return
	}
	if session.Email != email {
		return
	}

	session.SessionID = sessionID
	if err = s.sessionStore.SaveSession(ctx, session); err != nil {
		s.logger.Warn().Err(err).Str("func", "*sessionService.rememberSession").Msg("failed to update session handle")
	}
}
