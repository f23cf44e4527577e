package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/warm-whisper/internal/adapter"
	"github.com/MKhiriev/warm-whisper/internal/agent"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/store"
	"github.com/MKhiriev/warm-whisper/models"
)

type conversationService struct {
	agent        agent.Client
	adapter      adapter.ServerAdapter
	sessionStore store.SessionStore

	logger *logger.Logger
}

func NewConversationService(agentClient agent.Client, serverAdapter adapter.ServerAdapter, sessionStore store.SessionStore, logger *logger.Logger) ConversationService {
	return &conversationService{
		agent:        agentClient,
		adapter:      serverAdapter,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

// Exchange implements [ConversationService]. The user's utterance is part of
// the transcript even when the agent only manages a fallback reply.
func (c *conversationService) Exchange(ctx context.Context, chat models.Chat, text string) models.Chat {
	chat.Messages = append(chat.Messages, models.UserMessage(text))

	replies := c.agent.Send(ctx, chat.Email, text)
	chat.Messages = append(chat.Messages, replies...)

	return chat
}

// Persist implements [ConversationService].
func (c *conversationService) Persist(ctx context.Context, chat models.Chat) (bool, error) {
	if len(chat.Messages) == 0 {
		return false, nil
	}

	created, err := c.adapter.SaveChat(ctx, chat)
	if err != nil {
		return false, fmt.Errorf("save transcript: %w", err)
	}

	// The uploaded copy supersedes the draft.
	if err = c.sessionStore.DeleteDraft(ctx, chat.Email, chat.SessionID); err != nil {
		c.logger.Warn().Err(err).Str("func", "*conversationService.Persist").Msg("failed to delete local draft")
	}

	return created, nil
}

// Draft implements [ConversationService].
func (c *conversationService) Draft(ctx context.Context, chat models.Chat) error {
	if len(chat.Messages) == 0 {
		return nil
	}

	if err := c.sessionStore.SaveDraft(ctx, chat); err != nil {
		return fmt.Errorf("draft transcript: %w", err)
	}
	return nil
}

// History implements [ConversationService].
func (c *conversationService) History(ctx context.Context, email string) ([]models.Chat, error) {
	chats, err := c.adapter.ListChats(ctx, email)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return nil, ErrNoChatHistory
		}
		return nil, fmt.Errorf("list transcripts: %w", err)
	}
	return chats, nil
}
