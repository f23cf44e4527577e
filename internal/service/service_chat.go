package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/store"
	"github.com/MKhiriev/warm-whisper/models"
)

// chatService is the concrete implementation of ChatService. It fronts the
// transcript store: full-transcript upserts keyed by (email, sessionId) and
// the two read paths the chat client needs.
type chatService struct {
	chatRepository store.ChatRepository
	logger         *logger.Logger
}

func NewChatService(chatRepository store.ChatRepository, logger *logger.Logger) ChatService {
	return &chatService{
		chatRepository: chatRepository,
		logger:         logger,
	}
}

// SaveChat upserts the transcript. An empty message list is a no-op: the
// store is not touched and the chat is returned as-is with created=false.
func (c *chatService) SaveChat(ctx context.Context, chat models.Chat) (models.Chat, bool, error) {
	log := logger.FromContext(ctx)

	if chat.Email == "" || chat.SessionID == "" {
		log.Error().
			Str("email", chat.Email).
			Str("session_id", chat.SessionID).
			Msg("invalid chat data provided")
		return models.Chat{}, false, ErrInvalidDataProvided
	}

	if len(chat.Messages) == 0 {
		log.Debug().
			Str("email", chat.Email).
			Str("session_id", chat.SessionID).
			Msg("empty transcript, skipping save")
		return chat, false, nil
	}

	saved, created, err := c.chatRepository.UpsertChat(ctx, chat)
	if err != nil {
		log.Err(err).
			Str("email", chat.Email).
			Str("session_id", chat.SessionID).
			Msg("transcript save ended with error")
		return models.Chat{}, false, fmt.Errorf("transcript save ended with error: %w", err)
	}

	return saved, created, nil
}

// ListChats returns all transcripts of the user ordered by savedAt
// descending. A user without transcripts yields a wrapped
// store.ErrChatNotFound.
func (c *chatService) ListChats(ctx context.Context, email string) ([]models.Chat, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Msg("invalid chat data provided")
		return nil, ErrInvalidDataProvided
	}

	chats, err := c.chatRepository.ListChatsByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("transcript listing ended with error")
		return nil, fmt.Errorf("transcript listing ended with error: %w", err)
	}

	return chats, nil
}

// GetChat returns the single transcript keyed by (email, sessionId), or a
// wrapped store.ErrChatNotFound.
func (c *chatService) GetChat(ctx context.Context, email, sessionID string) (models.Chat, error) {
	log := logger.FromContext(ctx)

	if email == "" || sessionID == "" {
		log.Error().Msg("invalid chat data provided")
		return models.Chat{}, ErrInvalidDataProvided
	}

	chat, err := c.chatRepository.FindChat(ctx, email, sessionID)
	if err != nil {
		log.Err(err).
			Str("email", email).
			Str("session_id", sessionID).
			Msg("transcript lookup ended with error")
		return models.Chat{}, fmt.Errorf("transcript lookup ended with error: %w", err)
	}

	return chat, nil
}
