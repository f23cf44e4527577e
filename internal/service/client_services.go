package service

import (
	"github.com/MKhiriev/warm-whisper/internal/adapter"
	"github.com/MKhiriev/warm-whisper/internal/agent"
	"github.com/MKhiriev/warm-whisper/internal/config"
	"github.com/MKhiriev/warm-whisper/internal/logger"
	"github.com/MKhiriev/warm-whisper/internal/store"
)

type ClientServices struct {
	AuthService         ClientAuthService
	SessionService      SessionService
	ConversationService ConversationService
	AutosaveJob         AutosaveJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, agentClient agent.Client, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	conversationSvc := NewConversationService(agentClient, serverAdapter, localStore.SessionStore, logger)

	return &ClientServices{
		AuthService:         NewClientAuthService(localStore.SessionStore, serverAdapter, logger),
		SessionService:      NewSessionService(localStore.SessionStore, serverAdapter, cfg.WelcomeMessage, logger),
		ConversationService: conversationSvc,
		AutosaveJob:         NewAutosaveJob(conversationSvc),
	}
}
