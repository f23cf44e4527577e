// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"dario.cat/mergo"
)

// Default values applied to the client config when no source sets them.
const (
	defaultServerBaseURL    = "http://localhost:5000"
	defaultAgentWebhookURL  = "http://localhost:5005/webhooks/rest/webhook"
	defaultClientDSN        = "warm-whisper-client.db"
	defaultRequestTimeout   = 15 * time.Second
	defaultAutosaveInterval = 30 * time.Second
)

// DefaultWelcomeMessage opens every fresh chat session. The persona text
// comes from the original web client.
const DefaultWelcomeMessage = "Hi, I'm Tom, your personal assistant. I'm here to listen whenever you feel like talking."

// ClientConfig is the top-level configuration for the chat client binary.
type ClientConfig struct {
	// Adapter configures the HTTP connection to the warm-whisper backend.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Agent configures the direct connection to the conversational agent.
	// The client talks to the agent itself, exactly like the original
	// browser frontend did.
	Agent Agent `envPrefix:"AGENT_"`

	// Storage configures the local SQLite database that replaces the
	// browser's localStorage (session handle, transcript drafts).
	Storage ClientStorage `envPrefix:"STORAGE_"`

	// Workers configures the background transcript autosave job.
	Workers ClientWorkers `envPrefix:"WORKERS_"`

	// App holds presentation-level settings.
	App ClientApp `envPrefix:"APP_"`
}

// ClientAdapter holds network settings for the backend connection.
type ClientAdapter struct {
	// BaseURL is the root URL of the warm-whisper backend.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single backend call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientStorage holds local persistence settings.
type ClientStorage struct {
	// DSN is the path of the local SQLite database file.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// ClientWorkers holds background job settings.
type ClientWorkers struct {
	// AutosaveInterval is how often the in-progress transcript is drafted
	// to the local store while a chat is open.
	// Env: WORKERS_AUTOSAVE_INTERVAL
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL"`
}

// ClientApp holds presentation-level client settings.
type ClientApp struct {
	// WelcomeMessage overrides the bot utterance opening a fresh session.
	// Env: APP_WELCOME_MESSAGE
	WelcomeMessage string `env:"WELCOME_MESSAGE"`
}

// GetClientConfig loads the chat-client configuration from environment
// variables and fills the gaps with defaults, so the client starts with
// zero configuration against a local backend and agent.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	defaults := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        defaultServerBaseURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Agent: Agent{
			WebhookURL:     defaultAgentWebhookURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Storage: ClientStorage{DSN: defaultClientDSN},
		Workers: ClientWorkers{AutosaveInterval: defaultAutosaveInterval},
		App:     ClientApp{WelcomeMessage: DefaultWelcomeMessage},
	}
	if err := mergo.Merge(cfg, defaults); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
