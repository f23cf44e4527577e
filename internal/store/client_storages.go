package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/warm-whisper/internal/config"
	"github.com/MKhiriev/warm-whisper/internal/logger"
)

// ClientStorages groups the chat client's local repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// SessionStore is the SQLite-backed store for the session handle and
	// transcript drafts.
	SessionStore SessionStore
}

// NewClientStorages initialises the client storage layer: it opens (and if
// needed creates) the local SQLite file at cfg.DSN, bootstraps the schema
// and wires a fresh [SessionStore].
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating local storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		SessionStore: NewSessionStore(db, logger),
	}, nil
}
