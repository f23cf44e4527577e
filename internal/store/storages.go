package store

import (
	"context"

	"github.com/MKhiriev/warm-whisper/internal/config"
	"github.com/MKhiriev/warm-whisper/internal/logger"
)

// Storages aggregates every server-side repository behind one handle.
type Storages struct {
	UserRepository UserRepository
	ChatRepository ChatRepository
}

// NewStorages connects to PostgreSQL, applies the embedded migrations, and
// wires up the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ChatRepository: NewChatRepository(db, log),
	}, nil
}
