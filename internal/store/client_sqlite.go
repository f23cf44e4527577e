package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/warm-whisper/internal/config"
	"github.com/MKhiriev/warm-whisper/internal/logger"
)

// Client-side sentinel errors.
var (
	// ErrLocalSessionNotFound is returned when no session handle has ever
	// been stored on this machine.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrDraftNotFound is returned when no transcript draft exists for the
	// requested (email, sessionId) key.
	ErrDraftNotFound = errors.New("transcript draft not found")
)

const clientSchema = `
CREATE TABLE IF NOT EXISTS session (
    email      TEXT PRIMARY KEY,
    session_id TEXT NOT NULL,
    token      TEXT NOT NULL,
    saved_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS drafts (
    email      TEXT NOT NULL,
    session_id TEXT NOT NULL,
    messages   TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    PRIMARY KEY (email, session_id)
);`

// NewConnectSQLite opens (creating if needed) the client's local SQLite
// database and bootstraps its schema.
func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, clientSchema); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error bootstrapping schema")
		return nil, fmt.Errorf("error bootstrapping local schema: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to local database successfully")

	return &DB{
		DB:     conn,
		logger: log,
	}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
