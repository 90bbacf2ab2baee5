// Package sqlitestore persists player snapshots in a local SQLite database,
// one row per player. Useful when the demo runs long enough that a flat
// directory of JSON blobs becomes unwieldy.
package sqlitestore

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/lootvault/vaultsim/internal/domain"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Store implements store.Snapshots on SQLite
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the database and runs pending migrations
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode so a reader polling state never blocks a snapshot write
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Save upserts the player's snapshot blob
func (s *Store) Save(ctx context.Context, playerID string, state domain.PlayerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (player_id, state, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(player_id) DO UPDATE SET
			state = excluded.state,
			updated_at = excluded.updated_at`,
		playerID, data)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Load fetches and parses the player's snapshot blob
func (s *Store) Load(ctx context.Context, playerID string) (domain.PlayerState, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT state FROM snapshots WHERE player_id = ?`, playerID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PlayerState{}, false, nil
	}
	if err != nil {
		return domain.PlayerState{}, false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var state domain.PlayerState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.PlayerState{}, false, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return state, true, nil
}

// Delete removes the player's snapshot row
func (s *Store) Delete(ctx context.Context, playerID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE player_id = ?`, playerID); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// CheckHealth pings the database
func (s *Store) CheckHealth(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
