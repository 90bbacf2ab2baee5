// Package filestore persists player snapshots as one JSON blob per player,
// the server-side analog of the demo's local-storage blob.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lootvault/vaultsim/internal/domain"
)

// DirPermission is the permission for the snapshot directory
const DirPermission = 0o755

// FilePermission is the permission for snapshot files
const FilePermission = 0o644

// Store writes one <playerID>.json per player under a data directory.
// Writes go through a temp file and rename so a crash mid-write cannot
// leave a truncated snapshot behind.
type Store struct {
	dir string
}

// New creates the snapshot directory if needed and returns a Store
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, DirPermission); err != nil {
		return nil, fmt.Errorf("failed to create snapshot dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save serializes the aggregate and atomically replaces the player's blob
func (s *Store) Save(_ context.Context, playerID string, state domain.PlayerState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	path := s.path(playerID)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePermission); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// Load reads and parses the player's blob. A missing file is not an error;
// a blob that fails to parse is reported so the caller can fall back to
// defaults.
func (s *Store) Load(_ context.Context, playerID string) (domain.PlayerState, bool, error) {
	data, err := os.ReadFile(s.path(playerID))
	if os.IsNotExist(err) {
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

// Delete removes the player's blob; deleting a missing blob is a no-op
func (s *Store) Delete(_ context.Context, playerID string) error {
	err := os.Remove(s.path(playerID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend
func (s *Store) Close() error {
	return nil
}

// CheckHealth verifies the snapshot directory is still accessible
func (s *Store) CheckHealth(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("snapshot dir inaccessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("snapshot path %s is not a directory", s.dir)
	}
	return nil
}

func (s *Store) path(playerID string) string {
	return filepath.Join(s.dir, sanitize(playerID)+".json")
}

// sanitize keeps player IDs from escaping the snapshot directory
func sanitize(playerID string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", "..", "_")
	return replacer.Replace(playerID)
}
