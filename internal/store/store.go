// Package store defines the snapshot persistence port for player state.
// Backends persist whole aggregates as single blobs; there is no partial
// update and no cross-player consistency to maintain.
package store

import (
	"context"

	"github.com/lootvault/vaultsim/internal/domain"
)

// Snapshots persists whole player aggregates.
//
// Load returns found=false for players with no snapshot; corrupt snapshots
// are reported as an error so the caller can decide to fall back to a
// default state. Save failures are surfaced but callers are expected to
// swallow them and carry on in memory for the session.
type Snapshots interface {
	Save(ctx context.Context, playerID string, state domain.PlayerState) error
	Load(ctx context.Context, playerID string) (state domain.PlayerState, found bool, err error)
	Delete(ctx context.Context, playerID string) error
	Close() error
}
