// Package player owns the per-player aggregate: loading it, applying
// reducer-style updates, and snapshotting it after every change.
package player

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/metrics"
	"github.com/lootvault/vaultsim/internal/store"
)

// CacheSize bounds how many player aggregates stay resident. Evicted
// players are rehydrated from their snapshot on next touch.
const CacheSize = 1024

// SeedFunc builds the default aggregate for a new (or reset) player.
// Callers can layer demo content (marketplace listings, auction lots) on
// top of domain.NewPlayerState.
type SeedFunc func(playerID string, clock clockwork.Clock) domain.PlayerState

// Store is the single write path for player aggregates. Every mutation
// reads the current snapshot, applies a pure update function to a copy and
// replaces the aggregate wholesale, so concurrent updates never interleave
// mid-mutation.
type Store interface {
	Get(ctx context.Context, playerID string) (domain.PlayerState, error)
	Update(ctx context.Context, playerID string, fn func(s *domain.PlayerState) error) (domain.PlayerState, error)
	Reset(ctx context.Context, playerID string) (domain.PlayerState, error)
}

type entry struct {
	mu    sync.Mutex
	state domain.PlayerState
}

// Manager implements Store with an LRU of resident aggregates in front of
// a snapshot backend.
type Manager struct {
	snaps   store.Snapshots
	backend string
	clock   clockwork.Clock
	seed    SeedFunc

	mu    sync.Mutex
	cache *lru.Cache[string, *entry]
}

// NewManager creates a Manager over the given snapshot backend. The
// backend name is only used as a metric label.
func NewManager(snaps store.Snapshots, backend string, clock clockwork.Clock, seed SeedFunc) (*Manager, error) {
	cache, err := lru.New[string, *entry](CacheSize)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		seed = func(playerID string, clock clockwork.Clock) domain.PlayerState {
			return domain.NewPlayerState(playerID, clock.Now().UTC())
		}
	}
	return &Manager{
		snaps:   snaps,
		backend: backend,
		clock:   clock,
		seed:    seed,
		cache:   cache,
	}, nil
}

// Get returns a copy of the player's current aggregate, creating the
// default state for players seen for the first time.
func (m *Manager) Get(ctx context.Context, playerID string) (domain.PlayerState, error) {
	e := m.entry(ctx, playerID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone(), nil
}

// Update applies fn to a copy of the current aggregate and installs the
// result. If fn returns an error nothing changes - failed operations leave
// no partial state behind. The new aggregate is snapshotted; a failed
// snapshot write is logged and swallowed, and the session carries on in
// memory only.
func (m *Manager) Update(ctx context.Context, playerID string, fn func(s *domain.PlayerState) error) (domain.PlayerState, error) {
	e := m.entry(ctx, playerID)
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.state.Clone()
	if err := fn(&next); err != nil {
		return domain.PlayerState{}, err
	}
	next.UpdatedAt = m.clock.Now().UTC()

	m.persist(ctx, playerID, next)
	e.state = next
	return next.Clone(), nil
}

// Reset discards the aggregate and reinstalls the seeded default state
func (m *Manager) Reset(ctx context.Context, playerID string) (domain.PlayerState, error) {
	e := m.entry(ctx, playerID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := m.snaps.Delete(ctx, playerID); err != nil {
		logger.FromContext(ctx).Warn("Failed to delete snapshot on reset, continuing",
			"player_id", playerID, "error", err)
	}

	next := m.seed(playerID, m.clock)
	m.persist(ctx, playerID, next)
	e.state = next
	return next.Clone(), nil
}

// entry returns the resident aggregate for a player, rehydrating from the
// snapshot backend on a cache miss. A snapshot that is missing or fails to
// parse silently becomes the seeded default state.
func (m *Manager) entry(ctx context.Context, playerID string) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.cache.Get(playerID); ok {
		return e
	}

	log := logger.FromContext(ctx)
	state, found, err := m.snaps.Load(ctx, playerID)
	if err != nil {
		// Corrupt snapshot: treated as "no prior state", never surfaced
		log.Warn("Snapshot unreadable, falling back to default state",
			"player_id", playerID, "error", err)
		found = false
	}
	if !found {
		state = m.seed(playerID, m.clock)
	}

	e := &entry{state: state}
	m.cache.Add(playerID, e)
	return e
}

func (m *Manager) persist(ctx context.Context, playerID string, state domain.PlayerState) {
	if err := m.snaps.Save(ctx, playerID, state); err != nil {
		metrics.SnapshotWriteFailures.WithLabelValues(m.backend).Inc()
		logger.FromContext(ctx).Warn("Snapshot write failed, continuing in memory",
			"player_id", playerID, "error", err)
	}
}
