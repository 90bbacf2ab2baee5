package quest

import (
	"context"
	"sync"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/event"
	"github.com/lootvault/vaultsim/internal/player"
)

type memorySnapshots struct {
	mu    sync.Mutex
	blobs map[string]domain.PlayerState
}

func newMemorySnapshots() *memorySnapshots {
	return &memorySnapshots{blobs: make(map[string]domain.PlayerState)}
}

func (m *memorySnapshots) Save(_ context.Context, playerID string, state domain.PlayerState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[playerID] = state.Clone()
	return nil
}

func (m *memorySnapshots) Load(_ context.Context, playerID string) (domain.PlayerState, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.blobs[playerID]
	if !ok {
		return domain.PlayerState{}, false, nil
	}
	return s.Clone(), true, nil
}

func (m *memorySnapshots) Delete(_ context.Context, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, playerID)
	return nil
}

func (m *memorySnapshots) Close() error { return nil }

func newTestTracker(t *testing.T) (Tracker, player.Store, *event.MemoryBus) {
	t.Helper()

	clock := clockwork.NewFakeClock()
	players, err := player.NewManager(newMemorySnapshots(), "memory", clock, nil)
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	return NewTracker(testCatalog(), players, bus, clock), players, bus
}

func TestTracker_ProgressUnlocksAndLists(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	views, err := tr.Progress(context.Background(), "p1")
	require.NoError(t, err)

	require.Len(t, views, len(testCatalog()))
	byID := make(map[string]View, len(views))
	for _, v := range views {
		byID[v.Quest.ID] = v
	}
	assert.Equal(t, domain.QuestStatusActive, byID["first_vault"].Progress.Status)
	assert.Equal(t, domain.QuestStatusLocked, byID["high_roller"].Progress.Status)
}

func TestTracker_PublishesUnlockEvents(t *testing.T) {
	tr, _, bus := newTestTracker(t)

	var unlocked []event.QuestUnlockedPayloadV1
	bus.Subscribe(event.QuestUnlocked, func(_ context.Context, e event.Event) error {
		unlocked = append(unlocked, e.Payload.(event.QuestUnlockedPayloadV1))
		return nil
	})

	_, err := tr.Progress(context.Background(), "p1")
	require.NoError(t, err)

	require.Len(t, unlocked, 3) // high_roller stays level-gated
	assert.Equal(t, "p1", unlocked[0].PlayerID)
	assert.Equal(t, "first_vault", unlocked[0].QuestID)

	// A second listing activates nothing new
	unlocked = nil
	_, err = tr.Progress(context.Background(), "p1")
	require.NoError(t, err)
	assert.Empty(t, unlocked)
}

func TestTracker_AdvanceCompletesAndPublishes(t *testing.T) {
	tr, players, bus := newTestTracker(t)

	var completed []event.QuestCompletedPayloadV1
	bus.Subscribe(event.QuestCompleted, func(_ context.Context, e event.Event) error {
		completed = append(completed, e.Payload.(event.QuestCompletedPayloadV1))
		return nil
	})

	completions, err := tr.Advance(context.Background(), "p1", domain.RequirementVaultPurchase, 1)
	require.NoError(t, err)

	require.Len(t, completions, 1)
	assert.Equal(t, "first_vault", completions[0].Quest.ID)

	require.Len(t, completed, 1)
	assert.Equal(t, "p1", completed[0].PlayerID)
	assert.Equal(t, 50, completed[0].XPReward)

	// Reward landed in the aggregate: XP plus the incentive credit
	state, err := players.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 50, state.XP)
	assert.Equal(t, domain.StartingCredits+10, state.Balance())
}

func TestTracker_AdvanceIgnoresCompletedQuests(t *testing.T) {
	tr, _, _ := newTestTracker(t)

	first, err := tr.Advance(context.Background(), "p1", domain.RequirementVaultPurchase, 1)
	require.NoError(t, err)
	require.Len(t, first, 1)

	again, err := tr.Advance(context.Background(), "p1", domain.RequirementVaultPurchase, 1)
	require.NoError(t, err)
	assert.Empty(t, again)
}
