package inventory

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

// seedItem installs one inventory item on a fresh player
func seedItem(t *testing.T, players player.Store, playerID string, status domain.ItemStatus, value int) domain.InventoryItem {
	t.Helper()

	var item domain.InventoryItem
	_, err := players.Update(context.Background(), playerID, func(st *domain.PlayerState) error {
		item = domain.InventoryItem{
			ID:      st.TakeID(),
			Product: "Cobalt Figure",
			Rarity:  domain.RarityRare,
			Value:   value,
			Status:  status,
		}
		st.Inventory = append(st.Inventory, item)
		return nil
	})
	require.NoError(t, err)
	return item
}

func questCatalog() []domain.Quest {
	return []domain.Quest{
		{
			ID:          "first_cashout",
			Title:       "Cash Out a Find",
			Requirement: domain.QuestRequirement{Type: domain.RequirementItemCashout, Target: 1},
			XPReward:    30,
		},
	}
}

func newTestService(t *testing.T) (Service, player.Store) {
	t.Helper()

	clock := clockwork.NewFakeClock()
	players, err := player.NewManager(newMemorySnapshots(), "memory", clock, nil)
	require.NoError(t, err)

	return NewService(players, questCatalog(), event.NewMemoryBus(), clock), players
}

func TestList_ReturnsInventory(t *testing.T) {
	svc, players := newTestService(t)
	item := seedItem(t, players, "demo", domain.ItemStatusHeld, 50)

	items, err := svc.List(context.Background(), "demo")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, item.ID, items[0].ID)
}

func TestCashOut_EarnsValueAndCompletesQuest(t *testing.T) {
	svc, players := newTestService(t)
	ctx := context.Background()
	item := seedItem(t, players, "demo", domain.ItemStatusHeld, 50)

	res, err := svc.CashOut(ctx, "demo", item.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.ItemStatusCashedOut, res.Item.Status)
	assert.Equal(t, 50, res.Transaction.Amount)
	assert.Equal(t, domain.TransactionEarned, res.Transaction.Type)

	state, err := players.Get(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingCredits+50, state.Balance())

	// The cashout quest completed and paid its XP reward
	require.Len(t, res.Completions, 1)
	assert.Equal(t, "first_cashout", res.Completions[0].Quest.ID)
	assert.Equal(t, 30, state.XP)
}

func TestCashOut_RejectsNonHeldItems(t *testing.T) {
	svc, players := newTestService(t)
	ctx := context.Background()

	for _, status := range []domain.ItemStatus{domain.ItemStatusShipped, domain.ItemStatusCashedOut} {
		item := seedItem(t, players, "demo", status, 50)

		_, err := svc.CashOut(ctx, "demo", item.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "status %s", status)
	}

	state, err := players.Get(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingCredits, state.Balance(), "failed cashouts must not credit anything")
}

func TestCashOut_UnknownItem(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CashOut(context.Background(), "demo", 99)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestShip_MarksItemShipped(t *testing.T) {
	svc, players := newTestService(t)
	ctx := context.Background()
	item := seedItem(t, players, "demo", domain.ItemStatusHeld, 50)

	shipped, err := svc.Ship(ctx, "demo", item.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemStatusShipped, shipped.Status)

	// Shipped is terminal
	_, err = svc.Ship(ctx, "demo", item.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCashOut_PublishesEvent(t *testing.T) {
	clock := clockwork.NewFakeClock()
	players, err := player.NewManager(newMemorySnapshots(), "memory", clock, nil)
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	var got []event.Event
	bus.Subscribe(event.ItemCashedOut, func(_ context.Context, e event.Event) error {
		got = append(got, e)
		return nil
	})

	svc := NewService(players, questCatalog(), bus, clock)
	item := seedItem(t, players, "demo", domain.ItemStatusHeld, 50)

	_, err = svc.CashOut(context.Background(), "demo", item.ID)
	require.NoError(t, err)

	require.Len(t, got, 1)
	payload, ok := got[0].Payload.(event.ItemCashedOutPayloadV1)
	require.True(t, ok)
	assert.Equal(t, 50, payload.Value)
}
