package player

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/event"
	"github.com/lootvault/vaultsim/internal/progression"
)

func newTestService(t *testing.T) (Service, *Manager, *event.MemoryBus) {
	t.Helper()
	mgr := newTestManager(t, newMemorySnapshots())
	bus := event.NewMemoryBus()
	return NewService(mgr, bus), mgr, bus
}

func setXP(t *testing.T, mgr *Manager, playerID string, xp int) {
	t.Helper()
	_, err := mgr.Update(context.Background(), playerID, func(st *domain.PlayerState) error {
		st.XP = xp
		return nil
	})
	require.NoError(t, err)
}

func TestState_IncludesDerivedLevelInfo(t *testing.T) {
	svc, mgr, _ := newTestService(t)
	setXP(t, mgr, "demo", 300)

	view, err := svc.State(context.Background(), "demo")
	require.NoError(t, err)

	assert.Equal(t, domain.StartingCredits, view.Balance)
	assert.Equal(t, 2, view.LevelInfo.Level)
	assert.Zero(t, view.LevelInfo.ProgressPercent)
}

func TestResetDemo_RestoresDefaultsAndPublishes(t *testing.T) {
	svc, mgr, bus := newTestService(t)
	ctx := context.Background()

	var resets int
	bus.Subscribe(event.DemoReset, func(_ context.Context, e event.Event) error {
		resets++
		return nil
	})

	setXP(t, mgr, "demo", 5000)
	_, err := mgr.Update(ctx, "demo", func(st *domain.PlayerState) error {
		st.Prestige = 2
		return nil
	})
	require.NoError(t, err)

	view, err := svc.ResetDemo(ctx, "demo")
	require.NoError(t, err)

	assert.Equal(t, domain.StartingCredits, view.Balance)
	assert.Zero(t, view.State.XP)
	assert.Zero(t, view.State.Prestige)
	assert.Equal(t, 1, resets)
}

func TestPrestigeUp_RequiresUnlockLevel(t *testing.T) {
	svc, mgr, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.PrestigeUp(ctx, "demo")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "level 0 cannot prestige")

	setXP(t, mgr, "demo", progression.XPForLevel(PrestigeMinLevel))

	view, err := svc.PrestigeUp(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, 1, view.State.Prestige)
	assert.Equal(t, progression.XPForLevel(PrestigeMinLevel), view.State.XP, "prestige leaves XP alone")
}

func TestPrestigeUp_CapsAtMax(t *testing.T) {
	svc, mgr, _ := newTestService(t)
	ctx := context.Background()

	setXP(t, mgr, "demo", progression.XPForLevel(PrestigeMinLevel))

	for want := 1; want <= domain.MaxPrestigeLevel; want++ {
		view, err := svc.PrestigeUp(ctx, "demo")
		require.NoError(t, err)
		assert.Equal(t, want, view.State.Prestige)
	}

	_, err := svc.PrestigeUp(ctx, "demo")
	assert.ErrorIs(t, err, domain.ErrInvalidPrestige)
}

func TestMarkTutorialSeen(t *testing.T) {
	svc, mgr, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.MarkTutorialSeen(ctx, "demo", "vault_intro"))

	state, err := mgr.Get(ctx, "demo")
	require.NoError(t, err)
	assert.True(t, state.SeenTutorials["vault_intro"])

	err = svc.MarkTutorialSeen(ctx, "demo", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
