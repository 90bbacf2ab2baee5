package notify

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/event"
)

func publishQuestCompleted(t *testing.T, bus event.Bus, playerID, title string, xp, credits int) {
	t.Helper()
	err := bus.Publish(context.Background(), event.Event{
		Version: "1.0",
		Type:    event.QuestCompleted,
		Payload: event.QuestCompletedPayloadV1{
			PlayerID:     playerID,
			QuestID:      "q1",
			Title:        title,
			XPReward:     xp,
			CreditReward: credits,
		},
	})
	require.NoError(t, err)
}

func TestCenter_QuestCompletionBecomesNotification(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bus := event.NewMemoryBus()
	c := NewCenter(bus, clock)

	publishQuestCompleted(t, bus, "demo", "Crack Your First Vault", 50, 0)

	list := c.List("demo")
	require.Len(t, list, 1)
	assert.Equal(t, domain.NotificationQuestComplete, list[0].Kind)
	assert.Equal(t, "Quest complete: Crack Your First Vault", list[0].Title)
	assert.Equal(t, "+50 XP", list[0].Body)
}

func TestCenter_CreditRewardShownInBody(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bus := event.NewMemoryBus()
	c := NewCenter(bus, clock)

	publishQuestCompleted(t, bus, "demo", "High Roller", 100, 25)

	list := c.List("demo")
	require.Len(t, list, 1)
	assert.Equal(t, "+100 XP, +25 credits", list[0].Body)
}

func TestCenter_LevelUpBecomesNotification(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bus := event.NewMemoryBus()
	c := NewCenter(bus, clock)

	err := bus.Publish(context.Background(), event.Event{
		Version: "1.0",
		Type:    event.LevelUp,
		Payload: event.LevelUpPayloadV1{PlayerID: "demo", NewLevel: 2},
	})
	require.NoError(t, err)

	list := c.List("demo")
	require.Len(t, list, 1)
	assert.Equal(t, domain.NotificationLevelUp, list[0].Kind)
	assert.Equal(t, "Level 2 reached", list[0].Title)
}

func TestCenter_AutoDismissAfterTimeout(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bus := event.NewMemoryBus()
	c := NewCenter(bus, clock)

	publishQuestCompleted(t, bus, "demo", "Crack Your First Vault", 50, 0)
	require.Len(t, c.List("demo"), 1)

	clock.Advance(DismissAfter - time.Millisecond)
	assert.Len(t, c.List("demo"), 1, "still visible just before the timeout")

	clock.Advance(time.Millisecond)
	assert.Empty(t, c.List("demo"))
}

func TestCenter_ManualDismiss(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bus := event.NewMemoryBus()
	c := NewCenter(bus, clock)

	publishQuestCompleted(t, bus, "demo", "Crack Your First Vault", 50, 0)
	list := c.List("demo")
	require.Len(t, list, 1)

	c.Dismiss("demo", list[0].ID)
	assert.Empty(t, c.List("demo"))

	// The timer firing later for the already-dismissed ID is a no-op
	clock.Advance(DismissAfter)
	assert.Empty(t, c.List("demo"))
}

func TestCenter_NotificationsArePerPlayer(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bus := event.NewMemoryBus()
	c := NewCenter(bus, clock)

	publishQuestCompleted(t, bus, "demo", "Crack Your First Vault", 50, 0)
	publishQuestCompleted(t, bus, "other", "Ship an Item Home", 25, 0)

	assert.Len(t, c.List("demo"), 1)
	assert.Len(t, c.List("other"), 1)
	assert.Empty(t, c.List("stranger"))
}
