// Package notify turns quest and level events into transient notifications
// that auto-dismiss after a fixed timeout. Nothing here is persisted; a
// restart simply drops whatever was pending.
package notify

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/event"
	"github.com/lootvault/vaultsim/internal/logger"
)

// DismissAfter is how long a notification stays visible before it
// auto-dismisses
const DismissAfter = 4000 * time.Millisecond

// Center collects pending notifications per player
type Center struct {
	clock clockwork.Clock

	mu      sync.Mutex
	pending map[string][]domain.Notification
}

// NewCenter creates a notification center and subscribes it to the quest
// and level events on the bus.
func NewCenter(bus event.Bus, clock clockwork.Clock) *Center {
	c := &Center{
		clock:   clock,
		pending: make(map[string][]domain.Notification),
	}
	bus.Subscribe(event.QuestCompleted, c.onQuestCompleted)
	bus.Subscribe(event.LevelUp, c.onLevelUp)
	return c
}

// List returns the player's pending notifications, oldest first
func (c *Center) List(playerID string) []domain.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.Notification(nil), c.pending[playerID]...)
}

// Dismiss removes a notification before its timeout fires
func (c *Center) Dismiss(playerID, notificationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(playerID, notificationID)
}

func (c *Center) onQuestCompleted(ctx context.Context, e event.Event) error {
	p, ok := e.Payload.(event.QuestCompletedPayloadV1)
	if !ok {
		logger.FromContext(ctx).Warn("Unexpected payload type for quest.completed event")
		return nil
	}

	body := fmt.Sprintf("+%d XP", p.XPReward)
	if p.CreditReward > 0 {
		body = fmt.Sprintf("+%d XP, +%d credits", p.XPReward, p.CreditReward)
	}
	c.push(domain.Notification{
		ID:        uuid.NewString(),
		PlayerID:  p.PlayerID,
		Kind:      domain.NotificationQuestComplete,
		Title:     "Quest complete: " + p.Title,
		Body:      body,
		CreatedAt: c.clock.Now().UTC(),
	})
	return nil
}

func (c *Center) onLevelUp(ctx context.Context, e event.Event) error {
	p, ok := e.Payload.(event.LevelUpPayloadV1)
	if !ok {
		logger.FromContext(ctx).Warn("Unexpected payload type for level.up event")
		return nil
	}

	c.push(domain.Notification{
		ID:        uuid.NewString(),
		PlayerID:  p.PlayerID,
		Kind:      domain.NotificationLevelUp,
		Title:     fmt.Sprintf("Level %d reached", p.NewLevel),
		Body:      "New quests may be waiting",
		CreatedAt: c.clock.Now().UTC(),
	})
	return nil
}

func (c *Center) push(n domain.Notification) {
	c.mu.Lock()
	c.pending[n.PlayerID] = append(c.pending[n.PlayerID], n)
	c.mu.Unlock()

	c.clock.AfterFunc(DismissAfter, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.remove(n.PlayerID, n.ID)
	})
}

// remove must be called with the mutex held
func (c *Center) remove(playerID, notificationID string) {
	list := c.pending[playerID]
	for i := range list {
		if list[i].ID == notificationID {
			c.pending[playerID] = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(c.pending[playerID]) == 0 {
		delete(c.pending, playerID)
	}
}
