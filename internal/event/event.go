package event

import (
	"context"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	VaultOpened    Type = "vault.opened"
	QuestUnlocked  Type = "quest.unlocked"
	QuestCompleted Type = "quest.completed"
	LevelUp        Type = "level.up"
	ItemCashedOut  Type = "item.cashed_out"
	DemoReset      Type = "demo.reset"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// VaultOpenedPayloadV1 is published after a reveal outcome is resolved
type VaultOpenedPayloadV1 struct {
	PlayerID string `json:"player_id"`
	TierName string `json:"tier_name"`
	Rarity   string `json:"rarity"`
	Value    int    `json:"value"`
}

// QuestUnlockedPayloadV1 is published when a quest flips locked to active
type QuestUnlockedPayloadV1 struct {
	PlayerID string `json:"player_id"`
	QuestID  string `json:"quest_id"`
	Title    string `json:"title"`
}

// QuestCompletedPayloadV1 is published when a quest reaches its target
type QuestCompletedPayloadV1 struct {
	PlayerID     string `json:"player_id"`
	QuestID      string `json:"quest_id"`
	Title        string `json:"title"`
	XPReward     int    `json:"xp_reward"`
	CreditReward int    `json:"credit_reward"`
}

// ItemCashedOutPayloadV1 is published when an inventory item is converted
// back into credits
type ItemCashedOutPayloadV1 struct {
	PlayerID string `json:"player_id"`
	ItemID   int    `json:"item_id"`
	Product  string `json:"product"`
	Value    int    `json:"value"`
}

// LevelUpPayloadV1 is published when accumulated XP crosses a level threshold
type LevelUpPayloadV1 struct {
	PlayerID string `json:"player_id"`
	NewLevel int    `json:"new_level"`
}

// DemoResetPayloadV1 is published when a player wipes their demo state
type DemoResetPayloadV1 struct {
	PlayerID string `json:"player_id"`
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously on the publishing goroutine. Everything in
	// the demo happens on request paths, so there is no worker pool to hand
	// off to.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for event %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
