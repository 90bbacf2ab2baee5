// Package inventory manages stored reveal items: listing them and moving
// them through the held / shipped / cashed_out lifecycle.
package inventory

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/economy"
	"github.com/lootvault/vaultsim/internal/event"
	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/metrics"
	"github.com/lootvault/vaultsim/internal/player"
	"github.com/lootvault/vaultsim/internal/quest"
)

// CashOutResult reports the ledger entry a cashout produced alongside the
// updated item.
type CashOutResult struct {
	Item        domain.InventoryItem     `json:"item"`
	Transaction domain.CreditTransaction `json:"transaction"`
	Completions []quest.Completion       `json:"completions,omitempty"`
}

// Service defines the inventory interface
type Service interface {
	List(ctx context.Context, playerID string) ([]domain.InventoryItem, error)
	CashOut(ctx context.Context, playerID string, itemID int) (*CashOutResult, error)
	Ship(ctx context.Context, playerID string, itemID int) (domain.InventoryItem, error)
}

type service struct {
	players player.Store
	quests  []domain.Quest
	bus     event.Bus
	clock   clockwork.Clock
}

// NewService creates an inventory service
func NewService(players player.Store, quests []domain.Quest, bus event.Bus, clock clockwork.Clock) Service {
	return &service{
		players: players,
		quests:  quests,
		bus:     bus,
		clock:   clock,
	}
}

// List returns the player's inventory
func (s *service) List(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	state, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return state.Inventory, nil
}

// CashOut converts a held item into credits at its reveal value. The status
// change and the earned ledger entry land in the same aggregate update.
func (s *service) CashOut(ctx context.Context, playerID string, itemID int) (*CashOutResult, error) {
	var result CashOutResult
	_, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		now := s.clock.Now().UTC()

		item, err := transition(st, itemID, domain.ItemStatusCashedOut)
		if err != nil {
			return err
		}
		result.Transaction = economy.Earn(st, item.Value, "Cashed out: "+item.Product, now)
		result.Completions = quest.Advance(st, s.quests, domain.RequirementItemCashout, 1, now)
		result.Completions = append(result.Completions,
			quest.Advance(st, s.quests, domain.RequirementCreditsEarned, item.Value, now)...)
		result.Item = *item
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CreditsEarned.Add(float64(result.Item.Value))
	quest.PublishCompletions(ctx, s.bus, playerID, result.Completions)
	s.publish(ctx, event.ItemCashedOut, event.ItemCashedOutPayloadV1{
		PlayerID: playerID,
		ItemID:   result.Item.ID,
		Product:  result.Item.Product,
		Value:    result.Item.Value,
	})

	logger.FromContext(ctx).Info("Item cashed out",
		"player_id", playerID, "item_id", itemID, "value", result.Item.Value)
	return &result, nil
}

// Ship marks a held item as shipped. Shipped is terminal; the item stays
// visible in the inventory as a keepsake record.
func (s *service) Ship(ctx context.Context, playerID string, itemID int) (domain.InventoryItem, error) {
	var shipped domain.InventoryItem
	var completions []quest.Completion
	_, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		now := s.clock.Now().UTC()

		item, err := transition(st, itemID, domain.ItemStatusShipped)
		if err != nil {
			return err
		}
		completions = quest.Advance(st, s.quests, domain.RequirementItemShipped, 1, now)
		shipped = *item
		return nil
	})
	if err != nil {
		return domain.InventoryItem{}, err
	}

	quest.PublishCompletions(ctx, s.bus, playerID, completions)
	logger.FromContext(ctx).Info("Item shipped", "player_id", playerID, "item_id", itemID)
	return shipped, nil
}

// transition moves an item to the target status, enforcing the lifecycle
func transition(st *domain.PlayerState, itemID int, to domain.ItemStatus) (*domain.InventoryItem, error) {
	item := st.Item(itemID)
	if item == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
	}
	if !item.Status.CanTransitionTo(to) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, item.Status, to)
	}
	item.Status = to
	return item, nil
}

func (s *service) publish(ctx context.Context, typ event.Type, payload interface{}) {
	if s.bus == nil {
		return
	}
	evt := event.Event{Version: "1.0", Type: typ, Payload: payload}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("Event publish failed", "type", typ, "error", err)
	}
}
