package vault

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/economy"
	"github.com/lootvault/vaultsim/internal/event"
	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/metrics"
	"github.com/lootvault/vaultsim/internal/odds"
	"github.com/lootvault/vaultsim/internal/player"
	"github.com/lootvault/vaultsim/internal/progression"
	"github.com/lootvault/vaultsim/internal/quest"
)

// PurchaseResult reports the immediate effects of a vault purchase.
// The reveal outcome itself stays hidden until the stage machine reaches
// revealed.
type PurchaseResult struct {
	Reveal      View                      `json:"reveal"`
	Balance     int                       `json:"balance"`
	XPResult    progression.XPAwardResult `json:"xp_result"`
	Completions []quest.Completion        `json:"completions,omitempty"`
}

// Service defines the vault-opening interface
type Service interface {
	Tiers() []domain.VaultTier
	Purchase(ctx context.Context, playerID, tierName string) (*PurchaseResult, error)
	Reveal(ctx context.Context, playerID string, revealID uuid.UUID) (View, error)
	ClaimCredits(ctx context.Context, playerID string, revealID uuid.UUID) (domain.CreditTransaction, error)
	StoreItem(ctx context.Context, playerID string, revealID uuid.UUID, ship bool) (domain.InventoryItem, error)
}

type service struct {
	catalog *Catalog
	quests  []domain.Quest
	players player.Store
	bus     event.Bus
	clock   clockwork.Clock
	rnd     func() float64 // For rolling RNG

	mu      sync.Mutex
	reveals map[uuid.UUID]*Reveal
}

// NewService creates a vault service. rnd is the uniform [0,1) source used
// for every roll; tests inject a fixed sequence.
func NewService(catalog *Catalog, quests []domain.Quest, players player.Store, bus event.Bus, clock clockwork.Clock, rnd func() float64) Service {
	return &service{
		catalog: catalog,
		quests:  quests,
		players: players,
		bus:     bus,
		clock:   clock,
		rnd:     rnd,
		reveals: make(map[uuid.UUID]*Reveal),
	}
}

// Tiers returns the six vault tiers in ascending price order
func (s *service) Tiers() []domain.VaultTier {
	return s.catalog.Tiers()
}

// Purchase spends the tier price, credits XP equal to the price, advances
// vault-purchase quests, and resolves the (rarity, value) outcome - all in
// one aggregate update, so a failed spend changes nothing. The outcome is
// rolled exactly once here and never re-rolled; the returned reveal paces
// when it becomes visible.
func (s *service) Purchase(ctx context.Context, playerID, tierName string) (*PurchaseResult, error) {
	log := logger.FromContext(ctx)

	tier, err := s.catalog.Tier(tierName)
	if err != nil {
		return nil, err
	}

	var (
		outcome     domain.RevealOutcome
		xpResult    progression.XPAwardResult
		completions []quest.Completion
	)
	state, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		now := s.clock.Now().UTC()

		if _, err := economy.Spend(st, tier.Price, "Vault purchase: "+tier.Name, now); err != nil {
			return err
		}
		xpResult = progression.ApplyXP(st, tier.Price)

		quest.SyncUnlocks(st, s.quests, now)
		completions = quest.Advance(st, s.quests, domain.RequirementVaultPurchase, 1, now)

		dist, err := odds.Adjust(tier.Distribution, st.Prestige)
		if err != nil {
			return fmt.Errorf("failed to adjust odds: %w", err)
		}

		rarity := PickRarity(dist, s.rnd)
		outcome = domain.RevealOutcome{
			TierName: tier.Name,
			Rarity:   rarity,
			Value:    PickValue(tier.Price, s.catalog.RarityConfig(rarity), s.rnd),
			Product:  pickProduct(rarity, s.rnd),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.CreditsSpent.Add(float64(tier.Price))
	metrics.VaultsOpened.WithLabelValues(tier.Name, string(outcome.Rarity)).Inc()

	r := &Reveal{
		ID:        uuid.New(),
		PlayerID:  playerID,
		TierName:  tier.Name,
		Stage:     domain.StageIdle,
		Outcome:   outcome,
		StartedAt: s.clock.Now().UTC(),
	}
	s.mu.Lock()
	s.reveals[r.ID] = r
	s.mu.Unlock()
	s.begin(r.ID)

	log.Info("Vault purchased",
		"player_id", playerID, "tier", tier.Name, "price", tier.Price,
		"rarity", outcome.Rarity, "reveal_id", r.ID)

	s.publish(ctx, event.VaultOpened, event.VaultOpenedPayloadV1{
		PlayerID: playerID,
		TierName: tier.Name,
		Rarity:   string(outcome.Rarity),
		Value:    outcome.Value,
	})
	if xpResult.LeveledUp {
		s.publish(ctx, event.LevelUp, event.LevelUpPayloadV1{
			PlayerID: playerID,
			NewLevel: xpResult.Info.Level,
		})
	}
	quest.PublishCompletions(ctx, s.bus, playerID, completions)

	s.mu.Lock()
	view := r.view()
	s.mu.Unlock()

	return &PurchaseResult{
		Reveal:      view,
		Balance:     state.Balance(),
		XPResult:    xpResult,
		Completions: completions,
	}, nil
}

// Reveal returns the current stage of a reveal, exposing the outcome only
// once spinning has finished.
func (s *service) Reveal(_ context.Context, playerID string, revealID uuid.UUID) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reveals[revealID]
	if !ok || r.PlayerID != playerID {
		return View{}, domain.ErrRevealNotFound
	}
	return r.view(), nil
}

// ClaimCredits converts a revealed outcome into an earned ledger entry
func (s *service) ClaimCredits(ctx context.Context, playerID string, revealID uuid.UUID) (domain.CreditTransaction, error) {
	r, err := s.consume(playerID, revealID)
	if err != nil {
		return domain.CreditTransaction{}, err
	}

	var tx domain.CreditTransaction
	var completions []quest.Completion
	_, err = s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		now := s.clock.Now().UTC()
		tx = economy.Earn(st, r.Outcome.Value, "Vault payout: "+r.Outcome.Product, now)
		completions = quest.Advance(st, s.quests, domain.RequirementCreditsEarned, r.Outcome.Value, now)
		return nil
	})
	if err != nil {
		s.release(revealID)
		return domain.CreditTransaction{}, err
	}

	metrics.CreditsEarned.Add(float64(r.Outcome.Value))
	quest.PublishCompletions(ctx, s.bus, playerID, completions)

	logger.FromContext(ctx).Info("Reveal claimed as credits",
		"player_id", playerID, "reveal_id", revealID, "value", r.Outcome.Value)
	return tx, nil
}

// StoreItem converts a revealed outcome into an inventory item, held or
// shipped.
func (s *service) StoreItem(ctx context.Context, playerID string, revealID uuid.UUID, ship bool) (domain.InventoryItem, error) {
	r, err := s.consume(playerID, revealID)
	if err != nil {
		return domain.InventoryItem{}, err
	}

	status := domain.ItemStatusHeld
	if ship {
		status = domain.ItemStatusShipped
	}

	var item domain.InventoryItem
	var completions []quest.Completion
	_, err = s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		now := s.clock.Now().UTC()
		item = domain.InventoryItem{
			ID:         st.TakeID(),
			Product:    r.Outcome.Product,
			VaultTier:  r.Outcome.TierName,
			Rarity:     r.Outcome.Rarity,
			Value:      r.Outcome.Value,
			Status:     status,
			AcquiredAt: now,
		}
		st.Inventory = append(st.Inventory, item)
		if ship {
			completions = quest.Advance(st, s.quests, domain.RequirementItemShipped, 1, now)
		}
		return nil
	})
	if err != nil {
		s.release(revealID)
		return domain.InventoryItem{}, err
	}

	quest.PublishCompletions(ctx, s.bus, playerID, completions)
	logger.FromContext(ctx).Info("Reveal stored",
		"player_id", playerID, "reveal_id", revealID, "item_id", item.ID, "status", status)
	return item, nil
}

// consume validates and marks a reveal as claimed. release undoes the mark
// when the subsequent aggregate update fails, so the outcome is not lost.
func (s *service) consume(playerID string, revealID uuid.UUID) (Reveal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reveals[revealID]
	if !ok || r.PlayerID != playerID {
		return Reveal{}, domain.ErrRevealNotFound
	}
	if r.Stage != domain.StageRevealed {
		return Reveal{}, domain.ErrRevealNotRevealed
	}
	if r.Consumed {
		return Reveal{}, domain.ErrRevealConsumed
	}
	r.Consumed = true
	return *r, nil
}

func (s *service) release(revealID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r, ok := s.reveals[revealID]; ok {
		r.Consumed = false
	}
}

// begin kicks off the cosmetic stage chain for a reveal
func (s *service) begin(id uuid.UUID) {
	s.setStage(id, domain.StageAuthenticating)
	s.clock.AfterFunc(AuthenticatingDuration, func() {
		s.setStage(id, domain.StagePicking)
		s.clock.AfterFunc(PickingDuration, func() {
			s.setStage(id, domain.StageSpinning)
			s.clock.AfterFunc(SpinningDuration, func() {
				s.setStage(id, domain.StageRevealed)
				s.clock.AfterFunc(RevealRetention, func() { s.expire(id) })
			})
		})
	})
}

func (s *service) setStage(id uuid.UUID, stage domain.RevealStage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reveals[id]
	if !ok {
		return
	}
	r.Stage = stage
	if stage == domain.StageRevealed {
		metrics.RevealDuration.Observe(s.clock.Now().Sub(r.StartedAt).Seconds())
	}
}

// expire drops an unconsumed reveal after the retention window. Nothing
// was persisted for it, so dropping it is the whole cleanup.
func (s *service) expire(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.reveals[id]; ok && !r.Consumed {
		delete(s.reveals, id)
	}
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
