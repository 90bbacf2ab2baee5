package player

import (
	"context"
	"fmt"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/event"
	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/progression"
)

// PrestigeMinLevel is the level a player must reach before each prestige
// increment
const PrestigeMinLevel = 3

// StateView is the player aggregate enriched with derived progression info
type StateView struct {
	State     domain.PlayerState    `json:"state"`
	Balance   int                   `json:"balance"`
	LevelInfo progression.LevelInfo `json:"level_info"`
}

// Service exposes the player-facing aggregate operations
type Service interface {
	State(ctx context.Context, playerID string) (*StateView, error)
	ResetDemo(ctx context.Context, playerID string) (*StateView, error)
	PrestigeUp(ctx context.Context, playerID string) (*StateView, error)
	MarkTutorialSeen(ctx context.Context, playerID, tutorialID string) error
}

type service struct {
	players Store
	bus     event.Bus
}

// NewService creates a player service over the aggregate store
func NewService(players Store, bus event.Bus) Service {
	return &service{players: players, bus: bus}
}

// State returns the player's full aggregate with derived level info
func (s *service) State(ctx context.Context, playerID string) (*StateView, error) {
	state, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return view(state), nil
}

// ResetDemo wipes the player back to the seeded default state
func (s *service) ResetDemo(ctx context.Context, playerID string) (*StateView, error) {
	state, err := s.players.Reset(ctx, playerID)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Demo reset", "player_id", playerID)
	if s.bus != nil {
		evt := event.Event{
			Version: "1.0",
			Type:    event.DemoReset,
			Payload: event.DemoResetPayloadV1{PlayerID: playerID},
		}
		if err := s.bus.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn("Event publish failed", "type", event.DemoReset, "error", err)
		}
	}
	return view(state), nil
}

// PrestigeUp increments prestige by one. Each increment requires the
// player to have reached the unlock level and prestige caps at the max;
// XP is untouched, prestige is an independent counter.
func (s *service) PrestigeUp(ctx context.Context, playerID string) (*StateView, error) {
	state, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		if st.Prestige >= domain.MaxPrestigeLevel {
			return fmt.Errorf("%w: prestige already at maximum %d", domain.ErrInvalidPrestige, domain.MaxPrestigeLevel)
		}
		if progression.LevelFromXP(st.XP) < PrestigeMinLevel {
			return fmt.Errorf("%w: level %d required to prestige", domain.ErrInvalidInput, PrestigeMinLevel)
		}
		st.Prestige++
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Prestige increased", "player_id", playerID, "prestige", state.Prestige)
	return view(state), nil
}

// MarkTutorialSeen records a dismissed tutorial flag
func (s *service) MarkTutorialSeen(ctx context.Context, playerID, tutorialID string) error {
	if tutorialID == "" {
		return fmt.Errorf("%w: tutorial id required", domain.ErrInvalidInput)
	}
	_, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		st.SeenTutorials[tutorialID] = true
		return nil
	})
	return err
}

func view(state domain.PlayerState) *StateView {
	return &StateView{
		State:     state,
		Balance:   state.Balance(),
		LevelInfo: progression.GetLevelInfo(state.XP),
	}
}
