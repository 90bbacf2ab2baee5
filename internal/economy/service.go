package economy

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/metrics"
	"github.com/lootvault/vaultsim/internal/player"
)

// Service defines the interface for credit ledger operations
type Service interface {
	Balance(ctx context.Context, playerID string) (int, error)
	Ledger(ctx context.Context, playerID string) ([]domain.CreditTransaction, error)
	AddCredits(ctx context.Context, playerID string, amount int, description string) (domain.CreditTransaction, error)
	SpendCredits(ctx context.Context, playerID string, amount int, description string) (domain.CreditTransaction, error)
}

type service struct {
	players player.Store
	clock   clockwork.Clock
}

// NewService creates a new economy service
func NewService(players player.Store, clock clockwork.Clock) Service {
	return &service{players: players, clock: clock}
}

func (s *service) Balance(ctx context.Context, playerID string) (int, error) {
	state, err := s.players.Get(ctx, playerID)
	if err != nil {
		return 0, err
	}
	return state.Balance(), nil
}

func (s *service) Ledger(ctx context.Context, playerID string) ([]domain.CreditTransaction, error) {
	state, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return state.Transactions, nil
}

func (s *service) AddCredits(ctx context.Context, playerID string, amount int, description string) (domain.CreditTransaction, error) {
	if amount <= 0 {
		return domain.CreditTransaction{}, domain.ErrInvalidInput
	}

	var tx domain.CreditTransaction
	_, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		tx = Earn(st, amount, description, s.clock.Now().UTC())
		return nil
	})
	if err != nil {
		return domain.CreditTransaction{}, err
	}

	metrics.CreditsEarned.Add(float64(amount))
	logger.FromContext(ctx).Info("Credits added",
		"player_id", playerID, "amount", amount, "description", description)
	return tx, nil
}

func (s *service) SpendCredits(ctx context.Context, playerID string, amount int, description string) (domain.CreditTransaction, error) {
	var tx domain.CreditTransaction
	_, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		var err error
		tx, err = Spend(st, amount, description, s.clock.Now().UTC())
		return err
	})
	if err != nil {
		return domain.CreditTransaction{}, err
	}

	metrics.CreditsSpent.Add(float64(amount))
	logger.FromContext(ctx).Info("Credits spent",
		"player_id", playerID, "amount", amount, "description", description)
	return tx, nil
}
