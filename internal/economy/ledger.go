// Package economy maintains the append-only credit ledger. The balance is
// always the sum of all ledger amounts; nothing ever edits an entry.
package economy

import (
	"time"

	"github.com/lootvault/vaultsim/internal/domain"
)

// Append adds a signed ledger entry to the aggregate and returns it.
// Callers pass negative amounts for spends.
func Append(s *domain.PlayerState, txType domain.TransactionType, amount int, description string, now time.Time) domain.CreditTransaction {
	tx := domain.CreditTransaction{
		ID:          s.TakeID(),
		Type:        txType,
		Amount:      amount,
		Description: description,
		Timestamp:   now,
	}
	s.Transactions = append(s.Transactions, tx)
	return tx
}

// Earn appends a positive "earned" entry
func Earn(s *domain.PlayerState, amount int, description string, now time.Time) domain.CreditTransaction {
	return Append(s, domain.TransactionEarned, amount, description, now)
}

// Award appends a positive "incentive" entry (quest and promo rewards)
func Award(s *domain.PlayerState, amount int, description string, now time.Time) domain.CreditTransaction {
	return Append(s, domain.TransactionIncentive, amount, description, now)
}

// Spend appends a negative "spent" entry after checking the balance.
// Insufficient balance returns domain.ErrInsufficientCredits and leaves the
// ledger untouched - there is no partial spend.
func Spend(s *domain.PlayerState, amount int, description string, now time.Time) (domain.CreditTransaction, error) {
	if amount <= 0 {
		return domain.CreditTransaction{}, domain.ErrInvalidInput
	}
	if s.Balance() < amount {
		return domain.CreditTransaction{}, domain.ErrInsufficientCredits
	}
	return Append(s, domain.TransactionSpent, -amount, description, now), nil
}
