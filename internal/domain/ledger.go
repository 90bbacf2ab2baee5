package domain

import "time"

// TransactionType classifies a credit ledger entry
type TransactionType string

const (
	TransactionEarned    TransactionType = "earned"
	TransactionSpent     TransactionType = "spent"
	TransactionIncentive TransactionType = "incentive"
)

// CreditTransaction is one entry in the append-only credit ledger.
// Amount is signed; the player's balance is the sum of all amounts.
type CreditTransaction struct {
	ID          int             `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      int             `json:"amount"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
}
