package economy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lootvault/vaultsim/internal/domain"
)

func testNow() time.Time {
	return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func TestSpend_AppendsNegativeEntry(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())

	tx, err := Spend(&s, 30, "Bronze vault", testNow())
	require.NoError(t, err)

	assert.Equal(t, -30, tx.Amount)
	assert.Equal(t, domain.TransactionSpent, tx.Type)
	assert.Equal(t, domain.StartingCredits-30, s.Balance())
}

func TestSpend_InsufficientBalanceLeavesLedgerUntouched(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())
	before := len(s.Transactions)

	_, err := Spend(&s, domain.StartingCredits+1, "too much", testNow())

	assert.ErrorIs(t, err, domain.ErrInsufficientCredits)
	assert.Len(t, s.Transactions, before)
	assert.Equal(t, domain.StartingCredits, s.Balance())
}

func TestSpend_ExactBalanceSucceeds(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())

	_, err := Spend(&s, domain.StartingCredits, "all in", testNow())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Balance())
}

func TestSpend_RejectsNonPositiveAmounts(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())

	for _, amount := range []int{0, -5} {
		_, err := Spend(&s, amount, "bad", testNow())
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount %d", amount)
	}
}

func TestBalance_IsSumOfAllEntries(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())

	Earn(&s, 50, "cashout", testNow())
	Award(&s, 25, "quest reward", testNow())
	_, err := Spend(&s, 60, "vault", testNow())
	require.NoError(t, err)

	assert.Equal(t, domain.StartingCredits+50+25-60, s.Balance())
}

func TestAppend_IDsAreMonotonic(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())

	a := Earn(&s, 1, "a", testNow())
	b := Earn(&s, 1, "b", testNow())
	assert.Greater(t, b.ID, a.ID)
}
