package quest

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

func testCatalog() []domain.Quest {
	return []domain.Quest{
		{
			ID:            "first_vault",
			Title:         "Crack Your First Vault",
			RequiredLevel: 0,
			Requirement:   domain.QuestRequirement{Type: domain.RequirementVaultPurchase, Target: 1},
			XPReward:      50,
			CreditReward:  10,
		},
		{
			ID:            "vault_regular",
			Title:         "Vault Regular",
			RequiredLevel: 0,
			Requirement:   domain.QuestRequirement{Type: domain.RequirementVaultPurchase, Target: 5},
			XPReward:      120,
		},
		{
			ID:            "high_roller",
			Title:         "High Roller",
			RequiredLevel: 2,
			Requirement:   domain.QuestRequirement{Type: domain.RequirementVaultPurchase, Target: 3},
			XPReward:      200,
		},
		{
			ID:            "first_cashout",
			Title:         "First Cashout",
			RequiredLevel: 0,
			Requirement:   domain.QuestRequirement{Type: domain.RequirementItemCashout, Target: 1},
			XPReward:      30,
		},
	}
}

func TestSyncUnlocks_ActivatesReachableQuests(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())

	activated := SyncUnlocks(&s, testCatalog(), testNow())

	assert.Len(t, activated, 3) // high_roller needs level 2
	assert.Equal(t, domain.QuestStatusActive, s.Progress("first_vault").Status)
	assert.Equal(t, domain.QuestStatusLocked, s.Progress("high_roller").Status)
}

func TestSyncUnlocks_IsIdempotent(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())

	first := SyncUnlocks(&s, testCatalog(), testNow())
	second := SyncUnlocks(&s, testCatalog(), testNow())

	assert.NotEmpty(t, first)
	assert.Empty(t, second)
}

func TestSyncUnlocks_LevelGateOpensWithXP(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())
	SyncUnlocks(&s, testCatalog(), testNow())

	s.XP = 300 // level 2
	activated := SyncUnlocks(&s, testCatalog(), testNow())

	require.Len(t, activated, 1)
	assert.Equal(t, "high_roller", activated[0].ID)
}

func TestAdvance_IncrementsMatchingActiveQuests(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())
	SyncUnlocks(&s, testCatalog(), testNow())

	completions := Advance(&s, testCatalog(), domain.RequirementVaultPurchase, 1, testNow())

	require.Len(t, completions, 1)
	assert.Equal(t, "first_vault", completions[0].Quest.ID)
	assert.Equal(t, 1, s.Progress("vault_regular").Progress)
	assert.Equal(t, 0, s.Progress("first_cashout").Progress)
}

func TestAdvance_CompletionAwardsXPAndCredits(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())
	SyncUnlocks(&s, testCatalog(), testNow())

	Advance(&s, testCatalog(), domain.RequirementVaultPurchase, 1, testNow())

	assert.Equal(t, 50, s.XP)
	assert.Equal(t, domain.StartingCredits+10, s.Balance())
	assert.Equal(t, domain.QuestStatusCompleted, s.Progress("first_vault").Status)
}

func TestAdvance_ProgressClampsAtTarget(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())
	SyncUnlocks(&s, testCatalog(), testNow())

	Advance(&s, testCatalog(), domain.RequirementVaultPurchase, 100, testNow())

	assert.Equal(t, 5, s.Progress("vault_regular").Progress)
}

func TestAdvance_CompletedQuestsNeverReAward(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())
	SyncUnlocks(&s, testCatalog(), testNow())

	first := Advance(&s, testCatalog(), domain.RequirementVaultPurchase, 1, testNow())
	require.Len(t, first, 1)
	xpAfter := s.XP
	balanceAfter := s.Balance()

	again := Advance(&s, testCatalog(), domain.RequirementVaultPurchase, 1, testNow())

	for _, c := range again {
		assert.NotEqual(t, "first_vault", c.Quest.ID)
	}
	assert.Equal(t, xpAfter, s.XP)
	assert.Equal(t, balanceAfter, s.Balance())
	assert.Equal(t, 1, s.Progress("first_vault").Progress)
}

func TestAdvance_CompletionXPCanUnlockMoreQuests(t *testing.T) {
	catalog := []domain.Quest{
		{
			ID:            "big_xp",
			Title:         "Big XP",
			RequiredLevel: 0,
			Requirement:   domain.QuestRequirement{Type: domain.RequirementVaultPurchase, Target: 1},
			XPReward:      300, // exactly level 2
		},
		{
			ID:            "gated",
			Title:         "Gated",
			RequiredLevel: 2,
			Requirement:   domain.QuestRequirement{Type: domain.RequirementItemCashout, Target: 1},
			XPReward:      10,
		},
	}

	s := domain.NewPlayerState("p1", testNow())
	SyncUnlocks(&s, catalog, testNow())

	completions := Advance(&s, catalog, domain.RequirementVaultPurchase, 1, testNow())

	require.Len(t, completions, 1)
	assert.True(t, completions[0].XPResult.LeveledUp)
	assert.Equal(t, domain.QuestStatusActive, s.Progress("gated").Status)
}

func TestAdvance_NonPositiveIncrementIsNoOp(t *testing.T) {
	s := domain.NewPlayerState("p1", testNow())
	SyncUnlocks(&s, testCatalog(), testNow())

	assert.Nil(t, Advance(&s, testCatalog(), domain.RequirementVaultPurchase, 0, testNow()))
	assert.Equal(t, 0, s.Progress("first_vault").Progress)
}
