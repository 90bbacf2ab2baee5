package domain

import "time"

// QuestStatus is the per-player state of a quest.
// The machine is locked -> active -> completed; completed is terminal.
type QuestStatus string

const (
	QuestStatusLocked    QuestStatus = "locked"
	QuestStatusActive    QuestStatus = "active"
	QuestStatusCompleted QuestStatus = "completed"
)

// Requirement type constants. Advance calls name one of these to select
// which active quests move forward.
const (
	RequirementVaultPurchase = "vault_purchase"
	RequirementItemCashout   = "item_cashout"
	RequirementItemShipped   = "item_shipped"
	RequirementListingBought = "listing_bought"
	RequirementBidPlaced     = "bid_placed"
	RequirementCreditsEarned = "credits_earned"
)

// QuestRequirement names the counted action and the target count
type QuestRequirement struct {
	Type   string `json:"type"`
	Target int    `json:"target"`
}

// Quest is a static quest definition loaded from configs/quests.json
type Quest struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	RequiredLevel int              `json:"required_level"`
	Requirement   QuestRequirement `json:"requirement"`
	XPReward      int              `json:"xp_reward"`
	CreditReward  int              `json:"credit_reward,omitempty"`
}

// QuestProgress is the mutable per-player progress on a quest
type QuestProgress struct {
	QuestID     string      `json:"quest_id"`
	Status      QuestStatus `json:"status"`
	Progress    int         `json:"progress"`
	UnlockedAt  *time.Time  `json:"unlocked_at,omitempty"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// QuestCatalogConfig is the on-disk shape of configs/quests.json
type QuestCatalogConfig struct {
	Version string  `json:"version"`
	Quests  []Quest `json:"quests"`
}
