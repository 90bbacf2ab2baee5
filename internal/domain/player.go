package domain

import "time"

// Starting defaults applied to a fresh (or reset, or unparseable) player state
const (
	StartingCredits    = 100
	MinPrestigeLevel   = 0
	MaxPrestigeLevel   = 3
	StartingDescriptor = "Welcome credits"
)

// PlayerState is the whole per-player aggregate: credit ledger, inventory,
// XP, prestige, quest progress, marketplace state and tutorial flags.
// The entire aggregate is snapshotted on every state change and rehydrated
// on load; everything in the demo reads and writes through it.
type PlayerState struct {
	PlayerID      string              `json:"player_id"`
	Transactions  []CreditTransaction `json:"transactions"`
	Inventory     []InventoryItem     `json:"inventory"`
	XP            int                 `json:"xp"`
	Prestige      int                 `json:"prestige"`
	QuestProgress []QuestProgress     `json:"quest_progress"`
	Listings      []Listing           `json:"listings"`
	Auctions      []AuctionLot        `json:"auctions"`
	SeenTutorials map[string]bool     `json:"seen_tutorials"`
	NextID        int                 `json:"next_id"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// NewPlayerState returns the default state a player starts (and resets) with:
// 100 starting credits, empty inventory, zero XP, prestige 0.
func NewPlayerState(playerID string, now time.Time) PlayerState {
	return PlayerState{
		PlayerID: playerID,
		Transactions: []CreditTransaction{
			{
				ID:          1,
				Type:        TransactionIncentive,
				Amount:      StartingCredits,
				Description: StartingDescriptor,
				Timestamp:   now,
			},
		},
		Inventory:     []InventoryItem{},
		QuestProgress: []QuestProgress{},
		Listings:      []Listing{},
		Auctions:      []AuctionLot{},
		SeenTutorials: map[string]bool{},
		NextID:        2,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Balance is the sum of all ledger amounts
func (s *PlayerState) Balance() int {
	total := 0
	for _, tx := range s.Transactions {
		total += tx.Amount
	}
	return total
}

// TakeID returns the next aggregate-scoped ID and advances the counter
func (s *PlayerState) TakeID() int {
	id := s.NextID
	s.NextID++
	return id
}

// Item returns a pointer to the inventory item with the given ID, or nil
func (s *PlayerState) Item(itemID int) *InventoryItem {
	for i := range s.Inventory {
		if s.Inventory[i].ID == itemID {
			return &s.Inventory[i]
		}
	}
	return nil
}

// Progress returns a pointer to the progress record for a quest, or nil
func (s *PlayerState) Progress(questID string) *QuestProgress {
	for i := range s.QuestProgress {
		if s.QuestProgress[i].QuestID == questID {
			return &s.QuestProgress[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the aggregate. Updates operate on a copy of
// the current snapshot and replace it wholesale, so readers never observe a
// half-applied mutation.
func (s *PlayerState) Clone() PlayerState {
	out := *s
	out.Transactions = append([]CreditTransaction(nil), s.Transactions...)
	out.Inventory = append([]InventoryItem(nil), s.Inventory...)
	out.QuestProgress = append([]QuestProgress(nil), s.QuestProgress...)
	out.Listings = append([]Listing(nil), s.Listings...)
	out.Auctions = append([]AuctionLot(nil), s.Auctions...)
	out.SeenTutorials = make(map[string]bool, len(s.SeenTutorials))
	for k, v := range s.SeenTutorials {
		out.SeenTutorials[k] = v
	}
	return out
}
