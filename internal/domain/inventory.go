package domain

import "time"

// ItemStatus tracks where an inventory item is in its lifecycle
type ItemStatus string

const (
	ItemStatusHeld      ItemStatus = "held"
	ItemStatusShipped   ItemStatus = "shipped"
	ItemStatusCashedOut ItemStatus = "cashed_out"
	ItemStatusListed    ItemStatus = "listed"
)

// InventoryItem represents a stored reveal outcome. Items are created when
// a player stores or ships a reveal; after that only the status changes.
// Items are never deleted except on demo reset.
type InventoryItem struct {
	ID         int        `json:"id"`
	Product    string     `json:"product"`
	VaultTier  string     `json:"vault_tier"`
	Rarity     Rarity     `json:"rarity"`
	Value      int        `json:"value"`
	Status     ItemStatus `json:"status"`
	AcquiredAt time.Time  `json:"acquired_at"`
}

// CanTransitionTo reports whether the status change is a legal lifecycle
// move. held is the only non-terminal status apart from listed, which can
// return to held when a listing is cancelled.
func (s ItemStatus) CanTransitionTo(next ItemStatus) bool {
	switch s {
	case ItemStatusHeld:
		return next == ItemStatusShipped || next == ItemStatusCashedOut || next == ItemStatusListed
	case ItemStatusListed:
		return next == ItemStatusHeld || next == ItemStatusCashedOut
	}
	return false
}
