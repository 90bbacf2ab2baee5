package domain

import "time"

// Listing is a fixed-price marketplace offer backed by an inventory item.
// The item stays in the seller's inventory with status listed until the
// listing is bought or cancelled.
type Listing struct {
	ID        int       `json:"id"`
	SellerID  string    `json:"seller_id"`
	ItemID    int       `json:"item_id"`
	Product   string    `json:"product"`
	Rarity    Rarity    `json:"rarity"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// AuctionLot is a timed auction over an inventory item. Bids must strictly
// exceed the current bid; the losing bidder is refunded on outbid.
type AuctionLot struct {
	ID            int        `json:"id"`
	SellerID      string     `json:"seller_id"`
	ItemID        int        `json:"item_id"`
	Product       string     `json:"product"`
	Rarity        Rarity     `json:"rarity"`
	StartingBid   int        `json:"starting_bid"`
	CurrentBid    int        `json:"current_bid"`
	CurrentBidder string     `json:"current_bidder,omitempty"`
	EndsAt        time.Time  `json:"ends_at"`
	SettledAt     *time.Time `json:"settled_at,omitempty"`
}

// Settled reports whether the lot has been resolved
func (a AuctionLot) Settled() bool {
	return a.SettledAt != nil
}
