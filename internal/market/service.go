// Package market implements the mock marketplace: fixed-price listings and
// timed auction lots. Everything lives inside the player's own aggregate;
// the "other sellers" are seeded flavor, not real counterparties.
package market

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/economy"
	"github.com/lootvault/vaultsim/internal/event"
	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/metrics"
	"github.com/lootvault/vaultsim/internal/player"
	"github.com/lootvault/vaultsim/internal/quest"
)

// Service defines the marketplace interface
type Service interface {
	Listings(ctx context.Context, playerID string) ([]domain.Listing, error)
	ListItem(ctx context.Context, playerID string, itemID, price int) (domain.Listing, error)
	CancelListing(ctx context.Context, playerID string, listingID int) error
	BuyListing(ctx context.Context, playerID string, listingID int) (domain.InventoryItem, error)

	Auctions(ctx context.Context, playerID string) ([]domain.AuctionLot, error)
	PlaceBid(ctx context.Context, playerID string, auctionID, amount int) (domain.AuctionLot, error)
	SettleAuction(ctx context.Context, playerID string, auctionID int) (domain.AuctionLot, error)
}

type service struct {
	players player.Store
	quests  []domain.Quest
	bus     event.Bus
	clock   clockwork.Clock
}

// NewService creates a marketplace service
func NewService(players player.Store, quests []domain.Quest, bus event.Bus, clock clockwork.Clock) Service {
	return &service{
		players: players,
		quests:  quests,
		bus:     bus,
		clock:   clock,
	}
}

// Listings returns every open listing the player can see
func (s *service) Listings(ctx context.Context, playerID string) ([]domain.Listing, error) {
	state, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return state.Listings, nil
}

// ListItem puts a held inventory item up for sale at a fixed price
func (s *service) ListItem(ctx context.Context, playerID string, itemID, price int) (domain.Listing, error) {
	if price <= 0 {
		return domain.Listing{}, fmt.Errorf("%w: listing price must be positive", domain.ErrInvalidInput)
	}

	var listing domain.Listing
	_, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		item := st.Item(itemID)
		if item == nil {
			return fmt.Errorf("%w: %d", domain.ErrItemNotFound, itemID)
		}
		if !item.Status.CanTransitionTo(domain.ItemStatusListed) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, item.Status, domain.ItemStatusListed)
		}
		item.Status = domain.ItemStatusListed

		listing = domain.Listing{
			ID:        st.TakeID(),
			SellerID:  playerID,
			ItemID:    item.ID,
			Product:   item.Product,
			Rarity:    item.Rarity,
			Price:     price,
			CreatedAt: s.clock.Now().UTC(),
		}
		st.Listings = append(st.Listings, listing)
		return nil
	})
	if err != nil {
		return domain.Listing{}, err
	}

	logger.FromContext(ctx).Info("Item listed",
		"player_id", playerID, "item_id", itemID, "listing_id", listing.ID, "price", price)
	return listing, nil
}

// CancelListing withdraws the player's own listing and returns the item to
// held. Seeded listings from other sellers cannot be cancelled; they look
// like missing listings to the caller.
func (s *service) CancelListing(ctx context.Context, playerID string, listingID int) error {
	_, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		idx := findListing(st, listingID)
		if idx < 0 || st.Listings[idx].SellerID != playerID {
			return fmt.Errorf("%w: %d", domain.ErrListingNotFound, listingID)
		}

		if item := st.Item(st.Listings[idx].ItemID); item != nil {
			item.Status = domain.ItemStatusHeld
		}
		st.Listings = append(st.Listings[:idx], st.Listings[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info("Listing cancelled", "player_id", playerID, "listing_id", listingID)
	return nil
}

// BuyListing purchases a seeded listing: the price is spent, the item joins
// the buyer's inventory as held and the listing disappears. A failed spend
// changes nothing.
func (s *service) BuyListing(ctx context.Context, playerID string, listingID int) (domain.InventoryItem, error) {
	var bought domain.InventoryItem
	var price int
	var completions []quest.Completion
	_, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		now := s.clock.Now().UTC()

		idx := findListing(st, listingID)
		if idx < 0 {
			return fmt.Errorf("%w: %d", domain.ErrListingNotFound, listingID)
		}
		l := st.Listings[idx]
		if l.SellerID == playerID {
			return fmt.Errorf("%w: cannot buy your own listing", domain.ErrInvalidInput)
		}

		if _, err := economy.Spend(st, l.Price, "Marketplace purchase: "+l.Product, now); err != nil {
			return err
		}
		price = l.Price

		bought = domain.InventoryItem{
			ID:         st.TakeID(),
			Product:    l.Product,
			Rarity:     l.Rarity,
			Value:      l.Price,
			Status:     domain.ItemStatusHeld,
			AcquiredAt: now,
		}
		st.Inventory = append(st.Inventory, bought)
		st.Listings = append(st.Listings[:idx], st.Listings[idx+1:]...)

		completions = quest.Advance(st, s.quests, domain.RequirementListingBought, 1, now)
		return nil
	})
	if err != nil {
		return domain.InventoryItem{}, err
	}

	metrics.CreditsSpent.Add(float64(price))
	quest.PublishCompletions(ctx, s.bus, playerID, completions)

	logger.FromContext(ctx).Info("Listing bought",
		"player_id", playerID, "listing_id", listingID, "price", price)
	return bought, nil
}

// Auctions returns every auction lot the player can see
func (s *service) Auctions(ctx context.Context, playerID string) ([]domain.AuctionLot, error) {
	state, err := s.players.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return state.Auctions, nil
}

// PlaceBid escrows a bid on an open lot. Bids must strictly exceed the
// current bid (or meet the starting bid on an unbid lot); the player's own
// previous bid is refunded before the new one is escrowed, so at most one
// bid per lot is ever held.
func (s *service) PlaceBid(ctx context.Context, playerID string, auctionID, amount int) (domain.AuctionLot, error) {
	var updated domain.AuctionLot
	var completions []quest.Completion
	_, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		now := s.clock.Now().UTC()

		lot := findAuction(st, auctionID)
		if lot == nil {
			return fmt.Errorf("%w: %d", domain.ErrAuctionNotFound, auctionID)
		}
		if lot.Settled() || !now.Before(lot.EndsAt) {
			return fmt.Errorf("%w: %d", domain.ErrAuctionSettled, auctionID)
		}
		if amount <= lot.CurrentBid || amount < lot.StartingBid {
			return fmt.Errorf("%w: bid %d, current %d", domain.ErrBidTooLow, amount, lot.CurrentBid)
		}

		// Refund first so the balance check sees the freed escrow
		if lot.CurrentBidder == playerID {
			economy.Earn(st, lot.CurrentBid, "Bid refund: "+lot.Product, now)
		}
		if _, err := economy.Spend(st, amount, "Auction bid: "+lot.Product, now); err != nil {
			return err
		}

		lot.CurrentBid = amount
		lot.CurrentBidder = playerID
		updated = *lot

		completions = quest.Advance(st, s.quests, domain.RequirementBidPlaced, 1, now)
		return nil
	})
	if err != nil {
		return domain.AuctionLot{}, err
	}

	quest.PublishCompletions(ctx, s.bus, playerID, completions)
	logger.FromContext(ctx).Info("Bid placed",
		"player_id", playerID, "auction_id", auctionID, "amount", amount)
	return updated, nil
}

// SettleAuction resolves a lot whose end time has passed. If the player
// holds the winning bid the item joins their inventory; their escrow was
// already spent when the bid was placed.
func (s *service) SettleAuction(ctx context.Context, playerID string, auctionID int) (domain.AuctionLot, error) {
	var settled domain.AuctionLot
	var won bool
	_, err := s.players.Update(ctx, playerID, func(st *domain.PlayerState) error {
		now := s.clock.Now().UTC()

		lot := findAuction(st, auctionID)
		if lot == nil {
			return fmt.Errorf("%w: %d", domain.ErrAuctionNotFound, auctionID)
		}
		if lot.Settled() {
			return fmt.Errorf("%w: %d", domain.ErrAuctionSettled, auctionID)
		}
		if now.Before(lot.EndsAt) {
			return fmt.Errorf("%w: auction still open", domain.ErrInvalidInput)
		}

		if lot.CurrentBidder == playerID {
			won = true
			st.Inventory = append(st.Inventory, domain.InventoryItem{
				ID:         st.TakeID(),
				Product:    lot.Product,
				Rarity:     lot.Rarity,
				Value:      lot.CurrentBid,
				Status:     domain.ItemStatusHeld,
				AcquiredAt: now,
			})
		}
		ts := now
		lot.SettledAt = &ts
		settled = *lot
		return nil
	})
	if err != nil {
		return domain.AuctionLot{}, err
	}

	logger.FromContext(ctx).Info("Auction settled",
		"player_id", playerID, "auction_id", auctionID, "won", won)
	return settled, nil
}

func findListing(st *domain.PlayerState, listingID int) int {
	for i := range st.Listings {
		if st.Listings[i].ID == listingID {
			return i
		}
	}
	return -1
}

func findAuction(st *domain.PlayerState, auctionID int) *domain.AuctionLot {
	for i := range st.Auctions {
		if st.Auctions[i].ID == auctionID {
			return &st.Auctions[i]
		}
	}
	return nil
}
