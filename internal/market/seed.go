package market

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/lootvault/vaultsim/internal/domain"
)

// Demo auction length. Short enough that a demo session sees a lot close.
const seedAuctionWindow = 10 * time.Minute

// SeedState builds the default aggregate for a new or reset player, layered
// with seeded marketplace content so the market isn't empty on first visit.
// The seller IDs are flavor; no real counterparty exists behind them.
func SeedState(playerID string, clock clockwork.Clock) domain.PlayerState {
	now := clock.Now().UTC()
	st := domain.NewPlayerState(playerID, now)

	st.Listings = append(st.Listings,
		domain.Listing{
			ID:        st.TakeID(),
			SellerID:  "collector_nine",
			Product:   "Holo Print",
			Rarity:    domain.RarityUncommon,
			Price:     18,
			CreatedAt: now,
		},
		domain.Listing{
			ID:        st.TakeID(),
			SellerID:  "vault_rat",
			Product:   "Signed Art Cel",
			Rarity:    domain.RarityRare,
			Price:     42,
			CreatedAt: now,
		},
		domain.Listing{
			ID:        st.TakeID(),
			SellerID:  "midnight_ml",
			Product:   "Trading Card Bundle",
			Rarity:    domain.RarityCommon,
			Price:     6,
			CreatedAt: now,
		},
	)

	st.Auctions = append(st.Auctions,
		domain.AuctionLot{
			ID:          st.TakeID(),
			SellerID:    "collector_nine",
			Product:     "Crystal Bust",
			Rarity:      domain.RarityRare,
			StartingBid: 20,
			EndsAt:      now.Add(seedAuctionWindow),
		},
		domain.AuctionLot{
			ID:            st.TakeID(),
			SellerID:      "vault_rat",
			Product:       "Golden Relic",
			Rarity:        domain.RarityLegendary,
			StartingBid:   60,
			CurrentBid:    65,
			CurrentBidder: "midnight_ml",
			EndsAt:        now.Add(seedAuctionWindow),
		},
	)

	return st
}
