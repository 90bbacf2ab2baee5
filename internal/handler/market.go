package handler

import (
	"net/http"

	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/market"
)

// HandleGetListings returns the open marketplace listings
// @Summary Get listings
// @Description Returns every open fixed-price listing
// @Tags market
// @Produce json
// @Success 200 {object} DataResponse
// @Router /market/listings [get]
func HandleGetListings(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listings, err := svc.Listings(r.Context(), PlayerIDFromRequest(r))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get listings", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: listings})
	}
}

type ListItemRequest struct {
	ItemID int `json:"item_id" validate:"required,min=1"`
	Price  int `json:"price" validate:"required,min=1,max=100000"`
}

// HandleListItem puts a held item up for sale
// @Summary List an item
// @Description Creates a fixed-price listing backed by a held inventory item
// @Tags market
// @Accept json
// @Produce json
// @Param request body ListItemRequest true "Item and price"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /market/list [post]
func HandleListItem(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ListItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "List item"); err != nil {
			return
		}

		listing, err := svc.ListItem(r.Context(), PlayerIDFromRequest(r), req.ItemID, req.Price)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: listing})
	}
}

type ListingActionRequest struct {
	ListingID int `json:"listing_id" validate:"required,min=1"`
}

// HandleCancelListing withdraws the player's own listing
// @Summary Cancel a listing
// @Description Removes the listing and returns the item to held
// @Tags market
// @Accept json
// @Produce json
// @Param request body ListingActionRequest true "Listing to cancel"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /market/cancel [post]
func HandleCancelListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ListingActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cancel listing"); err != nil {
			return
		}

		if err := svc.CancelListing(r.Context(), PlayerIDFromRequest(r), req.ListingID); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgListingCancelled})
	}
}

// HandleBuyListing purchases a listing
// @Summary Buy a listing
// @Description Spends the listing price and delivers the item to the inventory
// @Tags market
// @Accept json
// @Produce json
// @Param request body ListingActionRequest true "Listing to buy"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /market/buy [post]
func HandleBuyListing(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ListingActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Buy listing"); err != nil {
			return
		}

		playerID := PlayerIDFromRequest(r)
		item, err := svc.BuyListing(r.Context(), playerID, req.ListingID)
		if err != nil {
			log.Warn("Listing purchase rejected", "error", err, "player_id", playerID, "listing_id", req.ListingID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: item})
	}
}

// HandleGetAuctions returns the auction lots
// @Summary Get auctions
// @Description Returns every auction lot with its current bid
// @Tags market
// @Produce json
// @Success 200 {object} DataResponse
// @Router /market/auctions [get]
func HandleGetAuctions(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auctions, err := svc.Auctions(r.Context(), PlayerIDFromRequest(r))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get auctions", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: auctions})
	}
}

type PlaceBidRequest struct {
	AuctionID int `json:"auction_id" validate:"required,min=1"`
	Amount    int `json:"amount" validate:"required,min=1,max=100000"`
}

// HandlePlaceBid bids on an open auction lot
// @Summary Place a bid
// @Description Escrows a bid that must strictly exceed the current bid
// @Tags market
// @Accept json
// @Produce json
// @Param request body PlaceBidRequest true "Auction and bid amount"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /market/bid [post]
func HandlePlaceBid(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlaceBidRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Place bid"); err != nil {
			return
		}

		lot, err := svc.PlaceBid(r.Context(), PlayerIDFromRequest(r), req.AuctionID, req.Amount)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: lot})
	}
}

type SettleAuctionRequest struct {
	AuctionID int `json:"auction_id" validate:"required,min=1"`
}

// HandleSettleAuction resolves an ended auction lot
// @Summary Settle an auction
// @Description Resolves a lot past its deadline; the winning bidder receives the item
// @Tags market
// @Accept json
// @Produce json
// @Param request body SettleAuctionRequest true "Auction to settle"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /market/settle [post]
func HandleSettleAuction(svc market.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SettleAuctionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Settle auction"); err != nil {
			return
		}

		lot, err := svc.SettleAuction(r.Context(), PlayerIDFromRequest(r), req.AuctionID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: lot})
	}
}
