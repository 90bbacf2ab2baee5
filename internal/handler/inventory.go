package handler

import (
	"net/http"
	"strings"

	"github.com/lootvault/vaultsim/internal/domain"
	"github.com/lootvault/vaultsim/internal/inventory"
	"github.com/lootvault/vaultsim/internal/logger"
)

// HandleGetInventory returns the player's inventory
// @Summary Get inventory
// @Description Returns all inventory items with their lifecycle status
// @Tags inventory
// @Produce json
// @Param rarity query string false "Filter by rarity tier"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /inventory [get]
func HandleGetInventory(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rarity := GetOptionalQueryParam(r, "rarity", "")
		if err := GetValidator().ValidateVar(rarity, "rarity"); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRarityFilter)
			return
		}

		items, err := svc.List(r.Context(), PlayerIDFromRequest(r))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get inventory", "error", err)
			respondServiceError(w, err)
			return
		}

		if rarity != "" {
			want := domain.Rarity(strings.ToLower(rarity))
			filtered := make([]domain.InventoryItem, 0, len(items))
			for _, item := range items {
				if item.Rarity == want {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

type ItemActionRequest struct {
	ItemID int `json:"item_id" validate:"required,min=1"`
}

// HandleCashOutItem converts a held item into credits
// @Summary Cash out an item
// @Description Credits the item's reveal value and marks it cashed out
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body ItemActionRequest true "Item to cash out"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/cashout [post]
func HandleCashOutItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ItemActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cash out item"); err != nil {
			return
		}

		playerID := PlayerIDFromRequest(r)
		result, err := svc.CashOut(r.Context(), playerID, req.ItemID)
		if err != nil {
			log.Warn("Cashout rejected", "error", err, "player_id", playerID, "item_id", req.ItemID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: result})
	}
}

// HandleShipItem marks a held item as shipped
// @Summary Ship an item
// @Description Marks the item shipped; shipped is terminal
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body ItemActionRequest true "Item to ship"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/ship [post]
func HandleShipItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ItemActionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Ship item"); err != nil {
			return
		}

		item, err := svc.Ship(r.Context(), PlayerIDFromRequest(r), req.ItemID)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: item})
	}
}
