package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/vault"
)

type PurchaseVaultRequest struct {
	Tier string `json:"tier" validate:"required,max=50"`
}

// HandleGetVaultTiers returns the vault catalog
// @Summary List vault tiers
// @Description Returns the six vault tiers in ascending price order
// @Tags vault
// @Produce json
// @Success 200 {object} DataResponse
// @Router /vault/tiers [get]
func HandleGetVaultTiers(svc vault.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, DataResponse{Data: svc.Tiers()})
	}
}

// HandlePurchaseVault opens a vault for the player
// @Summary Purchase a vault
// @Description Spends the tier price, awards matching XP, and starts the reveal sequence
// @Tags vault
// @Accept json
// @Produce json
// @Param request body PurchaseVaultRequest true "Vault tier"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /vault/purchase [post]
func HandlePurchaseVault(svc vault.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req PurchaseVaultRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase vault"); err != nil {
			return
		}

		playerID := PlayerIDFromRequest(r)
		result, err := svc.Purchase(r.Context(), playerID, req.Tier)
		if err != nil {
			log.Warn("Vault purchase rejected", "error", err, "player_id", playerID, "tier", req.Tier)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: result})
	}
}

// HandleGetReveal returns the current state of a reveal
// @Summary Get reveal state
// @Description Returns the reveal stage; the outcome appears once spinning finishes
// @Tags vault
// @Produce json
// @Param id query string true "Reveal ID"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Router /vault/reveal [get]
func HandleGetReveal(svc vault.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		revealID, ok := revealIDFromRequest(r, w)
		if !ok {
			return
		}

		view, err := svc.Reveal(r.Context(), PlayerIDFromRequest(r), revealID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: view})
	}
}

type ClaimRevealRequest struct {
	RevealID string `json:"reveal_id" validate:"required,uuid4"`
}

// HandleClaimReveal converts a revealed outcome into credits
// @Summary Claim reveal as credits
// @Description Credits the reveal value to the player's ledger
// @Tags vault
// @Accept json
// @Produce json
// @Param request body ClaimRevealRequest true "Reveal to claim"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /vault/claim [post]
func HandleClaimReveal(svc vault.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimRevealRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim reveal"); err != nil {
			return
		}

		revealID, err := uuid.Parse(req.RevealID)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		tx, err := svc.ClaimCredits(r.Context(), PlayerIDFromRequest(r), revealID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: tx})
	}
}

type StoreRevealRequest struct {
	RevealID string `json:"reveal_id" validate:"required,uuid4"`
	Ship     bool   `json:"ship"`
}

// HandleStoreReveal converts a revealed outcome into an inventory item
// @Summary Store reveal as item
// @Description Adds the revealed item to the inventory, held or shipped
// @Tags vault
// @Accept json
// @Produce json
// @Param request body StoreRevealRequest true "Reveal to store"
// @Success 200 {object} DataResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /vault/store [post]
func HandleStoreReveal(svc vault.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StoreRevealRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Store reveal"); err != nil {
			return
		}

		revealID, err := uuid.Parse(req.RevealID)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
			return
		}

		item, err := svc.StoreItem(r.Context(), PlayerIDFromRequest(r), revealID, req.Ship)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: item})
	}
}

func revealIDFromRequest(r *http.Request, w http.ResponseWriter) (uuid.UUID, bool) {
	raw, ok := GetQueryParam(r, w, "id")
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
		return uuid.Nil, false
	}
	return id, true
}
