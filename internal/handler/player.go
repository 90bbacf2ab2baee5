package handler

import (
	"net/http"

	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/player"
)

// HandleGetPlayerState returns the full player aggregate
// @Summary Get player state
// @Description Returns the player's ledger, inventory, XP, prestige, quests and market state
// @Tags player
// @Produce json
// @Success 200 {object} DataResponse
// @Router /player/state [get]
func HandleGetPlayerState(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.State(r.Context(), PlayerIDFromRequest(r))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get player state", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: view})
	}
}

// HandleResetDemo wipes the player back to seeded defaults
// @Summary Reset demo state
// @Description Restores starting credits, clears inventory, XP, prestige and quest progress
// @Tags player
// @Produce json
// @Success 200 {object} DataResponse
// @Router /player/reset [post]
func HandleResetDemo(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.ResetDemo(r.Context(), PlayerIDFromRequest(r))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to reset demo", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgDemoResetSuccess, Data: view})
	}
}

// HandlePrestigeUp increments the player's prestige level
// @Summary Prestige up
// @Description Increments prestige by one once the unlock level is reached; caps at 3
// @Tags player
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /player/prestige [post]
func HandlePrestigeUp(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID := PlayerIDFromRequest(r)
		view, err := svc.PrestigeUp(r.Context(), playerID)
		if err != nil {
			logger.FromContext(r.Context()).Warn("Prestige rejected", "error", err, "player_id", playerID)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: view})
	}
}

type TutorialSeenRequest struct {
	TutorialID string `json:"tutorial_id" validate:"required,max=100"`
}

// HandleTutorialSeen records a dismissed tutorial flag
// @Summary Mark tutorial seen
// @Description Persists that the player dismissed a tutorial overlay
// @Tags player
// @Accept json
// @Produce json
// @Param request body TutorialSeenRequest true "Tutorial ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /player/tutorial [post]
func HandleTutorialSeen(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TutorialSeenRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Tutorial seen"); err != nil {
			return
		}

		if err := svc.MarkTutorialSeen(r.Context(), PlayerIDFromRequest(r), req.TutorialID); err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTutorialSeenSuccess})
	}
}
