package handler

import (
	"net/http"

	"github.com/lootvault/vaultsim/internal/logger"
	"github.com/lootvault/vaultsim/internal/quest"
)

// HandleGetQuests returns quest definitions with the player's progress
// @Summary Get quests
// @Description Returns every quest and the player's progress, unlocking newly reachable quests
// @Tags quest
// @Produce json
// @Success 200 {object} DataResponse
// @Router /quests [get]
func HandleGetQuests(svc quest.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		views, err := svc.Progress(r.Context(), PlayerIDFromRequest(r))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get quests", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: views})
	}
}
