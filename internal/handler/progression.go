package handler

import (
	"net/http"
	"strconv"

	"github.com/lootvault/vaultsim/internal/player"
	"github.com/lootvault/vaultsim/internal/progression"
)

// HandleGetLevelInfo returns derived level info for the player, or for an
// arbitrary XP value when the xp query parameter is supplied
// @Summary Get level info
// @Description Returns level, bounding thresholds and progress percent
// @Tags progression
// @Produce json
// @Param xp query int false "XP value to inspect instead of the player's"
// @Success 200 {object} DataResponse
// @Router /progression/level [get]
func HandleGetLevelInfo(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if raw := r.URL.Query().Get("xp"); raw != "" {
			xp, err := strconv.Atoi(raw)
			if err != nil || xp < 0 {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
				return
			}
			respondJSON(w, http.StatusOK, DataResponse{Data: progression.GetLevelInfo(xp)})
			return
		}

		view, err := svc.State(r.Context(), PlayerIDFromRequest(r))
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: view.LevelInfo})
	}
}
