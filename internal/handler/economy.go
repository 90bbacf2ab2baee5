package handler

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lootvault/vaultsim/internal/economy"
	"github.com/lootvault/vaultsim/internal/logger"
)

// creditPrinter formats credit amounts with thousands separators for the
// display strings the UI shows next to raw values
var creditPrinter = message.NewPrinter(language.English)

// BalanceResponse pairs the raw balance with a display string
type BalanceResponse struct {
	Balance int    `json:"balance"`
	Display string `json:"display"`
}

// HandleGetBalance returns the player's credit balance
// @Summary Get credit balance
// @Description Returns the sum of the player's ledger
// @Tags economy
// @Produce json
// @Success 200 {object} BalanceResponse
// @Router /credits/balance [get]
func HandleGetBalance(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		balance, err := svc.Balance(r.Context(), PlayerIDFromRequest(r))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get balance", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, BalanceResponse{
			Balance: balance,
			Display: creditPrinter.Sprintf("%d credits", balance),
		})
	}
}

// HandleGetLedger returns the player's full transaction history
// @Summary Get credit ledger
// @Description Returns the append-only credit transaction list, oldest first
// @Tags economy
// @Produce json
// @Success 200 {object} DataResponse
// @Router /credits/ledger [get]
func HandleGetLedger(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ledger, err := svc.Ledger(r.Context(), PlayerIDFromRequest(r))
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get ledger", "error", err)
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: ledger})
	}
}

type AddCreditsRequest struct {
	Amount      int    `json:"amount" validate:"required,min=1,max=100000"`
	Description string `json:"description" validate:"required,max=200"`
}

// HandleAddCredits grants credits (dev/demo tooling)
// @Summary Add credits
// @Description Appends an incentive transaction to the ledger
// @Tags economy
// @Accept json
// @Produce json
// @Param request body AddCreditsRequest true "Credit grant"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /credits/add [post]
func HandleAddCredits(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddCreditsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add credits"); err != nil {
			return
		}

		tx, err := svc.AddCredits(r.Context(), PlayerIDFromRequest(r), req.Amount, req.Description)
		if err != nil {
			respondServiceError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: tx})
	}
}
