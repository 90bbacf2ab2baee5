package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/lootvault/vaultsim/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first; headers are already written so an encode
	// failure can only be logged
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgPlayerNotFoundUser    = "Player not found"
	ErrMsgNotEnoughCreditsUser  = "Not enough credits"
	ErrMsgTierNotFoundUser      = "That vault tier does not exist"
	ErrMsgRevealNotFoundUser    = "Reveal not found or expired"
	ErrMsgRevealNotReadyUser    = "The reveal is still spinning"
	ErrMsgRevealConsumedUser    = "That reveal was already claimed"
	ErrMsgInvalidPrestigeUser   = "Prestige level out of range"
	ErrMsgItemNotFoundUser      = "Item not found"
	ErrMsgInvalidTransitionUser = "That item cannot be moved to that state"
	ErrMsgListingNotFoundUser   = "Listing not found"
	ErrMsgAuctionNotFoundUser   = "Auction not found"
	ErrMsgAuctionSettledUser    = "That auction is closed"
	ErrMsgBidTooLowUser         = "Your bid must beat the current bid"
	ErrMsgQuestNotFoundUser     = "Quest not found"
	ErrMsgInvalidInputUser      = "Invalid request. Please check your inputs."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages a player can act on.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundUser
	case errors.Is(err, domain.ErrInsufficientCredits):
		return http.StatusBadRequest, ErrMsgNotEnoughCreditsUser
	case errors.Is(err, domain.ErrTierNotFound):
		return http.StatusNotFound, ErrMsgTierNotFoundUser
	case errors.Is(err, domain.ErrRevealNotFound):
		return http.StatusNotFound, ErrMsgRevealNotFoundUser
	case errors.Is(err, domain.ErrRevealNotRevealed):
		return http.StatusConflict, ErrMsgRevealNotReadyUser
	case errors.Is(err, domain.ErrRevealConsumed):
		return http.StatusConflict, ErrMsgRevealConsumedUser
	case errors.Is(err, domain.ErrInvalidPrestige):
		return http.StatusBadRequest, ErrMsgInvalidPrestigeUser
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundUser
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusBadRequest, ErrMsgInvalidTransitionUser
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundUser
	case errors.Is(err, domain.ErrAuctionNotFound):
		return http.StatusNotFound, ErrMsgAuctionNotFoundUser
	case errors.Is(err, domain.ErrAuctionSettled):
		return http.StatusConflict, ErrMsgAuctionSettledUser
	case errors.Is(err, domain.ErrBidTooLow):
		return http.StatusBadRequest, ErrMsgBidTooLowUser
	case errors.Is(err, domain.ErrQuestNotFound):
		return http.StatusNotFound, ErrMsgQuestNotFoundUser
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputUser
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError maps a service error and writes the response
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}
