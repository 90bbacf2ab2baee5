package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Economy errors
	ErrMsgInsufficientCredits = "insufficient credits"

	// Vault errors
	ErrMsgTierNotFound      = "vault tier not found"
	ErrMsgRevealNotFound    = "reveal not found"
	ErrMsgRevealNotRevealed = "reveal outcome not available yet"
	ErrMsgRevealConsumed    = "reveal outcome already claimed"

	// Odds errors
	ErrMsgInvalidPrestige = "prestige level out of range"

	// Inventory errors
	ErrMsgItemNotFound      = "item not found"
	ErrMsgInvalidTransition = "invalid item status transition"

	// Market errors
	ErrMsgListingNotFound = "listing not found"
	ErrMsgAuctionNotFound = "auction not found"
	ErrMsgAuctionSettled  = "auction already settled"
	ErrMsgBidTooLow       = "bid must exceed current bid"

	// Quest errors
	ErrMsgQuestNotFound = "quest not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Economy errors. Failed spends leave the ledger untouched - there is
	// no partial spend.
	ErrInsufficientCredits = errors.New(ErrMsgInsufficientCredits)

	// Vault errors
	ErrTierNotFound      = errors.New(ErrMsgTierNotFound)
	ErrRevealNotFound    = errors.New(ErrMsgRevealNotFound)
	ErrRevealNotRevealed = errors.New(ErrMsgRevealNotRevealed)
	ErrRevealConsumed    = errors.New(ErrMsgRevealConsumed)

	// Odds errors
	ErrInvalidPrestige = errors.New(ErrMsgInvalidPrestige)

	// Inventory errors
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrInvalidTransition = errors.New(ErrMsgInvalidTransition)

	// Market errors
	ErrListingNotFound = errors.New(ErrMsgListingNotFound)
	ErrAuctionNotFound = errors.New(ErrMsgAuctionNotFound)
	ErrAuctionSettled  = errors.New(ErrMsgAuctionSettled)
	ErrBidTooLow       = errors.New(ErrMsgBidTooLow)

	// Quest errors
	ErrQuestNotFound = errors.New(ErrMsgQuestNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
