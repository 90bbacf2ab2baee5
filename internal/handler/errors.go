package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam   = "Missing %s query parameter"
	ErrMsgInvalidIDParam      = "Invalid %s parameter"
	ErrMsgInvalidRarityFilter = "Invalid rarity filter"

	// Vault operation error messages
	ErrMsgPurchaseVaultFailed = "Failed to purchase vault"
	ErrMsgGetRevealFailed     = "Failed to get reveal"
	ErrMsgClaimRevealFailed   = "Failed to claim reveal"
	ErrMsgStoreRevealFailed   = "Failed to store reveal"

	// Player operation error messages
	ErrMsgGetStateFailed   = "Failed to get player state"
	ErrMsgResetDemoFailed  = "Failed to reset demo"
	ErrMsgPrestigeUpFailed = "Failed to prestige"

	// Inventory operation error messages
	ErrMsgGetInventoryFailed = "Failed to get inventory"
	ErrMsgCashOutFailed      = "Failed to cash out item"
	ErrMsgShipItemFailed     = "Failed to ship item"

	// Market operation error messages
	ErrMsgGetListingsFailed   = "Failed to get listings"
	ErrMsgListItemFailed      = "Failed to list item"
	ErrMsgCancelListingFailed = "Failed to cancel listing"
	ErrMsgBuyListingFailed    = "Failed to buy listing"
	ErrMsgGetAuctionsFailed   = "Failed to get auctions"
	ErrMsgPlaceBidFailed      = "Failed to place bid"
	ErrMsgSettleAuctionFailed = "Failed to settle auction"

	// Quest operation error messages
	ErrMsgGetQuestsFailed = "Failed to get quests"

	// Economy operation error messages
	ErrMsgGetLedgerFailed  = "Failed to get ledger"
	ErrMsgGetBalanceFailed = "Failed to get balance"
	ErrMsgAddCreditsFailed = "Failed to add credits"
)

// Success messages returned in JSON responses
const (
	MsgDemoResetSuccess      = "Demo reset"
	MsgTutorialSeenSuccess   = "Tutorial marked as seen"
	MsgListingCancelled      = "Listing cancelled"
	MsgNotificationDismissed = "Notification dismissed"
)
