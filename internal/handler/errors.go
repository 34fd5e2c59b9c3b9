package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidIDParam    = "Invalid %s parameter"

	// Farm operation error messages
	ErrMsgGetFarmFailed    = "Failed to get farm"
	ErrMsgPlacePotFailed   = "Failed to place pot"
	ErrMsgPlantFailed      = "Failed to plant seed"
	ErrMsgHarvestFailed    = "Failed to harvest"
	ErrMsgHarvestAllFailed = "Failed to harvest all"
	ErrMsgRemoveFailed     = "Failed to clear plot"
	ErrMsgLockFailed       = "Failed to update plot lock"
	ErrMsgStealFailed      = "Failed to steal"
	ErrMsgBuyFloorFailed   = "Failed to buy floor"
	ErrMsgBuyTrapFailed    = "Failed to buy traps"

	// Economy operation error messages
	ErrMsgCatalogFailed  = "Failed to get catalog"
	ErrMsgBuySeedFailed  = "Failed to buy seed"
	ErrMsgBuyPotFailed   = "Failed to buy pot"
	ErrMsgSellSeedFailed = "Failed to sell seed"

	// Market operation error messages
	ErrMsgBrowseFailed     = "Failed to browse listings"
	ErrMsgListSeedFailed   = "Failed to list seed"
	ErrMsgBuyListingFailed = "Failed to buy listing"

	// Breeding operation error messages
	ErrMsgBreedFailed = "Failed to breed seeds"

	// Gacha operation error messages
	ErrMsgGachaStateFailed   = "Failed to get gacha state"
	ErrMsgGachaRollFailed    = "Failed to roll gacha"
	ErrMsgGachaHistoryFailed = "Failed to get gacha history"

	// Player operation error messages
	ErrMsgRegisterFailed  = "Failed to register player"
	ErrMsgGetPlayerFailed = "Failed to get player"

	// View operation error messages
	ErrMsgGetViewFailed = "Failed to get player view"
)
