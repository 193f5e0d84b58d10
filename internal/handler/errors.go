package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest = "Invalid request body"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidOffset     = "Invalid offset parameter"
	ErrMsgInvalidPrice      = "Invalid %s parameter"

	// Lootbox operation error messages
	ErrMsgCreateLootboxFailed    = "Failed to create lootbox"
	ErrMsgListLootboxesFailed    = "Failed to list lootboxes"
	ErrMsgGetContentsFailed      = "Failed to get lootbox contents"
	ErrMsgAddSkinsFailed         = "Failed to add skins to lootbox"
	ErrMsgRemoveLootboxFailed    = "Failed to remove lootbox"
	ErrMsgSetProbabilitiesFailed = "Failed to set lootbox probabilities"

	// Skin operation error messages
	ErrMsgListSkinsFailed = "Failed to list skins"
	ErrMsgGetSkinFailed   = "Failed to get skin"
)
