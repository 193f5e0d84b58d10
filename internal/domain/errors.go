package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	// Lookup errors
	ErrMsgLootboxNotFound = "lootbox not found"
	ErrMsgSkinNotFound    = "skin not found"

	// Composition errors
	ErrMsgSkinNotInLootbox   = "skin is not present in lootbox"
	ErrMsgDuplicateName      = "name already exists"
	ErrMsgLootboxEmpty       = "lootbox is empty"
	ErrMsgInvalidDropRateSum = "drop rates must sum to 1"

	// Validation errors
	ErrMsgInvalidArgument = "invalid argument"

	// Store errors
	ErrMsgStoreFailure = "store did not confirm the operation"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookup errors
	ErrLootboxNotFound = errors.New(ErrMsgLootboxNotFound)
	ErrSkinNotFound    = errors.New(ErrMsgSkinNotFound)

	// Composition errors
	ErrSkinNotInLootbox   = errors.New(ErrMsgSkinNotInLootbox)
	ErrDuplicateName      = errors.New(ErrMsgDuplicateName)
	ErrLootboxEmpty       = errors.New(ErrMsgLootboxEmpty)
	ErrInvalidDropRateSum = errors.New(ErrMsgInvalidDropRateSum)

	// Validation errors
	ErrInvalidArgument = errors.New(ErrMsgInvalidArgument)

	// Store errors
	ErrStoreFailure = errors.New(ErrMsgStoreFailure)
)
