package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Player errors
	ErrMsgPlayerNotFound = "player not found"

	// Ownership errors
	ErrMsgNotOwner = "not owned by caller"

	// Farm errors
	ErrMsgFloorNotFound  = "floor not found"
	ErrMsgPlotNotFound   = "plot not found"
	ErrMsgPlotHasPot     = "plot already has a pot"
	ErrMsgPlotNoPot      = "plot has no pot"
	ErrMsgPlotNotEmpty   = "plot is not empty"
	ErrMsgPlotNotMature  = "plot is not mature"
	ErrMsgPlotLocked     = "plot is locked"
	ErrMsgNoTrapCapacity = "no trap capacity available"
	ErrMsgSelfSteal      = "cannot steal from yourself"

	// Inventory errors
	ErrMsgSeedNotFound  = "seed not found"
	ErrMsgPotNotFound   = "pot not found"
	ErrMsgSeedMature    = "seed is already mature"
	ErrMsgSeedNotMature = "seed is not mature"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgClassNotFound     = "unknown seed class"

	// Market errors
	ErrMsgListingNotFound    = "listing not found"
	ErrMsgListingNotOpen     = "listing is not open"
	ErrMsgAskPriceOutOfRange = "ask price out of range"

	// Gacha errors
	ErrMsgNotEnoughMaterials = "not enough materials"

	// Concurrency errors
	ErrMsgConflict = "concurrent modification, retry"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Player errors
	ErrPlayerNotFound = errors.New(ErrMsgPlayerNotFound)

	// Ownership errors
	ErrNotOwner = errors.New(ErrMsgNotOwner)

	// Farm errors
	ErrFloorNotFound  = errors.New(ErrMsgFloorNotFound)
	ErrPlotNotFound   = errors.New(ErrMsgPlotNotFound)
	ErrPlotHasPot     = errors.New(ErrMsgPlotHasPot)
	ErrPlotNoPot      = errors.New(ErrMsgPlotNoPot)
	ErrPlotNotEmpty   = errors.New(ErrMsgPlotNotEmpty)
	ErrPlotNotMature  = errors.New(ErrMsgPlotNotMature)
	ErrPlotLocked     = errors.New(ErrMsgPlotLocked)
	ErrNoTrapCapacity = errors.New(ErrMsgNoTrapCapacity)
	ErrSelfSteal      = errors.New(ErrMsgSelfSteal)

	// Inventory errors
	ErrSeedNotFound  = errors.New(ErrMsgSeedNotFound)
	ErrPotNotFound   = errors.New(ErrMsgPotNotFound)
	ErrSeedMature    = errors.New(ErrMsgSeedMature)
	ErrSeedNotMature = errors.New(ErrMsgSeedNotMature)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrClassNotFound     = errors.New(ErrMsgClassNotFound)

	// Market errors
	ErrListingNotFound    = errors.New(ErrMsgListingNotFound)
	ErrListingNotOpen     = errors.New(ErrMsgListingNotOpen)
	ErrAskPriceOutOfRange = errors.New(ErrMsgAskPriceOutOfRange)

	// Gacha errors
	ErrNotEnoughMaterials = errors.New(ErrMsgNotEnoughMaterials)

	// Concurrency errors - retryable, distinct from plain insufficient materials
	ErrConflict = errors.New(ErrMsgConflict)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// InsufficientMaterialsError reports required vs available mature seeds so the
// caller can react. errors.Is matches ErrNotEnoughMaterials.
type InsufficientMaterialsError struct {
	Class     string
	Required  int
	Available int
}

func (e *InsufficientMaterialsError) Error() string {
	return fmt.Sprintf("%s: need %d mature %q seeds, have %d", ErrMsgNotEnoughMaterials, e.Required, e.Class, e.Available)
}

func (e *InsufficientMaterialsError) Unwrap() error {
	return ErrNotEnoughMaterials
}

// InsufficientFundsError reports required vs available coins.
// errors.Is matches ErrInsufficientFunds.
type InsufficientFundsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: need %d coins, have %d", ErrMsgInsufficientFunds, e.Required, e.Available)
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}
