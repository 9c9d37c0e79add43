package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgInvalidBet        = "invalid bet"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgAlreadyOwned      = "already owned"
	ErrMsgNotOwned          = "item not owned"
	ErrMsgLevelLocked       = "level requirement not met"
	ErrMsgSpinInFlight      = "a spin is already in flight"
	ErrMsgNoBetsPlaced      = "no bets placed"
)

// Common domain errors. Wrap with fmt.Errorf("%w: ...", domain.ErrXxx) for
// additional context; callers match with errors.Is.
var (
	// Bet placement errors
	ErrInvalidBet        = errors.New(ErrMsgInvalidBet)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrNoBetsPlaced      = errors.New(ErrMsgNoBetsPlaced)

	// Shop/outfit transaction errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)
	ErrAlreadyOwned = errors.New(ErrMsgAlreadyOwned)
	ErrNotOwned     = errors.New(ErrMsgNotOwned)
	ErrLevelLocked  = errors.New(ErrMsgLevelLocked)

	// Session errors
	ErrSpinInFlight = errors.New(ErrMsgSpinInFlight)
)
