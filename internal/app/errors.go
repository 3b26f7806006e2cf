// internal/app/errors.go
package app

import "errors"

// Player-facing errors. All are recoverable status values for the UI
// layer; none aborts the tick loop.
var (
	// ErrInvalidPlacement covers placement geometry (on the track, on top
	// of another tower, off the board) and insufficient funds at placement.
	ErrInvalidPlacement = errors.New("invalid tower placement")
	// ErrInsufficientFunds is returned by upgrades the player cannot afford.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrMaxTierReached is returned when a tower is already fully upgraded.
	ErrMaxTierReached = errors.New("tower is at max level")
)
