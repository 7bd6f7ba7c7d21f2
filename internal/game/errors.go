// internal/game/errors.go
package game

import "errors"

// Recoverable player errors. Both leave the turn state unchanged; the caller
// re-prompts and tries again.
var (
	// ErrInvalidSelection is returned when the chosen dice are out of bounds,
	// duplicated, not on the eligible list, or score zero.
	ErrInvalidSelection = errors.New("selection is not a scoring subset of the roll")

	// ErrIllegalBank is returned when a card's gating condition forbids
	// banking (MustBust, or DoubleTrouble before the second fill).
	ErrIllegalBank = errors.New("banking is not allowed")
)
