package ludo

import "errors"

// Engine operations fail with one of these kinds; callers match them with
// errors.Is. Validation always precedes mutation, so a failed operation
// leaves the match untouched.
var (
	// ErrInvalidPlayerCount is returned when a match is created with fewer
	// than two or more than four players.
	ErrInvalidPlayerCount = errors.New("ludo: a match takes two to four players")

	// ErrIllegalStateTransition is returned when an operation is invoked
	// from a status that forbids it.
	ErrIllegalStateTransition = errors.New("ludo: operation not allowed in the current status")

	// ErrIllegalMove is returned when the requested token has no legal
	// destination for the current roll. This is an expected outcome, not
	// an exceptional one.
	ErrIllegalMove = errors.New("ludo: token has no legal destination for this roll")

	// ErrUnknownToken is returned when the referenced token does not
	// belong to the acting player.
	ErrUnknownToken = errors.New("ludo: token does not belong to the acting player")

	// ErrInvalidRoll is returned when an injected die value is outside 1-6.
	ErrInvalidRoll = errors.New("ludo: die value must be between 1 and 6")
)
