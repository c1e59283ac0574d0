package game

import "errors"

var (
	// ErrInvalidSelection reports a command the rules reject: a pairing at its
	// usage cap or a cell that is not on the board. No state is changed.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrIncompleteScore reports a value that cannot be computed yet: a path
	// whose tail has no value, or a pairing asked for before both dice are thrown.
	ErrIncompleteScore = errors.New("incomplete score")
)
