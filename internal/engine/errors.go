package engine

import (
	"errors"
	"fmt"
)

// Every parse/validation failure is one of the error kinds below (or a
// bounds error from the board package). All of them are recoverable: the
// engine stores the error for one render cycle and waits for corrected
// input. Messages are user-facing and printed verbatim by the renderers.

// ErrEmptyInput is returned when a value was required but the input line
// was empty or whitespace-only.
var ErrEmptyInput = errors.New("User input is required")

// ErrUnparsableInput is returned when the input does not match the expected
// pair or yes/no grammar.
var ErrUnparsableInput = errors.New("User input could not be parsed")

// ErrOddBoardCells is returned when the requested board area cannot be
// split into pairs.
var ErrOddBoardCells = errors.New("Number of board cells (horizontal size * vertical size) must be even")

// AlreadyRevealedError reports a coordinate that was already chosen this
// turn or already matched. Coordinates are 1-indexed, as the user typed them.
type AlreadyRevealedError struct {
	X, Y int
}

func (e *AlreadyRevealedError) Error() string {
	return fmt.Sprintf("Card at position (%d,%d) is already revealed.", e.X, e.Y)
}

// NotEnoughCardTypesError reports a requested board area exceeding twice the
// size of the card alphabet.
type NotEnoughCardTypesError struct {
	Max int
}

func (e *NotEnoughCardTypesError) Error() string {
	return fmt.Sprintf("Cannot create board with more than %d cells", e.Max)
}
