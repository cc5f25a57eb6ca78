package engine

import (
	"strconv"
	"strings"

	"go-pairs/internal/board"
)

// parsePair reads a pair of integers from a line of the form "x,y" or "x;y"
// with any amount of surrounding whitespace. Extra parts beyond the first
// two are ignored.
func parsePair(s string) (board.Coord, error) {
	if s == "" {
		return board.Coord{}, ErrEmptyInput
	}

	parts := strings.Split(strings.ReplaceAll(s, ";", ","), ",")
	if len(parts) < 2 {
		return board.Coord{}, ErrUnparsableInput
	}

	// Components are bounded to 32 bits so later arithmetic on them cannot
	// overflow; out-of-range numbers are as unparsable as non-numbers.
	x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 32)
	if err != nil {
		return board.Coord{}, ErrUnparsableInput
	}
	y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 32)
	if err != nil {
		return board.Coord{}, ErrUnparsableInput
	}

	return board.Coord{X: int(x), Y: int(y)}, nil
}

// parseDimensions interprets the line as the size of a new board. Accepted
// values are used directly as width and height.
func parseDimensions(s string) (board.Coord, error) {
	p, err := parsePair(s)
	if err != nil {
		return board.Coord{}, err
	}

	if p.X <= 0 {
		return board.Coord{}, &board.UnderflowError{Axis: 'x'}
	}
	if p.Y <= 0 {
		return board.Coord{}, &board.UnderflowError{Axis: 'y'}
	}

	// Each cell needs a pair partner and each pair needs its own card type.
	// The product is taken in 64 bits; the components fit 32, so it cannot wrap.
	if int64(p.X)*int64(p.Y) > int64(board.MaxCells) {
		return board.Coord{}, &NotEnoughCardTypesError{Max: board.MaxCells}
	}
	if (p.X*p.Y)%2 != 0 {
		return board.Coord{}, ErrOddBoardCells
	}

	return p, nil
}

// parseCoords interprets the line as the 1-indexed position of a card and
// converts it to the internal 0-indexed form, bounds-checked against the
// current board.
func (e *Engine) parseCoords(s string) (board.Coord, error) {
	p, err := parsePair(s)
	if err != nil {
		return board.Coord{}, err
	}

	c := board.Coord{X: p.X - 1, Y: p.Y - 1}
	if _, err := e.idx.Index(c); err != nil {
		return board.Coord{}, err
	}
	return c, nil
}

// parseYesNo reads a yes/no answer. An empty line defaults to no.
func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y":
		return true, nil
	case "n", "":
		return false, nil
	default:
		return false, ErrUnparsableInput
	}
}
