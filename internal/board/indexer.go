package board

import "fmt"

// Coord identifies a single cell on the board. Coordinates are 0-indexed
// internally; conversion from the user's 1-indexed input happens in the
// engine's parsers.
type Coord struct {
	X, Y int
}

// UnderflowError reports a coordinate or dimension below the valid lower
// bound on the named axis.
type UnderflowError struct {
	Axis rune
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("%c coordinate too small. Minimum possible value is 1.", e.Axis)
}

// OverflowError reports a coordinate beyond the valid upper bound on the
// named axis.
type OverflowError struct {
	Axis rune
	Max  int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%c coordinate too large. Maximum possible value is %d.", e.Axis, e.Max)
}

// Indexer converts 2D coordinates into 1D slice indices for a board of the
// stored dimensions.
type Indexer struct {
	Width, Height int
}

// NewIndexer creates an indexer for the given column/row counts.
func NewIndexer(width, height int) Indexer {
	return Indexer{Width: width, Height: height}
}

// Index converts coordinates into a slice index with bounds checking.
func (ix Indexer) Index(c Coord) (int, error) {
	if c.X < 0 {
		return 0, &UnderflowError{Axis: 'x'}
	}
	if c.Y < 0 {
		return 0, &UnderflowError{Axis: 'y'}
	}
	if c.X >= ix.Width {
		return 0, &OverflowError{Axis: 'x', Max: ix.Width}
	}
	if c.Y >= ix.Height {
		return 0, &OverflowError{Axis: 'y', Max: ix.Height}
	}
	return ix.Unchecked(c), nil
}

// Unchecked converts coordinates into a slice index without bounds checking.
// Only call it with coordinates that were already validated or generated by
// the indexer itself.
func (ix Indexer) Unchecked(c Coord) int {
	return c.Y*ix.Width + c.X
}

// Coords is the inverse of Unchecked.
func (ix Indexer) Coords(i int) Coord {
	return Coord{X: i % ix.Width, Y: i / ix.Width}
}

// Cells returns the total number of cells addressed by the indexer.
func (ix Indexer) Cells() int {
	return ix.Width * ix.Height
}

// Each calls fn for every coordinate in row-major order.
func (ix Indexer) Each(fn func(Coord)) {
	for i := 0; i < ix.Cells(); i++ {
		fn(ix.Coords(i))
	}
}
