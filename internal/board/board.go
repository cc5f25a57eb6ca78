// Package board owns the card grid of the matching game: the glyph alphabet,
// the 2D-to-1D coordinate mapping and the random pairing of cards over cells.
package board

import "fmt"

// Card is a single card symbol. Two cells match iff their Cards are equal.
type Card rune

// Shuffler permutes a sequence in place. *math/rand.Rand satisfies it, which
// is what production uses; tests inject a deterministic implementation to pin
// down the pairing.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// glyphs is the fixed card alphabet. Pairing consumes it in this order; only
// the position of a symbol on the board is random.
var glyphs = []Card{
	'☀', '☁', '★', '☇', '☈', '☉', '☊', '☋', '☌', '☍', '☎', '☔', '☕', '☗',
	'☘', '☙', '☚', '☛', '☝', '☠', '☡', '☢', '☣', '☤', '☥', '☦', '☧', '☩',
	'☫', '☬', '☭', '☮', '☯', '☼', '☿', '♀', '♁', '♂', '♃', '♄', '♅', '♆',
	'♇', '♈', '♉', '♊', '♋', '♌', '♍', '♎', '♏', '♐', '♑', '♒', '♓',
}

// MaxCells is the largest board area that can be filled with pairs from the
// glyph alphabet.
var MaxCells = 2 * len(glyphs)

// Glyph returns the i-th symbol of the card alphabet.
func Glyph(i int) Card {
	return glyphs[i]
}

// Board is an immutable-after-construction grid of cards.
type Board struct {
	idx   Indexer
	cards []Card
}

// New creates a board of the given dimensions and fills it with random card
// pairs. The engine's dimension parser validates user input before calling,
// so violated preconditions are caller bugs and panic.
func New(width, height int, shuf Shuffler) Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("board: non-positive dimensions %dx%d", width, height))
	}
	cells := width * height
	if cells%2 != 0 {
		panic(fmt.Sprintf("board: odd cell count %d", cells))
	}
	if cells > MaxCells {
		panic(fmt.Sprintf("board: %d cells exceeds maximum of %d", cells, MaxCells))
	}

	b := Board{
		idx:   NewIndexer(width, height),
		cards: make([]Card, cells),
	}

	coords := make([]Coord, 0, cells)
	b.idx.Each(func(c Coord) {
		coords = append(coords, c)
	})
	shuf.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})

	// Cell count is even, so the shuffled coordinates split cleanly in two.
	// The i-th coordinate of each half receives the i-th glyph.
	half := cells / 2
	for i := 0; i < half; i++ {
		b.cards[b.idx.Unchecked(coords[i])] = glyphs[i]
		b.cards[b.idx.Unchecked(coords[half+i])] = glyphs[i]
	}

	return b
}

// Empty creates the 0x0 board used before the first dimensions are set.
func Empty() Board {
	return Board{idx: NewIndexer(0, 0)}
}

// At returns the card at the given coordinates with bounds checking.
func (b Board) At(c Coord) (Card, error) {
	i, err := b.idx.Index(c)
	if err != nil {
		return 0, err
	}
	return b.cards[i], nil
}

// CardAt returns the card at the given coordinates without bounds checking.
func (b Board) CardAt(c Coord) Card {
	return b.cards[b.idx.Unchecked(c)]
}

// Indexer returns the indexer matching the board's dimensions.
func (b Board) Indexer() Indexer {
	return b.idx
}

// Width returns the number of columns.
func (b Board) Width() int {
	return b.idx.Width
}

// Height returns the number of rows.
func (b Board) Height() int {
	return b.idx.Height
}
