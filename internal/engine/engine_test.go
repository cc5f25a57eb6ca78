package engine

import (
	"errors"
	"testing"

	"go-pairs/internal/board"
)

// noShuffle keeps the coordinate enumeration in row-major order, so on a
// board with n cells, cell i and cell i+n/2 share a glyph. On a 2x2 board
// the left column is one pair and the right column the other.
type noShuffle struct{}

func (noShuffle) Shuffle(n int, swap func(i, j int)) {}

// newTestEngine advances a fresh engine into the guess state on a board of
// the given dimensions.
func newTestEngine(t *testing.T, dims string) *Engine {
	t.Helper()
	e := New(noShuffle{})
	e.Advance("") // welcome ignores input
	e.Advance(dims)
	if e.State() != StateGuess {
		t.Fatalf("engine in state %q after dimensions %q, expected %q", e.State(), dims, StateGuess)
	}
	return e
}

func TestEngine_WelcomeIgnoresInput(t *testing.T) {
	e := New(noShuffle{})

	if e.State() != StateWelcome {
		t.Fatalf("initial state = %q, expected %q", e.State(), StateWelcome)
	}

	e.Advance("complete nonsense")
	if e.State() != StateSetDimensions {
		t.Errorf("state after first input = %q, expected %q", e.State(), StateSetDimensions)
	}
	if e.Err() != nil {
		t.Errorf("unexpected error after welcome: %v", e.Err())
	}
}

func TestEngine_SetDimensions_InvalidStays(t *testing.T) {
	e := New(noShuffle{})
	e.Advance("")

	e.Advance("3,3")
	if e.State() != StateSetDimensions {
		t.Errorf("state after odd dimensions = %q, expected %q", e.State(), StateSetDimensions)
	}
	if !errors.Is(e.Err(), ErrOddBoardCells) {
		t.Errorf("error = %v, expected ErrOddBoardCells", e.Err())
	}

	// Corrected input succeeds and clears the error.
	e.Advance("2,2")
	if e.State() != StateGuess {
		t.Errorf("state after valid dimensions = %q, expected %q", e.State(), StateGuess)
	}
	if e.Err() != nil {
		t.Errorf("error not cleared after valid input: %v", e.Err())
	}

	snap := e.Snapshot()
	if snap.Width != 2 || snap.Height != 2 {
		t.Errorf("board is %dx%d, expected 2x2", snap.Width, snap.Height)
	}
}

func TestEngine_SetDimensions_HugeComponentsStay(t *testing.T) {
	e := New(noShuffle{})
	e.Advance("")

	// Components whose product wraps a native int must never reach board
	// construction; the engine stays put and reports a recoverable error.
	e.Advance("4000000000,4000000000")
	if e.State() != StateSetDimensions {
		t.Errorf("state after huge dimensions = %q, expected %q", e.State(), StateSetDimensions)
	}
	if !errors.Is(e.Err(), ErrUnparsableInput) {
		t.Errorf("error = %v, expected ErrUnparsableInput", e.Err())
	}

	e.Advance("2,2")
	if e.State() != StateGuess {
		t.Errorf("state after valid dimensions = %q, expected %q", e.State(), StateGuess)
	}
}

func TestEngine_GuessFlow_Match(t *testing.T) {
	e := newTestEngine(t, "2,2")

	e.Advance("1,1")
	if e.State() != StateGuess {
		t.Fatalf("state after first pick = %q, expected %q", e.State(), StateGuess)
	}

	e.Advance("1,2")
	if e.State() != StateCorrectGuess {
		t.Fatalf("state after matching pick = %q, expected %q", e.State(), StateCorrectGuess)
	}

	// The feedback frame consumes the next driving call.
	e.Advance("")
	if e.State() != StateGuess {
		t.Fatalf("state after auto-advance = %q, expected %q", e.State(), StateGuess)
	}

	snap := e.Snapshot()
	if snap.Guesses != 1 {
		t.Errorf("guesses = %d, expected 1", snap.Guesses)
	}
	if snap.CorrectPairs != 1 {
		t.Errorf("correct pairs = %d, expected 1", snap.CorrectPairs)
	}
	if snap.Cells[0].Status != CellDiscovered {
		t.Errorf("cell (0,0) status = %v, expected discovered", snap.Cells[0].Status)
	}
	if snap.Cells[2].Status != CellDiscovered {
		t.Errorf("cell (0,1) status = %v, expected discovered", snap.Cells[2].Status)
	}
}

func TestEngine_GuessFlow_Mismatch(t *testing.T) {
	e := newTestEngine(t, "2,2")

	e.Advance("1,1")
	e.Advance("2,1")
	if e.State() != StateIncorrectGuess {
		t.Fatalf("state after mismatched pick = %q, expected %q", e.State(), StateIncorrectGuess)
	}

	e.Advance("")
	if e.State() != StateGuess {
		t.Fatalf("state after auto-advance = %q, expected %q", e.State(), StateGuess)
	}

	snap := e.Snapshot()
	if snap.Guesses != 1 {
		t.Errorf("guesses = %d, expected 1", snap.Guesses)
	}
	if snap.CorrectPairs != 0 {
		t.Errorf("correct pairs = %d, expected 0", snap.CorrectPairs)
	}
	for i, cell := range snap.Cells {
		if cell.Status != CellHidden {
			t.Errorf("cell %d status = %v, expected hidden after mismatch", i, cell.Status)
		}
	}

	// Both cells are revealable again.
	e.Advance("1,1")
	if e.Err() != nil {
		t.Errorf("re-revealing after mismatch failed: %v", e.Err())
	}
}

func TestEngine_AlreadyRevealed(t *testing.T) {
	e := newTestEngine(t, "2,2")

	e.Advance("1,1")
	e.Advance("1,1")

	var already *AlreadyRevealedError
	if !errors.As(e.Err(), &already) {
		t.Fatalf("error = %v, expected AlreadyRevealedError", e.Err())
	}
	if already.X != 1 || already.Y != 1 {
		t.Errorf("error coordinates = (%d,%d), expected 1-indexed (1,1)", already.X, already.Y)
	}
	if e.State() != StateGuess {
		t.Errorf("state = %q, expected %q", e.State(), StateGuess)
	}

	// The turn still resolves with a different second pick.
	e.Advance("1,2")
	if e.State() != StateCorrectGuess {
		t.Errorf("state = %q, expected %q", e.State(), StateCorrectGuess)
	}
}

func TestEngine_AlreadyDiscovered(t *testing.T) {
	e := newTestEngine(t, "2,2")

	e.Advance("1,1")
	e.Advance("1,2")
	e.Advance("")

	e.Advance("1,1")
	var already *AlreadyRevealedError
	if !errors.As(e.Err(), &already) {
		t.Fatalf("error = %v, expected AlreadyRevealedError for discovered cell", e.Err())
	}
}

func TestEngine_GuessInputErrors(t *testing.T) {
	e := newTestEngine(t, "4,4")

	tests := []struct {
		input string
		check func(error) bool
		name  string
	}{
		{"", func(err error) bool { return errors.Is(err, ErrEmptyInput) }, "empty"},
		{"nope", func(err error) bool { return errors.Is(err, ErrUnparsableInput) }, "unparsable"},
		{"5,1", func(err error) bool {
			var overflow *board.OverflowError
			return errors.As(err, &overflow)
		}, "overflow"},
		{"0,1", func(err error) bool {
			var underflow *board.UnderflowError
			return errors.As(err, &underflow)
		}, "underflow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.Advance(tt.input)
			if !tt.check(e.Err()) {
				t.Errorf("Advance(%q) error = %v", tt.input, e.Err())
			}
			if e.State() != StateGuess {
				t.Errorf("state = %q, expected %q", e.State(), StateGuess)
			}
		})
	}
}

func TestEngine_VictoryAndReplay(t *testing.T) {
	e := newTestEngine(t, "2,2")

	// Clear the whole board: left column pair, then right column pair.
	e.Advance("1,1")
	e.Advance("1,2")
	e.Advance("")
	e.Advance("2,1")
	e.Advance("2,2")
	if e.State() != StateCorrectGuess {
		t.Fatalf("state = %q, expected %q", e.State(), StateCorrectGuess)
	}

	// Final auto-advance lands in victory, not guess.
	e.Advance("")
	if e.State() != StateVictory {
		t.Fatalf("state = %q, expected %q", e.State(), StateVictory)
	}
	if !e.IsRunning() {
		t.Error("IsRunning() = false in victory, expected true")
	}

	// Unparsable answer keeps the engine in victory.
	e.Advance("maybe")
	if e.State() != StateVictory {
		t.Errorf("state = %q, expected %q", e.State(), StateVictory)
	}
	if !errors.Is(e.Err(), ErrUnparsableInput) {
		t.Errorf("error = %v, expected ErrUnparsableInput", e.Err())
	}

	// Replay returns to dimension setup; the next board is rebuilt fresh.
	e.Advance("y")
	if e.State() != StateSetDimensions {
		t.Fatalf("state = %q, expected %q", e.State(), StateSetDimensions)
	}
	e.Advance("2,2")
	snap := e.Snapshot()
	if snap.CorrectPairs != 0 {
		t.Errorf("correct pairs after replay = %d, expected 0", snap.CorrectPairs)
	}
	// The guess counter is cumulative across replays.
	if snap.Guesses != 2 {
		t.Errorf("guesses after replay = %d, expected 2", snap.Guesses)
	}
}

func TestEngine_VictoryExit(t *testing.T) {
	e := newTestEngine(t, "2,2")
	e.Advance("1,1")
	e.Advance("1,2")
	e.Advance("")
	e.Advance("2,1")
	e.Advance("2,2")
	e.Advance("")

	// Empty answer defaults to no.
	e.Advance("")
	if e.State() != StateExit {
		t.Fatalf("state = %q, expected %q", e.State(), StateExit)
	}
	if e.IsRunning() {
		t.Error("IsRunning() = true in exit, expected false")
	}

	// Exit is terminal: further input is a no-op.
	e.Advance("y")
	if e.State() != StateExit {
		t.Errorf("state after input in exit = %q, expected %q", e.State(), StateExit)
	}
	if e.Err() != nil {
		t.Errorf("unexpected error in exit: %v", e.Err())
	}
}

func TestEngine_EndToEnd(t *testing.T) {
	e := New(noShuffle{})
	if e.State() != StateWelcome {
		t.Fatalf("state = %q, expected %q", e.State(), StateWelcome)
	}

	e.Advance("anything")
	if e.State() != StateSetDimensions {
		t.Fatalf("state = %q, expected %q", e.State(), StateSetDimensions)
	}

	e.Advance("2,2")
	if e.State() != StateGuess {
		t.Fatalf("state = %q, expected %q", e.State(), StateGuess)
	}
	snap := e.Snapshot()
	if len(snap.Cells) != 4 {
		t.Fatalf("snapshot has %d cells, expected 4", len(snap.Cells))
	}
	for i, cell := range snap.Cells {
		if cell.Status != CellHidden {
			t.Errorf("cell %d status = %v, expected hidden on a fresh board", i, cell.Status)
		}
	}

	e.Advance("1,1")
	e.Advance("1,2")
	if e.State() != StateCorrectGuess {
		t.Fatalf("state = %q, expected %q", e.State(), StateCorrectGuess)
	}
	e.Advance("")
	e.Advance("2,1")
	e.Advance("2,2")
	e.Advance("")
	if e.State() != StateVictory {
		t.Fatalf("state = %q, expected %q", e.State(), StateVictory)
	}

	// All cells discovered: exactly two symbols, each appearing twice.
	counts := make(map[rune]int)
	for _, cell := range e.Snapshot().Cells {
		counts[cell.Symbol]++
	}
	if len(counts) != 2 {
		t.Errorf("board holds %d distinct symbols, expected 2", len(counts))
	}
	for sym, n := range counts {
		if n != 2 {
			t.Errorf("symbol %q appears %d times, expected 2", sym, n)
		}
	}

	e.Advance("n")
	if e.State() != StateExit {
		t.Fatalf("state = %q, expected %q", e.State(), StateExit)
	}
	if e.IsRunning() {
		t.Error("IsRunning() = true after exit, expected false")
	}
}
