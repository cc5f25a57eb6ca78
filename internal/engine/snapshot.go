package engine

import "go-pairs/internal/board"

// CellStatus is the renderer-facing visibility of one cell.
type CellStatus int

const (
	CellHidden CellStatus = iota
	CellRevealed
	CellDiscovered
)

// String returns the string representation of a CellStatus.
func (cs CellStatus) String() string {
	switch cs {
	case CellHidden:
		return "hidden"
	case CellRevealed:
		return "revealed"
	case CellDiscovered:
		return "discovered"
	default:
		return "unknown"
	}
}

// Cell is one board position filtered through discovered/revealed
// visibility. Hidden cells do not carry their symbol.
type Cell struct {
	Symbol rune
	Status CellStatus
}

// Snapshot is the read-only view renderers consume. It is rebuilt from the
// engine on every call, so holding one across Advance calls never observes
// a partial update.
type Snapshot struct {
	State         State
	Width, Height int
	Cells         []Cell
	Guesses       int
	CorrectPairs  int
	Matches       int
	Mismatches    int
	BestStreak    int
	Accuracy      float64
	Message       string
	ShowPrompt    bool
	Running       bool
}

// Snapshot captures the current engine state for rendering.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:        e.State(),
		Width:        e.idx.Width,
		Height:       e.idx.Height,
		Guesses:      e.score.Guesses,
		CorrectPairs: int(e.discovered.Count()) / 2,
		Matches:      e.score.Matches,
		Mismatches:   e.score.Mismatches,
		BestStreak:   e.score.BestStreak,
		Accuracy:     e.score.Accuracy(),
		Running:      e.IsRunning(),
	}

	if e.err != nil {
		snap.Message = e.err.Error()
	}

	switch snap.State {
	case StateSetDimensions, StateGuess, StateVictory:
		snap.ShowPrompt = true
	}

	cells := make([]Cell, e.idx.Cells())
	e.idx.Each(func(c board.Coord) {
		i := e.idx.Unchecked(c)
		switch {
		case e.isDiscovered(c):
			cells[i] = Cell{Symbol: rune(e.board.CardAt(c)), Status: CellDiscovered}
		case e.isRevealed(c):
			cells[i] = Cell{Symbol: rune(e.board.CardAt(c)), Status: CellRevealed}
		default:
			cells[i] = Cell{Status: CellHidden}
		}
	})
	snap.Cells = cells

	return snap
}
