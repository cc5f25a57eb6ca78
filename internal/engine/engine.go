// Package engine drives the matching game: a finite state machine over the
// turn sequence, the discovered/revealed bookkeeping and the parsing of
// user input lines. All mutation funnels through Advance; renderers only
// ever see an immutable Snapshot.
package engine

import (
	"context"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/looplab/fsm"

	"go-pairs/internal/board"
	"go-pairs/internal/stats"
)

// State is one of the fixed set of engine states.
type State string

const (
	// StateWelcome shows the welcome screen.
	StateWelcome State = "welcome"
	// StateSetDimensions prompts the user for the board size.
	StateSetDimensions State = "set_dimensions"
	// StateGuess prompts the user to pick a card to reveal.
	StateGuess State = "guess"
	// StateCorrectGuess gives feedback about a correct guess for one frame.
	StateCorrectGuess State = "correct_guess"
	// StateIncorrectGuess gives feedback about an incorrect guess for one frame.
	StateIncorrectGuess State = "incorrect_guess"
	// StateVictory shows the stats and asks whether to play again.
	StateVictory State = "victory"
	// StateExit ends the game.
	StateExit State = "exit"
)

const (
	eventBegin        = "begin"
	eventBoardReady   = "boardReady"
	eventPairMatched  = "pairMatched"
	eventPairMissed   = "pairMissed"
	eventResume       = "resume"
	eventBoardCleared = "boardCleared"
	eventReplay       = "replay"
	eventQuit         = "quit"
)

// Engine is the single owned aggregate of all game state.
type Engine struct {
	fsm        *fsm.FSM
	shuf       board.Shuffler
	board      board.Board
	idx        board.Indexer
	discovered *bitset.BitSet
	revealed1  *board.Coord
	revealed2  *board.Coord
	score      stats.Tracker
	input      string
	err        error
}

// New creates an engine in the welcome state with an empty board. The
// shuffler is reused for every board built during the engine's lifetime.
func New(shuf board.Shuffler) *Engine {
	e := &Engine{
		shuf:       shuf,
		board:      board.Empty(),
		idx:        board.NewIndexer(0, 0),
		discovered: bitset.New(0),
	}
	e.fsm = fsm.NewFSM(
		string(StateWelcome),
		transitions(),
		callbacks(e),
	)
	return e
}

func transitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: eventBegin, Src: []string{string(StateWelcome)}, Dst: string(StateSetDimensions)},
		{Name: eventBoardReady, Src: []string{string(StateSetDimensions)}, Dst: string(StateGuess)},
		{Name: eventPairMatched, Src: []string{string(StateGuess)}, Dst: string(StateCorrectGuess)},
		{Name: eventPairMissed, Src: []string{string(StateGuess)}, Dst: string(StateIncorrectGuess)},
		{Name: eventResume, Src: []string{string(StateCorrectGuess), string(StateIncorrectGuess)}, Dst: string(StateGuess)},
		{Name: eventBoardCleared, Src: []string{string(StateCorrectGuess)}, Dst: string(StateVictory)},
		{Name: eventReplay, Src: []string{string(StateVictory)}, Dst: string(StateSetDimensions)},
		{Name: eventQuit, Src: []string{string(StateVictory)}, Dst: string(StateExit)},
	}
}

func callbacks(e *Engine) map[string]fsm.Callback {
	return fsm.Callbacks{
		// Board, indexer and discovered set are recreated together whenever
		// dimensions are established: at first start and after each replay.
		"before_" + eventBoardReady: func(ctx context.Context, ev *fsm.Event) {
			dims := ev.Args[0].(board.Coord)
			e.idx = board.NewIndexer(dims.X, dims.Y)
			e.board = board.New(dims.X, dims.Y, e.shuf)
			e.discovered = bitset.New(uint(e.idx.Cells()))
		},
	}
}

// State returns the current state tag.
func (e *Engine) State() State {
	return State(e.fsm.Current())
}

// IsRunning reports whether the game loop should keep consuming input.
func (e *Engine) IsRunning() bool {
	return e.State() != StateExit
}

// Err returns the error recorded by the most recent Advance, if any.
func (e *Engine) Err() error {
	return e.err
}

// Advance consumes one line of user input and runs a single update step to
// completion. A failed step leaves the state unchanged and records the
// error; the next call clears it again.
func (e *Engine) Advance(line string) {
	e.input = strings.TrimSpace(line)
	e.err = nil
	ctx := context.Background()

	switch e.State() {
	case StateWelcome:
		// Any input starts the game.
		_ = e.fsm.Event(ctx, eventBegin)

	case StateSetDimensions:
		dims, err := parseDimensions(e.input)
		if err != nil {
			e.err = err
			return
		}
		_ = e.fsm.Event(ctx, eventBoardReady, dims)

	case StateGuess:
		c, err := e.parseCoords(e.input)
		if err != nil {
			e.err = err
			return
		}
		if e.isRevealed(c) || e.isDiscovered(c) {
			e.err = &AlreadyRevealedError{X: c.X + 1, Y: c.Y + 1}
			return
		}
		if e.canReveal() {
			e.setRevealed(c)
		}
		if !e.canReveal() {
			if e.revealedMatch() {
				_ = e.fsm.Event(ctx, eventPairMatched)
			} else {
				_ = e.fsm.Event(ctx, eventPairMissed)
			}
		}

	case StateCorrectGuess:
		// Auto-advance: the feedback frame has been shown, resolve the turn.
		e.setDiscovered(*e.revealed1)
		e.setDiscovered(*e.revealed2)
		e.score.RecordMatch()
		e.clearRevealed()
		if e.allDiscovered() {
			_ = e.fsm.Event(ctx, eventBoardCleared)
		} else {
			_ = e.fsm.Event(ctx, eventResume)
		}

	case StateIncorrectGuess:
		e.score.RecordMismatch()
		e.clearRevealed()
		_ = e.fsm.Event(ctx, eventResume)

	case StateVictory:
		again, err := parseYesNo(e.input)
		if err != nil {
			e.err = err
			return
		}
		if again {
			_ = e.fsm.Event(ctx, eventReplay)
		} else {
			_ = e.fsm.Event(ctx, eventQuit)
		}

	case StateExit:
		// Terminal state: an explicit self-loop, not a fallthrough.
	}
}

func (e *Engine) setDiscovered(c board.Coord) {
	e.discovered.Set(uint(e.idx.Unchecked(c)))
}

func (e *Engine) isDiscovered(c board.Coord) bool {
	return e.discovered.Test(uint(e.idx.Unchecked(c)))
}

func (e *Engine) allDiscovered() bool {
	return e.discovered.Count() == uint(e.idx.Cells())
}

// canReveal reports whether a revealed slot is still free this turn.
func (e *Engine) canReveal() bool {
	return e.revealed1 == nil || e.revealed2 == nil
}

// setRevealed fills the first free slot; revealed1 is always taken first.
func (e *Engine) setRevealed(c board.Coord) {
	if e.revealed1 == nil {
		e.revealed1 = &c
	} else {
		e.revealed2 = &c
	}
}

func (e *Engine) clearRevealed() {
	e.revealed1 = nil
	e.revealed2 = nil
}

func (e *Engine) isRevealed(c board.Coord) bool {
	if e.revealed1 != nil && *e.revealed1 == c {
		return true
	}
	if e.revealed2 != nil && *e.revealed2 == c {
		return true
	}
	return false
}

// revealedMatch compares the cards in the two filled slots. Only called
// once both slots hold validated coordinates.
func (e *Engine) revealedMatch() bool {
	return e.board.CardAt(*e.revealed1) == e.board.CardAt(*e.revealed2)
}
