// Package ui contains the two front ends of the game: a Bubble Tea model
// and a plain line-mode runner. Both render exclusively from engine
// snapshots and never mutate engine state outside Advance.
package ui

import (
	"fmt"
	"strings"

	"go-pairs/internal/config"
	"go-pairs/internal/engine"
)

// BoardView renders the card grid. Hidden cells show the theme's hidden
// glyph, cells revealed this turn show their symbol plus a marker, and
// discovered cells show their symbol alone.
func BoardView(snap engine.Snapshot, theme config.Theme) string {
	var b strings.Builder
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			cell := snap.Cells[y*snap.Width+x]
			switch cell.Status {
			case engine.CellDiscovered:
				b.WriteString(string(cell.Symbol))
				b.WriteString("  ")
			case engine.CellRevealed:
				b.WriteString(string(cell.Symbol))
				b.WriteString(" ")
				b.WriteString(theme.RevealedMarker)
			default:
				b.WriteString(theme.HiddenGlyph)
				b.WriteString("  ")
			}
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

// ScoreView renders the total and correct guess counts.
func ScoreView(snap engine.Snapshot) string {
	return fmt.Sprintf("Guesses: %d | Correct guesses: %d\n", snap.Guesses, snap.CorrectPairs)
}

// StatsView renders the session stats shown on the victory screen.
func StatsView(snap engine.Snapshot) string {
	return fmt.Sprintf("Matches: %d | Misses: %d | Best streak: %d | Accuracy: %.0f%%\n",
		snap.Matches, snap.Mismatches, snap.BestStreak, snap.Accuracy*100)
}

// ErrorView renders the pending error message, or nothing.
func ErrorView(snap engine.Snapshot) string {
	if snap.Message == "" {
		return ""
	}
	return "(!) " + snap.Message + "\n"
}

// PromptFor returns the instruction line for a state.
func PromptFor(state engine.State) string {
	switch state {
	case engine.StateWelcome:
		return "Welcome! Press <Enter> to begin."
	case engine.StateSetDimensions:
		return "Set board dimensions (x, y)"
	case engine.StateGuess:
		return "Pick a card (x, y)"
	case engine.StateCorrectGuess:
		return "A match!"
	case engine.StateIncorrectGuess:
		return "Try again"
	case engine.StateVictory:
		return "Congratulations! Play again? (y / N)"
	default:
		return ""
	}
}
