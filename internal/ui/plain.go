package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go-pairs/internal/config"
	"go-pairs/internal/engine"
)

// PlainRunner drives the engine with a blocking read-update-render loop on
// a line-oriented terminal, without any TUI framework.
type PlainRunner struct {
	engine *engine.Engine
	theme  config.Theme
	in     *bufio.Reader
	out    io.Writer
}

// NewPlainRunner creates a runner reading lines from in and writing frames
// to out.
func NewPlainRunner(e *engine.Engine, theme config.Theme, in io.Reader, out io.Writer) *PlainRunner {
	return &PlainRunner{
		engine: e,
		theme:  theme,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run renders frames and feeds one input line at a time to the engine until
// it reaches the terminal state. A read failure is fatal and returned to
// the caller; engine errors are not, they surface in the next frame.
func (r *PlainRunner) Run() error {
	r.renderFrame()
	for r.engine.IsRunning() {
		line, err := r.in.ReadString('\n')
		if err != nil {
			return fmt.Errorf("couldn't get input: %w", err)
		}
		r.engine.Advance(line)
		r.renderFrame()
	}
	return nil
}

func (r *PlainRunner) renderFrame() {
	fmt.Fprint(r.out, "\x1b[2J\x1b[1;1H")
	fmt.Fprint(r.out, RenderFrame(r.engine.Snapshot(), r.theme))
}

// RenderFrame produces the complete uncolored frame for a snapshot.
func RenderFrame(snap engine.Snapshot, theme config.Theme) string {
	var b strings.Builder

	switch snap.State {
	case engine.StateWelcome:
		b.WriteString(PromptFor(snap.State))
		b.WriteString("\n")
	case engine.StateSetDimensions:
		b.WriteString(ErrorView(snap))
		b.WriteString(PromptFor(snap.State))
		b.WriteString("\n> ")
	case engine.StateGuess:
		b.WriteString(ScoreView(snap))
		b.WriteString("\n")
		b.WriteString(BoardView(snap, theme))
		b.WriteString(ErrorView(snap))
		b.WriteString(PromptFor(snap.State))
		b.WriteString("\n> ")
	case engine.StateCorrectGuess, engine.StateIncorrectGuess:
		b.WriteString(ScoreView(snap))
		b.WriteString("\n")
		b.WriteString(BoardView(snap, theme))
		b.WriteString(PromptFor(snap.State))
		b.WriteString("\n")
	case engine.StateVictory:
		b.WriteString(ScoreView(snap))
		b.WriteString("\n")
		b.WriteString(BoardView(snap, theme))
		b.WriteString(StatsView(snap))
		b.WriteString(ErrorView(snap))
		b.WriteString(PromptFor(snap.State))
		b.WriteString("\n> ")
	}

	return b.String()
}
