// go-pairs is a terminal memory-matching game: a grid of face-down cards,
// two of each symbol. Reveal two cards per turn; matched pairs stay open.
//
// Usage:
//
//	go-pairs                 - Play in the TUI
//	go-pairs --plain         - Play with the plain line-mode renderer
//	go-pairs --seed 42       - Reproducible board layouts
//	go-pairs --config x.yaml - Custom theme/seed config
package main

import (
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"go-pairs/internal/config"
	"go-pairs/internal/engine"
	"go-pairs/internal/ui"
)

var (
	flagSeed   int64
	flagConfig string
	flagPlain  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "go-pairs",
})

var rootCmd = &cobra.Command{
	Use:   "go-pairs",
	Short: "Terminal memory-matching game",
	Long: `go-pairs deals a board of face-down card pairs. Each turn you pick two
cells by their 1-indexed coordinates ("x,y" or "x;y"); matching cards stay
revealed, mismatches flip back. Clear the whole board to win.`,
	Run: runGame,
}

func init() {
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = seed from current time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().BoolVar(&flagPlain, "plain", false, "Use the plain line renderer instead of the TUI")
}

func runGame(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("failed to load config", "err", err)
	}

	seed := cfg.Seed
	if flagSeed != 0 {
		seed = flagSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng := engine.New(rand.New(rand.NewSource(seed)))

	if flagPlain {
		runner := ui.NewPlainRunner(eng, cfg.Theme, os.Stdin, os.Stdout)
		if err := runner.Run(); err != nil {
			// Input acquisition failure is the one fatal condition.
			logger.Fatal("input failed", "err", err)
		}
		return
	}

	if _, err := tea.NewProgram(ui.NewModel(eng, cfg.Theme)).Run(); err != nil {
		logger.Fatal("failed to run program", "err", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
