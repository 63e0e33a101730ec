package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dragon-ascent/internal/core"
	"github.com/vovakirdan/dragon-ascent/internal/games/dragon"
	"github.com/vovakirdan/dragon-ascent/internal/platform/tui"
	"github.com/vovakirdan/dragon-ascent/internal/platform/window"
	"github.com/vovakirdan/dragon-ascent/internal/registry"
)

var (
	flagWindow    bool
	flagHoldTicks int
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Fly a session",
	Long: `Start flying the given variant (default: dragon).

Controls:
  W/A/S/D, arrows  - Fly forward, left, back, right
  Space / C        - Climb / dive (Shift in a window)
  F, left click    - Breathe a fireball at the pointer
  Mouse            - Aim
  Enter            - Start or restart
  P                - Pause
  Esc              - Pause, then back (terminal) / quit (window)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  dragon play
  dragon play dragon_classic
  dragon play --difficulty hard
  dragon play --window
  dragon play --config ./my-dragon.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Open a desktop window instead of using the terminal")
	playCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a terminal key stays held after its last repeat")
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := dragon.IDRich
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'dragon list' to see them", gameID)
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := configureGame(logger); err != nil {
		return err
	}

	if flagWindow {
		cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
		return window.Run(gameID, cfg, window.Options{Logger: logger})
	}

	result, err := tui.Run(gameID, terminalConfig(), tui.Options{
		HoldTicks: flagHoldTicks,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	if result.State.Phase == core.PhaseGameOver {
		fmt.Printf("Final score: %d (wave %d)\n", result.State.Score, result.State.Wave)
	}
	return nil
}
