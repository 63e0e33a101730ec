package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-ascent/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Esc during a flight pauses; Esc again returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q            - Quit

Examples:
  dragon menu
  dragon menu --fps 30
  dragon menu --difficulty normal`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
	menuCmd.Flags().IntVar(&flagHoldTicks, "hold-ticks", tui.DefaultHoldTicks, "Ticks a terminal key stays held after its last repeat")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := configureGame(logger); err != nil {
		return err
	}

	cfg := terminalConfig()
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config
		if menuResult.Quit || menuResult.GameID == "" {
			return nil
		}

		result, err := tui.Run(menuResult.GameID, cfg, tui.Options{
			HoldTicks: flagHoldTicks,
			Logger:    logger,
		})
		if err != nil {
			return fmt.Errorf("running game: %w", err)
		}
		if !result.BackToMenu {
			return nil
		}
	}
}
