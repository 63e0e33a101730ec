// dragon flies Dragon's Ascent, a third-person wave shooter, in a terminal,
// a desktop window, over SSH or headless.
//
// Usage:
//
//	dragon list              - List available variants
//	dragon play [variant]    - Fly a session
//	dragon menu              - Pick a variant interactively
//	dragon serve             - Start SSH server for remote play
//	dragon simulate          - Run a headless autopilot session
//	dragon config dump       - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-ascent/internal/config"
	"github.com/vovakirdan/dragon-ascent/internal/games/dragon"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// Shared by play, menu and simulate
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Dragon's Ascent - fly a dragon through waves of enemies",
	Long: `Dragon's Ascent is a third-person shooter: steer a dragon, breathe
fireballs and survive escalating waves of scouts, fighters, bombers and elites.

Available commands:
  list      - Show the available variants
  play      - Fly a session in the terminal or a window
  menu      - Interactive variant picker
  serve     - Start SSH server for remote play
  simulate  - Run a headless autopilot session and print its summary
  config    - Inspect the configuration

Examples:
  dragon list
  dragon play
  dragon play dragon_classic --difficulty hard
  dragon play --window
  dragon serve --ssh :2222
  dragon simulate --ticks 36000 --seed 42`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// addGameFlags registers the flags that pick and tune the game config.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// newLogger builds the process logger. Interactive hosts own the terminal,
// so without --log-file they log nowhere; fallback is used otherwise.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "dragon",
	})
	return logger, closeFn, nil
}

// configureGame applies the shared game flags before any game is created.
func configureGame(logger *log.Logger) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	dragon.SetConfigPath(flagConfig)
	dragon.SetDifficultyPreset(flagDifficulty)
	dragon.SetLogger(logger)
	return nil
}
