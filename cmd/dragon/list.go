package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-ascent/internal/config"
	"github.com/vovakirdan/dragon-ascent/internal/core"
	"github.com/vovakirdan/dragon-ascent/internal/games/dragon"
	"github.com/vovakirdan/dragon-ascent/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long: `Shows every registered variant with the flight rules it resolves to,
after --config and --difficulty are applied.`,
	RunE: runList,
}

func init() {
	addGameFlags(listCmd)
}

// variantRow describes one registered variant.
type variantRow struct {
	ID, Title string
	Config    config.DragonConfig
	Known     bool // False when the factory is not a Dragon's Ascent game
}

// describeVariants resolves the effective config of every registered variant.
func describeVariants() []variantRow {
	var rows []variantRow
	for _, info := range registry.List() {
		row := variantRow{ID: info.ID, Title: info.Title}
		if created, err := registry.Create(info.ID, core.Outputs{}); err == nil {
			if g, ok := created.(*dragon.Game); ok {
				g.Reset(core.DefaultConfig())
				row.Config = g.Config()
				row.Known = true
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func writeVariants(w io.Writer, rows []variantRow) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "No variants available.")
		return
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		if !r.Known {
			cells = append(cells, []string{r.ID, r.Title, "-", "-", "-", "-", "-"})
			continue
		}
		c := r.Config
		cells = append(cells, []string{
			r.ID,
			r.Title,
			onOff(c.Homing.Enabled),
			onOff(c.Player.Bob.Enabled),
			fmt.Sprintf("%.0f%%", c.Player.BackFactor*100),
			fmt.Sprintf("%d ms", c.Timing.FirstWaveDelayMS),
			fmt.Sprintf("%d", len(c.Waves)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Title", "Homing", "Bobbing", "Reverse", "First wave", "Waves").
		Rows(cells...)
	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, "Run 'dragon play <id>' to fly.")
}

func runList(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	if err := configureGame(logger); err != nil {
		return err
	}
	writeVariants(os.Stdout, describeVariants())
	return nil
}
