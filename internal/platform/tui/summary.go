package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

// Summary layout constants
const (
	summaryLabelWidth = 16
	summaryValueWidth = 12
	summaryHeaderRows = 3 // Header, its border and one spare line
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("9")).
				MarginBottom(1)
	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	summaryHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// newSummaryTable builds the end-of-run table from summary lines.
func newSummaryTable(stats []core.Stat) table.Model {
	columns := []table.Column{
		{Title: "Stat", Width: summaryLabelWidth},
		{Title: "Value", Width: summaryValueWidth},
	}
	rows := make([]table.Row, len(stats))
	for i, s := range stats {
		rows[i] = table.Row{s.Label, s.Value}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+summaryHeaderRows),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)
	return t
}

// renderSummary renders the game-over panel centered in width x height.
func renderSummary(t table.Model, finalScore int, width, height int) string {
	title := summaryTitleStyle.Render(fmt.Sprintf("GAME OVER  ·  %d", finalScore))
	body := summaryBoxStyle.Render(t.View())
	hint := summaryHintStyle.Render("enter: fly again  esc: menu  q: quit")
	panel := lipgloss.JoinVertical(lipgloss.Center, title, body, hint)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
