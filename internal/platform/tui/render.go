package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

// ansiCodes maps core.Color to terminal palette indices.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// palette holds a full-strength and a faint style per colour.
type palette struct {
	full  map[core.Color]lipgloss.Style
	faint map[core.Color]lipgloss.Style
}

func newPalette() palette {
	p := palette{
		full:  map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()},
		faint: map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle().Faint(true)},
	}
	for c, code := range ansiCodes {
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		p.full[c] = st
		p.faint[c] = st.Faint(true)
	}
	return p
}

// style returns the style for a cell, unknown colours falling back to default.
func (p palette) style(c core.Cell) lipgloss.Style {
	table := p.full
	if c.Faint {
		table = p.faint
	}
	if st, ok := table[c.Color]; ok {
		return st
	}
	return table[core.ColorDefault]
}

var playPalette = newPalette()

// RenderScreen converts the play area to styled text. Cells sharing colour and
// tone become one styled run; runs of empty sky are written bare.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	run := make([]rune, 0, s.Width())
	var head core.Cell
	flush := func() {
		if len(run) == 0 {
			return
		}
		text := string(run)
		if strings.TrimSpace(text) == "" {
			sb.WriteString(text)
		} else {
			sb.WriteString(playPalette.style(head).Render(text))
		}
		run = run[:0]
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range s.Width() {
			cell := s.Get(x, y)
			if len(run) > 0 && (cell.Color != head.Color || cell.Faint != head.Faint) {
				flush()
			}
			if len(run) == 0 {
				head = cell
			}
			run = append(run, cell.Rune)
		}
		flush()
	}
	return sb.String()
}
