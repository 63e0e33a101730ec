package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hudOverStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

// HUD implements core.HUD as a one-line status bar.
type HUD struct {
	score  int
	health int
	wave   int
	final  int
	over   bool
	bar    progress.Model
}

// NewHUD creates a HUD with a full health bar.
func NewHUD() *HUD {
	return &HUD{
		health: 100,
		bar: progress.New(
			progress.WithGradient("#FF0000", "#00FF00"),
			progress.WithoutPercentage(),
			progress.WithWidth(20),
		),
	}
}

func (h *HUD) UpdateScore(score int) {
	h.score = score
}

// UpdateHealth takes a percentage in [0,100].
func (h *HUD) UpdateHealth(percent int) {
	h.health = core.Clamp(percent, 0, 100)
	if h.health > 0 {
		h.over = false
	}
}

func (h *HUD) UpdateWave(wave int) {
	h.wave = wave
}

func (h *HUD) ShowGameOver(finalScore int) {
	h.final = finalScore
	h.over = true
}

// Score returns the last displayed score.
func (h *HUD) Score() int { return h.score }

// Health returns the last displayed health percentage.
func (h *HUD) Health() int { return h.health }

// Wave returns the last displayed wave ordinal.
func (h *HUD) Wave() int { return h.wave }

// GameOver returns the final score and whether a game-over was shown.
func (h *HUD) GameOver() (int, bool) { return h.final, h.over }

// View renders the status bar for the given terminal width.
func (h *HUD) View(width int) string {
	barWidth := width / 4
	if barWidth < 5 {
		barWidth = 5
	}
	if barWidth > 30 {
		barWidth = 30
	}
	h.bar.Width = barWidth

	left := hudLabelStyle.Render("SCORE ") + hudValueStyle.Render(fmt.Sprintf("%06d", h.score)) +
		hudLabelStyle.Render("  WAVE ") + hudValueStyle.Render(fmt.Sprintf("%d", h.wave))
	right := hudLabelStyle.Render("HP ") + h.bar.ViewAs(float64(h.health)/100) +
		hudValueStyle.Render(fmt.Sprintf(" %3d%%", h.health))
	if h.over {
		left += hudOverStyle.Render("  GAME OVER")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left + " " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

var _ core.HUD = (*HUD)(nil)
