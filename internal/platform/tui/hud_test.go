package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

func TestHUDUpdates(t *testing.T) {
	h := NewHUD()
	if h.Health() != 100 {
		t.Errorf("new HUD health = %d, expected 100", h.Health())
	}

	h.UpdateScore(350)
	h.UpdateWave(3)
	h.UpdateHealth(140)
	if h.Score() != 350 || h.Wave() != 3 || h.Health() != 100 {
		t.Errorf("HUD = score %d wave %d health %d", h.Score(), h.Wave(), h.Health())
	}
	h.UpdateHealth(-10)
	if h.Health() != 0 {
		t.Errorf("health should clamp at 0, got %d", h.Health())
	}

	h.ShowGameOver(350)
	if final, over := h.GameOver(); !over || final != 350 {
		t.Errorf("GameOver() = (%d, %v)", final, over)
	}

	// A new session refills health and clears the banner
	h.UpdateHealth(100)
	if _, over := h.GameOver(); over {
		t.Error("refilled health should clear game over")
	}
}

func TestHUDView(t *testing.T) {
	h := NewHUD()
	h.UpdateScore(42)
	h.UpdateWave(2)

	view := h.View(80)
	for _, want := range []string{"SCORE", "000042", "WAVE", "2", "HP", "100%"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q: %q", want, view)
		}
	}
	if w := lipgloss.Width(view); w != 80 {
		t.Errorf("View() width = %d, expected 80", w)
	}

	h.ShowGameOver(42)
	if !strings.Contains(h.View(80), "GAME OVER") {
		t.Error("game over banner missing")
	}
}

func TestSummaryPanel(t *testing.T) {
	stats := []core.Stat{
		{Label: "Score", Value: "150"},
		{Label: "Kills: scout", Value: "3"},
	}
	out := renderSummary(newSummaryTable(stats), 150, 60, 20)
	for _, want := range []string{"GAME OVER", "150", "Kills: scout", "enter"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}
