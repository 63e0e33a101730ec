package window

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

// Smallest radius drawn, in pixels.
const minRadius = 1.5

// toPixel maps NDC (+Y up) to window pixels.
func toPixel(x, y float64, width, height int) (float32, float32) {
	px := (x + 1) / 2 * float64(width)
	py := (1 - y) / 2 * float64(height)
	return float32(px), float32(py)
}

// pixelRadius converts an NDC-Y radius to pixels.
func pixelRadius(r float64, height int) float32 {
	px := r * float64(height) / 2
	if px < minRadius {
		px = minRadius
	}
	return float32(px)
}

// pointerFromPixel converts a cursor position to normalized pointer
// coordinates. Positions outside the window clamp to the edge.
func pointerFromPixel(x, y, width, height int) (float64, float64) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	px := float64(x)/float64(width)*2 - 1
	py := 1 - float64(y)/float64(height)*2
	return core.ClampF(px, -1, 1), core.ClampF(py, -1, 1)
}

// rgba returns c with alpha scaled by opacity.
func rgba(c core.Color, opacity float64) color.RGBA {
	r, g, b := c.RGB()
	a := core.ClampF(opacity, 0, 1)
	// Premultiplied, as image/color expects.
	return color.RGBA{
		R: uint8(float64(r) * a),
		G: uint8(float64(g) * a),
		B: uint8(float64(b) * a),
		A: uint8(255 * a),
	}
}

// statusHUD keeps the last values the simulation reported.
type statusHUD struct {
	score  int
	health int
	wave   int
	final  int
	over   bool
}

func (s *statusHUD) UpdateScore(score int) { s.score = score }
func (s *statusHUD) UpdateWave(wave int)   { s.wave = wave }

func (s *statusHUD) UpdateHealth(percent int) {
	s.health = core.Clamp(percent, 0, 100)
	if s.health > 0 {
		s.over = false
	}
}

func (s *statusHUD) ShowGameOver(finalScore int) {
	s.final = finalScore
	s.over = true
}

func (s *statusHUD) line() string {
	l := fmt.Sprintf("SCORE %06d   WAVE %d   HP %3d%%", s.score, s.wave, s.health)
	if s.over {
		l += fmt.Sprintf("   GAME OVER (%d)", s.final)
	}
	return l
}

var _ core.HUD = (*statusHUD)(nil)
