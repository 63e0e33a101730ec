package window

import (
	"testing"

	"github.com/vovakirdan/dragon-ascent/internal/core"
	"github.com/vovakirdan/dragon-ascent/internal/games/dragon"
)

func TestToPixel(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		px, py float32
	}{
		{"center", 0, 0, 640, 360},
		{"top left", -1, 1, 0, 0},
		{"bottom right", 1, -1, 1280, 720},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			px, py := toPixel(tc.x, tc.y, 1280, 720)
			if px != tc.px || py != tc.py {
				t.Errorf("toPixel(%v, %v) = (%v, %v), expected (%v, %v)", tc.x, tc.y, px, py, tc.px, tc.py)
			}
		})
	}
}

func TestPointerRoundTrip(t *testing.T) {
	px, py := pointerFromPixel(960, 180, 1280, 720)
	if px != 0.5 || py != 0.5 {
		t.Errorf("pointerFromPixel() = (%v, %v), expected (0.5, 0.5)", px, py)
	}
	if px, py := pointerFromPixel(-50, 5000, 1280, 720); px != -1 || py != -1 {
		t.Errorf("outside the window should clamp, got (%v, %v)", px, py)
	}
	if px, py := pointerFromPixel(10, 10, 0, 0); px != 0 || py != 0 {
		t.Error("zero-size window should center the pointer")
	}
}

func TestPixelRadiusFloor(t *testing.T) {
	if r := pixelRadius(0, 720); r != minRadius {
		t.Errorf("pixelRadius(0) = %v, expected floor %v", r, minRadius)
	}
	if r := pixelRadius(0.1, 720); r != 36 {
		t.Errorf("pixelRadius(0.1) = %v, expected 36", r)
	}
}

func TestRGBAOpacity(t *testing.T) {
	full := rgba(core.ColorBrightYellow, 1)
	if full.R != 0xff || full.G != 0xff || full.B != 0 || full.A != 0xff {
		t.Errorf("opaque yellow = %+v", full)
	}
	half := rgba(core.ColorBrightYellow, 0.5)
	if half.A != 127 || half.R != 127 {
		t.Errorf("half yellow = %+v", half)
	}
	if gone := rgba(core.ColorRed, -1); gone.A != 0 {
		t.Error("negative opacity should be transparent")
	}
}

func TestStatusHUD(t *testing.T) {
	h := &statusHUD{}
	h.UpdateScore(120)
	h.UpdateWave(2)
	h.UpdateHealth(55)
	if got := h.line(); got != "SCORE 000120   WAVE 2   HP  55%" {
		t.Errorf("line() = %q", got)
	}
	h.UpdateHealth(0)
	h.ShowGameOver(120)
	if !h.over || h.final != 120 {
		t.Error("game over not recorded")
	}
}

func TestHostStepsWithoutWindow(t *testing.T) {
	cfg := core.RuntimeConfig{TickRate: 60, Seed: 3}
	h, err := NewHost(dragon.IDClassic, cfg, Options{Width: 640, Height: 360})
	if err != nil {
		t.Fatalf("NewHost() error = %v", err)
	}
	if w, hh := h.Layout(800, 600); w != 800 || hh != 600 {
		t.Errorf("Layout() = %dx%d", w, hh)
	}
	if sw, sh := h.scene.Size(); sw != 800 || sh != 600 {
		t.Errorf("scene size = %dx%d after layout", sw, sh)
	}
	if lines := h.overlay(); len(lines) == 0 || lines[0] != h.game.Title() {
		t.Errorf("start overlay = %v", lines)
	}
	if _, err := NewHost("missing", cfg, Options{}); err == nil {
		t.Error("unknown game should fail")
	}
}
