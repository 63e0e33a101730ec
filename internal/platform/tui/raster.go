package tui

import (
	"math"

	"github.com/vovakirdan/dragon-ascent/internal/core"
	"github.com/vovakirdan/dragon-ascent/internal/platform/scene"
)

// enemyGlyphs maps enemy type names to their terminal glyph.
var enemyGlyphs = map[string]rune{
	"scout":   'v',
	"fighter": 'W',
	"bomber":  'M',
	"elite":   '@',
}

// particleGlyphs are picked by opacity, faint to bright.
var particleGlyphs = []rune{'.', '·', '*', '✶'}

const (
	// fogDepth is the camera distance past which enemies are drawn faint.
	fogDepth = 120.0
	// fadeOpacity is the particle opacity below which embers are drawn faint.
	fadeOpacity = 0.5
)

// rasterizer paints projected visuals into a screen region.
type rasterizer struct {
	area core.Rect
}

// toCell converts NDC to a cell inside the area.
func (r rasterizer) toCell(x, y float64) (int, int) {
	cx := r.area.X + int(math.Round((x+1)/2*float64(r.area.W-1)))
	cy := r.area.Y + int(math.Round((1-y)/2*float64(r.area.H-1)))
	return cx, cy
}

func (r rasterizer) contains(x, y int) bool {
	return x >= r.area.X && x < r.area.Right() && y >= r.area.Y && y < r.area.Bottom()
}

func (r rasterizer) set(s *core.Screen, x, y int, ch rune, c core.Color) {
	if r.contains(x, y) {
		s.Set(x, y, ch, c)
	}
}

func (r rasterizer) setFaint(s *core.Screen, x, y int, ch rune, c core.Color) {
	if r.contains(x, y) {
		s.Set(x, y, ch, c)
		s.SetFaint(x, y, true)
	}
}

// dim fades everything already drawn in the area, leaving later draws such
// as overlays at full strength.
func (r rasterizer) dim(s *core.Screen) {
	for y := r.area.Y; y < r.area.Bottom(); y++ {
		for x := r.area.X; x < r.area.Right(); x++ {
			s.SetFaint(x, y, true)
		}
	}
}

// draw paints vs in order. vs is expected far to near, as returned by
// scene.Visible, so nearer visuals overwrite farther ones.
func (r rasterizer) draw(s *core.Screen, vs []scene.Projected) {
	if r.area.W <= 0 || r.area.H <= 0 {
		return
	}
	for _, v := range vs {
		cx, cy := r.toCell(v.X, v.Y)
		// Rows span the NDC Y range; columns are twice as dense.
		ry := v.Radius * float64(r.area.H) / 2
		rx := ry * 2
		switch v.Kind {
		case core.VisualDragon:
			r.drawDragon(s, cx, cy, v)
		case core.VisualEnemy:
			glyph, ok := enemyGlyphs[v.Style.Variant]
			if !ok {
				glyph = 'x'
			}
			put := r.set
			if v.Depth > fogDepth {
				put = r.setFaint
			}
			if ry >= 1 {
				r.disc(s, cx, cy, rx, ry, '░', v.Style.Color)
			}
			put(s, cx, cy, glyph, v.Style.Color)
		case core.VisualProjectile:
			r.set(s, cx, cy, 'o', v.Style.Color)
		case core.VisualParticle:
			i := int(v.Opacity * float64(len(particleGlyphs)))
			i = core.Clamp(i, 0, len(particleGlyphs)-1)
			if v.Opacity < fadeOpacity {
				r.setFaint(s, cx, cy, particleGlyphs[i], v.Style.Color)
			} else {
				r.set(s, cx, cy, particleGlyphs[i], v.Style.Color)
			}
		}
	}
}

// drawDragon picks wing glyphs from the bank angle (Rot.Z).
func (r rasterizer) drawDragon(s *core.Screen, cx, cy int, v scene.Projected) {
	left, right := '<', '>'
	switch {
	case v.Rot.Z > 0.2:
		left, right = '\\', '/'
	case v.Rot.Z < -0.2:
		left, right = '/', '\\'
	}
	r.set(s, cx-1, cy, left, v.Style.Color)
	r.set(s, cx, cy, 'A', v.Style.Color)
	r.set(s, cx+1, cy, right, v.Style.Color)
}

// disc fills an ellipse with radii rx, ry cells.
func (r rasterizer) disc(s *core.Screen, cx, cy int, rx, ry float64, ch rune, c core.Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	maxX, maxY := int(rx), int(ry)
	for dy := -maxY; dy <= maxY; dy++ {
		for dx := -maxX; dx <= maxX; dx++ {
			nx, ny := float64(dx)/rx, float64(dy)/ry
			if nx*nx+ny*ny <= 1 {
				r.set(s, cx+dx, cy+dy, ch, c)
			}
		}
	}
}

// overlay draws a boxed message centered in the area.
func (r rasterizer) overlay(s *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	boxW := width + 4
	boxH := len(lines) + 2
	if boxW > r.area.W || boxH > r.area.H {
		return
	}
	x := r.area.X + (r.area.W-boxW)/2
	y := r.area.Y + (r.area.H-boxH)/2
	box := core.NewRect(x, y, boxW, boxH)
	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, c)
	for i, l := range lines {
		lx := x + (boxW-len([]rune(l)))/2
		s.DrawText(lx, y+1+i, l, c)
	}
}
