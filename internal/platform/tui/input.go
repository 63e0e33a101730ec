package tui

import "github.com/vovakirdan/dragon-ascent/internal/core"

// DefaultHoldTicks is how long a movement key stays held after its last repeat.
const DefaultHoldTicks = 10

// holdTracker emulates key-up events. Terminals only report key presses and
// auto-repeats, so a movement key counts as held until holdTicks ticks pass
// without another press.
type holdTracker struct {
	holdTicks uint64
	expires   map[core.Action]uint64
}

func newHoldTracker(holdTicks int) *holdTracker {
	if holdTicks < 1 {
		holdTicks = DefaultHoldTicks
	}
	return &holdTracker{
		holdTicks: uint64(holdTicks), //#nosec G115 -- checked positive above
		expires:   make(map[core.Action]uint64),
	}
}

// press marks a held action in the input state and extends its lifetime.
func (h *holdTracker) press(in *core.InputState, a core.Action, now uint64) {
	in.Press(a)
	h.expires[a] = now + h.holdTicks
}

// expire releases the actions whose hold window has passed.
func (h *holdTracker) expire(in *core.InputState, now uint64) {
	for a, until := range h.expires {
		if now >= until {
			in.Release(a)
			delete(h.expires, a)
		}
	}
}

// releaseAll drops every held action, e.g. when focus leaves the game.
func (h *holdTracker) releaseAll(in *core.InputState) {
	in.ReleaseAll()
	clear(h.expires)
}

// pointerFromCell converts a cell position inside the play area to
// normalized pointer coordinates, +Y up.
func pointerFromCell(x, y, width, height int) (float64, float64) {
	if width <= 1 || height <= 1 {
		return 0, 0
	}
	px := float64(x)/float64(width-1)*2 - 1
	py := 1 - float64(y)/float64(height-1)*2
	return core.ClampF(px, -1, 1), core.ClampF(py, -1, 1)
}
