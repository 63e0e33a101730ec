package dragon

import (
	"math"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

// Autopilot is a scripted pilot: it restarts sessions, steers toward the
// nearest enemy and fires on a fixed cadence. Used by the headless
// simulate command and soak tests.
type Autopilot struct {
	// FireEvery is the number of ticks between shots.
	FireEvery int
	// Restart begins a new session after game over when true.
	Restart bool

	input core.InputState
	ticks int
	games int
}

// NewAutopilot creates an autopilot that fires every fireEvery ticks.
func NewAutopilot(fireEvery int) *Autopilot {
	if fireEvery < 1 {
		fireEvery = 1
	}
	return &Autopilot{FireEvery: fireEvery}
}

// Sessions returns how many sessions the autopilot has begun.
func (a *Autopilot) Sessions() int {
	return a.games
}

// Input produces the input snapshot for the next tick of g.
func (a *Autopilot) Input(g *Game) core.InputState {
	a.ticks++
	st := g.State()

	if st.Phase != core.PhasePlaying {
		a.input.ReleaseAll()
		if st.Phase == core.PhaseStart || a.Restart {
			a.input.Press(core.ActionBegin)
			a.games++
		}
		return a.input.Take()
	}

	a.input.ReleaseAll()
	target, ok := a.nearest(g)
	if !ok {
		a.input.SetPointer(0, 0)
		return a.input.Take()
	}

	player := g.Player().Pos
	cam := g.Camera()

	// Line up laterally; dodge when the enemy is close enough to ram
	dx := target.Pos.X - player.X
	dy := target.Pos.Y - player.Y
	dodge := target.Pos.Dist(player) < target.Stats.CollisionRadius*3
	a.steer(dx, core.ActionRight, core.ActionLeft, dodge)
	a.steer(dy, core.ActionUp, core.ActionDown, dodge)

	if x, y, _, visible := cam.Project(target.Pos); visible {
		a.input.SetPointer(x, y)
	}

	if a.ticks%a.FireEvery == 0 {
		a.input.QueueFire()
	}
	return a.input.Take()
}

// steer holds pos when delta is positive, neg when negative, inverted when
// dodging. Small deltas are ignored to avoid jitter.
func (a *Autopilot) steer(delta float64, pos, neg core.Action, dodge bool) {
	if math.Abs(delta) < 0.5 {
		return
	}
	if (delta > 0) != dodge {
		a.input.Press(pos)
	} else {
		a.input.Press(neg)
	}
}

// nearest returns the live enemy closest to the dragon.
func (a *Autopilot) nearest(g *Game) (Enemy, bool) {
	player := g.Player().Pos
	best := -1
	bestDist := math.Inf(1)
	enemies := g.Enemies()
	for i, e := range enemies {
		if d := e.Pos.Dist(player); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Enemy{}, false
	}
	return enemies[best], true
}
