package dragon

import (
	"testing"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

func TestAutopilotBeginsAndFires(t *testing.T) {
	g, _, _ := newTestGame(t, classicConfig())
	pilot := NewAutopilot(2)

	g.Step(pilot.Input(g))
	if g.State().Phase != core.PhasePlaying || pilot.Sessions() != 1 {
		t.Fatal("autopilot should begin a session from the start screen")
	}

	// Nothing to aim at yet: no fire, pointer centered
	in := pilot.Input(g)
	if in.Fires() != 0 || in.PointerX != 0 || in.PointerY != 0 {
		t.Errorf("idle autopilot input = %+v", in)
	}

	addEnemy(t, g, Scout, core.V3(10, 0, -60))
	fired := 0
	for range 4 {
		in := pilot.Input(g)
		fired += in.Fires()
		if !in.Held(core.ActionRight) {
			t.Error("autopilot should strafe toward the enemy")
		}
		if in.PointerX <= 0 {
			t.Error("autopilot should aim right of center")
		}
	}
	if fired != 2 {
		t.Errorf("fired %d times in 4 ticks, expected 2", fired)
	}
}

func TestAutopilotRestart(t *testing.T) {
	g, _, _ := newTestGame(t, classicConfig())
	pilot := NewAutopilot(2)
	g.Step(pilot.Input(g))
	g.endSession()

	g.Step(pilot.Input(g))
	if g.State().Phase != core.PhaseGameOver {
		t.Error("without Restart the autopilot should stay on the game-over screen")
	}

	pilot.Restart = true
	g.Step(pilot.Input(g))
	if g.State().Phase != core.PhasePlaying || pilot.Sessions() != 2 {
		t.Error("with Restart the autopilot should begin again")
	}
}

func TestSnapshotHashTracksState(t *testing.T) {
	g, _, _ := newTestGame(t, classicConfig())
	g.Begin()
	base := g.Snapshot()

	g.score += 50
	changed := g.Snapshot()
	if base.Hash() == changed.Hash() {
		t.Error("score change should alter the hash")
	}

	g.score -= 50
	again := g.Snapshot()
	if base.Hash() != again.Hash() {
		t.Error("identical state should hash identically")
	}
}
