package dragon

import (
	"testing"

	"github.com/vovakirdan/dragon-ascent/internal/config"
	"github.com/vovakirdan/dragon-ascent/internal/core"
)

// fakePresenter tracks live handles so tests can detect leaks.
type fakePresenter struct {
	next        core.Handle
	live        map[core.Handle]core.VisualKind
	badRemoves  int
	frames      int
	lastCamera  [2]core.Vec3
	lastOpacity map[core.Handle]float64
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{
		live:        make(map[core.Handle]core.VisualKind),
		lastOpacity: make(map[core.Handle]float64),
	}
}

func (p *fakePresenter) CreateVisual(kind core.VisualKind, _ core.Style) core.Handle {
	p.next++
	p.live[p.next] = kind
	return p.next
}

func (p *fakePresenter) SetPosition(core.Handle, core.Vec3) {}
func (p *fakePresenter) SetRotation(core.Handle, core.Vec3) {}

func (p *fakePresenter) SetOpacity(h core.Handle, o float64) {
	p.lastOpacity[h] = o
}

func (p *fakePresenter) RemoveVisual(h core.Handle) {
	if _, ok := p.live[h]; !ok {
		p.badRemoves++
		return
	}
	delete(p.live, h)
}

func (p *fakePresenter) SetCamera(pos, target core.Vec3) {
	p.lastCamera = [2]core.Vec3{pos, target}
}

func (p *fakePresenter) RenderFrame() { p.frames++ }
func (p *fakePresenter) OnResize(float64, int, int) {}

func (p *fakePresenter) count(kind core.VisualKind) int {
	n := 0
	for _, k := range p.live {
		if k == kind {
			n++
		}
	}
	return n
}

// fakeHUD records the latest notifications.
type fakeHUD struct {
	score, health, wave int
	gameOvers           []int
}

func (h *fakeHUD) UpdateScore(s int) { h.score = s }
func (h *fakeHUD) UpdateHealth(p int) { h.health = p }
func (h *fakeHUD) UpdateWave(w int) { h.wave = w }
func (h *fakeHUD) ShowGameOver(s int) { h.gameOvers = append(h.gameOvers, s) }

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

// classicConfig has no bobbing or homing so positions are exact.
func classicConfig() config.DragonConfig {
	cfg := config.DefaultDragonConfig()
	config.ApplyVariant(&cfg, config.VariantClassic)
	return cfg
}

func newTestGame(t *testing.T, cfg config.DragonConfig) (*Game, *fakePresenter, *fakeHUD) {
	t.Helper()
	p := newFakePresenter()
	h := &fakeHUD{}
	g := NewWithConfig(cfg, core.Outputs{Presenter: p, HUD: h})
	g.Reset(testRuntime)
	return g, p, h
}

// addEnemy spawns an enemy and moves it to pos.
func addEnemy(t *testing.T, g *Game, typ EnemyType, pos core.Vec3) *Enemy {
	t.Helper()
	before := len(g.enemies)
	g.spawnEnemy(typ)
	if len(g.enemies) != before+1 {
		t.Fatalf("spawnEnemy(%s) did not add an enemy", typ)
	}
	e := g.enemies[len(g.enemies)-1]
	e.Pos = pos
	return e
}

// addProjectile places a fireball with the given velocity.
func addProjectile(g *Game, pos, vel core.Vec3, life int) *Projectile {
	h := g.out.Presenter.CreateVisual(core.VisualProjectile, core.Style{})
	p := &Projectile{Pos: pos, Vel: vel, Life: life, handle: h}
	g.projectiles = append(g.projectiles, p)
	return p
}

// beginWithoutWaves starts a session with the wave timer dropped, so only
// hand-placed entities are in play.
func beginWithoutWaves(g *Game) {
	g.Begin()
	g.timers.clear()
}

func idle() core.InputState {
	return core.InputState{}
}

// expectedLive is the handle count a leak-free game should hold.
func expectedLive(g *Game) int {
	n := len(g.enemies) + len(g.projectiles) + len(g.particles)
	if g.player.handle != 0 {
		n++
	}
	return n
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
