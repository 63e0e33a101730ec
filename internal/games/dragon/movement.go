package dragon

import (
	"math"

	"github.com/vovakirdan/dragon-ascent/internal/core"
)

// Forward is -Z: the dragon flies into the screen and enemies come toward it.

var (
	cameraStart = core.V3(0, 2, 15)
	playerStart = core.V3(0, 0, 0)
)

// movePlayer applies held directions, bobbing and orientation easing.
func (g *Game) movePlayer(in core.InputState) {
	p := &g.player
	pc := g.cfg.Player
	speed := pc.Speed

	if in.Held(core.ActionForward) {
		p.Pos.Z -= speed
	}
	if in.Held(core.ActionBack) {
		p.Pos.Z += speed * pc.BackFactor
	}
	if in.Held(core.ActionLeft) {
		p.Pos.X -= speed
	}
	if in.Held(core.ActionRight) {
		p.Pos.X += speed
	}
	if in.Held(core.ActionUp) {
		p.Pos.Y += speed
	}
	if in.Held(core.ActionDown) {
		p.Pos.Y -= speed
	}

	if pc.Bob.Enabled {
		p.Pos.Y += math.Sin(g.nowMS()*pc.Bob.Frequency) * pc.Bob.Amplitude
	}

	// First-order low-pass toward the pointer-derived attitude
	p.Roll = core.Lerp(p.Roll, -in.PointerX*pc.BankFactor, pc.Smoothing)
	p.Pitch = core.Lerp(p.Pitch, in.PointerY*pc.PitchFactor, pc.Smoothing)

	g.out.Presenter.SetPosition(p.handle, p.Pos)
	g.out.Presenter.SetRotation(p.handle, core.V3(p.Pitch, 0, p.Roll))
}

// moveCamera eases the chase camera toward its offset behind the player.
func (g *Game) moveCamera() {
	cc := g.cfg.Camera
	target := g.player.Pos.Add(core.V3(0, cc.OffsetUp, cc.OffsetBack))
	g.camera.Position = g.camera.Position.Lerp(target, cc.Smoothing)

	if cc.LookAhead {
		g.camera.Target = g.camera.Target.Lerp(g.player.Pos, cc.Smoothing)
	} else {
		g.camera.Target = g.player.Pos
	}
	g.out.Presenter.SetCamera(g.camera.Position, g.camera.Target)
}

// fire launches a fireball from just ahead of the dragon toward the point
// AimDistance units down the pointer ray.
func (g *Game) fire(in core.InputState) {
	pc := g.cfg.Projectile
	spawn := g.player.Pos.Add(core.V3(0, pc.SpawnUp, -pc.SpawnForward))

	origin, dir := g.camera.Ray(in.PointerX, in.PointerY)
	aim := origin.Add(dir.Scale(pc.AimDistance))
	vel := aim.Sub(spawn).Normalize().Scale(pc.Speed)

	h := g.out.Presenter.CreateVisual(core.VisualProjectile, core.Style{
		Color: core.ColorBrightYellow,
		Size:  pc.Size,
	})
	g.out.Presenter.SetPosition(h, spawn)

	g.projectiles = append(g.projectiles, &Projectile{
		Pos:    spawn,
		Vel:    vel,
		Life:   pc.Life,
		handle: h,
	})
	g.stats.Shots++
	g.emit(core.EventProjectileFired, "", 0)
}

// moveProjectiles advances fireballs and burns out those with no life left.
// Removal depends only on the life counter, never on distance travelled.
func (g *Game) moveProjectiles() {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life <= 0 {
			g.out.Presenter.RemoveVisual(p.handle)
			g.emit(core.EventProjectileExpired, "", 0)
			continue
		}
		g.out.Presenter.SetPosition(p.handle, p.Pos)
		kept = append(kept, p)
	}
	clearTail(g.projectiles, len(kept))
	g.projectiles = kept
}

// moveEnemies advances enemies along +Z with optional homing and removes
// those that slipped past the player.
func (g *Game) moveEnemies() {
	hc := g.cfg.Homing
	escapeZ := g.player.Pos.Z + g.cfg.Spawn.EscapeDistance

	kept := g.enemies[:0]
	for _, e := range g.enemies {
		e.Pos.Z += e.Speed
		if hc.Enabled {
			dir := g.player.Pos.Sub(e.Pos).Normalize()
			e.Pos.X += dir.X * hc.Lateral
			e.Pos.Y += dir.Y * hc.Vertical
		}

		if e.Pos.Z > escapeZ {
			g.out.Presenter.RemoveVisual(e.handle)
			g.stats.Escapes++
			g.emit(core.EventEnemyEscaped, string(e.Type), 0)
			continue
		}
		g.out.Presenter.SetPosition(e.handle, e.Pos)
		kept = append(kept, e)
	}
	clearTail(g.enemies, len(kept))
	g.enemies = kept
}

// spawnEnemy places a new enemy of type t in the box ahead of the player.
func (g *Game) spawnEnemy(t EnemyType) {
	stats, ok := g.table[t]
	if !ok {
		// Validated configs never reach here
		g.log.Warn("skipping unknown enemy type", "type", t)
		return
	}

	sc := g.cfg.Spawn
	pos := core.V3(
		g.player.Pos.X+(g.rng.Float64()-0.5)*2*sc.SpreadX,
		g.player.Pos.Y+(g.rng.Float64()-0.5)*2*sc.SpreadY,
		g.player.Pos.Z-sc.ForwardMin-g.rng.Float64()*(sc.ForwardMax-sc.ForwardMin),
	)

	h := g.out.Presenter.CreateVisual(core.VisualEnemy, core.Style{
		Color:   stats.Color,
		Size:    stats.Size,
		Variant: string(t),
	})
	g.out.Presenter.SetPosition(h, pos)

	g.enemies = append(g.enemies, &Enemy{
		Type:   t,
		Pos:    pos,
		HP:     stats.HP,
		Speed:  g.difficulty.EnemySpeed(stats.Speed, g.score, g.waves.Wave()),
		Stats:  stats,
		handle: h,
	})
	g.emit(core.EventEnemySpawned, string(t), 0)
}

// clearTail nils out the dropped pointers past n so they can be collected.
func clearTail[T any](s []*T, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
