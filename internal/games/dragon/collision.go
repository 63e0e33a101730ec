package dragon

import "github.com/vovakirdan/dragon-ascent/internal/core"

// resolveCollisions runs enemy-player contacts before projectile hits.
// Returns false when the session ended this tick; callers stop processing.
func (g *Game) resolveCollisions() bool {
	if !g.collideEnemiesWithPlayer() {
		return false
	}
	g.collideProjectilesWithEnemies()
	return true
}

func (g *Game) collideEnemiesWithPlayer() bool {
	kept := g.enemies[:0]
	alive := true
	for i, e := range g.enemies {
		if !alive {
			// Frozen: leave the rest untouched for the game-over scene
			kept = append(kept, g.enemies[i:]...)
			break
		}
		if e.Pos.Dist(g.player.Pos) >= e.Stats.CollisionRadius {
			kept = append(kept, e)
			continue
		}

		g.explode(e.Pos, g.playerHitColor, g.cfg.Explosion.Particles)
		g.out.Presenter.RemoveVisual(e.handle)
		alive = g.damagePlayer(e)
	}
	clearTail(g.enemies, len(kept))
	g.enemies = kept
	return alive
}

// damagePlayer applies contact damage. Returns false on lethal damage.
func (g *Game) damagePlayer(e *Enemy) bool {
	g.player.Health = max(0, g.player.Health-e.Stats.Damage)
	g.stats.DamageTaken += e.Stats.Damage
	g.emit(core.EventPlayerHit, string(e.Type), e.Stats.Damage)
	g.out.HUD.UpdateHealth(g.healthPercent())

	if g.player.Health > 0 {
		return true
	}
	g.endSession()
	return false
}

func (g *Game) collideProjectilesWithEnemies() {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		target := -1
		for i, e := range g.enemies {
			if p.Pos.Dist(e.Pos) < e.Stats.HitRadius {
				target = i
				break
			}
		}
		if target < 0 {
			kept = append(kept, p)
			continue
		}

		g.out.Presenter.RemoveVisual(p.handle)
		g.stats.Hits++
		g.hitEnemy(target, p.Pos)
	}
	clearTail(g.projectiles, len(kept))
	g.projectiles = kept
}

// hitEnemy applies one point of damage to enemy i, destroying it at zero HP.
// A survivable hit sparks at impact, the fireball's position.
func (g *Game) hitEnemy(i int, impact core.Vec3) {
	e := g.enemies[i]
	e.HP--
	if e.HP > 0 {
		g.explode(impact, g.sparkColor, g.cfg.Explosion.SparkParticles)
		g.emit(core.EventEnemyHit, string(e.Type), e.HP)
		return
	}

	g.score += e.Stats.Score
	g.stats.Kills[e.Type]++
	g.explode(e.Pos, e.Stats.Color, g.cfg.Explosion.Particles)
	g.out.Presenter.RemoveVisual(e.handle)
	g.enemies = append(g.enemies[:i], g.enemies[i+1:]...)
	g.emit(core.EventEnemyKilled, string(e.Type), e.Stats.Score)
	g.out.HUD.UpdateScore(g.score)
}
