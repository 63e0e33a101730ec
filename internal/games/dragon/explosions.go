package dragon

import "github.com/vovakirdan/dragon-ascent/internal/core"

const particleSize = 0.5

// explode spawns count particles around pos flying outward.
func (g *Game) explode(pos core.Vec3, color core.Color, count int) {
	ec := g.cfg.Explosion
	for range count {
		p := pos.Add(core.V3(
			(g.rng.Float64()-0.5)*2*ec.Jitter,
			(g.rng.Float64()-0.5)*2*ec.Jitter,
			(g.rng.Float64()-0.5)*2*ec.Jitter,
		))
		vel := core.V3(
			g.rng.Float64()-0.5,
			g.rng.Float64()-0.5,
			g.rng.Float64()-0.5,
		).Normalize().Scale(ec.Speed)

		h := g.out.Presenter.CreateVisual(core.VisualParticle, core.Style{
			Color: color,
			Size:  particleSize,
		})
		g.out.Presenter.SetPosition(h, p)
		g.particles = append(g.particles, &Particle{Pos: p, Vel: vel, Life: 1.0, handle: h})
	}
}

// decayParticles advances particles and fades them out.
func (g *Game) decayParticles() {
	decay := g.cfg.Explosion.Decay
	kept := g.particles[:0]
	for _, p := range g.particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life -= decay
		if p.Life <= 0 {
			g.out.Presenter.RemoveVisual(p.handle)
			continue
		}
		g.out.Presenter.SetPosition(p.handle, p.Pos)
		g.out.Presenter.SetOpacity(p.handle, p.Life)
		kept = append(kept, p)
	}
	clearTail(g.particles, len(kept))
	g.particles = kept
}
