package dragon

import (
	"math"
	"sort"
)

// Snapshot captures the simulation state for determinism checks.
// Positions are quantized to thousandths so equal runs hash equally.
type Snapshot struct {
	Tick        uint64
	ClockMS     int64
	Phase       string
	Paused      bool
	Score       int
	Health      int
	Wave        int
	Queued      int
	Timers      int
	PlayerPos   [3]int64
	EnemyData   []int64 // X, Y, Z, HP per enemy
	ProjData    []int64 // X, Y, Z, Life per projectile
	Particles   int
	Kills       []int // Kill counts in enemy-type name order
	Shots, Hits int
}

func quantize(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]int64, 0, len(g.enemies)*4)
	for _, e := range g.enemies {
		enemyData = append(enemyData, quantize(e.Pos.X), quantize(e.Pos.Y), quantize(e.Pos.Z), int64(e.HP))
	}
	projData := make([]int64, 0, len(g.projectiles)*4)
	for _, p := range g.projectiles {
		projData = append(projData, quantize(p.Pos.X), quantize(p.Pos.Y), quantize(p.Pos.Z), int64(p.Life))
	}

	names := make([]string, 0, len(g.stats.Kills))
	for t := range g.stats.Kills {
		names = append(names, string(t))
	}
	sort.Strings(names)
	kills := make([]int, len(names))
	for i, n := range names {
		kills[i] = g.stats.Kills[EnemyType(n)]
	}

	snap := Snapshot{
		Tick:      g.tick,
		ClockMS:   g.clock.Milliseconds(),
		Phase:     g.phase.String(),
		Paused:    g.paused,
		Score:     g.score,
		Health:    g.player.Health,
		Timers:    g.timers.len(),
		PlayerPos: [3]int64{quantize(g.player.Pos.X), quantize(g.player.Pos.Y), quantize(g.player.Pos.Z)},
		EnemyData: enemyData,
		ProjData:  projData,
		Particles: len(g.particles),
		Kills:     kills,
		Shots:     g.stats.Shots,
		Hits:      g.stats.Hits,
	}
	if g.waves != nil {
		snap.Wave = g.waves.Wave()
		snap.Queued = len(g.waves.queue)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.ClockMS) //#nosec G115 -- hash computation
	for _, c := range snap.Phase {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Health)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Queued)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Timers)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Particles) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Hits)      //#nosec G115 -- hash computation
	for _, v := range snap.PlayerPos {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EnemyData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ProjData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Kills {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h
}
