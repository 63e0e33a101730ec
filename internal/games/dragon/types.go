package dragon

import (
	"github.com/vovakirdan/dragon-ascent/internal/config"
	"github.com/vovakirdan/dragon-ascent/internal/core"
)

// EnemyType names a row of the enemy stat table.
type EnemyType string

// Built-in enemy classes. Config files may add more rows.
const (
	Scout   EnemyType = "scout"
	Fighter EnemyType = "fighter"
	Bomber  EnemyType = "bomber"
	Elite   EnemyType = "elite"
)

// EnemyStats is the per-type behaviour looked up on spawn, movement and collision.
type EnemyStats struct {
	HP              int
	Speed           float64
	Score           int
	CollisionRadius float64
	HitRadius       float64
	Damage          int
	Color           core.Color
	Size            float64
}

// statTable converts the config rows to typed stats.
// Unknown color names fall back to orange.
func statTable(rows map[string]config.EnemyConfig) map[EnemyType]EnemyStats {
	table := make(map[EnemyType]EnemyStats, len(rows))
	for name, row := range rows {
		color, ok := core.ParseColor(row.Color)
		if !ok {
			color = core.ColorOrange
		}
		table[EnemyType(name)] = EnemyStats{
			HP:              row.HP,
			Speed:           row.Speed,
			Score:           row.Score,
			CollisionRadius: row.CollisionRadius,
			HitRadius:       row.HitRadius,
			Damage:          row.Damage,
			Color:           color,
			Size:            row.Size,
		}
	}
	return table
}

// Player is the dragon.
type Player struct {
	Pos    core.Vec3
	Roll   float64 // Bank angle, radians
	Pitch  float64
	Health int

	handle core.Handle
}

// Enemy is a live hostile.
type Enemy struct {
	Type  EnemyType
	Pos   core.Vec3
	HP    int
	Speed float64
	Stats EnemyStats

	handle core.Handle
}

// Projectile is a fireball in flight.
type Projectile struct {
	Pos  core.Vec3
	Vel  core.Vec3
	Life int // Ticks left

	handle core.Handle
}

// Particle is one fragment of an explosion.
type Particle struct {
	Pos  core.Vec3
	Vel  core.Vec3
	Life float64 // 1.0 at spawn, removed at <= 0

	handle core.Handle
}
