package config

import "math"

// MinSpawnDelayMS is the floor applied to scaled spawn delays.
const MinSpawnDelayMS = 100

// DifficultyManager calculates dynamic game parameters based on score or wave.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0).
// Disabled managers always report 0 so the configured tables apply unchanged.
func (d *DifficultyManager) Level(score, wave int) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "wave":
		progress = float64(wave-1) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed scales a base enemy speed by the current level.
func (d *DifficultyManager) EnemySpeed(base float64, score, wave int) float64 {
	level := d.Level(score, wave)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnDelay shortens a base spawn delay by the current level.
func (d *DifficultyManager) SpawnDelay(baseMS, score, wave int) int {
	level := d.Level(score, wave)
	result := int(float64(baseMS) * (1.0 - level*d.cfg.Scaling.SpawnDelayFactor))
	if result < MinSpawnDelayMS && baseMS >= MinSpawnDelayMS {
		result = MinSpawnDelayMS
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
