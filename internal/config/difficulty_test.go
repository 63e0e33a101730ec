package config

import (
	"math"
	"testing"
)

func testDifficulty(enabled bool, progression string, initial float64) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      enabled,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: progression, MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 0.5, SpawnDelayFactor: 0.5},
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name  string
		cfg   DifficultyConfig
		score int
		wave  int
		want  float64
	}{
		{"disabled", testDifficulty(false, "wave", 0.7), 0, 5, 0},
		{"wave start", testDifficulty(true, "wave", 0), 0, 1, 0},
		{"wave half", testDifficulty(true, "wave", 0), 0, 6, 0.5},
		{"wave capped", testDifficulty(true, "wave", 0), 0, 50, 1},
		{"score from initial", testDifficulty(true, "score", 0.5), 5, 1, 0.75},
		{"none keeps initial", testDifficulty(true, "none", 0.3), 999, 9, 0.3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg)
			if got := d.Level(tc.score, tc.wave); got != tc.want {
				t.Errorf("Level(%d, %d) = %v, expected %v", tc.score, tc.wave, got, tc.want)
			}
		})
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(testDifficulty(true, "wave", 0))

	if got := d.EnemySpeed(0.4, 0, 1); got != 0.4 {
		t.Errorf("EnemySpeed at level 0 = %v, expected base", got)
	}
	if got := d.EnemySpeed(0.4, 0, 11); math.Abs(got-0.6) > 1e-9 {
		t.Errorf("EnemySpeed at level 1 = %v, expected 0.6", got)
	}
	if got := d.SpawnDelay(800, 0, 11); got != 400 {
		t.Errorf("SpawnDelay at level 1 = %d, expected 400", got)
	}
	if got := d.SpawnDelay(150, 0, 11); got != MinSpawnDelayMS {
		t.Errorf("SpawnDelay should floor at %d, got %d", MinSpawnDelayMS, got)
	}

	off := NewDifficultyManager(testDifficulty(false, "wave", 0))
	if off.SpawnDelay(350, 0, 8) != 350 || off.IsEnabled() {
		t.Error("disabled manager should pass values through")
	}
}
