package config

import (
	_ "embed"
)

//go:embed defaults/dragon.yaml
var defaultDragonYAML []byte

// DefaultDragonConfig returns the default (rich variant) configuration.
func DefaultDragonConfig() DragonConfig {
	return DragonConfig{
		Variant: VariantRich,
		Player: PlayerConfig{
			Speed:      0.5,
			BackFactor: 0.5,
			Bob: BobConfig{
				Enabled:   true,
				Frequency: 0.003,
				Amplitude: 0.05,
			},
			BankFactor:  0.6,
			PitchFactor: 0.3,
			Smoothing:   0.1,
			MaxHealth:   100,
		},
		Camera: CameraConfig{
			OffsetUp:   5,
			OffsetBack: 15,
			Smoothing:  0.08,
			LookAhead:  true,
		},
		Projectile: ProjectileConfig{
			Speed:        2,
			Life:         100,
			SpawnForward: 6,
			SpawnUp:      1,
			AimDistance:  100,
			Size:         0.8,
		},
		Enemies: DefaultEnemyTable(),
		Homing: HomingConfig{
			Enabled:  true,
			Lateral:  0.05,
			Vertical: 0.03,
		},
		Spawn: SpawnConfig{
			SpreadX:        40,
			SpreadY:        20,
			ForwardMin:     150,
			ForwardMax:     200,
			EscapeDistance: 50,
		},
		Waves: DefaultWaves(),
		Timing: TimingConfig{
			FirstWaveDelayMS: 1000,
			WaveSettleMS:     2000,
		},
		Explosion: ExplosionConfig{
			Particles:      15,
			SparkParticles: 6,
			Speed:          0.8,
			Decay:          0.05,
			Jitter:         1.5,
			PlayerColor:    "bright_red",
			SparkColor:     "bright_yellow",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "wave",
				MaxAt: 12,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				SpawnDelayFactor: 0.4,
			},
		},
	}
}

// DefaultEnemyTable returns the stat table for the four enemy classes.
func DefaultEnemyTable() map[string]EnemyConfig {
	return map[string]EnemyConfig{
		"scout": {
			HP: 1, Speed: 0.4, Score: 50,
			CollisionRadius: 4, HitRadius: 3, Damage: 10,
			Color: "orange", Size: 1.5,
		},
		"fighter": {
			HP: 2, Speed: 0.35, Score: 100,
			CollisionRadius: 4, HitRadius: 3, Damage: 10,
			Color: "orange", Size: 2,
		},
		"bomber": {
			HP: 4, Speed: 0.25, Score: 200,
			CollisionRadius: 6, HitRadius: 5, Damage: 20,
			Color: "gray", Size: 3,
		},
		"elite": {
			HP: 6, Speed: 0.45, Score: 500,
			CollisionRadius: 5, HitRadius: 4, Damage: 25,
			Color: "bright_magenta", Size: 2.5,
		},
	}
}

// DefaultWaves returns the eight-wave campaign table.
// Waves past the end of the table repeat the last entry.
func DefaultWaves() []WaveConfig {
	return []WaveConfig{
		{Enemies: []EnemyGroup{{"scout", 5}}, SpawnDelayMS: 800},
		{Enemies: []EnemyGroup{{"scout", 6}, {"fighter", 2}}, SpawnDelayMS: 700},
		{Enemies: []EnemyGroup{{"scout", 4}, {"fighter", 4}}, SpawnDelayMS: 600},
		{Enemies: []EnemyGroup{{"fighter", 5}, {"bomber", 2}}, SpawnDelayMS: 550},
		{Enemies: []EnemyGroup{{"fighter", 4}, {"bomber", 4}}, SpawnDelayMS: 500},
		{Enemies: []EnemyGroup{{"bomber", 5}, {"elite", 1}}, SpawnDelayMS: 450},
		{Enemies: []EnemyGroup{{"elite", 3}, {"bomber", 4}}, SpawnDelayMS: 400},
		{Enemies: []EnemyGroup{{"elite", 5}, {"fighter", 5}}, SpawnDelayMS: 350},
	}
}

// ApplyVariant switches the behavioural toggles between the rich and
// classic flavours. Unknown names leave the config unchanged.
func ApplyVariant(cfg *DragonConfig, variant string) {
	switch variant {
	case VariantRich:
		cfg.Variant = VariantRich
		cfg.Player.BackFactor = 0.5
		cfg.Player.Bob.Enabled = true
		cfg.Homing.Enabled = true
		cfg.Camera.LookAhead = true
		cfg.Timing.FirstWaveDelayMS = 1000
	case VariantClassic:
		cfg.Variant = VariantClassic
		cfg.Player.BackFactor = 1.0
		cfg.Player.Bob.Enabled = false
		cfg.Homing.Enabled = false
		cfg.Camera.LookAhead = false
		cfg.Timing.FirstWaveDelayMS = 0
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDragonYAML
}
