// Package config provides YAML-based game configuration loading and
// difficulty management for Dragon's Ascent.
package config

// DragonConfig contains every tunable of the simulation.
type DragonConfig struct {
	Variant    string                 `yaml:"variant"`
	Player     PlayerConfig           `yaml:"player"`
	Camera     CameraConfig           `yaml:"camera"`
	Projectile ProjectileConfig       `yaml:"projectile"`
	Enemies    map[string]EnemyConfig `yaml:"enemies"`
	Homing     HomingConfig           `yaml:"homing"`
	Spawn      SpawnConfig            `yaml:"spawn"`
	Waves      []WaveConfig           `yaml:"waves"`
	Timing     TimingConfig           `yaml:"timing"`
	Explosion  ExplosionConfig        `yaml:"explosion"`
	Difficulty DifficultyConfig       `yaml:"difficulty"`
}

// PlayerConfig defines dragon movement and orientation parameters.
type PlayerConfig struct {
	// Speed is the per-tick displacement on each axis.
	Speed float64 `yaml:"speed"`
	// BackFactor scales Speed when flying backward.
	BackFactor float64   `yaml:"back_factor"`
	Bob        BobConfig `yaml:"bob"`
	// Orientation targets: roll = -pointerX*BankFactor, pitch = pointerY*PitchFactor.
	BankFactor  float64 `yaml:"bank_factor"`
	PitchFactor float64 `yaml:"pitch_factor"`
	Smoothing   float64 `yaml:"smoothing"` // Orientation lerp factor per tick
	MaxHealth   int     `yaml:"max_health"`
}

// BobConfig defines the sinusoidal flight bobbing.
type BobConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Frequency float64 `yaml:"frequency"` // Radians per millisecond
	Amplitude float64 `yaml:"amplitude"`
}

// CameraConfig defines the chase camera.
type CameraConfig struct {
	OffsetUp   float64 `yaml:"offset_up"`
	OffsetBack float64 `yaml:"offset_back"`
	Smoothing  float64 `yaml:"smoothing"`
	// LookAhead eases the look-at point toward the player instead of
	// snapping to it every tick.
	LookAhead bool `yaml:"look_ahead"`
}

// ProjectileConfig defines fireball parameters.
type ProjectileConfig struct {
	Speed        float64 `yaml:"speed"`
	Life         int     `yaml:"life"` // Ticks before the fireball burns out
	SpawnForward float64 `yaml:"spawn_forward"`
	SpawnUp      float64 `yaml:"spawn_up"`
	AimDistance  float64 `yaml:"aim_distance"`
	Size         float64 `yaml:"size"`
}

// EnemyConfig is one row of the enemy stat table.
type EnemyConfig struct {
	HP              int     `yaml:"hp"`
	Speed           float64 `yaml:"speed"`
	Score           int     `yaml:"score"`
	CollisionRadius float64 `yaml:"collision_radius"` // Enemy-player contact distance
	HitRadius       float64 `yaml:"hit_radius"`       // Projectile-enemy hit distance
	Damage          int     `yaml:"damage"`
	Color           string  `yaml:"color"` // Destruction explosion color
	Size            float64 `yaml:"size"`
}

// HomingConfig defines how strongly enemies steer toward the player.
type HomingConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Lateral  float64 `yaml:"lateral"`
	Vertical float64 `yaml:"vertical"`
}

// SpawnConfig defines the box ahead of the player where enemies appear.
type SpawnConfig struct {
	SpreadX        float64 `yaml:"spread_x"` // Half-width of the lateral spread
	SpreadY        float64 `yaml:"spread_y"` // Half-height of the vertical spread
	ForwardMin     float64 `yaml:"forward_min"`
	ForwardMax     float64 `yaml:"forward_max"`
	EscapeDistance float64 `yaml:"escape_distance"` // Distance behind the player before an enemy escapes
}

// EnemyGroup is a (type, count) pair within a wave.
type EnemyGroup struct {
	Type  string `yaml:"type"`
	Count int    `yaml:"count"`
}

// WaveConfig defines a single wave.
type WaveConfig struct {
	Enemies      []EnemyGroup `yaml:"enemies"`
	SpawnDelayMS int          `yaml:"spawn_delay_ms"`
}

// Total returns the number of enemies in the wave.
func (w WaveConfig) Total() int {
	n := 0
	for _, g := range w.Enemies {
		n += g.Count
	}
	return n
}

// TimingConfig defines the settle delays.
type TimingConfig struct {
	FirstWaveDelayMS int `yaml:"first_wave_delay_ms"`
	WaveSettleMS     int `yaml:"wave_settle_ms"`
}

// ExplosionConfig defines particle bursts.
type ExplosionConfig struct {
	Particles      int     `yaml:"particles"`
	SparkParticles int     `yaml:"spark_particles"`
	Speed          float64 `yaml:"speed"`
	Decay          float64 `yaml:"decay"`  // Life lost per tick
	Jitter         float64 `yaml:"jitter"` // Spawn offset half-range per axis
	PlayerColor    string  `yaml:"player_color"`
	SparkColor     string  `yaml:"spark_color"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "wave", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Wave/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`   // Multiplier added to enemy speed at max difficulty
	SpawnDelayFactor float64 `yaml:"spawn_delay_factor"` // Fraction of spawn delay removed at max difficulty
}

// Variant names.
const (
	VariantRich    = "rich"
	VariantClassic = "classic"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
