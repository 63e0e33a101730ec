package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width (characters or pixels, host-defined)
	ScreenH  int   // Screen height
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the simulated time covered by one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// Aspect returns the screen aspect ratio (width/height).
func (c RuntimeConfig) Aspect() float64 {
	if c.ScreenW <= 0 || c.ScreenH <= 0 {
		return 16.0 / 9.0
	}
	return float64(c.ScreenW) / float64(c.ScreenH)
}

// Phase is the session state machine tag.
type Phase int

const (
	PhaseStart    Phase = iota // Awaiting the begin signal
	PhasePlaying               // Simulation active
	PhaseGameOver              // Terminal display, score frozen
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase            Phase
	Score            int  // Current score
	Health           int  // Player health, 0-100
	Wave             int  // Current wave ordinal (0 before the first wave)
	EnemiesRemaining int  // Queued plus live enemies of the active wave
	Paused           bool // Whether the game is paused
	GameOver         bool // Whether the game has ended
}

// EventKind classifies things that happened during a tick.
type EventKind int

const (
	EventWaveStarted EventKind = iota
	EventWaveCleared
	EventEnemySpawned
	EventEnemyKilled
	EventEnemyHit
	EventEnemyEscaped
	EventPlayerHit
	EventProjectileFired
	EventProjectileExpired
	EventGameOver
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventWaveStarted:
		return "wave_started"
	case EventWaveCleared:
		return "wave_cleared"
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyKilled:
		return "enemy_killed"
	case EventEnemyHit:
		return "enemy_hit"
	case EventEnemyEscaped:
		return "enemy_escaped"
	case EventPlayerHit:
		return "player_hit"
	case EventProjectileFired:
		return "projectile_fired"
	case EventProjectileExpired:
		return "projectile_expired"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event records one simulation occurrence.
// Value carries the kind-specific number: wave ordinal, score awarded,
// damage dealt or final score.
type Event struct {
	Kind  EventKind
	Tick  uint64
	Enemy string // Enemy type name, when relevant
	Value int
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Stat is one labelled line of an end-of-run summary.
type Stat struct {
	Label string
	Value string
}
