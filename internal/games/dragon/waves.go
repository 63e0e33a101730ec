package dragon

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dragon-ascent/internal/config"
)

// WaveScheduler turns the wave table into a paced queue of enemy types.
type WaveScheduler struct {
	waves []config.WaveConfig
	rng   *rand.Rand

	// DelayFunc rescales the configured spawn delay (milliseconds) for a wave.
	// Nil keeps the table value.
	DelayFunc func(baseMS, wave int) int

	wave      int
	queue     []EnemyType
	delay     time.Duration
	lastSpawn time.Duration
	active    bool
}

// NewWaveScheduler creates a scheduler over a wave table.
func NewWaveScheduler(waves []config.WaveConfig, rng *rand.Rand) *WaveScheduler {
	return &WaveScheduler{waves: waves, rng: rng}
}

// configFor returns the table entry for wave n, clamped to the table bounds.
func (w *WaveScheduler) configFor(n int) config.WaveConfig {
	if len(w.waves) == 0 {
		return config.WaveConfig{}
	}
	idx := n - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(w.waves) {
		idx = len(w.waves) - 1
	}
	return w.waves[idx]
}

// StartWave builds the shuffled spawn queue for wave n and resets the spawn timer.
// The timer starts already elapsed, so the first enemy is dequeued by the next
// SpawnTick and the rest follow one spawn delay apart.
func (w *WaveScheduler) StartWave(n int, now time.Duration) {
	cfg := w.configFor(n)

	w.queue = w.queue[:0]
	for _, g := range cfg.Enemies {
		for range g.Count {
			w.queue = append(w.queue, EnemyType(g.Type))
		}
	}
	w.rng.Shuffle(len(w.queue), func(i, j int) {
		w.queue[i], w.queue[j] = w.queue[j], w.queue[i]
	})

	delayMS := cfg.SpawnDelayMS
	if w.DelayFunc != nil {
		delayMS = w.DelayFunc(delayMS, n)
	}
	w.delay = time.Duration(delayMS) * time.Millisecond
	w.wave = n
	w.lastSpawn = now - w.delay
	w.active = true
}

// SpawnTick dequeues at most one enemy type once the spawn delay has elapsed.
func (w *WaveScheduler) SpawnTick(now time.Duration) (EnemyType, bool) {
	if !w.active || len(w.queue) == 0 {
		return "", false
	}
	if now-w.lastSpawn < w.delay {
		return "", false
	}
	t := w.queue[0]
	w.queue = w.queue[1:]
	w.lastSpawn = now
	return t, true
}

// CheckComplete reports the end of the active wave: queue drained and no enemy
// left alive. It returns true once per wave.
func (w *WaveScheduler) CheckComplete(live int) bool {
	if !w.active || len(w.queue) > 0 || live > 0 {
		return false
	}
	w.active = false
	return true
}

// Remaining returns queued plus live enemies for the active wave.
func (w *WaveScheduler) Remaining(live int) int {
	return len(w.queue) + live
}

// Wave returns the ordinal of the last started wave, 0 before the first.
func (w *WaveScheduler) Wave() int {
	return w.wave
}

// Active reports whether a wave is in progress.
func (w *WaveScheduler) Active() bool {
	return w.active
}

// Queue returns a copy of the pending spawn tokens.
func (w *WaveScheduler) Queue() []EnemyType {
	out := make([]EnemyType, len(w.queue))
	copy(out, w.queue)
	return out
}

// Reset returns the scheduler to the pre-session state.
func (w *WaveScheduler) Reset() {
	w.wave = 0
	w.queue = w.queue[:0]
	w.delay = 0
	w.lastSpawn = 0
	w.active = false
}
