// Package dragon implements Dragon's Ascent, a wave shooter where the player
// pilots a dragon forward through space and burns down waves of enemies.
//
// The package is the headless simulation: it owns the entity pools, the wave
// scheduler and the session state machine, and writes to a core.Presenter
// and core.HUD supplied by the host.
package dragon

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-ascent/internal/config"
	"github.com/vovakirdan/dragon-ascent/internal/core"
	"github.com/vovakirdan/dragon-ascent/internal/registry"
)

// Registered game IDs.
const (
	IDRich    = "dragon"
	IDClassic = "dragon_classic"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation debug output; silent unless SetLogger is called
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is one Dragon's Ascent session owner.
type Game struct {
	id      string
	variant string // Forced variant, "" to use the loaded config as-is

	out      core.Outputs
	override *config.DragonConfig
	log      *log.Logger

	cfg        config.DragonConfig
	runtime    core.RuntimeConfig
	table      map[EnemyType]EnemyStats
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	playerHitColor core.Color
	sparkColor     core.Color

	// Session
	phase  core.Phase
	paused bool
	score  int
	player Player
	camera core.Camera

	// Entity pools
	enemies     []*Enemy
	projectiles []*Projectile
	particles   []*Particle

	waves  *WaveScheduler
	timers timerQueue

	// Clock
	tick  uint64
	clock time.Duration
	dt    time.Duration

	stats  RunStats
	events []core.Event
}

// New creates the rich variant.
func New(out core.Outputs) *Game {
	return newGame(IDRich, "", out)
}

// NewClassic creates the classic variant: no homing or bobbing, full-speed
// reverse, immediate first wave and a camera locked on the dragon.
func NewClassic(out core.Outputs) *Game {
	return newGame(IDClassic, config.VariantClassic, out)
}

// NewWithConfig creates a game that always uses cfg instead of loading files.
func NewWithConfig(cfg config.DragonConfig, out core.Outputs) *Game {
	g := newGame(IDRich, "", out)
	g.override = &cfg
	return g
}

func newGame(id, variant string, out core.Outputs) *Game {
	return &Game{
		id:      id,
		variant: variant,
		out:     out.WithDefaults(),
		log:     logger.WithPrefix(id),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.id == IDClassic {
		return "Dragon's Ascent (Classic)"
	}
	return "Dragon's Ascent"
}

// loadConfig resolves the effective configuration.
func (g *Game) loadConfig() config.DragonConfig {
	var cfg config.DragonConfig
	if g.override != nil {
		cfg = *g.override
		cfg.Enemies = cloneEnemies(g.override.Enemies)
		cfg.Waves = append([]config.WaveConfig(nil), g.override.Waves...)
	} else {
		loaded, err := config.LoadDragon(configPath)
		if err != nil {
			g.log.Warn("using default config", "err", err)
			loaded = config.DefaultDragonConfig()
		}
		cfg = loaded
	}

	if g.variant != "" && g.variant != cfg.Variant {
		config.ApplyVariant(&cfg, g.variant)
	}
	config.ApplyDragonPreset(&cfg, difficultyPreset)
	return cfg
}

func cloneEnemies(in map[string]config.EnemyConfig) map[string]config.EnemyConfig {
	out := make(map[string]config.EnemyConfig, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// Reset reloads configuration, releases every visual and returns to the
// start phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}
	g.runtime = runtime
	g.dt = runtime.TickDuration()

	g.cfg = g.loadConfig()
	g.table = statTable(g.cfg.Enemies)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness, seeded for determinism

	g.playerHitColor = parseColor(g.cfg.Explosion.PlayerColor, core.ColorBrightRed)
	g.sparkColor = parseColor(g.cfg.Explosion.SparkColor, core.ColorBrightYellow)

	g.waves = NewWaveScheduler(g.cfg.Waves, g.rng)
	g.waves.DelayFunc = func(baseMS, wave int) int {
		return g.difficulty.SpawnDelay(baseMS, g.score, wave)
	}

	g.releaseAll()
	g.timers.clear()
	g.phase = core.PhaseStart
	g.paused = false
	g.score = 0
	g.tick = 0
	g.clock = 0
	g.player = Player{Pos: playerStart, Health: g.cfg.Player.MaxHealth}
	g.camera = core.NewCamera(cameraStart, playerStart, runtime.Aspect())
	g.stats = newRunStats()
	g.events = nil

	g.out.Presenter.OnResize(runtime.Aspect(), runtime.ScreenW, runtime.ScreenH)
	g.out.Presenter.SetCamera(g.camera.Position, g.camera.Target)
}

func parseColor(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// Begin starts a fresh session from the start or game-over phase.
// Every live visual is released before the pools are cleared.
func (g *Game) Begin() {
	if g.phase == core.PhasePlaying {
		return
	}
	if g.waves == nil {
		g.Reset(g.runtime)
	}

	g.releaseAll()
	g.timers.clear()
	g.waves.Reset()

	g.phase = core.PhasePlaying
	g.paused = false
	g.score = 0
	g.stats = newRunStats()
	g.player = Player{Pos: playerStart, Health: g.cfg.Player.MaxHealth}
	g.player.handle = g.out.Presenter.CreateVisual(core.VisualDragon, core.Style{
		Color: core.ColorBrightGreen,
		Size:  2,
	})
	g.out.Presenter.SetPosition(g.player.handle, g.player.Pos)
	g.camera.Position = cameraStart
	g.camera.Target = playerStart
	g.out.Presenter.SetCamera(g.camera.Position, g.camera.Target)

	g.out.HUD.UpdateScore(0)
	g.out.HUD.UpdateHealth(g.healthPercent())
	g.out.HUD.UpdateWave(0)

	delay := time.Duration(g.cfg.Timing.FirstWaveDelayMS) * time.Millisecond
	g.timers.schedule(g.clock+delay, 1)
	g.log.Debug("session started", "variant", g.cfg.Variant, "seed", g.runtime.Seed)
}

// releaseAll removes every visual the game created and empties the pools.
func (g *Game) releaseAll() {
	p := g.out.Presenter
	for _, e := range g.enemies {
		p.RemoveVisual(e.handle)
	}
	for _, pr := range g.projectiles {
		p.RemoveVisual(pr.handle)
	}
	for _, pt := range g.particles {
		p.RemoveVisual(pt.handle)
	}
	if g.player.handle != 0 {
		p.RemoveVisual(g.player.handle)
		g.player.handle = 0
	}
	g.enemies = nil
	g.projectiles = nil
	g.particles = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputState) core.StepResult {
	if g.waves == nil {
		g.Reset(core.DefaultConfig())
	}
	g.events = nil

	if g.phase == core.PhasePlaying && in.PauseRequested() {
		g.paused = !g.paused
	}
	if g.phase == core.PhasePlaying && g.paused {
		g.out.Presenter.RenderFrame()
		return g.result()
	}

	g.tick++
	g.clock += g.dt
	g.runTimers()

	if g.phase != core.PhasePlaying {
		if in.BeginRequested() {
			g.Begin()
		}
		g.out.Presenter.RenderFrame()
		return g.result()
	}

	g.stats.Ticks++
	g.stats.Duration += g.dt

	for range in.Fires() {
		g.fire(in)
	}

	if t, ok := g.waves.SpawnTick(g.clock); ok {
		g.spawnEnemy(t)
	}

	g.movePlayer(in)
	g.moveCamera()
	g.moveProjectiles()
	g.moveEnemies()

	if g.resolveCollisions() {
		g.checkWave()
		g.decayParticles()
	}

	g.out.Presenter.RenderFrame()
	return g.result()
}

// runTimers fires due wave starts. A timer left over from a session that is
// no longer playing does nothing.
func (g *Game) runTimers() {
	for _, t := range g.timers.due(g.clock) {
		if g.phase != core.PhasePlaying {
			g.log.Debug("dropping stale wave timer", "wave", t.wave)
			continue
		}
		g.startWave(t.wave)
	}
}

func (g *Game) startWave(n int) {
	g.waves.StartWave(n, g.clock)
	g.out.HUD.UpdateWave(n)
	g.emit(core.EventWaveStarted, "", n)
	g.log.Debug("wave started", "wave", n, "enemies", g.waves.Remaining(0))
}

// checkWave schedules the next wave once the current one is cleared.
func (g *Game) checkWave() {
	if !g.waves.CheckComplete(len(g.enemies)) {
		return
	}
	n := g.waves.Wave()
	g.stats.WavesCleared++
	g.emit(core.EventWaveCleared, "", n)
	g.log.Debug("wave cleared", "wave", n, "score", g.score)

	settle := time.Duration(g.cfg.Timing.WaveSettleMS) * time.Millisecond
	g.timers.schedule(g.clock+settle, n+1)
}

// endSession performs the one-way transition to game over.
func (g *Game) endSession() {
	if g.phase != core.PhasePlaying {
		return
	}
	g.phase = core.PhaseGameOver
	g.paused = false
	g.emit(core.EventGameOver, "", g.score)
	g.out.HUD.ShowGameOver(g.score)
	g.log.Debug("game over", "score", g.score, "wave", g.waves.Wave(), "ticks", g.stats.Ticks)
}

func (g *Game) emit(kind core.EventKind, enemy string, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Tick: g.tick, Enemy: enemy, Value: value})
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// healthPercent returns health as a percentage of the maximum.
func (g *Game) healthPercent() int {
	maxHealth := g.cfg.Player.MaxHealth
	if maxHealth <= 0 {
		return 0
	}
	return core.Clamp(g.player.Health*100/maxHealth, 0, 100)
}

// nowMS returns the simulation clock in milliseconds.
func (g *Game) nowMS() float64 {
	return float64(g.clock) / float64(time.Millisecond)
}

// Resize informs the game of a new host surface size.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.camera.Aspect = g.runtime.Aspect()
	g.out.Presenter.OnResize(g.runtime.Aspect(), width, height)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	remaining := 0
	wave := 0
	if g.waves != nil {
		remaining = g.waves.Remaining(len(g.enemies))
		wave = g.waves.Wave()
	}
	return core.GameState{
		Phase:            g.phase,
		Score:            g.score,
		Health:           g.healthPercent(),
		Wave:             wave,
		EnemiesRemaining: remaining,
		Paused:           g.paused,
		GameOver:         g.phase == core.PhaseGameOver,
	}
}

// Stats returns a copy of the current session statistics.
func (g *Game) Stats() RunStats {
	return g.stats.clone()
}

// Config returns the effective configuration.
func (g *Game) Config() config.DragonConfig {
	return g.cfg
}

// Player returns a copy of the dragon.
func (g *Game) Player() Player {
	return g.player
}

// Camera returns the current camera pose.
func (g *Game) Camera() core.Camera {
	return g.camera
}

// Enemies returns copies of the live enemies.
func (g *Game) Enemies() []Enemy {
	out := make([]Enemy, len(g.enemies))
	for i, e := range g.enemies {
		out[i] = *e
	}
	return out
}

// Projectiles returns copies of the live projectiles.
func (g *Game) Projectiles() []Projectile {
	out := make([]Projectile, len(g.projectiles))
	for i, p := range g.projectiles {
		out[i] = *p
	}
	return out
}

// ParticleCount returns the number of live explosion particles.
func (g *Game) ParticleCount() int {
	return len(g.particles)
}

func init() {
	registry.Register(IDRich, func(out core.Outputs) registry.Game {
		return New(out)
	})
	registry.Register(IDClassic, func(out core.Outputs) registry.Game {
		return NewClassic(out)
	})
}
