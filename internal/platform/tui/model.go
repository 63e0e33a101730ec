package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dragon-ascent/internal/core"
	"github.com/vovakirdan/dragon-ascent/internal/platform/scene"
	"github.com/vovakirdan/dragon-ascent/internal/registry"
)

// Rows used by the HUD line and the help line.
const chromeRows = 2

// Options tune a terminal session.
type Options struct {
	// HoldTicks is how many ticks a movement key stays held after its
	// last press or repeat. Zero means DefaultHoldTicks.
	HoldTicks int
	// Logger receives session events. Nil discards them.
	Logger *log.Logger
	// Embedded models report back-to-menu instead of quitting the program.
	Embedded bool
}

// Model is the Bubble Tea model for a Dragon's Ascent session.
type Model struct {
	game    registry.Game
	scene   *scene.Scene
	hud     *HUD
	screen  *core.Screen
	config  core.RuntimeConfig
	opts    Options
	log     *log.Logger
	keys    *KeyMapper
	help    help.Model
	input   *core.InputState
	hold    *holdTracker
	ticks   uint64
	state   core.GameState
	summary *table.Model
	width   int
	height  int

	quitting   bool
	backToMenu bool
}

// NewModel creates the game for gameID wired to a fresh scene and HUD.
func NewModel(gameID string, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sc := scene.New()
	hud := NewHUD()
	game, err := registry.Create(gameID, core.Outputs{Presenter: sc, HUD: hud})
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:   game,
		scene:  sc,
		hud:    hud,
		screen: core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config: cfg,
		opts:   opts,
		log:    logger.WithPrefix("tui"),
		keys:   NewKeyMapper(),
		help:   h,
		input:  &core.InputState{},
		hold:   newHoldTracker(opts.HoldTicks),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	game.Reset(cfg)
	m.resizeGame()
	m.state = game.State()
	return m, nil
}

// playRows returns the rows left for the play area.
func playRows(height int) int {
	if height <= chromeRows {
		return 1
	}
	return height - chromeRows
}

// resizeGame hands the play area to the game. Terminal cells are roughly
// twice as tall as wide, so the height is doubled to keep the aspect right.
func (m *Model) resizeGame() {
	m.game.Resize(m.screen.Width(), m.screen.Height()*2)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "error", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}
	if m.keys.IsHelpKey(msg) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if m.keys.IsMenuKey(msg) {
		// Leaving mid-flight pauses first so a stray esc is recoverable.
		if m.state.Phase == core.PhasePlaying && !m.state.Paused {
			m.input.Press(core.ActionPause)
			m.input.Release(core.ActionPause)
			return m, nil
		}
		m.hold.releaseAll(m.input)
		m.backToMenu = true
		if m.opts.Embedded {
			return m, nil
		}
		return m, tea.Quit
	}

	action, quit := m.keys.MapKey(msg)
	if quit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionFire:
		// Every key event is a discrete press; terminals report no key-up.
		m.input.QueueFire()
	case core.ActionBegin, core.ActionPause:
		m.input.Press(action)
		m.input.Release(action)
	default:
		m.hold.press(m.input, action, m.ticks)
	}
	return m, nil
}

// handleMouse aims with pointer motion and fires on left press.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// The play area starts below the HUD line.
	x, y := msg.X, msg.Y-1
	if y < 0 || y >= m.screen.Height() {
		return m, nil
	}
	px, py := pointerFromCell(x, y, m.screen.Width(), m.screen.Height())
	m.input.SetPointer(px, py)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.QueueFire()
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	m.resizeGame()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticks++
	m.hold.expire(m.input, m.ticks)

	prev := m.state
	result := m.game.Step(m.input.Take())
	m.state = result.State

	for _, ev := range result.Events {
		switch ev.Kind {
		case core.EventWaveStarted:
			m.log.Debug("wave started", "wave", ev.Value)
		case core.EventGameOver:
			m.log.Info("game over", "game", m.game.ID(), "score", ev.Value)
		}
	}

	if m.state.Phase == core.PhaseGameOver && (prev.Phase != core.PhaseGameOver || m.summary == nil) {
		m.buildSummary()
	}
	if m.state.Phase != core.PhaseGameOver {
		m.summary = nil
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// buildSummary snapshots the run statistics when the game provides them.
func (m *Model) buildSummary() {
	stats := []core.Stat{{Label: "Score", Value: fmt.Sprintf("%d", m.state.Score)}}
	if s, ok := m.game.(registry.Summarizer); ok {
		stats = s.Summary()
	}
	t := newSummaryTable(stats)
	m.summary = &t
}

// saveScreenshot writes the current play area to ~/.dragon/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.drawPlayArea()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".dragon", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// drawPlayArea rasterizes the scene and the phase overlays.
func (m *Model) drawPlayArea() {
	m.screen.Clear()
	r := rasterizer{area: core.NewRect(0, 0, m.screen.Width(), m.screen.Height())}
	r.draw(m.screen, m.scene.Visible())

	switch {
	case m.state.Phase == core.PhaseStart:
		r.overlay(m.screen, []string{
			m.game.Title(),
			"",
			"WASD move  space/c climb/dive",
			"f or click to breathe fire",
			"",
			"press enter to take flight",
		}, core.ColorBrightYellow)
	case m.state.Paused:
		r.dim(m.screen)
		r.overlay(m.screen, []string{"PAUSED", "p to resume  esc for menu"}, core.ColorBrightCyan)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || (m.backToMenu && m.opts.Embedded) {
		return ""
	}

	if m.state.Phase == core.PhaseGameOver && m.summary != nil {
		return renderSummary(*m.summary, m.state.Score, m.width, m.height)
	}

	m.drawPlayArea()

	var b strings.Builder
	b.WriteString(m.hud.View(m.width))
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys.Keys())))
	return b.String()
}

// State returns the last game state seen by the model.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// RunResult reports how a terminal session ended.
type RunResult struct {
	State      core.GameState
	BackToMenu bool
}

// Run starts a Bubble Tea program for gameID and blocks until it exits.
func Run(gameID string, cfg core.RuntimeConfig, opts Options) (RunResult, error) {
	opts.Embedded = false
	model, err := NewModel(gameID, cfg, opts)
	if err != nil {
		return RunResult{}, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer aiming needs motion without buttons
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return RunResult{}, nil
	}
	return RunResult{State: m.State(), BackToMenu: m.BackToMenu()}, nil
}
