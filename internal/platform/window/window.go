// Package window runs Dragon's Ascent in a desktop window using Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dragon-ascent/internal/core"
	"github.com/vovakirdan/dragon-ascent/internal/platform/scene"
	"github.com/vovakirdan/dragon-ascent/internal/registry"
)

var skyColor = color.RGBA{0x87, 0xce, 0xeb, 0xff}

// heldKeys maps level-triggered actions to their keys.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionForward: {ebiten.KeyW, ebiten.KeyArrowUp},
	core.ActionBack:    {ebiten.KeyS, ebiten.KeyArrowDown},
	core.ActionLeft:    {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight:   {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionUp:      {ebiten.KeySpace},
	core.ActionDown:    {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
}

// Options tune the window host.
type Options struct {
	Width  int
	Height int
	Logger *log.Logger
}

// Host adapts a registry.Game to ebiten.Game.
type Host struct {
	game   registry.Game
	scene  *scene.Scene
	hud    *statusHUD
	input  core.InputState
	config core.RuntimeConfig
	log    *log.Logger
	width  int
	height int
	state  core.GameState
}

// NewHost creates the game for gameID drawing into a fresh scene.
func NewHost(gameID string, cfg core.RuntimeConfig, opts Options) (*Host, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Width > 0 && opts.Height > 0 {
		cfg.ScreenW, cfg.ScreenH = opts.Width, opts.Height
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sc := scene.New()
	hud := &statusHUD{health: 100}
	game, err := registry.Create(gameID, core.Outputs{Presenter: sc, HUD: hud})
	if err != nil {
		return nil, err
	}
	game.Reset(cfg)

	return &Host{
		game:   game,
		scene:  sc,
		hud:    hud,
		config: cfg,
		log:    logger.WithPrefix("window"),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		state:  game.State(),
	}, nil
}

// Update samples input and advances the simulation one tick.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for action, keys := range heldKeys {
		h.input.Set(action, anyPressed(keys))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.input.QueueFire()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		h.input.Press(core.ActionBegin)
		h.input.Release(core.ActionBegin)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		h.input.Press(core.ActionPause)
		h.input.Release(core.ActionPause)
	}
	mx, my := ebiten.CursorPosition()
	h.input.SetPointer(pointerFromPixel(mx, my, h.width, h.height))

	res := h.game.Step(h.input.Take())
	for _, ev := range res.Events {
		if ev.Kind == core.EventGameOver {
			h.log.Info("game over", "game", h.game.ID(), "score", ev.Value)
		}
	}
	h.state = res.State
	return nil
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Draw paints the projected scene and the HUD text.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	for _, v := range h.scene.Visible() {
		x, y := toPixel(v.X, v.Y, h.width, h.height)
		r := pixelRadius(v.Radius, h.height)
		c := rgba(v.Style.Color, v.Opacity)
		switch v.Kind {
		case core.VisualDragon:
			drawDragon(screen, x, y, r, v.Rot.Z, c)
		case core.VisualEnemy, core.VisualProjectile, core.VisualParticle:
			vector.DrawFilledCircle(screen, x, y, r, c, true)
		}
	}

	ebitenutil.DebugPrintAt(screen, h.hud.line(), 8, 8)
	for i, l := range h.overlay() {
		ebitenutil.DebugPrintAt(screen, l, h.width/2-len(l)*3, h.height/2-20+i*16)
	}
}

// overlay returns the centered message lines for the current phase.
func (h *Host) overlay() []string {
	switch {
	case h.state.Phase == core.PhaseStart:
		return []string{h.game.Title(), "WASD move, space/shift climb/dive", "F or click to breathe fire", "press ENTER to take flight"}
	case h.state.Paused:
		return []string{"PAUSED", "P to resume"}
	case h.state.Phase == core.PhaseGameOver:
		lines := []string{"GAME OVER"}
		if s, ok := h.game.(registry.Summarizer); ok {
			for _, st := range s.Summary() {
				lines = append(lines, fmt.Sprintf("%-14s %s", st.Label, st.Value))
			}
		}
		return append(lines, "", "press ENTER to fly again")
	}
	return nil
}

// drawDragon strokes a winged arrowhead rolled by the bank angle.
func drawDragon(screen *ebiten.Image, x, y, r float32, roll float64, c color.RGBA) {
	tilt := float32(roll) * r
	vector.StrokeLine(screen, x-r*2, y+tilt, x, y-r, 2, c, true)
	vector.StrokeLine(screen, x, y-r, x+r*2, y-tilt, 2, c, true)
	vector.StrokeLine(screen, x-r*2, y+tilt, x+r*2, y-tilt, 2, c, true)
	vector.DrawFilledCircle(screen, x, y, r/2, c, true)
}

// Layout resizes the simulation to the window's logical size.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.game.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Run opens a window for gameID and blocks until it closes.
func Run(gameID string, cfg core.RuntimeConfig, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1280, 720
	}
	host, err := NewHost(gameID, cfg, opts)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(host.game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(host.config.TickRate)

	return ebiten.RunGame(host)
}

var _ ebiten.Game = (*Host)(nil)
