//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"deepsea/internal/core"
	"deepsea/internal/hud"
	"deepsea/internal/render"
	"deepsea/internal/sim"
	"deepsea/internal/ui"
)

const tuningWidth = 240

// Game adapts a dive session to the ebiten.Game interface.
type Game struct {
	session *Session
	clock   *core.Clock
	log     zerolog.Logger

	painter *render.ScenePainter
	water   *render.WaterShader
	widgets *ui.Widgets
	overlay *ui.Overlay
	tuning  *ui.TuningPanel

	width, height int
	tps           int
	engaged       bool
	showTuning    bool
	paused        bool

	cursorX, cursorY int
}

// New constructs a Game drawing s into a width x height view.
func New(s *Session, cfg *Config, log zerolog.Logger) *Game {
	water, err := render.NewWaterShader()
	if err != nil {
		log.Warn().Err(err).Msg("water pass disabled")
	}
	return &Game{
		session: s,
		clock:   core.NewClock(cfg.TPS),
		log:     log,
		painter: render.NewScenePainter(),
		water:   water,
		widgets: ui.NewWidgets(s.Panel, hud.NewMinimap(100, 100)),
		overlay: ui.NewOverlay(s.World),
		tuning:  ui.NewTuningPanel(s.World, tuningWidth),
		width:   cfg.Width,
		height:  cfg.Height,
		tps:     cfg.TPS,
	}
}

// Reset repopulates the session and rewinds the clock.
func (g *Game) Reset() {
	g.session.Reset()
	g.clock.Reset()
}

// Update handles per-frame input and advances the world.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.release()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showTuning = !g.showTuning
		if g.showTuning {
			g.release()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if g.engaged && ebiten.CursorMode() != ebiten.CursorModeCaptured {
		g.release()
	}
	if !g.engaged && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		if !g.showTuning || x < g.width-g.tuning.Width() {
			g.engage()
		}
	}

	g.overlay.Update()
	if g.showTuning {
		g.tuning.Update(g.width - g.tuning.Width())
	}

	in := g.input()
	if !g.paused {
		g.session.World.Step(g.clock.Next(in))
	}
	g.session.Panel.Update()
	return nil
}

func (g *Game) input() core.Input {
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	in := core.Input{
		ToggleFlashlight: inpututil.IsKeyJustPressed(ebiten.KeyF),
		Engaged:          g.engaged,
	}
	if !g.engaged {
		return in
	}
	in.Forward = pressed(ebiten.KeyW, ebiten.KeyArrowUp)
	in.Back = pressed(ebiten.KeyS, ebiten.KeyArrowDown)
	in.Left = pressed(ebiten.KeyA, ebiten.KeyArrowLeft)
	in.Right = pressed(ebiten.KeyD, ebiten.KeyArrowRight)
	in.Up = pressed(ebiten.KeySpace)
	in.Down = pressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight)

	x, y := ebiten.CursorPosition()
	in.LookDX = float64(x - g.cursorX)
	in.LookDY = float64(y - g.cursorY)
	g.cursorX, g.cursorY = x, y
	return in
}

func (g *Game) engage() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	g.cursorX, g.cursorY = ebiten.CursorPosition()
	g.engaged = true
	g.log.Debug().Msg("pointer captured")
}

func (g *Game) release() {
	if !g.engaged {
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	g.engaged = false
	g.log.Debug().Msg("pointer released")
}

// Draw renders the scene, the debug overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.session.World
	cam := render.NewCamera(w.Viewpoint(), g.width, g.height)
	lit := render.LightingFor(w.Viewpoint(), w.Flashlight())
	g.painter.Draw(screen, g.session.Graph, cam, lit)
	if g.tps > 0 {
		depth := sim.DepthOf(w.Viewpoint().Position.Y())
		g.water.Draw(screen, float64(w.Tick())/float64(g.tps), depth, w.Flashlight())
	}
	g.overlay.Draw(screen, cam)
	g.widgets.Draw(screen, g.width, g.height, w, g.engaged)
	if g.showTuning {
		g.tuning.Draw(screen, g.width-g.tuning.Width(), g.height)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
