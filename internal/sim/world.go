package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"deepsea/internal/core"
)

// LowOxygenTitle and LowOxygenBody are the warning notification text.
const (
	LowOxygenTitle = "Warning: Low Oxygen"
	LowOxygenBody  = "Return to the surface to replenish your oxygen supply!"
)

// World is the simulation context: it owns the agent store, the viewpoint,
// the vitals and the discovery set, and drives them once per frame.
type World struct {
	cfg Config

	scene Scene
	hud   HUD
	log   zerolog.Logger

	rng         *core.RNG
	store       *Store
	view        Viewpoint
	diver       Diver
	vitals      *Vitals
	discoveries *Discoveries
	stats       VitalStats
	flashlight  bool

	tick     uint64
	seconds  float64
	recycled int
}

// New returns a world wired to the given collaborators. Nil collaborators are
// replaced with no-ops. Call Reset before the first Step.
func New(cfg Config, scene Scene, hud HUD) *World {
	if scene == nil {
		scene = nopScene{}
	}
	if hud == nil {
		hud = nopHUD{}
	}
	return &World{
		cfg:         cfg,
		scene:       scene,
		hud:         hud,
		log:         zerolog.Nop(),
		rng:         core.NewRNG(cfg.Seed),
		store:       &Store{},
		vitals:      NewVitals(),
		discoveries: NewDiscoveries(cfg.Discoveries),
	}
}

// NewWithConfig returns a headless world populated from cfg.
func NewWithConfig(cfg Config) *World {
	w := New(cfg, nil, nil)
	w.Reset(0)
	return w
}

// SetLogger replaces the world's logger.
func (w *World) SetLogger(l zerolog.Logger) { w.log = l }

// Name returns the scene preset name.
func (w *World) Name() string { return w.cfg.Name }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Reset releases the current scene and repopulates it. A zero seed falls back
// to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.store.Release()
	w.rng.Reseed(effective)
	w.store = Populate(w.scene, w.rng, w.cfg.Layout)

	d := w.cfg.Params.Diver
	w.view = Viewpoint{Position: w.cfg.Start, MinY: d.MinY, MaxY: d.MaxY}
	w.diver = Diver{}
	w.vitals = NewVitals()
	w.discoveries = NewDiscoveries(w.cfg.Discoveries)
	w.stats = VitalStats{Oxygen: w.vitals.Oxygen()}
	w.flashlight = false
	w.tick = 0
	w.seconds = 0
	w.recycled = 0

	w.hud.SetFlashlight(false)
	w.pushReadouts()

	w.log.Debug().
		Int64("seed", effective).
		Int("fish", len(w.store.Fish)).
		Int("bubbles", len(w.store.Bubbles)).
		Int("seaweed", len(w.store.Seaweed)).
		Int("props", len(w.store.Props)).
		Msg("scene populated")
}

// Step runs one frame: movement, flocking, drift, sway, then the
// HUD-facing proximity and vitals updates while engaged.
func (w *World) Step(f core.Frame) {
	in := f.Input
	p := &w.cfg.Params

	w.tick = f.Tick
	w.seconds = f.Seconds()

	if in.ToggleFlashlight {
		w.ToggleFlashlight()
	}
	if in.Engaged {
		w.diver.Look(&w.view, in.LookDX, in.LookDY, p.Diver)
		w.diver.Move(&w.view, in, f.DeltaSeconds(), p.Diver)
	}

	stepFlock(w.store.Fish, w.view.Position, p.Flock, w.rng)
	w.recycled += stepDrift(w.store.Bubbles, w.seconds, p.Drift, w.rng)
	stepSway(w.store.Seaweed, w.seconds, p.SwayAmplitude)

	if !in.Engaged {
		return
	}
	w.checkDiscoveries()
	w.updateVitals()
	w.pushReadouts()
}

func (w *World) checkDiscoveries() {
	for _, pt := range w.discoveries.Check(w.view.Position) {
		w.log.Info().
			Str("name", pt.Name).
			Uint64("tick", w.tick).
			Int("remaining", w.discoveries.Remaining()).
			Msg("discovery")
		w.hud.Notify(Notification{
			Kind:     NoticeDiscovery,
			Title:    pt.Name,
			Body:     pt.Description,
			Duration: w.cfg.Params.NotifyDuration,
		})
	}
}

func (w *World) updateVitals() {
	stats, fired := w.vitals.Update(w.view.Position.Y(), w.cfg.Params.Vitals)
	w.stats = stats
	if !fired {
		return
	}
	w.log.Warn().
		Float64("oxygen", stats.Oxygen).
		Float64("depth", stats.Depth).
		Msg("low oxygen")
	w.hud.Notify(Notification{
		Kind:     NoticeWarning,
		Title:    LowOxygenTitle,
		Body:     LowOxygenBody,
		Duration: w.cfg.Params.NotifyDuration,
	})
}

func (w *World) pushReadouts() {
	w.hud.SetValue(ElementOxygen, w.stats.Oxygen)
	w.hud.SetValue(ElementDepth, DepthOf(w.view.Position.Y()))
	w.hud.SetValue(ElementDepthFill, DepthFill(DepthOf(w.view.Position.Y()), w.cfg.Params.Vitals.MaxDepth))
	w.hud.SetValue(ElementCompass, w.view.Bearing())
	w.hud.SetValue(ElementSpeed, w.diver.Speed())
}

// ToggleFlashlight flips the flashlight and updates the HUD indicator.
func (w *World) ToggleFlashlight() {
	w.flashlight = !w.flashlight
	w.hud.SetFlashlight(w.flashlight)
}

// Close releases every renderable handle.
func (w *World) Close() {
	w.store.Release()
}

// PlaceViewpoint moves the diver, clamped to the vertical bounds.
func (w *World) PlaceViewpoint(pos mgl64.Vec3) {
	pos[1] = mgl64.Clamp(pos[1], w.view.MinY, w.view.MaxY)
	w.view.Position = pos
}

// Viewpoint returns the diver camera.
func (w *World) Viewpoint() Viewpoint { return w.view }

// Fish exposes the fish records. Callers must not retain them across Reset.
func (w *World) Fish() []*FishAgent { return w.store.Fish }

// Schools exposes the shared school centers.
func (w *World) Schools() []*School { return w.store.Schools }

// Bubbles exposes the bubble records.
func (w *World) Bubbles() []*BubbleAgent { return w.store.Bubbles }

// Seaweed exposes the seaweed segments.
func (w *World) Seaweed() []*SeaweedSegment { return w.store.Seaweed }

// Points returns the discovery point states.
func (w *World) Points() []DiscoveryPoint { return w.discoveries.Points() }

// Discovered returns the session log of discovered names.
func (w *World) Discovered() []string { return w.discoveries.Log() }

// Vitals exposes the oxygen state.
func (w *World) Vitals() *Vitals { return w.vitals }

// Stats returns the readout computed on the last engaged frame.
func (w *World) Stats() VitalStats { return w.stats }

// Flashlight reports whether the flashlight is on.
func (w *World) Flashlight() bool { return w.flashlight }

// Speed returns the diver speed readout.
func (w *World) Speed() float64 { return w.diver.Speed() }

// Bearing returns the compass readout in degrees.
func (w *World) Bearing() float64 { return w.view.Bearing() }

// Tick returns the last stepped frame number.
func (w *World) Tick() uint64 { return w.tick }

// Recycled counts bubbles returned to their origin since Reset.
func (w *World) Recycled() int { return w.recycled }
