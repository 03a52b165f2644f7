package hud

import (
	"image/color"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepsea/internal/core"
	"deepsea/internal/sim"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestPanelNotificationAutoDismiss(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	p := NewPanel()
	p.SetClock(clock.now)

	p.Notify(sim.Notification{Title: "Underwater Cave", Duration: 5 * time.Second})
	n, ok := p.Notice()
	require.True(t, ok)
	assert.Equal(t, "Underwater Cave", n.Title)

	clock.t = clock.t.Add(4900 * time.Millisecond)
	p.Update()
	_, ok = p.Notice()
	assert.True(t, ok, "notice should still be visible before the deadline")

	clock.t = clock.t.Add(100 * time.Millisecond)
	p.Update()
	_, ok = p.Notice()
	assert.False(t, ok, "notice should be dismissed at the deadline")
	assert.Equal(t, 1, p.Shown())
}

func TestPanelNewNoticeReplacesOld(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewPanel()
	p.SetClock(clock.now)

	p.Notify(sim.Notification{Title: "first", Duration: time.Second})
	clock.t = clock.t.Add(800 * time.Millisecond)
	p.Notify(sim.Notification{Title: "second", Duration: time.Second})
	clock.t = clock.t.Add(500 * time.Millisecond)
	p.Update()

	n, ok := p.Notice()
	require.True(t, ok)
	assert.Equal(t, "second", n.Title)

	p.Close()
	_, ok = p.Notice()
	assert.False(t, ok)
}

func TestPanelReadouts(t *testing.T) {
	p := NewPanel()
	_, ok := p.Value(sim.ElementOxygen)
	assert.False(t, ok)

	p.SetValue(sim.ElementOxygen, 42)
	p.SetFlashlight(true)
	v, ok := p.Value(sim.ElementOxygen)
	assert.True(t, ok)
	assert.Equal(t, 42.0, v)
	assert.True(t, p.Flashlight())
}

func TestOxygenGradientBands(t *testing.T) {
	assert.Equal(t, []color.RGBA{Red, Red}, OxygenGradient(19.9))
	assert.Equal(t, []color.RGBA{Red, Orange}, OxygenGradient(20))
	assert.Equal(t, []color.RGBA{Red, Orange, Green}, OxygenGradient(50))
}

func TestGradientAt(t *testing.T) {
	stops := OxygenGradient(100)
	assert.Equal(t, Red, GradientAt(stops, 0))
	assert.Equal(t, Orange, GradientAt(stops, 0.5))
	assert.Equal(t, Green, GradientAt(stops, 1))
	assert.Equal(t, Green, GradientAt(stops, 3))
}

func TestDepthColorAndLabel(t *testing.T) {
	assert.Equal(t, Green, DepthColor(5))
	assert.Equal(t, Shallow, DepthColor(5.1))
	assert.Equal(t, Orange, DepthColor(11))
	assert.Equal(t, DeepRed, DepthColor(16))

	assert.Equal(t, "0m", DepthLabel(0))
	assert.Equal(t, "13m", DepthLabel(12.6))
}

func TestCardinal(t *testing.T) {
	assert.Equal(t, "N", Cardinal(180))
	assert.Equal(t, "N", Cardinal(-180))
	assert.Equal(t, "E", Cardinal(90))
	assert.Equal(t, "W", Cardinal(-90))
	assert.Equal(t, "S", Cardinal(0))
}

type stubSource struct {
	view   sim.Viewpoint
	fish   []*sim.FishAgent
	points []sim.DiscoveryPoint
}

func (s stubSource) Viewpoint() sim.Viewpoint       { return s.view }
func (s stubSource) Fish() []*sim.FishAgent         { return s.fish }
func (s stubSource) Bubbles() []*sim.BubbleAgent    { return nil }
func (s stubSource) Seaweed() []*sim.SeaweedSegment { return nil }
func (s stubSource) Points() []sim.DiscoveryPoint   { return s.points }

func TestMinimapMarkers(t *testing.T) {
	m := NewMinimap(20, 10)
	src := stubSource{
		view: sim.Viewpoint{Position: mgl64.Vec3{100, -5, 100}},
		fish: []*sim.FishAgent{{Position: mgl64.Vec3{105, 0, 100}}},
		points: []sim.DiscoveryPoint{
			{Position: mgl64.Vec3{100, 0, 95}},
			{Position: mgl64.Vec3{100, 0, 105}, Discovered: true},
			{Position: mgl64.Vec3{500, 0, 500}},
		},
	}
	m.Render(src)

	assert.Equal(t, MarkerDiver, m.Grid.At(10, 10))
	assert.Equal(t, MarkerFish, m.Grid.At(15, 10))
	assert.Equal(t, MarkerPoint, m.Grid.At(10, 5))
	assert.Equal(t, MarkerFound, m.Grid.At(10, 15))

	count := 0
	for _, c := range m.Grid.Cells() {
		if c != MarkerWater {
			count++
		}
	}
	assert.Equal(t, 4, count, "off-map points must be dropped")
}

func TestMinimapAspectSquashesRows(t *testing.T) {
	m := NewMinimapSize(40, 20, 10, 0.5)
	src := stubSource{
		view: sim.Viewpoint{Position: mgl64.Vec3{0, 0, 0}},
		fish: []*sim.FishAgent{{Position: mgl64.Vec3{0, 0, 8}}},
	}
	m.Render(src)

	assert.Equal(t, MarkerDiver, m.Grid.At(20, 10))
	assert.Equal(t, MarkerFish, m.Grid.At(20, 18), "rows advance at half the column rate")
}

func TestMinimapFromWorld(t *testing.T) {
	w := sim.NewWithConfig(sim.DefaultConfig())
	m := NewMinimap(64, 120)
	m.Render(w)
	assert.Equal(t, MarkerDiver, m.Grid.At(32, 32))
	assert.Len(t, MinimapPalette, int(MarkerDiver)+1)
}

type countingHUD struct {
	values  int
	notices int
	lights  int
}

func (c *countingHUD) SetValue(sim.Element, float64) { c.values++ }
func (c *countingHUD) Notify(sim.Notification)       { c.notices++ }
func (c *countingHUD) SetFlashlight(bool)            { c.lights++ }

func TestTeeFansOut(t *testing.T) {
	a, b := &countingHUD{}, &countingHUD{}
	h := Tee(a, nil, b)

	w := sim.New(sim.DefaultConfig(), nil, h)
	w.Reset(0)
	w.PlaceViewpoint(mgl64.Vec3{20, -15, -30})
	clock := core.NewClock(60)
	w.Step(clock.Next(core.Input{Engaged: true, ToggleFlashlight: true}))

	for _, c := range []*countingHUD{a, b} {
		assert.Equal(t, 1, c.notices)
		assert.Equal(t, 2, c.lights)
		assert.Positive(t, c.values)
	}
}
