package hud

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/core"
	"deepsea/internal/sim"
)

// Marker values are written into the minimap grid. Higher markers win when
// two land on the same cell.
const (
	MarkerWater uint8 = iota
	MarkerSeaweed
	MarkerBubble
	MarkerFish
	MarkerPoint
	MarkerFound
	MarkerDiver
)

// MinimapPalette maps markers to colours.
var MinimapPalette = []color.RGBA{
	MarkerWater:   {R: 0x00, G: 0x1e, B: 0x3c, A: 0xc8},
	MarkerSeaweed: {R: 0x1b, G: 0x8a, B: 0x4a, A: 0xff},
	MarkerBubble:  {R: 0xc8, G: 0xe6, B: 0xff, A: 0xff},
	MarkerFish:    {R: 0xff, G: 0xc1, B: 0x07, A: 0xff},
	MarkerPoint:   {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	MarkerFound:   {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	MarkerDiver:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// Source is what the minimap reads; *sim.World satisfies it.
type Source interface {
	Viewpoint() sim.Viewpoint
	Fish() []*sim.FishAgent
	Bubbles() []*sim.BubbleAgent
	Seaweed() []*sim.SeaweedSegment
	Points() []sim.DiscoveryPoint
}

// Minimap rasterises a north-up view centred on the diver. Range is the
// world distance from the centre to the left and right edges. Aspect scales
// rows against columns; terminals, whose cells are twice as tall as they are
// wide, use 0.5.
type Minimap struct {
	Grid   *core.ByteGrid
	Range  float64
	Aspect float64
}

// NewMinimap allocates a size x size minimap.
func NewMinimap(size int, rng float64) *Minimap {
	return NewMinimapSize(size, size, rng, 1)
}

// NewMinimapSize allocates a w x h minimap with the given row aspect.
func NewMinimapSize(w, h int, rng, aspect float64) *Minimap {
	if rng <= 0 {
		rng = 100
	}
	if aspect <= 0 {
		aspect = 1
	}
	return &Minimap{Grid: core.NewByteGrid(w, h), Range: rng, Aspect: aspect}
}

// Cell maps a world position to grid coordinates. World -Z is up.
func (m *Minimap) Cell(center, p mgl64.Vec3) (int, int) {
	half := float64(m.Grid.W) / 2
	scale := half / m.Range
	x := half + (p.X()-center.X())*scale
	aspect := m.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	y := float64(m.Grid.H)/2 + (p.Z()-center.Z())*scale*aspect
	return floor(x), floor(y)
}

// Render redraws the grid from src.
func (m *Minimap) Render(src Source) {
	m.Grid.Clear()
	center := src.Viewpoint().Position

	mark := func(p mgl64.Vec3, v uint8) {
		x, y := m.Cell(center, p)
		m.Grid.Set(x, y, v)
	}
	for _, s := range src.Seaweed() {
		mark(s.Anchor, MarkerSeaweed)
	}
	for _, b := range src.Bubbles() {
		mark(b.Position, MarkerBubble)
	}
	for _, f := range src.Fish() {
		mark(f.Position, MarkerFish)
	}
	for _, p := range src.Points() {
		v := MarkerPoint
		if p.Discovered {
			v = MarkerFound
		}
		mark(p.Position, v)
	}
	mark(center, MarkerDiver)
}

func floor(v float64) int {
	i := int(v)
	if v < 0 && float64(i) != v {
		i--
	}
	return i
}
