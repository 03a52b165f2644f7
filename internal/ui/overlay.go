//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"deepsea/internal/core"
	"deepsea/internal/hud"
	"deepsea/internal/render"
	"deepsea/internal/sim"
)

// DebugSource is what the overlay inspects; *sim.World satisfies it.
type DebugSource interface {
	hud.Source
	core.ParameterSource
	Schools() []*sim.School
}

// Overlay draws optional debugging visuals on top of the scene.
type Overlay struct {
	src          DebugSource
	showVelocity bool
	showSchools  bool
	showPoints   bool
	showParams   bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src DebugSource) *Overlay {
	o := &Overlay{src: src}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the layers on keys 1-4.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showVelocity = !o.showVelocity
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSchools = !o.showSchools
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showPoints = !o.showPoints
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showParams = !o.showParams
	}
}

// Draw renders the enabled layers as seen through cam.
func (o *Overlay) Draw(screen *ebiten.Image, cam render.Camera) {
	if o.showVelocity {
		o.drawVelocities(screen, cam)
	}
	if o.showSchools {
		for _, s := range o.src.Schools() {
			if x, y, _, ok := cam.Project(s.Center); ok {
				o.drawPoint(screen, x, y, 6, color.RGBA{R: 255, G: 80, B: 200, A: 220})
			}
		}
	}
	if o.showPoints {
		o.drawPoints(screen, cam)
	}
	if o.showParams {
		o.drawParams(screen)
	}
}

func (o *Overlay) drawVelocities(screen *ebiten.Image, cam render.Camera) {
	const (
		lengthScale      = 20.0
		maxSpeedEstimate = 0.2
	)
	for _, f := range o.src.Fish() {
		x1, y1, _, ok1 := cam.Project(f.Position)
		x2, y2, _, ok2 := cam.Project(f.Position.Add(f.Velocity.Mul(lengthScale)))
		if !ok1 || !ok2 {
			continue
		}
		col := interpolateColor(f.Velocity.Len() / maxSpeedEstimate)
		o.drawLine(screen, x1, y1, x2, y2, 1.5, col)
	}
}

func (o *Overlay) drawPoints(screen *ebiten.Image, cam render.Camera) {
	face := basicfont.Face7x13
	for _, p := range o.src.Points() {
		x, y, depth, ok := cam.Project(p.Position)
		if !ok {
			continue
		}
		col := color.RGBA{R: 255, G: 255, B: 0, A: 255}
		if p.Discovered {
			col = color.RGBA{R: 128, G: 128, B: 128, A: 255}
		}
		r := float32(math.Max(4, cam.Scale(p.Radius, depth)))
		vector.StrokeCircle(screen, float32(x), float32(y), r, 1, col, true)
		text.Draw(screen, p.Name, face, int(x)+6, int(y)-6, col)
	}
}

func (o *Overlay) drawParams(screen *ebiten.Image) {
	face := basicfont.Face7x13
	y := 140
	for _, g := range o.src.Parameters().Groups {
		text.Draw(screen, g.Name, face, margin, y, brightText)
		y += 14
		for _, p := range g.Params {
			text.Draw(screen, "  "+p.Label+": "+p.Value, face, margin, y, dimText)
			y += 14
		}
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func interpolateColor(t float64) color.RGBA {
	t = clamp01(t)
	r := uint8(math.Round(80 + 170*t))
	g := uint8(math.Round(170 + 40*t))
	b := uint8(math.Round(230 - 180*t))
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
