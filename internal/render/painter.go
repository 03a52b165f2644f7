//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"deepsea/internal/scene"
	"deepsea/internal/sim"
)

// ScenePainter paints projected sprites over the water colour. Sprite
// colours are straight alpha.
type ScenePainter struct {
	sprites []Sprite
}

// NewScenePainter returns a painter with an empty sprite buffer.
func NewScenePainter() *ScenePainter { return &ScenePainter{} }

// Draw fills dst with the water colour and paints g as seen through cam,
// far to near.
func (sp *ScenePainter) Draw(dst *ebiten.Image, g *scene.Graph, cam Camera, lit Lighting) {
	sp.sprites = Sprites(g, cam, lit, sp.sprites)
	dst.Fill(lit.Water)
	for _, s := range sp.sprites {
		x, y, r := float32(s.X), float32(s.Y), float32(s.R)
		col := color.NRGBA(s.Color)
		switch s.Shape {
		case sim.ShapeBox, sim.ShapePlane:
			vector.DrawFilledRect(dst, x-r, y-r, 2*r, 2*r, col, false)
		default:
			vector.DrawFilledCircle(dst, x, y, r, col, true)
		}
	}
	if lit.Flashlight {
		w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
		vector.DrawFilledCircle(dst, float32(w)/2, float32(h)/2, float32(h)/3, color.RGBA{R: 40, G: 40, B: 30, A: 40}, true)
	}
}

// MinimapPainter uploads minimap markers into a single RGBA image.
type MinimapPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewMinimapPainter allocates a painter for a w*h marker grid.
func NewMinimapPainter(w, h int) *MinimapPainter {
	mp := &MinimapPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	mp.img = ebiten.NewImage(w, h)
	return mp
}

// Blit uploads cells and draws them scaled at (x, y).
func (mp *MinimapPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, x, y float64, scale int) {
	if len(cells) != mp.w*mp.h {
		return
	}
	fillPaletteRGBA(mp.buf, cells, palette)
	mp.img.WritePixels(mp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(mp.img, op)
}

// Size returns the dimensions of the underlying image.
func (mp *MinimapPainter) Size() (int, int) { return mp.w, mp.h }
