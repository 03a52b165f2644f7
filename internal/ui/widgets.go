//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"deepsea/internal/hud"
	"deepsea/internal/render"
	"deepsea/internal/sim"
)

const (
	barWidth    = 200
	barHeight   = 14
	minimapCell = 2
	margin      = 16
)

// Widgets draws the diver readouts, notification box, flashlight indicator
// and minimap from the HUD model.
type Widgets struct {
	panel    *hud.Panel
	minimap  *hud.Minimap
	mapPaint *render.MinimapPainter
	pixel    *ebiten.Image
}

// NewWidgets returns widgets reading from panel and rasterising minimap.
func NewWidgets(panel *hud.Panel, minimap *hud.Minimap) *Widgets {
	w := &Widgets{panel: panel, minimap: minimap}
	w.mapPaint = render.NewMinimapPainter(minimap.Grid.W, minimap.Grid.H)
	w.pixel = ebiten.NewImage(1, 1)
	w.pixel.Fill(color.White)
	return w
}

// Draw paints every widget onto a width x height view.
func (w *Widgets) Draw(screen *ebiten.Image, width, height int, src hud.Source, engaged bool) {
	w.drawVitals(screen)
	w.drawCompass(screen, width)
	w.drawNotice(screen, width)
	w.drawFlashlight(screen, height)
	w.drawMinimap(screen, width, height, src)
	if !engaged {
		w.drawPrompt(screen, width, height)
	}
}

func (w *Widgets) value(el sim.Element) float64 {
	v, _ := w.panel.Value(el)
	return v
}

func (w *Widgets) drawVitals(screen *ebiten.Image) {
	face := basicfont.Face7x13
	fillRect(screen, w.pixel, image.Rect(margin-8, margin-8, margin+barWidth+8, margin+96), hud.PanelFill)

	oxygen := w.value(sim.ElementOxygen)
	text.Draw(screen, "OXYGEN", face, margin, margin+10, brightText)
	label := fmt.Sprintf("%d%%", int(math.Round(oxygen)))
	text.Draw(screen, label, face, margin+barWidth-text.BoundString(face, label).Dx(), margin+10, brightText)
	w.drawGradientBar(screen, margin, margin+16, oxygen/100, hud.OxygenGradient(oxygen))

	depth := w.value(sim.ElementDepth)
	text.Draw(screen, "DEPTH", face, margin, margin+50, brightText)
	label = hud.DepthLabel(depth)
	text.Draw(screen, label, face, margin+barWidth-text.BoundString(face, label).Dx(), margin+50, hud.DepthColor(depth))
	fill := w.value(sim.ElementDepthFill) / 100
	vector.DrawFilledRect(screen, margin, margin+56, barWidth, 6, color.RGBA{R: 10, G: 30, B: 50, A: 255}, false)
	vector.DrawFilledRect(screen, margin, margin+56, float32(barWidth*clamp01(fill)), 6, hud.DepthColor(depth), false)

	speed := fmt.Sprintf("SPEED %.1f m/s", w.value(sim.ElementSpeed))
	text.Draw(screen, speed, face, margin, margin+82, dimText)
}

// drawGradientBar fills a bar left to right, sampling stops across the full
// width so the visible colour tracks the level.
func (w *Widgets) drawGradientBar(screen *ebiten.Image, x, y int, level float64, stops []color.RGBA) {
	vector.DrawFilledRect(screen, float32(x), float32(y), barWidth, barHeight, color.RGBA{R: 10, G: 30, B: 50, A: 255}, false)
	filled := int(math.Round(barWidth * clamp01(level)))
	for i := 0; i < filled; i += 2 {
		col := hud.GradientAt(stops, float64(i)/barWidth)
		vector.DrawFilledRect(screen, float32(x+i), float32(y), 2, barHeight, col, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), barWidth, barHeight, 1, dimText, false)
}

func (w *Widgets) drawCompass(screen *ebiten.Image, width int) {
	face := basicfont.Face7x13
	bearing := w.value(sim.ElementCompass)
	label := fmt.Sprintf("%s  %d°", hud.Cardinal(bearing), int(math.Round(math.Mod(bearing+360, 360))))
	bw := text.BoundString(face, label).Dx()
	x := (width - bw) / 2
	fillRect(screen, w.pixel, image.Rect(x-10, margin-8, x+bw+10, margin+10), hud.PanelFill)
	text.Draw(screen, label, face, x, margin+6, brightText)
}

func (w *Widgets) drawNotice(screen *ebiten.Image, width int) {
	n, ok := w.panel.Notice()
	if !ok {
		return
	}
	face := basicfont.Face7x13
	bw := max(text.BoundString(face, n.Title).Dx(), text.BoundString(face, n.Body).Dx()) + 24
	x := (width - bw) / 2
	y := margin + 24
	fillRect(screen, w.pixel, image.Rect(x, y, x+bw, y+48), hud.PanelFill)
	border := hud.Shallow
	if n.Kind == sim.NoticeWarning {
		border = hud.Red
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(bw), 48, 2, border, false)
	text.Draw(screen, n.Title, face, x+12, y+18, border)
	text.Draw(screen, n.Body, face, x+12, y+36, brightText)
}

func (w *Widgets) drawFlashlight(screen *ebiten.Image, height int) {
	face := basicfont.Face7x13
	y := height - margin - 12
	on := w.panel.Flashlight()
	col := color.RGBA{R: 90, G: 100, B: 110, A: 255}
	label := "LIGHT OFF"
	if on {
		col = color.RGBA{R: 255, G: 235, B: 120, A: 255}
		label = "LIGHT ON"
	}
	vector.DrawFilledCircle(screen, margin+6, float32(y), 6, col, true)
	text.Draw(screen, "[F] "+label, face, margin+18, y+4, brightText)
}

func (w *Widgets) drawMinimap(screen *ebiten.Image, width, height int, src hud.Source) {
	w.minimap.Render(src)
	mw, mh := w.mapPaint.Size()
	x := float64(width - margin - mw*minimapCell)
	y := float64(height - margin - mh*minimapCell)
	w.mapPaint.Blit(screen, w.minimap.Grid.Cells(), hud.MinimapPalette, x, y, minimapCell)
	vector.StrokeRect(screen, float32(x), float32(y), float32(mw*minimapCell), float32(mh*minimapCell), 1, dimText, false)
	text.Draw(screen, "N", basicfont.Face7x13, int(x)+mw*minimapCell/2-3, int(y)-4, dimText)
}

func (w *Widgets) drawPrompt(screen *ebiten.Image, width, height int) {
	face := basicfont.Face7x13
	lines := []string{
		"Click to dive",
		"WASD move  Space/Shift rise/sink  F light  Tab tuning  Esc release  Q quit",
	}
	y := height / 2
	for _, line := range lines {
		bw := text.BoundString(face, line).Dx()
		x := (width - bw) / 2
		fillRect(screen, w.pixel, image.Rect(x-8, y-14, x+bw+8, y+6), hud.PanelFill)
		text.Draw(screen, line, face, x, y, brightText)
		y += 24
	}
}
