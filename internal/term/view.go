package term

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"deepsea/internal/hud"
	"deepsea/internal/sim"
)

// Rows reserved above and below the map.
const (
	headerRows = 2
	footerRows = 1
	mapRange   = 60.0
	o2Cells    = 10
)

var markerGlyphs = [...]rune{
	hud.MarkerWater:   ' ',
	hud.MarkerSeaweed: '"',
	hud.MarkerBubble:  'o',
	hud.MarkerFish:    '>',
	hud.MarkerPoint:   '?',
	hud.MarkerFound:   '*',
	hud.MarkerDiver:   '@',
}

// View draws the top-down map and the HUD rows.
type View struct {
	screen  tcell.Screen
	panel   *hud.Panel
	minimap *hud.Minimap
}

// NewView returns a view drawing panel state onto screen.
func NewView(screen tcell.Screen, panel *hud.Panel) *View {
	return &View{screen: screen, panel: panel}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw repaints the whole screen from src. The caller shows it.
func (v *View) Draw(src hud.Source, engaged bool) {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w <= 0 || h <= headerRows+footerRows {
		return
	}

	mapH := h - headerRows - footerRows
	if v.minimap == nil || v.minimap.Grid.W != w || v.minimap.Grid.H != mapH {
		v.minimap = hud.NewMinimapSize(w, mapH, mapRange, 0.5)
	}
	v.drawMap(src, headerRows)
	v.drawStatus(0)
	v.drawNotice(1)
	v.drawFooter(h-1, engaged)
}

func (v *View) drawMap(src hud.Source, top int) {
	v.minimap.Render(src)
	water := rgb(sim.WaterColor(sim.DepthOf(src.Viewpoint().Position.Y())))
	base := tcell.StyleDefault.Background(water)
	g := v.minimap.Grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			m := g.At(x, y)
			st := base
			if m != hud.MarkerWater && int(m) < len(hud.MinimapPalette) {
				st = st.Foreground(rgb(hud.MinimapPalette[m]))
			}
			glyph := ' '
			if int(m) < len(markerGlyphs) {
				glyph = markerGlyphs[m]
			}
			v.screen.SetContent(x, top+y, glyph, nil, st)
		}
	}
}

func (v *View) value(el sim.Element) float64 {
	val, _ := v.panel.Value(el)
	return val
}

// puts writes s at (x, y) and returns the column after it.
func (v *View) puts(x, y int, s string, st tcell.Style) int {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, st)
		x++
	}
	return x
}

func (v *View) drawStatus(row int) {
	plain := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	oxygen := v.value(sim.ElementOxygen)
	stops := hud.OxygenGradient(oxygen)

	x := v.puts(0, row, "O2 [", plain)
	filled := int(math.Round(oxygen / 100 * o2Cells))
	for i := 0; i < o2Cells; i++ {
		if i < filled {
			col := hud.GradientAt(stops, float64(i)/float64(o2Cells-1))
			x = v.puts(x, row, "#", tcell.StyleDefault.Foreground(rgb(col)))
		} else {
			x = v.puts(x, row, "-", plain.Dim(true))
		}
	}
	x = v.puts(x, row, fmt.Sprintf("] %3d%%  ", int(math.Round(oxygen))), plain)

	depth := v.value(sim.ElementDepth)
	x = v.puts(x, row, "DEPTH ", plain)
	x = v.puts(x, row, hud.DepthLabel(depth), tcell.StyleDefault.Foreground(rgb(hud.DepthColor(depth))))

	bearing := v.value(sim.ElementCompass)
	x = v.puts(x, row, fmt.Sprintf("  %s %3d°", hud.Cardinal(bearing), int(math.Round(math.Mod(bearing+360, 360)))), plain)
	x = v.puts(x, row, fmt.Sprintf("  SPD %.1f", v.value(sim.ElementSpeed)), plain)

	light := "off"
	lightStyle := plain.Dim(true)
	if v.panel.Flashlight() {
		light = "on"
		lightStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}
	x = v.puts(x, row, "  LIGHT ", plain)
	v.puts(x, row, light, lightStyle)
}

func (v *View) drawNotice(row int) {
	n, ok := v.panel.Notice()
	if !ok {
		return
	}
	st := tcell.StyleDefault.Foreground(rgb(hud.Shallow)).Bold(true)
	if n.Kind == sim.NoticeWarning {
		st = tcell.StyleDefault.Foreground(rgb(hud.Red)).Bold(true)
	}
	x := v.puts(0, row, n.Title, st)
	v.puts(x, row, ": "+n.Body, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (v *View) drawFooter(row int, engaged bool) {
	help := []string{"Enter dive", "q quit"}
	if engaged {
		help = []string{"WASD move", "Space/c rise/sink", "arrows look", "f light", "r reset", "Esc release", "q quit"}
	}
	v.puts(0, row, strings.Join(help, "  "), tcell.StyleDefault.Foreground(tcell.ColorGray))
}
