package hud

import (
	"fmt"
	"image/color"
	"math"
)

var (
	Red       = color.RGBA{R: 0xf4, G: 0x43, B: 0x36, A: 0xff}
	Orange    = color.RGBA{R: 0xff, G: 0x98, B: 0x00, A: 0xff}
	Green     = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	DeepRed   = color.RGBA{R: 0xff, G: 0x52, B: 0x52, A: 0xff}
	Shallow   = color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}
	PanelFill = color.RGBA{R: 0x00, G: 0x1e, B: 0x3c, A: 0xb4}
)

// OxygenGradient returns the bar's colour stops, left to right.
func OxygenGradient(oxygen float64) []color.RGBA {
	switch {
	case oxygen < 20:
		return []color.RGBA{Red, Red}
	case oxygen < 50:
		return []color.RGBA{Red, Orange}
	default:
		return []color.RGBA{Red, Orange, Green}
	}
}

// GradientAt samples evenly spaced stops at t in [0, 1].
func GradientAt(stops []color.RGBA, t float64) color.RGBA {
	switch len(stops) {
	case 0:
		return color.RGBA{}
	case 1:
		return stops[0]
	}
	t = math.Min(1, math.Max(0, t))
	pos := t * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	f := pos - float64(i)
	a, b := stops[i], stops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// DepthColor colours the depth readout.
func DepthColor(depth float64) color.RGBA {
	switch {
	case depth > 15:
		return DeepRed
	case depth > 10:
		return Orange
	case depth > 5:
		return Shallow
	default:
		return Green
	}
}

// DepthLabel formats depth in whole metres.
func DepthLabel(depth float64) string {
	return fmt.Sprintf("%dm", int(math.Max(0, math.Round(depth))))
}

var cardinals = [...]string{"S", "SE", "E", "NE", "N", "NW", "W", "SW"}

// Cardinal names the bearing. Bearings come from atan2(x, z), so 0 faces +Z
// and +/-180 faces -Z, the direction the diver starts looking.
func Cardinal(bearing float64) string {
	b := math.Mod(bearing+360, 360)
	i := int(math.Round(b/45)) % len(cardinals)
	return cardinals[i]
}
