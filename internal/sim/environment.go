package sim

import (
	"image/color"
	"math"
)

// FogDensity thickens the exponential fog with depth.
func FogDensity(depth float64) float64 {
	return 0.01 + depth/100
}

// WaterColor darkens the water from surface blue toward the abyss.
func WaterColor(depth float64) color.RGBA {
	f := math.Min(1, math.Max(0, depth/20))
	return rgb(0, 0.47-0.4*f, 0.75-0.5*f)
}

func rgb(r, g, b float64) color.RGBA {
	return color.RGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: 255}
}

func unit8(v float64) uint8 {
	return uint8(math.Round(math.Min(1, math.Max(0, v)) * 255))
}
