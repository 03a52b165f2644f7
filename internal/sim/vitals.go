package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DepthRate applies PerFrame oxygen loss when depth is strictly greater than
// Below.
type DepthRate struct {
	Below    float64
	PerFrame float64
}

// VitalParams tunes oxygen and depth readouts.
type VitalParams struct {
	MaxDepth    float64
	SurfaceBand float64
	Replenish   float64
	LowOxygen   float64
	BaseRate    float64
	// Rates must be ordered deepest first.
	Rates []DepthRate
}

// DecreaseRate returns the per-frame oxygen loss at depth.
func (p VitalParams) DecreaseRate(depth float64) float64 {
	for _, r := range p.Rates {
		if depth > r.Below {
			return r.PerFrame
		}
	}
	return p.BaseRate
}

// VitalStats is the HUD-facing readout for one frame.
type VitalStats struct {
	Oxygen    float64
	Depth     float64
	DepthFill float64
	Warning   bool
}

// Vitals holds the oxygen level and the low-oxygen edge trigger.
type Vitals struct {
	oxygen  float64
	armed   bool
	warning bool
}

// NewVitals starts with a full tank.
func NewVitals() *Vitals {
	return &Vitals{oxygen: 100, armed: true}
}

// Oxygen returns the current level.
func (v *Vitals) Oxygen() float64 { return v.oxygen }

// SetOxygen overrides the level, clamped to [0, 100].
func (v *Vitals) SetOxygen(level float64) {
	v.oxygen = mgl64.Clamp(level, 0, 100)
}

// Update advances one frame at viewpoint height y. fired is true only on the
// frame the level first drops below the low-oxygen threshold; the trigger
// re-arms once the level is back at or above it.
func (v *Vitals) Update(y float64, p VitalParams) (stats VitalStats, fired bool) {
	depth := DepthOf(y)

	v.oxygen = mgl64.Clamp(v.oxygen-p.DecreaseRate(depth), 0, 100)

	if v.oxygen < p.LowOxygen && v.armed {
		v.armed = false
		v.warning = true
		fired = true
	}

	if depth < p.SurfaceBand {
		v.oxygen = mgl64.Clamp(v.oxygen+p.Replenish, 0, 100)
		v.warning = false
	}

	if v.oxygen >= p.LowOxygen {
		v.armed = true
		v.warning = false
	}

	return VitalStats{
		Oxygen:    v.oxygen,
		Depth:     depth,
		DepthFill: DepthFill(depth, p.MaxDepth),
		Warning:   v.warning,
	}, fired
}

// DepthOf converts a viewpoint height into a non-negative depth.
func DepthOf(y float64) float64 {
	return math.Max(0, -y)
}

// DepthFill returns the depth bar percentage.
func DepthFill(depth, maxDepth float64) float64 {
	if maxDepth <= 0 {
		return 0
	}
	return math.Min(100, depth/maxDepth*100)
}
