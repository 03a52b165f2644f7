package sim

import (
	"math"

	"deepsea/internal/core"
)

// DriftParams tunes bubble motion.
type DriftParams struct {
	Ceiling         float64
	RecycleNudge    float64
	WobbleAmplitude float64
}

// stepDrift advances bubbles and returns how many were recycled. The origin
// height doubles as the wobble phase seed.
func stepDrift(bubbles []*BubbleAgent, seconds float64, p DriftParams, rng *core.RNG) int {
	recycled := 0
	for _, b := range bubbles {
		b.Position = b.Position.Add(b.Velocity)
		if b.Position.Y() > p.Ceiling {
			b.Position[1] = b.OriginY
			b.Position[0] += rng.Range(-p.RecycleNudge, p.RecycleNudge)
			b.Position[2] += rng.Range(-p.RecycleNudge, p.RecycleNudge)
			recycled++
		}

		phase := seconds + b.OriginY
		b.Position[0] += math.Sin(phase) * p.WobbleAmplitude
		b.Position[2] += math.Cos(phase) * p.WobbleAmplitude

		if b.Handle != nil {
			b.Handle.SetTransform(At(b.Position))
		}
	}
	return recycled
}
