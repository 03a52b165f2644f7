package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/core"
)

// FlockParams tunes the school-following model.
type FlockParams struct {
	MaxSpeed       float64
	FacingMinSpeed float64
	SteerGain      float64
	Jitter         mgl64.Vec3
	SchoolDrift    mgl64.Vec3
	SchoolMin      mgl64.Vec3
	SchoolMax      mgl64.Vec3
	AvoidRadius    float64
	AvoidStrength  float64
}

// The fish asset points its nose along local -X once +Z faces travel.
var facingCorrection = mgl64.QuatRotate(math.Pi/2, yAxis)

// stepFlock advances every fish by one fixed step.
func stepFlock(fish []*FishAgent, viewer mgl64.Vec3, p FlockParams, rng *core.RNG) {
	for _, f := range fish {
		f.step(viewer, p, rng)
	}
}

func (f *FishAgent) step(viewer mgl64.Vec3, p FlockParams, rng *core.RNG) {
	f.Position = f.Position.Add(f.Velocity)

	if f.Velocity.Len() > p.FacingMinSpeed {
		if q, ok := facing(f.Velocity); ok {
			f.Facing = q.Mul(facingCorrection)
		}
	}

	target := f.School.Center.Add(f.Offset)
	f.Velocity = f.Velocity.Add(target.Sub(f.Position).Mul(p.SteerGain))
	f.Velocity = f.Velocity.Add(jitter(rng, p.Jitter))
	f.Velocity = clampLength(f.Velocity, p.MaxSpeed)

	// Every member nudges the shared center, so larger schools wander further.
	center := f.School.Center.Add(jitter(rng, p.SchoolDrift))
	f.School.Center = clampBox(center, p.SchoolMin, p.SchoolMax)

	away := f.Position.Sub(viewer)
	if away.Len() < p.AvoidRadius {
		if dir, ok := normalize(away); ok {
			f.Velocity = f.Velocity.Add(dir.Mul(p.AvoidStrength))
		}
	}
	f.Velocity = clampLength(f.Velocity, p.MaxSpeed)

	if f.Handle != nil {
		t := Identity()
		t.Position = f.Position
		t.Rotation = f.Facing
		f.Handle.SetTransform(t)
	}
}
