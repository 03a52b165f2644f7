package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/core"
)

var yAxis = mgl64.Vec3{0, 1, 0}

// normalize returns the unit vector along v. A zero or non-finite vector
// reports false and must be skipped by the caller.
func normalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return v, false
	}
	return v.Mul(1 / l), true
}

// clampLength rescales v to exactly max when it is longer.
func clampLength(v mgl64.Vec3, max float64) mgl64.Vec3 {
	l := v.Len()
	if l > max && l > 0 {
		return v.Mul(max / l)
	}
	return v
}

func clampBox(v, lo, hi mgl64.Vec3) mgl64.Vec3 {
	for i := range v {
		v[i] = mgl64.Clamp(v[i], lo[i], hi[i])
	}
	return v
}

// jitter draws uniform(-0.5, 0.5) per axis, x then y then z, scaled per axis.
func jitter(rng *core.RNG, scale mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		rng.Centered() * scale[0],
		rng.Centered() * scale[1],
		rng.Centered() * scale[2],
	}
}

// facing returns the rotation that points local +Z along dir with +Y kept
// as close to world up as possible.
func facing(dir mgl64.Vec3) (mgl64.Quat, bool) {
	z, ok := normalize(dir)
	if !ok {
		return mgl64.QuatIdent(), false
	}
	x := yAxis.Cross(z)
	if x.Len() < 1e-9 {
		// Travelling straight up or down.
		x = mgl64.Vec3{1, 0, 0}
	} else {
		x = x.Normalize()
	}
	y := z.Cross(x)
	m := mgl64.Mat4FromCols(x.Vec4(0), y.Vec4(0), z.Vec4(0), mgl64.Vec4{0, 0, 0, 1})
	return mgl64.Mat4ToQuat(m).Normalize(), true
}
