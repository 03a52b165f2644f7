package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SwayAngles returns the x/z rotation of a segment at the given session time.
// It is a pure function of its inputs.
func SwayAngles(seconds float64, s *SeaweedSegment, amplitude float64) (x, z float64) {
	x = s.InitialX + math.Sin(seconds+s.Phase)*amplitude
	z = s.InitialZ + math.Cos(seconds+s.Phase)*amplitude
	return x, z
}

func stepSway(segments []*SeaweedSegment, seconds, amplitude float64) {
	for _, s := range segments {
		if s.Handle == nil {
			continue
		}
		x, z := SwayAngles(seconds, s, amplitude)
		t := At(s.Position)
		t.Rotation = mgl64.AnglesToQuat(x, 0, z, mgl64.XYZ)
		s.Handle.SetTransform(t)
	}
}
