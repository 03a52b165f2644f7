package sim

import (
	"math"
	"testing"
)

func TestSwayAnglesDeterministic(t *testing.T) {
	seg := &SeaweedSegment{InitialX: 0.1, InitialZ: -0.05, Phase: 1.2}

	x1, z1 := SwayAngles(3.7, seg, 0.1)
	x2, z2 := SwayAngles(3.7, seg, 0.1)
	if x1 != x2 || z1 != z2 {
		t.Fatalf("sway not deterministic: (%f,%f) vs (%f,%f)", x1, z1, x2, z2)
	}

	wantX := 0.1 + math.Sin(3.7+1.2)*0.1
	wantZ := -0.05 + math.Cos(3.7+1.2)*0.1
	if !approx(x1, wantX, 1e-15) || !approx(z1, wantZ, 1e-15) {
		t.Fatalf("expected (%f,%f), got (%f,%f)", wantX, wantZ, x1, z1)
	}
}

func TestSwayDoesNotAccumulate(t *testing.T) {
	scene := newCountingScene()
	h := scene.Spawn(Primitive{Kind: KindSeaweed}).(*countingHandle)
	seg := &SeaweedSegment{Handle: h, InitialX: 0.2, Phase: 0.5}

	stepSway([]*SeaweedSegment{seg}, 1, 0.1)
	first := h.last.Rotation
	for i := 0; i < 50; i++ {
		stepSway([]*SeaweedSegment{seg}, float64(i), 0.1)
	}
	stepSway([]*SeaweedSegment{seg}, 1, 0.1)

	if !first.ApproxEqualThreshold(h.last.Rotation, 1e-12) {
		t.Fatalf("rotation drifted: %v vs %v", first, h.last.Rotation)
	}
}
