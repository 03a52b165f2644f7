package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/core"
)

func TestFlockSpeedStaysCapped(t *testing.T) {
	w := NewWithConfig(DefaultConfig())
	limit := w.cfg.Params.Flock.MaxSpeed + 1e-9

	for _, f := range frames(1000, core.Input{}) {
		w.Step(f)
		for i, fish := range w.Fish() {
			if s := fish.Velocity.Len(); s > limit {
				t.Fatalf("tick %d fish %d speed %f exceeds %f", f.Tick, i, s, limit)
			}
		}
	}
}

func TestFlockSchoolCentersStayInBox(t *testing.T) {
	cfg := DefaultConfig()
	// Exaggerated drift pushes centers against the walls quickly.
	cfg.Params.Flock.SchoolDrift = mgl64.Vec3{20, 20, 20}
	w := NewWithConfig(cfg)
	lo, hi := cfg.Params.Flock.SchoolMin, cfg.Params.Flock.SchoolMax

	for _, f := range frames(500, core.Input{}) {
		w.Step(f)
		for i, s := range w.Schools() {
			for axis := 0; axis < 3; axis++ {
				if s.Center[axis] < lo[axis] || s.Center[axis] > hi[axis] {
					t.Fatalf("tick %d school %d center %v outside box", f.Tick, i, s.Center)
				}
			}
		}
	}
}

func TestFlockAvoidancePushesAwayFromViewer(t *testing.T) {
	p := DefaultConfig().Params.Flock
	p.Jitter = mgl64.Vec3{}
	p.SchoolDrift = mgl64.Vec3{}
	p.SteerGain = 0

	school := &School{}
	fish := &FishAgent{Position: mgl64.Vec3{2, 0, 0}, School: school, Facing: mgl64.QuatIdent()}
	stepFlock([]*FishAgent{fish}, mgl64.Vec3{}, p, core.NewRNG(1))

	if fish.Velocity.X() <= 0 {
		t.Fatalf("expected velocity away from viewer along +x, got %v", fish.Velocity)
	}
	if !approx(fish.Velocity.Len(), p.AvoidStrength, 1e-12) {
		t.Fatalf("expected avoidance push %f, got %f", p.AvoidStrength, fish.Velocity.Len())
	}
}

func TestFlockFishOnViewerDoesNotProduceNaN(t *testing.T) {
	p := DefaultConfig().Params.Flock
	school := &School{Center: mgl64.Vec3{5, 0, 5}}
	fish := &FishAgent{School: school, Facing: mgl64.QuatIdent()}

	stepFlock([]*FishAgent{fish}, mgl64.Vec3{}, p, core.NewRNG(3))

	for i := 0; i < 3; i++ {
		if math.IsNaN(fish.Velocity[i]) || math.IsNaN(fish.Position[i]) {
			t.Fatalf("fish state became NaN: pos=%v vel=%v", fish.Position, fish.Velocity)
		}
	}
}

func TestFlockFacesDirectionOfTravel(t *testing.T) {
	p := DefaultConfig().Params.Flock
	p.Jitter = mgl64.Vec3{}
	p.SchoolDrift = mgl64.Vec3{}
	p.SteerGain = 0
	p.AvoidRadius = 0

	h := &countingHandle{scene: newCountingScene()}
	fish := &FishAgent{
		Handle:   h,
		Velocity: mgl64.Vec3{0.1, 0, 0},
		School:   &School{},
		Facing:   mgl64.QuatIdent(),
	}
	stepFlock([]*FishAgent{fish}, mgl64.Vec3{100, 0, 0}, p, core.NewRNG(1))

	// +Z of the travel frame points along +X; the correction turns it
	// another quarter about Y.
	travel := fish.Facing.Mul(facingCorrection.Inverse())
	dir := travel.Rotate(mgl64.Vec3{0, 0, 1})
	if !dir.ApproxEqualThreshold(mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Fatalf("expected travel frame +Z along +X, got %v", dir)
	}
	if h.moves != 1 || h.last.Position != fish.Position {
		t.Fatalf("expected one transform push at %v, got %d at %v", fish.Position, h.moves, h.last.Position)
	}
}

func TestFlockSlowFishKeepsFacing(t *testing.T) {
	p := DefaultConfig().Params.Flock
	p.Jitter = mgl64.Vec3{}
	p.SchoolDrift = mgl64.Vec3{}
	p.SteerGain = 0

	start := mgl64.QuatRotate(1, yAxis)
	fish := &FishAgent{Velocity: mgl64.Vec3{0.001, 0, 0}, School: &School{}, Facing: start}
	stepFlock([]*FishAgent{fish}, mgl64.Vec3{100, 0, 0}, p, core.NewRNG(1))

	if fish.Facing != start {
		t.Fatalf("slow fish should keep its orientation, got %v", fish.Facing)
	}
}
