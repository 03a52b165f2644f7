package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/core"
)

func TestDiverForwardFollowsYaw(t *testing.T) {
	p := DefaultConfig().Params.Diver
	view := &Viewpoint{Position: mgl64.Vec3{0, 0, 30}, MinY: p.MinY, MaxY: p.MaxY}
	var d Diver

	for i := 0; i < 60; i++ {
		d.Move(view, core.Input{Forward: true}, 1.0/60, p)
	}
	if view.Position.Z() >= 30 || !approx(view.Position.X(), 0, 1e-9) {
		t.Fatalf("expected motion toward -z, got %v", view.Position)
	}

	view.Position = mgl64.Vec3{}
	view.Yaw = -math.Pi / 2
	d = Diver{}
	for i := 0; i < 60; i++ {
		d.Move(view, core.Input{Forward: true}, 1.0/60, p)
	}
	if view.Position.X() <= 0 || !approx(view.Position.Z(), 0, 1e-9) {
		t.Fatalf("expected motion toward +x after turning right, got %v", view.Position)
	}
	if !approx(view.Bearing(), 90, 1e-9) {
		t.Fatalf("expected bearing 90, got %f", view.Bearing())
	}
}

func TestDiverVerticalBounds(t *testing.T) {
	p := DefaultConfig().Params.Diver
	view := &Viewpoint{MinY: p.MinY, MaxY: p.MaxY}
	var d Diver

	for i := 0; i < 600; i++ {
		d.Move(view, core.Input{Up: true}, 1.0/60, p)
		if view.Position.Y() > p.MaxY {
			t.Fatalf("rose above %f: %f", p.MaxY, view.Position.Y())
		}
	}
	// Terminal velocity is Speed/Damping, so the full descent takes a while.
	for i := 0; i < 3600; i++ {
		d.Move(view, core.Input{Down: true}, 1.0/60, p)
		if view.Position.Y() < p.MinY {
			t.Fatalf("sank below %f: %f", p.MinY, view.Position.Y())
		}
	}
	if view.Position.Y() != p.MinY {
		t.Fatalf("expected to rest on the floor bound, got %f", view.Position.Y())
	}
}

func TestDiverDampingStops(t *testing.T) {
	p := DefaultConfig().Params.Diver
	view := &Viewpoint{MinY: p.MinY, MaxY: p.MaxY}
	var d Diver

	for i := 0; i < 30; i++ {
		d.Move(view, core.Input{Left: true}, 1.0/60, p)
	}
	if d.Speed() == 0 {
		t.Fatal("expected the diver to be moving")
	}
	for i := 0; i < 600; i++ {
		d.Move(view, core.Input{}, 1.0/60, p)
	}
	if d.Speed() > 1e-6 {
		t.Fatalf("expected damping to stop the diver, speed %f", d.Speed())
	}
}

func TestDiverLookClampsPitch(t *testing.T) {
	p := DefaultConfig().Params.Diver
	view := &Viewpoint{}
	var d Diver

	d.Look(view, 100, -1e6, p)
	if view.Pitch != pitchLimit {
		t.Fatalf("expected pitch clamp %f, got %f", pitchLimit, view.Pitch)
	}
	if !approx(view.Yaw, -100*p.LookSensitivity, 1e-12) {
		t.Fatalf("unexpected yaw %f", view.Yaw)
	}
}
