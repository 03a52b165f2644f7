package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/core"
)

func fishPositions(w *World) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, len(w.Fish()))
	for i, f := range w.Fish() {
		out[i] = f.Position
	}
	return out
}

func samePositions(a, b []mgl64.Vec3) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestResetDeterministic(t *testing.T) {
	w := NewWithConfig(DefaultConfig())
	initial := fishPositions(w)
	if len(initial) == 0 {
		t.Fatal("world must populate fish")
	}

	for _, f := range frames(120, core.Input{}) {
		w.Step(f)
	}
	w.Reset(0)
	if !samePositions(initial, fishPositions(w)) {
		t.Fatal("Reset with config seed not deterministic")
	}

	w.Reset(777)
	seeded := fishPositions(w)
	w.Reset(777)
	if !samePositions(seeded, fishPositions(w)) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if samePositions(initial, seeded) {
		t.Fatal("different seeds should produce different reefs")
	}
}

func TestStepDeterministicAcrossWorlds(t *testing.T) {
	a := NewWithConfig(DefaultConfig())
	b := NewWithConfig(DefaultConfig())
	for _, f := range frames(300, engaged) {
		a.Step(f)
		b.Step(f)
	}
	if !samePositions(fishPositions(a), fishPositions(b)) {
		t.Fatal("identical seeds diverged")
	}
}

func TestWorldDiscoversAncientCoral(t *testing.T) {
	hud := newRecordingHUD()
	w := New(DefaultConfig(), nil, hud)
	w.Reset(0)
	w.PlaceViewpoint(mgl64.Vec3{20, -15, -30})

	for _, f := range frames(30, engaged) {
		w.Step(f)
	}

	var discoveries []Notification
	for _, n := range hud.notices {
		if n.Kind == NoticeDiscovery {
			discoveries = append(discoveries, n)
		}
	}
	if len(discoveries) != 1 || discoveries[0].Title != "Ancient Coral Formation" {
		t.Fatalf("expected a single Ancient Coral Formation notice, got %+v", discoveries)
	}
	if discoveries[0].Duration != notifyDuration {
		t.Fatalf("expected %s auto-dismiss, got %s", notifyDuration, discoveries[0].Duration)
	}
	if got := w.Discovered(); len(got) != 1 {
		t.Fatalf("expected one logged discovery, got %v", got)
	}
}

func TestWorldSkipsHUDUpdatesWhenDisengaged(t *testing.T) {
	hud := newRecordingHUD()
	w := New(DefaultConfig(), nil, hud)
	w.Reset(0)
	w.PlaceViewpoint(mgl64.Vec3{20, -15, -30})

	for _, f := range frames(30, core.Input{}) {
		w.Step(f)
	}
	if len(hud.notices) != 0 {
		t.Fatalf("no notifications expected while disengaged, got %+v", hud.notices)
	}
	if w.Vitals().Oxygen() != 100 {
		t.Fatalf("oxygen should not drain while disengaged, got %f", w.Vitals().Oxygen())
	}
}

func TestWorldLowOxygenNotifiesOnce(t *testing.T) {
	hud := newRecordingHUD()
	w := New(DefaultConfig(), nil, hud)
	w.Reset(0)
	w.PlaceViewpoint(mgl64.Vec3{200, -18, 200})
	w.SetFloatParameter("oxygen", 10.5)

	for _, f := range frames(300, engaged) {
		w.Step(f)
	}

	warnings := 0
	for _, n := range hud.notices {
		if n.Kind == NoticeWarning {
			warnings++
			if n.Title != LowOxygenTitle || n.Body != LowOxygenBody {
				t.Fatalf("unexpected warning text %+v", n)
			}
		}
	}
	if warnings != 1 {
		t.Fatalf("expected one low-oxygen warning, got %d", warnings)
	}
	if !w.Stats().Warning {
		t.Fatal("warning should stay active while submerged")
	}
	if hud.values[ElementOxygen] != w.Vitals().Oxygen() {
		t.Fatalf("HUD oxygen %f does not match %f", hud.values[ElementOxygen], w.Vitals().Oxygen())
	}
	if hud.values[ElementDepth] != 18 {
		t.Fatalf("expected depth readout 18, got %f", hud.values[ElementDepth])
	}
}

func TestWorldFlashlightToggle(t *testing.T) {
	hud := newRecordingHUD()
	w := New(DefaultConfig(), nil, hud)
	w.Reset(0)

	clock := core.NewClock(60)
	w.Step(clock.Next(core.Input{ToggleFlashlight: true}))
	if !w.Flashlight() || !hud.flashlight {
		t.Fatal("expected flashlight on")
	}
	w.Step(clock.Next(core.Input{}))
	if !w.Flashlight() {
		t.Fatal("flashlight toggles only on the press frame")
	}
	w.Step(clock.Next(core.Input{ToggleFlashlight: true}))
	if w.Flashlight() || hud.flashlight {
		t.Fatal("expected flashlight off")
	}
}

func TestWorldCloseReleasesEveryHandle(t *testing.T) {
	scene := newCountingScene()
	w := New(DefaultConfig(), scene, nil)
	w.Reset(0)
	if scene.live == 0 {
		t.Fatal("expected live handles after reset")
	}
	spawned := scene.spawned

	w.Reset(5)
	if scene.live != scene.spawned-spawned {
		t.Fatalf("reset leaked handles: live=%d, second population=%d", scene.live, scene.spawned-spawned)
	}

	w.Close()
	if scene.live != 0 {
		t.Fatalf("expected every handle released, %d live", scene.live)
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	w := NewWithConfig(DefaultConfig())

	if !w.SetFloatParameter("max_speed", 0.5) {
		t.Fatal("expected max speed to be adjustable")
	}
	if got := w.cfg.Params.Flock.MaxSpeed; got != 0.5 {
		t.Fatalf("expected 0.5, got %f", got)
	}
	if !w.SetFloatParameter("oxygen", 150) {
		t.Fatal("expected oxygen to be adjustable")
	}
	if got := w.Vitals().Oxygen(); got != 100 {
		t.Fatalf("expected oxygen clamp to 100, got %f", got)
	}
	if w.SetFloatParameter("gravity", 1) {
		t.Fatal("unknown keys must be rejected")
	}
}

func TestParametersReportCounts(t *testing.T) {
	w := NewWithConfig(DefaultConfig())
	snap := w.Parameters()

	found := false
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			if p.Key == "bubbles" {
				found = true
				if p.Value != "50" {
					t.Fatalf("expected 50 bubbles, got %s", p.Value)
				}
			}
		}
	}
	if !found {
		t.Fatal("bubble count missing from snapshot")
	}
}

func TestEnvironmentDarkensWithDepth(t *testing.T) {
	shallow := WaterColor(0)
	deep := WaterColor(20)
	if deep.G >= shallow.G || deep.B >= shallow.B {
		t.Fatalf("expected darker water at depth: %v vs %v", shallow, deep)
	}
	if WaterColor(40) != deep {
		t.Fatal("colour should saturate past max depth")
	}
	if !approx(FogDensity(10), 0.11, 1e-12) {
		t.Fatalf("unexpected fog density %f", FogDensity(10))
	}
}
