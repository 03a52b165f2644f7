package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	base := time.Unix(0, 0)
	now := base
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return now }

	if got := fs.Due(); got != 1 {
		t.Fatalf("first Due = %d, want 1 (primed accumulator)", got)
	}
	now = now.Add(50 * time.Millisecond)
	if got := fs.Due(); got != 0 {
		t.Fatalf("Due after half a step = %d, want 0", got)
	}
	now = now.Add(250 * time.Millisecond)
	if got := fs.Due(); got != 3 {
		t.Fatalf("Due after 300ms total = %d, want 3", got)
	}
	now = now.Add(10 * time.Second)
	if got := fs.Due(); got != maxCatchUp {
		t.Fatalf("Due after stall = %d, want %d", got, maxCatchUp)
	}
	if got := fs.Due(); got != 0 {
		t.Fatalf("Due right after stall = %d, want 0", got)
	}
}

func TestClockNext(t *testing.T) {
	c := NewClock(50)
	var f Frame
	for i := 0; i < 50; i++ {
		f = c.Next(Input{})
	}
	if f.Tick != 50 {
		t.Fatalf("tick = %d, want 50", f.Tick)
	}
	if f.Seconds() != 1 {
		t.Fatalf("elapsed = %v, want 1s", f.Elapsed)
	}
	if f.DeltaSeconds() != 0.02 {
		t.Fatalf("delta = %v, want 20ms", f.Delta)
	}
	c.Reset()
	if f = c.Next(Input{}); f.Tick != 1 {
		t.Fatalf("tick after reset = %d, want 1", f.Tick)
	}
}

func TestByteGridSetKeepsHigher(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(1, 1, 4)
	g.Set(1, 1, 2)
	if got := g.At(1, 1); got != 4 {
		t.Fatalf("At(1,1) = %d, want 4", got)
	}
	g.Set(5, 5, 9)
	if got := g.At(5, 5); got != 0 {
		t.Fatalf("off-grid At = %d, want 0", got)
	}
	g.Clear()
	if got := g.At(1, 1); got != 0 {
		t.Fatalf("At after Clear = %d, want 0", got)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.Centered(), b.Centered(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
	for i := 0; i < 200; i++ {
		v := a.IntRange(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		c := a.Centered()
		if c < -0.5 || c >= 0.5 {
			t.Fatalf("Centered out of bounds: %v", c)
		}
	}
}
