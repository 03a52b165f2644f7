package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/core"
	"deepsea/internal/sim"
)

func TestWorldTransformComposesParents(t *testing.T) {
	g := New()
	root := sim.At(mgl64.Vec3{10, 0, 0})
	root.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0})
	ship := g.Spawn(sim.Primitive{Shape: sim.ShapeGroup, Local: root})
	mast := g.Spawn(sim.Primitive{Shape: sim.ShapeCylinder, Parent: ship, Local: sim.At(mgl64.Vec3{0, 0, 5})}).(*Node)

	got := mast.WorldPosition()
	want := mgl64.Vec3{15, 0, 0}
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestReleaseDropsSubtree(t *testing.T) {
	g := New()
	parent := g.Spawn(sim.Primitive{Shape: sim.ShapeGroup})
	child := g.Spawn(sim.Primitive{Shape: sim.ShapeBox, Parent: parent})
	g.Spawn(sim.Primitive{Shape: sim.ShapeSphere})
	if g.Count() != 3 {
		t.Fatalf("expected 3 nodes, got %d", g.Count())
	}

	parent.Release()
	if g.Count() != 1 {
		t.Fatalf("expected the subtree gone, %d nodes left", g.Count())
	}
	child.Release()
	child.SetTransform(sim.At(mgl64.Vec3{1, 1, 1}))
	if g.Count() != 1 || len(g.Roots()) != 1 {
		t.Fatal("releasing a dropped child must be a no-op")
	}
}

func TestVisitOrderAndPrune(t *testing.T) {
	g := New()
	a := g.Spawn(sim.Primitive{Name: "a", Shape: sim.ShapeGroup})
	g.Spawn(sim.Primitive{Name: "a1", Parent: a})
	b := g.Spawn(sim.Primitive{Name: "b", Shape: sim.ShapeGroup})
	g.Spawn(sim.Primitive{Name: "b1", Parent: b})

	var seen []string
	g.Visit(func(n *Node, _ mgl64.Mat4) bool {
		seen = append(seen, n.Primitive().Name)
		return n.Primitive().Name != "b"
	})
	want := []string{"a", "a1", "b"}
	if len(seen) != len(want) {
		t.Fatalf("expected %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
}

func TestWorldLifecycleOnGraph(t *testing.T) {
	g := New()
	w := sim.New(sim.DefaultConfig(), g, nil)
	w.Reset(0)
	populated := g.Count()
	if populated == 0 {
		t.Fatal("expected nodes after reset")
	}

	clock := core.NewClock(60)
	for i := 0; i < 10; i++ {
		w.Step(clock.Next(core.Input{}))
	}
	fish := w.Fish()[0]
	node := fish.Handle.(*Node)
	if node.Local().Position != fish.Position {
		t.Fatalf("fish node at %v, record at %v", node.Local().Position, fish.Position)
	}

	w.Reset(9)
	if g.Count() == 0 {
		t.Fatal("expected a fresh population")
	}
	w.Close()
	if g.Count() != 0 {
		t.Fatalf("expected an empty graph after close, got %d", g.Count())
	}
}

func TestClear(t *testing.T) {
	g := New()
	p := g.Spawn(sim.Primitive{})
	g.Spawn(sim.Primitive{Parent: p})
	g.Spawn(sim.Primitive{})
	g.Clear()
	if g.Count() != 0 || len(g.Roots()) != 0 {
		t.Fatalf("expected empty graph, %d nodes", g.Count())
	}
}
