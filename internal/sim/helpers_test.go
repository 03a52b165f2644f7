package sim

import (
	"math"
	"time"

	"deepsea/internal/core"
)

type countingScene struct {
	spawned int
	live    int
	byKind  map[Kind]int
}

func newCountingScene() *countingScene {
	return &countingScene{byKind: make(map[Kind]int)}
}

func (s *countingScene) Spawn(p Primitive) Handle {
	s.spawned++
	s.live++
	s.byKind[p.Kind]++
	return &countingHandle{scene: s}
}

type countingHandle struct {
	scene    *countingScene
	last     Transform
	moves    int
	released bool
}

func (h *countingHandle) SetTransform(t Transform) {
	h.last = t
	h.moves++
}

func (h *countingHandle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.scene.live--
}

type recordingHUD struct {
	values     map[Element]float64
	notices    []Notification
	flashlight bool
}

func newRecordingHUD() *recordingHUD {
	return &recordingHUD{values: make(map[Element]float64)}
}

func (h *recordingHUD) SetValue(el Element, v float64) { h.values[el] = v }
func (h *recordingHUD) Notify(n Notification)          { h.notices = append(h.notices, n) }
func (h *recordingHUD) SetFlashlight(on bool)          { h.flashlight = on }

// frames yields consecutive 60 Hz frames carrying in.
func frames(n int, in core.Input) []core.Frame {
	clock := core.NewClock(60)
	out := make([]core.Frame, n)
	for i := range out {
		out[i] = clock.Next(in)
	}
	return out
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

var engaged = core.Input{Engaged: true}

const notifyDuration = 5 * time.Second
