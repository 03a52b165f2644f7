// Package sweep runs many seeded headless dives in parallel and collects the
// numbers used to check the simulation's invariants across seeds.
package sweep

import (
	"context"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"deepsea/internal/core"
	"deepsea/internal/sim"
)

// Result summarises one dive.
type Result struct {
	Seed  int64
	Steps int

	Fish    int
	Bubbles int

	MaxFishSpeed  float64
	SchoolEscapes int
	BubblesAbove  int
	Recycled      int

	MinOxygen  float64
	MaxDepth   float64
	Warnings   int
	Discovered []string
}

// Healthy reports whether the dive kept every invariant.
func (r Result) Healthy(maxSpeed float64) bool {
	return r.MaxFishSpeed <= maxSpeed+1e-9 && r.SchoolEscapes == 0 && r.BubblesAbove == 0 &&
		r.MinOxygen >= 0
}

// counter is the HUD the dive reports to.
type counter struct {
	warnings int
}

func (c *counter) SetValue(sim.Element, float64) {}
func (c *counter) SetFlashlight(bool)            {}
func (c *counter) Notify(n sim.Notification) {
	if n.Kind == sim.NoticeWarning {
		c.warnings++
	}
}

// Dive runs one scripted session: the diver sinks while swimming forward for
// the first half of the steps, then rises for the rest.
func Dive(cfg sim.Config, seed int64, steps, tps int) Result {
	c := &counter{}
	w := sim.New(cfg, nil, c)
	w.Reset(seed)
	defer w.Close()

	p := cfg.Params
	res := Result{
		Seed:      seed,
		Steps:     steps,
		Fish:      len(w.Fish()),
		Bubbles:   len(w.Bubbles()),
		MinOxygen: math.Inf(1),
	}

	clock := core.NewClock(tps)
	for i := 0; i < steps; i++ {
		in := core.Input{Engaged: true, Forward: true}
		if i < steps/2 {
			in.Down = true
		} else {
			in.Up = true
		}
		w.Step(clock.Next(in))

		for _, f := range w.Fish() {
			res.MaxFishSpeed = math.Max(res.MaxFishSpeed, f.Velocity.Len())
		}
		for _, s := range w.Schools() {
			if !inBox(s.Center, p.Flock.SchoolMin, p.Flock.SchoolMax) {
				res.SchoolEscapes++
			}
		}
		for _, b := range w.Bubbles() {
			if b.Position.Y() > p.Drift.Ceiling {
				res.BubblesAbove++
			}
		}
		st := w.Stats()
		res.MinOxygen = math.Min(res.MinOxygen, st.Oxygen)
		res.MaxDepth = math.Max(res.MaxDepth, st.Depth)
	}

	res.Recycled = w.Recycled()
	res.Warnings = c.warnings
	res.Discovered = append([]string(nil), w.Discovered()...)
	return res
}

func inBox(v, lo, hi mgl64.Vec3) bool {
	const eps = 1e-9
	for i := 0; i < 3; i++ {
		if v[i] < lo[i]-eps || v[i] > hi[i]+eps {
			return false
		}
	}
	return true
}

// Run dives once per seed on at most workers goroutines and returns the
// results in the order of seeds. Cancelling ctx stops handing out new seeds.
func Run(ctx context.Context, cfg sim.Config, seeds []int64, steps, tps, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Dive(cfg, seed, steps, tps)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = first + int64(i)
	}
	return out
}
