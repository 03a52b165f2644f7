package core

import "time"

// Input captures the held movement axes and one-shot actions sampled for a
// single frame.
type Input struct {
	Forward bool
	Back    bool
	Left    bool
	Right   bool
	Up      bool
	Down    bool

	// ToggleFlashlight is true only on the frame the toggle was pressed.
	ToggleFlashlight bool

	// Engaged mirrors the pointer-lock mode. Movement, look, vitals and
	// discoveries only advance while it is on.
	Engaged bool

	// LookDX and LookDY are pointer deltas in pixels since the last frame.
	LookDX float64
	LookDY float64
}

// Frame describes one invocation of the per-frame callback.
type Frame struct {
	Tick    uint64
	Elapsed time.Duration
	Delta   time.Duration
	Input   Input
}

// Seconds returns the elapsed session time in seconds.
func (f Frame) Seconds() float64 { return f.Elapsed.Seconds() }

// DeltaSeconds returns the frame delta in seconds.
func (f Frame) DeltaSeconds() float64 { return f.Delta.Seconds() }

// Clock produces consecutive frames at a fixed step. Front-ends that own their
// own loop (ebiten, tcell) advance it once per update.
type Clock struct {
	step time.Duration
	tick uint64
	now  time.Duration
}

// NewClock returns a clock advancing tps frames per simulated second.
func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = 60
	}
	return &Clock{step: time.Second / time.Duration(tps)}
}

// Next advances the clock by one step and returns the resulting frame.
func (c *Clock) Next(in Input) Frame {
	c.tick++
	c.now += c.step
	return Frame{Tick: c.tick, Elapsed: c.now, Delta: c.step, Input: in}
}

// Reset rewinds the clock to zero.
func (c *Clock) Reset() {
	c.tick = 0
	c.now = 0
}
