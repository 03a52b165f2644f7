// Package term is the terminal front-end: a top-down view of the dive with
// the HUD on text rows, driven by tcell.
package term

import (
	"github.com/gdamore/tcell/v2"

	"deepsea/internal/core"
)

// Terminals report presses but not releases, so a press holds its axis for
// a short window and key repeat keeps it alive.
const (
	defaultHold = 12
	lookStep    = 40.0
)

// Command is a front-end action decoded from a key.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdReset
)

type axis int

const (
	axisForward axis = iota
	axisBack
	axisLeft
	axisRight
	axisUp
	axisDown
	axisCount
)

// Controls turns key events into per-frame input.
type Controls struct {
	hold  uint64
	tick  uint64
	until [axisCount]uint64

	engaged bool
	toggle  bool
	lookDX  float64
	lookDY  float64
}

// NewControls returns controls that hold a pressed axis for hold frames.
func NewControls(hold int) *Controls {
	if hold <= 0 {
		hold = defaultHold
	}
	return &Controls{hold: uint64(hold)}
}

// Engaged reports whether movement input is live.
func (c *Controls) Engaged() bool { return c.engaged }

// Handle records a key press and returns any front-end command.
func (c *Controls) Handle(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyEscape:
		c.release()
		return CmdNone
	case tcell.KeyEnter:
		if c.engaged {
			c.release()
		} else {
			c.engaged = true
		}
		return CmdNone
	case tcell.KeyLeft:
		c.lookDX -= lookStep
	case tcell.KeyRight:
		c.lookDX += lookStep
	case tcell.KeyUp:
		c.lookDY -= lookStep
	case tcell.KeyDown:
		c.lookDY += lookStep
	case tcell.KeyPgUp:
		c.press(axisUp)
	case tcell.KeyPgDn:
		c.press(axisDown)
	case tcell.KeyRune:
		return c.rune(ev.Rune())
	}
	return CmdNone
}

func (c *Controls) rune(r rune) Command {
	switch r {
	case 'q', 'Q':
		return CmdQuit
	case 'r', 'R':
		return CmdReset
	case 'f', 'F':
		c.toggle = true
	case 'w', 'W':
		c.press(axisForward)
	case 's', 'S':
		c.press(axisBack)
	case 'a', 'A':
		c.press(axisLeft)
	case 'd', 'D':
		c.press(axisRight)
	case ' ':
		c.press(axisUp)
	case 'c', 'C':
		c.press(axisDown)
	}
	return CmdNone
}

func (c *Controls) press(a axis) {
	c.until[a] = c.tick + c.hold
}

func (c *Controls) release() {
	c.engaged = false
	c.until = [axisCount]uint64{}
	c.lookDX, c.lookDY = 0, 0
}

// Input samples the current frame and clears the one-shot state.
func (c *Controls) Input() core.Input {
	held := func(a axis) bool { return c.engaged && c.until[a] > c.tick }
	in := core.Input{
		Forward:          held(axisForward),
		Back:             held(axisBack),
		Left:             held(axisLeft),
		Right:            held(axisRight),
		Up:               held(axisUp),
		Down:             held(axisDown),
		ToggleFlashlight: c.toggle,
		Engaged:          c.engaged,
	}
	if c.engaged {
		in.LookDX, in.LookDY = c.lookDX, c.lookDY
	}
	c.toggle = false
	c.lookDX, c.lookDY = 0, 0
	c.tick++
	return in
}
