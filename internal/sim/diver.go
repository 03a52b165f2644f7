package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/core"
)

// DiverParams tunes first-person movement.
type DiverParams struct {
	Speed           float64
	Damping         float64
	LookSensitivity float64
	MinY            float64
	MaxY            float64
}

const pitchLimit = math.Pi/2 - 0.01

// Diver is the movement collaborator: it turns held axes and pointer deltas
// into viewpoint motion.
type Diver struct {
	Velocity mgl64.Vec3
}

// Speed returns the current movement speed in units per second.
func (d *Diver) Speed() float64 { return d.Velocity.Len() }

// Look applies pointer deltas to yaw and pitch.
func (d *Diver) Look(view *Viewpoint, dx, dy float64, p DiverParams) {
	view.Yaw -= dx * p.LookSensitivity
	view.Pitch = mgl64.Clamp(view.Pitch-dy*p.LookSensitivity, -pitchLimit, pitchLimit)
}

// Move integrates damped velocity over dt seconds. Horizontal motion follows
// the yaw only, so looking down does not sink the diver.
func (d *Diver) Move(view *Viewpoint, in core.Input, dt float64, p DiverParams) {
	if dt <= 0 {
		return
	}
	d.Velocity = d.Velocity.Sub(d.Velocity.Mul(p.Damping * dt))

	dir := mgl64.Vec3{
		axis(in.Right, in.Left),
		axis(in.Up, in.Down),
		axis(in.Forward, in.Back),
	}
	if n, ok := normalize(dir); ok {
		dir = n
	}

	if in.Forward || in.Back {
		d.Velocity[2] -= dir[2] * p.Speed * dt
	}
	if in.Left || in.Right {
		d.Velocity[0] -= dir[0] * p.Speed * dt
	}
	if in.Up || in.Down {
		d.Velocity[1] += dir[1] * p.Speed * dt
	}

	sin, cos := math.Sincos(view.Yaw)
	forward := mgl64.Vec3{-sin, 0, -cos}
	right := mgl64.Vec3{cos, 0, -sin}

	pos := view.Position
	pos = pos.Add(right.Mul(-d.Velocity[0] * dt))
	pos = pos.Add(forward.Mul(-d.Velocity[2] * dt))
	pos[1] += d.Velocity[1] * dt
	pos[1] = mgl64.Clamp(pos[1], p.MinY, p.MaxY)
	view.Position = pos
}

func axis(pos, neg bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
