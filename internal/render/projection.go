// Package render turns the scene graph into screen-space primitives and
// paints them. Projection and sprite building are plain Go; the painters
// need the ebiten build tag.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/sim"
)

// Camera lens constants.
const (
	FieldOfView = 75.0
	Near        = 0.1
	Far         = 2000.0
)

// Camera projects world points for one frame.
type Camera struct {
	W, H int

	view  mgl64.Mat4
	proj  mgl64.Mat4
	focal float64
}

// NewCamera builds the perspective camera looking out of v.
func NewCamera(v sim.Viewpoint, w, h int) Camera {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	fov := mgl64.DegToRad(FieldOfView)
	p := v.Position
	world := mgl64.Translate3D(p[0], p[1], p[2]).Mul4(v.Orientation().Mat4())
	return Camera{
		W:     w,
		H:     h,
		view:  world.Inv(),
		proj:  mgl64.Perspective(fov, float64(w)/float64(h), Near, Far),
		focal: float64(h) / 2 / math.Tan(fov/2),
	}
}

// Eye returns p in camera space. The camera looks down -Z.
func (c Camera) Eye(p mgl64.Vec3) mgl64.Vec3 {
	return c.view.Mul4x1(p.Vec4(1)).Vec3()
}

// Project returns the screen position of p and its distance along the view
// axis. ok is false for points behind the near plane or past the far plane.
func (c Camera) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	eye := c.view.Mul4x1(p.Vec4(1))
	depth = -eye.Z()
	if depth <= Near || depth >= Far {
		return 0, 0, depth, false
	}
	clip := c.proj.Mul4x1(eye)
	ndc := clip.Vec3().Mul(1 / clip.W())
	x = (ndc.X() + 1) / 2 * float64(c.W)
	y = (1 - ndc.Y()) / 2 * float64(c.H)
	return x, y, depth, true
}

// Scale converts a world-space radius at depth into pixels.
func (c Camera) Scale(radius, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return radius * c.focal / depth
}

// Visible reports whether a circle of radius r at (x, y) touches the screen.
func (c Camera) Visible(x, y, r float64) bool {
	return x+r >= 0 && y+r >= 0 && x-r < float64(c.W) && y-r < float64(c.H)
}
