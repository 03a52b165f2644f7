package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/scene"
	"deepsea/internal/sim"
)

// Flashlight cone, as a spot light attached to the camera.
const (
	FlashlightRange = 50.0
	FlashlightAngle = math.Pi / 6
)

// floorStride samples every n-th floor vertex.
const floorStride = 5

// Sprite is one projected primitive, ready to paint.
type Sprite struct {
	X, Y  float64
	R     float64
	Depth float64
	Color color.RGBA
	Shape sim.Shape
	Kind  sim.Kind
}

// Lighting is the per-frame water environment.
type Lighting struct {
	Water      color.RGBA
	Fog        float64
	Flashlight bool
}

// LightingFor derives the environment for a diver at viewpoint v.
func LightingFor(v sim.Viewpoint, flashlight bool) Lighting {
	depth := sim.DepthOf(v.Position.Y())
	return Lighting{
		Water:      sim.WaterColor(depth),
		Fog:        sim.FogDensity(depth),
		Flashlight: flashlight,
	}
}

// Sprites projects every visible primitive in g and returns them sorted far
// to near. dst is reused when it has capacity.
func Sprites(g *scene.Graph, cam Camera, lit Lighting, dst []Sprite) []Sprite {
	out := dst[:0]
	g.Visit(func(n *scene.Node, world mgl64.Mat4) bool {
		prim := n.Primitive()
		switch {
		case prim.Shape == sim.ShapeGroup:
		case prim.Kind == sim.KindFloor:
			out = floorSprites(out, prim, world, cam, lit)
		default:
			pos := world.Col(3).Vec3()
			r := primitiveRadius(prim) * worldScale(world)
			if s, ok := project(cam, lit, pos, r, prim); ok {
				out = append(out, s)
			}
		}
		return true
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth > out[j].Depth })
	return out
}

func project(cam Camera, lit Lighting, pos mgl64.Vec3, r float64, prim sim.Primitive) (Sprite, bool) {
	x, y, depth, ok := cam.Project(pos)
	if !ok {
		return Sprite{}, false
	}
	px := math.Max(0.5, cam.Scale(r, depth))
	if !cam.Visible(x, y, px) {
		return Sprite{}, false
	}
	col := prim.Color
	if lit.Flashlight {
		col = illuminate(col, cam.Eye(pos), depth)
	}
	col = Fog(col, lit.Water, FogFactor(lit.Fog, depth))
	if o := prim.Material.Opacity; o > 0 && o < 1 {
		col.A = uint8(math.Round(float64(col.A) * o))
	}
	return Sprite{X: x, Y: y, R: px, Depth: depth, Color: col, Shape: prim.Shape, Kind: prim.Kind}, true
}

func floorSprites(out []Sprite, prim sim.Primitive, world mgl64.Mat4, cam Camera, lit Lighting) []Sprite {
	n := prim.Segments
	if n < 1 || len(prim.Heights) < (n+1)*(n+1) {
		return out
	}
	w, d := prim.Size.X(), prim.Size.Z()
	cell := math.Max(w, d) / float64(n) * floorStride / 2
	for j := 0; j <= n; j += floorStride {
		for i := 0; i <= n; i += floorStride {
			local := mgl64.Vec3{
				-w/2 + float64(i)*w/float64(n),
				prim.Heights[j*(n+1)+i],
				-d/2 + float64(j)*d/float64(n),
			}
			pos := mgl64.TransformCoordinate(local, world)
			if s, ok := project(cam, lit, pos, cell, prim); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func primitiveRadius(p sim.Primitive) float64 {
	s := p.Size
	switch p.Shape {
	case sim.ShapeSphere:
		return s.X()
	case sim.ShapeCone:
		return math.Max(s.X(), s.Y()/2)
	case sim.ShapeCylinder:
		return math.Max(math.Max(s.X(), s.Z()), s.Y()/2)
	default:
		return math.Max(math.Max(s.X(), s.Y()), s.Z()) / 2
	}
}

func worldScale(m mgl64.Mat4) float64 {
	return math.Max(m.Col(0).Vec3().Len(), math.Max(m.Col(1).Vec3().Len(), m.Col(2).Vec3().Len()))
}

// FogFactor is the exponential-squared fog blend for density at distance.
func FogFactor(density, distance float64) float64 {
	d := density * distance
	return 1 - math.Exp(-d*d)
}

// Fog blends c toward the water colour by f in [0, 1].
func Fog(c, water color.RGBA, f float64) color.RGBA {
	f = math.Min(1, math.Max(0, f))
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*f))
	}
	return color.RGBA{R: mix(c.R, water.R), G: mix(c.G, water.G), B: mix(c.B, water.B), A: c.A}
}

// illuminate brightens colours inside the flashlight cone, fading with
// distance.
func illuminate(c color.RGBA, eye mgl64.Vec3, depth float64) color.RGBA {
	if depth >= FlashlightRange {
		return c
	}
	angle := math.Atan2(math.Hypot(eye.X(), eye.Y()), -eye.Z())
	if angle > FlashlightAngle {
		return c
	}
	k := (1 - depth/FlashlightRange) * (1 - angle/FlashlightAngle) * 0.6
	lift := func(v uint8) uint8 {
		return uint8(math.Round(float64(v) + (255-float64(v))*k))
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}
