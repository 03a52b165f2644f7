package sim

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shape enumerates the renderable primitives the scene collaborator must
// support.
type Shape uint8

const (
	ShapeGroup Shape = iota
	ShapeBox
	ShapeSphere
	ShapeCone
	ShapeCylinder
	ShapePlane
)

func (s Shape) String() string {
	switch s {
	case ShapeGroup:
		return "group"
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeCone:
		return "cone"
	case ShapeCylinder:
		return "cylinder"
	case ShapePlane:
		return "plane"
	default:
		return "unknown"
	}
}

// Kind tags what a renderable represents so front-ends can pick glyphs and
// minimap markers without inspecting geometry.
type Kind uint8

const (
	KindProp Kind = iota
	KindFloor
	KindCoral
	KindSeaweed
	KindFish
	KindBubble
	KindWreck
)

// Material carries surface properties for renderers.
type Material struct {
	Roughness float64
	Metalness float64
	Opacity   float64
}

// Transform places a renderable relative to its parent.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3
}

// Identity returns the transform that leaves a renderable in place.
func Identity() Transform {
	return Transform{Rotation: mgl64.QuatIdent(), Scale: mgl64.Vec3{1, 1, 1}}
}

// At returns an identity transform translated to p.
func At(p mgl64.Vec3) Transform {
	t := Identity()
	t.Position = p
	return t
}

// Matrix composes translation, rotation and scale.
func (t Transform) Matrix() mgl64.Mat4 {
	s := t.Scale
	if s == (mgl64.Vec3{}) {
		s = mgl64.Vec3{1, 1, 1}
	}
	rot := t.Rotation
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}
	return mgl64.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(rot.Mat4()).
		Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
}

// Primitive describes a renderable to create. Size is interpreted per shape:
// box (w, h, d); sphere (r, -, -); cone (r, h, -); cylinder (top r, h,
// bottom r); plane (w, -, d).
type Primitive struct {
	Name     string
	Kind     Kind
	Shape    Shape
	Size     mgl64.Vec3
	Color    color.RGBA
	Material Material
	Parent   Handle
	Local    Transform

	// Heights holds (Segments+1)^2 vertex offsets for planes.
	Segments int
	Heights  []float64
}

// Handle is a renderable owned by exactly one record.
type Handle interface {
	SetTransform(Transform)
	Release()
}

// Scene is the rendering collaborator that creates renderables.
type Scene interface {
	Spawn(Primitive) Handle
}

// School is the moving reference point shared by a group of fish.
type School struct {
	Center mgl64.Vec3
}

// FishAgent is one fish steering toward its school.
type FishAgent struct {
	Handle   Handle
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Offset   mgl64.Vec3
	School   *School
	Facing   mgl64.Quat
}

// BubbleAgent rises from an emitter and is recycled at the ceiling.
type BubbleAgent struct {
	Handle   Handle
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	OriginY  float64
}

// SeaweedSegment sways around its initial rotation.
type SeaweedSegment struct {
	Handle   Handle
	Position mgl64.Vec3
	InitialX float64
	InitialZ float64
	Phase    float64

	// Anchor is the segment's world position, cached for the minimap.
	Anchor mgl64.Vec3
}

// DiscoveryPoint is a fixed location that is discovered once.
type DiscoveryPoint struct {
	Name        string
	Description string
	Position    mgl64.Vec3
	Radius      float64
	Discovered  bool
}

// Viewpoint is the diver's camera.
type Viewpoint struct {
	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
	MinY     float64
	MaxY     float64
}

// Orientation returns the camera rotation: yaw about +Y, then pitch about +X.
func (v Viewpoint) Orientation() mgl64.Quat {
	yaw := mgl64.QuatRotate(v.Yaw, mgl64.Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(v.Pitch, mgl64.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

// Forward returns the unit look direction. The camera looks down -Z at rest.
func (v Viewpoint) Forward() mgl64.Vec3 {
	return v.Orientation().Rotate(mgl64.Vec3{0, 0, -1})
}

// Bearing returns the compass heading in degrees from the horizontal look
// direction.
func (v Viewpoint) Bearing() float64 {
	f := v.Forward()
	return math.Atan2(f.X(), f.Z()) * 180 / math.Pi
}
