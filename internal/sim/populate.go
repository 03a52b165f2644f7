package sim

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/core"
)

var (
	sand       = color.RGBA{R: 0xd2, G: 0xb4, B: 0x8c, A: 0xff}
	wreckWood  = color.RGBA{R: 0x8b, G: 0x45, B: 0x13, A: 0xff}
	bubbleTint = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x4d}
)

// populator places the procedural scene through the rendering collaborator.
type populator struct {
	scene  Scene
	rng    *core.RNG
	layout Layout
	store  *Store
}

// Populate builds a fresh store for layout. All randomness is drawn from rng
// so the same seed yields the same reef.
func Populate(scene Scene, rng *core.RNG, layout Layout) *Store {
	if scene == nil {
		scene = nopScene{}
	}
	p := &populator{scene: scene, rng: rng, layout: layout, store: &Store{}}
	p.floor()
	p.corals()
	p.seaweed()
	p.fish()
	p.bubbles()
	if layout.Wreck.Enabled {
		p.wreck()
	}
	return p.store
}

func (p *populator) prop(prim Primitive) Handle {
	h := p.scene.Spawn(prim)
	p.store.Props = append(p.store.Props, h)
	return h
}

func (p *populator) group(name string, kind Kind, parent Handle, local Transform) Handle {
	return p.prop(Primitive{Name: name, Kind: kind, Shape: ShapeGroup, Parent: parent, Local: local})
}

func (p *populator) spread() (float64, float64) {
	s := p.layout.Spread
	return p.rng.Range(-s, s), p.rng.Range(-s, s)
}

func (p *populator) floor() {
	n := p.layout.FloorSegments
	if n < 1 {
		n = 1
	}
	heights := make([]float64, (n+1)*(n+1))
	relief := p.layout.FloorRelief
	for i := range heights {
		heights[i] = p.rng.Range(-relief, relief)
	}
	p.prop(Primitive{
		Name:     "ocean-floor",
		Kind:     KindFloor,
		Shape:    ShapePlane,
		Size:     mgl64.Vec3{p.layout.FloorSize, 0, p.layout.FloorSize},
		Color:    sand,
		Material: Material{Roughness: 0.8, Metalness: 0.2, Opacity: 1},
		Local:    At(mgl64.Vec3{0, p.layout.FloorY, 0}),
		Segments: n,
		Heights:  heights,
	})
}

func (p *populator) coralColor() color.RGBA {
	return rgb(p.rng.Range(0.7, 1), p.rng.Range(0, 0.3), p.rng.Range(0.7, 1))
}

func (p *populator) corals() {
	baseY := p.layout.FloorY + 1
	for i := 0; i < p.layout.CoralFormations; i++ {
		x, z := p.spread()
		formation := p.group("coral-formation", KindCoral, nil, At(mgl64.Vec3{x, baseY, z}))

		pieces := p.rng.IntRange(p.layout.CoralPiecesMin, p.layout.CoralPiecesMax)
		for j := 0; j < pieces; j++ {
			kind := p.rng.IntRange(0, 2)
			local := At(mgl64.Vec3{p.rng.Range(-2, 2), p.rng.Range(0, 2), p.rng.Range(-2, 2)})
			local.Rotation = mgl64.QuatRotate(p.rng.Range(0, 2*math.Pi), yAxis)
			s := p.rng.Range(0.5, 1)
			local.Scale = mgl64.Vec3{s, s, s}

			piece := p.group("coral", KindCoral, formation, local)
			switch kind {
			case 0:
				p.branchingCoral(piece)
			case 1:
				p.brainCoral(piece)
			default:
				p.tableCoral(piece)
			}
		}
	}
}

func (p *populator) branchingCoral(parent Handle) {
	col := p.coralColor()
	mat := Material{Roughness: 0.8, Metalness: 0.2, Opacity: 1}
	p.prop(Primitive{
		Name: "coral-stem", Kind: KindCoral, Shape: ShapeCylinder,
		Size: mgl64.Vec3{0.2, 3, 0.3}, Color: col, Material: mat,
		Parent: parent, Local: At(mgl64.Vec3{0, 1.5, 0}),
	})
	branches := p.rng.IntRange(2, 4)
	for i := 0; i < branches; i++ {
		y := p.rng.Range(1, 3)
		x := p.rng.Range(-0.5, 0.5)
		local := At(mgl64.Vec3{x, y, p.rng.Range(-0.5, 0.5)})
		local.Rotation = mgl64.AnglesToQuat(p.rng.Range(-0.25, 0.25), 0, p.rng.Range(-0.25, 0.25), mgl64.XYZ)
		p.prop(Primitive{
			Name: "coral-branch", Kind: KindCoral, Shape: ShapeCylinder,
			Size: mgl64.Vec3{0.1, 2, 0.2}, Color: col, Material: mat,
			Parent: parent, Local: local,
		})
	}
}

func (p *populator) brainCoral(parent Handle) {
	p.prop(Primitive{
		Name: "brain-coral", Kind: KindCoral, Shape: ShapeSphere,
		Size: mgl64.Vec3{1, 0, 0}, Color: p.coralColor(),
		Material: Material{Roughness: 0.9, Metalness: 0.1, Opacity: 1},
		Parent:   parent, Local: At(mgl64.Vec3{0, 1, 0}),
	})
}

func (p *populator) tableCoral(parent Handle) {
	p.prop(Primitive{
		Name: "table-stem", Kind: KindCoral, Shape: ShapeCylinder,
		Size: mgl64.Vec3{0.3, 2, 0.5}, Color: p.coralColor(),
		Material: Material{Roughness: 0.8, Metalness: 0.2, Opacity: 1},
		Parent:   parent, Local: At(mgl64.Vec3{0, 1, 0}),
	})
	p.prop(Primitive{
		Name: "table-top", Kind: KindCoral, Shape: ShapeCylinder,
		Size: mgl64.Vec3{2, 0.2, 2}, Color: p.coralColor(),
		Material: Material{Roughness: 0.7, Metalness: 0.3, Opacity: 1},
		Parent:   parent, Local: At(mgl64.Vec3{0, 2.1, 0}),
	})
}

func (p *populator) seaweed() {
	baseY := p.layout.FloorY + 1
	for i := 0; i < p.layout.SeaweedClusters; i++ {
		x, z := p.spread()
		clusterPos := mgl64.Vec3{x, baseY, z}
		cluster := p.group("seaweed-cluster", KindSeaweed, nil, At(clusterPos))

		strands := p.rng.IntRange(p.layout.StrandsMin, p.layout.StrandsMax)
		for j := 0; j < strands; j++ {
			strandPos := mgl64.Vec3{p.rng.Range(-1, 1), 0, p.rng.Range(-1, 1)}
			strand := p.group("seaweed-strand", KindSeaweed, cluster, At(strandPos))
			p.strand(strand, clusterPos.Add(strandPos))
		}
	}
}

func (p *populator) strand(parent Handle, base mgl64.Vec3) {
	height := p.rng.Range(p.layout.StrandHeightMin, p.layout.StrandHeightMax)
	segments := int(math.Floor(height))
	col := rgb(p.rng.Range(0, 0.2), p.rng.Range(0.5, 0.8), p.rng.Range(0.2, 0.5))

	for i := 0; i < segments; i++ {
		seg := &SeaweedSegment{
			Position: mgl64.Vec3{0, float64(i) + 0.5, 0},
			InitialX: math.Sin(float64(i)*0.5) * 0.2,
			InitialZ: math.Cos(float64(i)*0.5) * 0.2,
			Phase:    p.rng.Range(0, 2*math.Pi),
		}
		seg.Anchor = base.Add(seg.Position)

		local := At(seg.Position)
		local.Rotation = mgl64.AnglesToQuat(seg.InitialX, 0, seg.InitialZ, mgl64.XYZ)
		seg.Handle = p.scene.Spawn(Primitive{
			Name: "seaweed", Kind: KindSeaweed, Shape: ShapeBox,
			Size: mgl64.Vec3{0.2, 1, 0.1}, Color: col,
			Material: Material{Roughness: 0.8, Metalness: 0.2, Opacity: 1},
			Parent:   parent, Local: local,
		})
		p.store.Seaweed = append(p.store.Seaweed, seg)
	}
}

func (p *populator) fish() {
	half := p.layout.SchoolSpread
	for i := 0; i < p.layout.Schools; i++ {
		size := p.rng.IntRange(p.layout.SchoolSizeMin, p.layout.SchoolSizeMax)
		school := &School{Center: mgl64.Vec3{
			p.rng.Range(-half, half),
			p.rng.Range(-5, 15),
			p.rng.Range(-half, half),
		}}
		p.store.Schools = append(p.store.Schools, school)

		for j := 0; j < size; j++ {
			f := &FishAgent{
				Position: school.Center.Add(mgl64.Vec3{p.rng.Range(-5, 5), p.rng.Range(-3, 3), p.rng.Range(-5, 5)}),
				Velocity: mgl64.Vec3{p.rng.Range(-0.05, 0.05), p.rng.Range(-0.025, 0.025), p.rng.Range(-0.05, 0.05)},
				Offset:   mgl64.Vec3{p.rng.Range(-5, 5), p.rng.Range(-3, 3), p.rng.Range(-5, 5)},
				School:   school,
				Facing:   mgl64.QuatIdent(),
			}
			f.Handle = p.fishBody(f.Position)
			p.store.Fish = append(p.store.Fish, f)
		}
	}
}

// fishBody spawns the fish group and its parts. Only the group is owned by
// the agent; the parts are props released after it.
func (p *populator) fishBody(pos mgl64.Vec3) Handle {
	col := rgb(p.rng.Float64(), p.rng.Float64(), p.rng.Float64())
	mat := Material{Roughness: 0.8, Metalness: 0.2, Opacity: 1}
	body := p.scene.Spawn(Primitive{Name: "fish", Kind: KindFish, Shape: ShapeGroup, Color: col, Local: At(pos)})

	nose := Identity()
	nose.Rotation = mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{1, 0, 0})
	p.prop(Primitive{Name: "fish-body", Kind: KindFish, Shape: ShapeCone, Size: mgl64.Vec3{0.5, 2, 0}, Color: col, Material: mat, Parent: body, Local: nose})

	tail := At(mgl64.Vec3{0, 0, 1.5})
	tail.Rotation = mgl64.QuatRotate(-math.Pi/2, mgl64.Vec3{1, 0, 0})
	p.prop(Primitive{Name: "fish-tail", Kind: KindFish, Shape: ShapeCone, Size: mgl64.Vec3{0.5, 1, 0}, Color: col, Material: mat, Parent: body, Local: tail})

	for _, side := range []float64{-1, 1} {
		fin := At(mgl64.Vec3{0.5 * side, 0, -0.3})
		fin.Rotation = mgl64.QuatRotate(-side*math.Pi/4, yAxis)
		p.prop(Primitive{Name: "fish-fin", Kind: KindFish, Shape: ShapePlane, Size: mgl64.Vec3{0.5, 0, 0.5}, Color: col, Material: mat, Parent: body, Local: fin})
	}
	return body
}

func (p *populator) bubbles() {
	originY := p.layout.BubbleOriginY
	for i := 0; i < p.layout.BubbleEmitters; i++ {
		x, z := p.spread()
		for j := 0; j < p.layout.BubblesPerEmitter; j++ {
			b := &BubbleAgent{
				Position: mgl64.Vec3{x + p.rng.Range(-1, 1), originY, z + p.rng.Range(-1, 1)},
				Velocity: mgl64.Vec3{p.rng.Range(-0.01, 0.01), p.rng.Range(0.05, 0.1), p.rng.Range(-0.01, 0.01)},
				OriginY:  originY,
			}
			b.Handle = p.scene.Spawn(Primitive{
				Name: "bubble", Kind: KindBubble, Shape: ShapeSphere,
				Size: mgl64.Vec3{p.rng.Range(0.1, 0.3), 0, 0}, Color: bubbleTint,
				Material: Material{Roughness: 0.1, Metalness: 0.8, Opacity: 0.3},
				Local:    At(b.Position),
			})
			p.store.Bubbles = append(p.store.Bubbles, b)
		}
	}
}

func (p *populator) wreck() {
	w := p.layout.Wreck
	root := At(w.Position)
	root.Rotation = mgl64.QuatRotate(w.Yaw, yAxis)
	ship := p.group("shipwreck", KindWreck, nil, root)

	mat := Material{Roughness: 0.9, Metalness: 0.1, Opacity: 1}
	p.prop(Primitive{Name: "hull", Kind: KindWreck, Shape: ShapeBox, Size: mgl64.Vec3{10, 3, 30}, Color: wreckWood, Material: mat, Parent: ship, Local: At(mgl64.Vec3{0, 1.5, 0})})
	p.prop(Primitive{Name: "deck", Kind: KindWreck, Shape: ShapeBox, Size: mgl64.Vec3{10, 0.5, 30}, Color: wreckWood, Material: mat, Parent: ship, Local: At(mgl64.Vec3{0, 3.25, 0})})

	masts := []struct {
		height float64
		pos    mgl64.Vec3
		rx, rz float64
	}{
		{10, mgl64.Vec3{0, 8, -5}, math.Pi / 4, math.Pi / 6},
		{8, mgl64.Vec3{0, 7, 5}, -math.Pi / 6, -math.Pi / 8},
	}
	for _, m := range masts {
		local := At(m.pos)
		local.Rotation = mgl64.AnglesToQuat(m.rx, 0, m.rz, mgl64.XYZ)
		p.prop(Primitive{Name: "mast", Kind: KindWreck, Shape: ShapeCylinder, Size: mgl64.Vec3{0.5, m.height, 0.5}, Color: wreckWood, Material: mat, Parent: ship, Local: local})
	}
}
