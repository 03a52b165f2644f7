package sim

import "github.com/go-gl/mathgl/mgl64"

// Discoveries tracks the fixed set of points of interest and the session log
// of what has been found. A point flips to discovered exactly once.
type Discoveries struct {
	points []DiscoveryPoint
	log    []string
}

// NewDiscoveries copies points so the caller's slice is never mutated.
func NewDiscoveries(points []DiscoveryPoint) *Discoveries {
	d := &Discoveries{points: make([]DiscoveryPoint, len(points))}
	copy(d.points, points)
	for i := range d.points {
		d.points[i].Discovered = false
	}
	return d
}

// Check marks every undiscovered point whose radius strictly contains pos and
// returns the newly discovered ones in declaration order.
func (d *Discoveries) Check(pos mgl64.Vec3) []DiscoveryPoint {
	var found []DiscoveryPoint
	for i := range d.points {
		p := &d.points[i]
		if p.Discovered {
			continue
		}
		if pos.Sub(p.Position).Len() < p.Radius {
			p.Discovered = true
			d.log = append(d.log, p.Name)
			found = append(found, *p)
		}
	}
	return found
}

// Points returns a copy of the current point states.
func (d *Discoveries) Points() []DiscoveryPoint {
	out := make([]DiscoveryPoint, len(d.points))
	copy(out, d.points)
	return out
}

// Log returns the names discovered so far, in order.
func (d *Discoveries) Log() []string {
	out := make([]string, len(d.log))
	copy(out, d.log)
	return out
}

// Remaining counts undiscovered points.
func (d *Discoveries) Remaining() int {
	n := 0
	for _, p := range d.points {
		if !p.Discovered {
			n++
		}
	}
	return n
}
