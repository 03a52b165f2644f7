// Package scene is an in-memory scene graph. It implements the simulation's
// rendering collaborator; front-ends walk it to draw.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/sim"
)

// Node is one renderable. Its transform is relative to its parent.
type Node struct {
	id       int
	graph    *Graph
	prim     sim.Primitive
	local    sim.Transform
	parent   *Node
	children []*Node
	released bool
}

// ID returns the node's spawn order.
func (n *Node) ID() int { return n.id }

// Primitive returns the primitive the node was spawned from. Parent is
// cleared.
func (n *Node) Primitive() sim.Primitive {
	p := n.prim
	p.Parent = nil
	return p
}

// Local returns the node's transform relative to its parent.
func (n *Node) Local() sim.Transform { return n.local }

// SetTransform replaces the local transform.
func (n *Node) SetTransform(t sim.Transform) {
	if n.released {
		return
	}
	n.local = t
}

// World composes the transforms from the root down.
func (n *Node) World() mgl64.Mat4 {
	m := n.local.Matrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.local.Matrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{}, n.World())
}

// Release detaches the node and its subtree. Releasing twice is a no-op.
func (n *Node) Release() {
	if n.released {
		return
	}
	if n.parent != nil {
		n.parent.children = removeNode(n.parent.children, n)
		n.parent = nil
	} else {
		n.graph.roots = removeNode(n.graph.roots, n)
	}
	n.drop()
}

func (n *Node) drop() {
	n.released = true
	delete(n.graph.nodes, n.id)
	for _, c := range n.children {
		c.parent = nil
		c.drop()
	}
	n.children = nil
}

func removeNode(list []*Node, n *Node) []*Node {
	for i, c := range list {
		if c == n {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Graph owns every live node.
type Graph struct {
	nodes map[int]*Node
	roots []*Node
	next  int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[int]*Node)}
}

// Spawn creates a node. A parent that is not a live node of this graph makes
// the node a root.
func (g *Graph) Spawn(p sim.Primitive) sim.Handle {
	g.next++
	n := &Node{id: g.next, graph: g, prim: p, local: p.Local}
	if n.local.Scale == (mgl64.Vec3{}) && n.local.Rotation.Len() == 0 {
		n.local = sim.At(p.Local.Position)
	}

	if parent, ok := p.Parent.(*Node); ok && parent.graph == g && !parent.released {
		n.parent = parent
		parent.children = append(parent.children, n)
	} else {
		g.roots = append(g.roots, n)
	}
	g.nodes[n.id] = n
	return n
}

// Count returns the number of live nodes.
func (g *Graph) Count() int { return len(g.nodes) }

// Roots returns the top-level nodes.
func (g *Graph) Roots() []*Node { return g.roots }

// Visit walks the graph depth-first in spawn order, passing each node and its
// world matrix. Returning false skips the node's subtree.
func (g *Graph) Visit(fn func(n *Node, world mgl64.Mat4) bool) {
	for _, r := range g.roots {
		visit(r, mgl64.Ident4(), fn)
	}
}

func visit(n *Node, parent mgl64.Mat4, fn func(*Node, mgl64.Mat4) bool) {
	world := parent.Mul4(n.local.Matrix())
	if !fn(n, world) {
		return
	}
	for _, c := range n.children {
		visit(c, world, fn)
	}
}

// Clear releases every node.
func (g *Graph) Clear() {
	for len(g.roots) > 0 {
		g.roots[len(g.roots)-1].Release()
	}
}
