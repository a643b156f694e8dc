package gizmo

import (
	"github.com/Faultbox/roadmesh/pkg/math"
	"github.com/Faultbox/roadmesh/pkg/mesh"
)

// BoundsEdgeCount is the number of lines in a box wireframe.
const BoundsEdgeCount = 12

// DefaultBoundsPadding is the default padding for selection boxes.
const DefaultBoundsPadding = 0.05

// BoundsWireframe returns the 12 edges of b expanded by padding on all sides.
func BoundsWireframe(b mesh.Bounds, padding float32, color Color) []Line {
	lo := b.Min.Sub(math.Vec3{X: padding, Y: padding, Z: padding})
	hi := b.Max.Add(math.Vec3{X: padding, Y: padding, Z: padding})

	corner := func(x, y, z bool) math.Vec3 {
		c := lo
		if x {
			c.X = hi.X
		}
		if y {
			c.Y = hi.Y
		}
		if z {
			c.Z = hi.Z
		}
		return c
	}
	edge := func(a, b math.Vec3) Line { return Line{From: a, To: b, Color: color} }

	return []Line{
		// Bottom face
		edge(corner(false, false, false), corner(true, false, false)),
		edge(corner(true, false, false), corner(true, false, true)),
		edge(corner(true, false, true), corner(false, false, true)),
		edge(corner(false, false, true), corner(false, false, false)),
		// Top face
		edge(corner(false, true, false), corner(true, true, false)),
		edge(corner(true, true, false), corner(true, true, true)),
		edge(corner(true, true, true), corner(false, true, true)),
		edge(corner(false, true, true), corner(false, true, false)),
		// Vertical edges
		edge(corner(false, false, false), corner(false, true, false)),
		edge(corner(true, false, false), corner(true, true, false)),
		edge(corner(true, false, true), corner(true, true, true)),
		edge(corner(false, false, true), corner(false, true, true)),
	}
}

// MeshWireframe returns every distinct triangle edge of b.
func MeshWireframe(b *mesh.Buffers, color Color) []Line {
	type edgeKey [2]uint32
	seen := make(map[edgeKey]struct{}, len(b.Triangles))
	var lines []Line

	add := func(i, j uint32) {
		if i > j {
			i, j = j, i
		}
		key := edgeKey{i, j}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		lines = append(lines, Line{From: b.Vertices[i], To: b.Vertices[j], Color: color})
	}

	for tri := 0; tri < b.TriangleCount(); tri++ {
		i0, i1, i2 := b.Triangle(tri)
		add(i0, i1)
		add(i1, i2)
		add(i2, i0)
	}
	return lines
}
