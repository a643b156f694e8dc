package mesh

import "github.com/Faultbox/roadmesh/pkg/math"

// Quad returns a 2x2 quad centred on the origin in the XY plane, facing +Z.
//
//	(0)----(1)
//	 |    / |
//	 |  /   |
//	(2)----(3)
func Quad() *Buffers {
	b := newBuffers(4, 6)
	b.Vertices = append(b.Vertices,
		math.Vec3{X: -1, Y: 1},
		math.Vec3{X: 1, Y: 1},
		math.Vec3{X: -1, Y: -1},
		math.Vec3{X: 1, Y: -1},
	)
	b.UVs = append(b.UVs,
		math.Vec2{X: 0, Y: 1},
		math.Vec2{X: 1, Y: 1},
		math.Vec2{X: 0, Y: 0},
		math.Vec2{X: 1, Y: 0},
	)
	for range b.Vertices {
		b.Normals = append(b.Normals, math.Forward)
	}
	b.addTriangle(1, 0, 2, false)
	b.addTriangle(3, 1, 2, false)
	return b
}
