package mesh

import (
	"github.com/Faultbox/roadmesh/pkg/curve"
	"github.com/Faultbox/roadmesh/pkg/math"
	"github.com/Faultbox/roadmesh/pkg/profile"
)

// straightRoad runs 10 units along +Z with handles at thirds, so t maps
// linearly onto distance.
func straightRoad() *curve.Bezier {
	return curve.NewBezier(
		curve.Anchor{Position: math.Vec3{}, Forward: math.Forward, Up: math.Up, Scale: 10.0 / 3},
		curve.Anchor{Position: math.Vec3{Z: 10}, Forward: math.Forward, Up: math.Up, Scale: 10.0 / 3},
	)
}

func bentRoad() *curve.Bezier {
	return curve.NewBezier(
		curve.Anchor{Position: math.Vec3{X: -2, Z: -1}, Forward: math.Forward, Up: math.Up, Scale: 4},
		curve.Anchor{Position: math.Vec3{X: 6, Y: 1, Z: 8}, Forward: math.Right, Up: math.Up, Scale: 3},
	)
}

// strip has 3 vertices and 2 line segments (4 indices).
func strip() *profile.Profile {
	return profile.MustNew("strip", []profile.Vertex{
		{Point: math.Vec2{X: -1}, Normal: math.Vec2{Y: 1}, U: 0},
		{Point: math.Vec2{X: 1}, Normal: math.Vec2{Y: 1}, U: 1},
		{Point: math.Vec2{X: 1, Y: -1}, Normal: math.Vec2{X: 1}, U: 1},
	}, []int{0, 1, 1, 2})
}

func faceNormal(b *Buffers, tri int) math.Vec3 {
	i0, i1, i2 := b.Triangle(tri)
	v0, v1, v2 := b.Vertices[i0], b.Vertices[i1], b.Vertices[i2]
	return v1.Sub(v0).Cross(v2.Sub(v0))
}

func near(a, b math.Vec3, tol float32) bool {
	return a.Distance(b) <= tol
}
