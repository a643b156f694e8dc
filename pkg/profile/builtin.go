package profile

import "github.com/Faultbox/roadmesh/pkg/math"

// Road returns the built-in road cross-section: a flat 16-unit carriageway
// between two raised curbs. Edges are hard, so every corner is split into
// one vertex per adjoining face. U runs 0..1 across the outline.
func Road() *Profile {
	v := func(x, y, nx, ny, u float32) Vertex {
		return Vertex{Point: math.Vec2{X: x, Y: y}, Normal: math.Vec2{X: nx, Y: ny}, U: u}
	}
	return MustNew("road", []Vertex{
		// left curb, outer wall
		v(-10, -1, -1, 0, 0),
		v(-10, 1, -1, 0, 0.0769231),
		// left curb, top
		v(-10, 1, 0, 1, 0.0769231),
		v(-8, 1, 0, 1, 0.1538462),
		// left curb, inner wall
		v(-8, 1, 1, 0, 0.1538462),
		v(-8, 0, 1, 0, 0.1923077),
		// carriageway
		v(-8, 0, 0, 1, 0.1923077),
		v(8, 0, 0, 1, 0.8076923),
		// right curb, inner wall
		v(8, 0, -1, 0, 0.8076923),
		v(8, 1, -1, 0, 0.8461538),
		// right curb, top
		v(8, 1, 0, 1, 0.8461538),
		v(10, 1, 0, 1, 0.9230769),
		// right curb, outer wall
		v(10, 1, 1, 0, 0.9230769),
		v(10, -1, 1, 0, 1),
	}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13})
}

// Line returns a single-segment profile from a to b with U 0..1. Its
// normal is the segment direction turned a quarter towards +Y for a
// segment running along +X.
func Line(a, b math.Vec2) *Profile {
	n := b.Sub(a).Normalize().Perp()
	return MustNew("line", []Vertex{
		{Point: a, Normal: n, U: 0},
		{Point: b, Normal: n, U: 1},
	}, []int{0, 1})
}
