package mesh

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/roadmesh/pkg/math"
)

// UVProjection selects how ring texture coordinates are assigned.
type UVProjection int

const (
	// AngularRadial maps U to the angle fraction and V to 0 on the inner
	// edge, 1 on the outer edge.
	AngularRadial UVProjection = iota
	// ProjectZ projects the ring onto the XY plane, with the outer circle
	// filling the unit square.
	ProjectZ
)

var uvProjectionNames = map[UVProjection]string{
	AngularRadial: "angular_radial",
	ProjectZ:      "project_z",
}

// String returns the config name of the projection.
func (p UVProjection) String() string {
	if name, ok := uvProjectionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("UVProjection(%d)", int(p))
}

// ParseUVProjection parses a config name.
func ParseUVProjection(s string) (UVProjection, error) {
	for p, name := range uvProjectionNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown uv projection %q", ErrParameterOutOfRange, s)
}

// RingOptions describes a flat annulus.
type RingOptions struct {
	InnerRadius float32
	Thickness   float32
	Segments    int // angular segments, at least 3
	UV          UVProjection

	// ReverseWinding flips triangles for right-handed renderers.
	ReverseWinding bool
}

// DefaultRingOptions returns the defaults of the ring component.
func DefaultRingOptions() RingOptions {
	return RingOptions{InnerRadius: 1, Thickness: 0.25, Segments: 32, UV: AngularRadial}
}

// OuterRadius returns InnerRadius + Thickness.
func (o RingOptions) OuterRadius() float32 {
	return o.InnerRadius + o.Thickness
}

// Validate checks option ranges.
func (o RingOptions) Validate() error {
	if o.Segments < 3 {
		return fmt.Errorf("%w: angular segments=%d, need at least 3", ErrParameterOutOfRange, o.Segments)
	}
	if !(o.InnerRadius >= 0) {
		return fmt.Errorf("%w: inner radius=%v, need >= 0", ErrParameterOutOfRange, o.InnerRadius)
	}
	if !(o.Thickness > 0) {
		return fmt.Errorf("%w: thickness=%v, need > 0", ErrParameterOutOfRange, o.Thickness)
	}
	if _, ok := uvProjectionNames[o.UV]; !ok {
		return fmt.Errorf("%w: %v", ErrParameterOutOfRange, o.UV)
	}
	return nil
}

// RingAngle returns the angle in radians of sample i out of segments.
func RingAngle(i, segments int) float64 {
	return 2 * gomath.Pi * float64(i) / float64(segments)
}

// Ring builds a flat annulus in the local XY plane facing +Z.
//
// Outer vertices occupy [0, Segments] and inner vertices
// [Segments+1, 2*Segments+1]. The last sample of each circle repeats angle
// zero so the seam can carry U=1 while the first vertex keeps U=0.
func Ring(opts RingOptions) (*Buffers, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	n := opts.Segments
	innerOffset := n + 1
	outer := opts.OuterRadius()
	b := newBuffers(2*innerOffset, n*6)

	inner := newBuffers(innerOffset, 0)
	for i := 0; i <= n; i++ {
		unit := math.UnitCircle(RingAngle(i%n, n))

		b.Vertices = append(b.Vertices, unit.Scale(outer).Vec3(0))
		inner.Vertices = append(inner.Vertices, unit.Scale(opts.InnerRadius).Vec3(0))

		switch opts.UV {
		case AngularRadial:
			u := float32(i) / float32(n)
			b.UVs = append(b.UVs, math.Vec2{X: u, Y: 1})
			inner.UVs = append(inner.UVs, math.Vec2{X: u, Y: 0})
		case ProjectZ:
			b.UVs = append(b.UVs, remapUnit(unit))
			inner.UVs = append(inner.UVs, remapUnit(unit.Scale(opts.InnerRadius/outer)))
		}
	}
	b.Vertices = append(b.Vertices, inner.Vertices...)
	b.UVs = append(b.UVs, inner.UVs...)
	for range b.Vertices {
		b.Normals = append(b.Normals, math.Forward)
	}

	//  (a)------(b)  outer ring
	//   |       /|
	//   |     /  |   triangle 1 = a b c
	//   |   /    |   triangle 2 = c b d
	//   | /      |
	//  (c)------(d)  inner ring
	for i := 0; i < n; i++ {
		a, bb := i, i+1
		c, d := i+innerOffset, i+1+innerOffset
		b.addTriangle(a, bb, c, opts.ReverseWinding)
		b.addTriangle(c, bb, d, opts.ReverseWinding)
	}

	return b, nil
}

// remapUnit maps [-1, 1] to [0, 1] on both axes.
func remapUnit(v math.Vec2) math.Vec2 {
	return math.Vec2{X: v.X*0.5 + 0.5, Y: v.Y*0.5 + 0.5}
}
