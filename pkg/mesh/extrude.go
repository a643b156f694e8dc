package mesh

import (
	"fmt"

	"github.com/Faultbox/roadmesh/pkg/curve"
	"github.com/Faultbox/roadmesh/pkg/math"
	"github.com/Faultbox/roadmesh/pkg/profile"
)

// ExtrudeOptions controls a profile sweep.
type ExtrudeOptions struct {
	Segments  int     // number of steps along the curve; Segments+1 profile rings are placed
	Scale     float32 // cross-section scale applied to profile points
	Precision int     // chords used for the curve arc length

	// ReverseWinding flips triangles for right-handed renderers. The default
	// winding is clockwise for outward faces in a left-handed frame.
	ReverseWinding bool
}

// DefaultExtrudeOptions returns the settings the road segment uses when
// nothing else is configured.
func DefaultExtrudeOptions() ExtrudeOptions {
	return ExtrudeOptions{Segments: 8, Scale: 0.1, Precision: curve.DefaultPrecision}
}

// Validate checks option ranges.
func (o ExtrudeOptions) Validate() error {
	if o.Segments < 1 {
		return fmt.Errorf("%w: segments=%d, need at least 1", ErrParameterOutOfRange, o.Segments)
	}
	if !(o.Scale > 0) {
		return fmt.Errorf("%w: scale=%v, need > 0", ErrParameterOutOfRange, o.Scale)
	}
	return curve.CheckPrecision(o.Precision)
}

// Extrude sweeps p along c.
//
// Each of the Segments+1 samples at t = s/Segments places a copy of the
// profile in the curve frame. V grows with distance along the curve,
// normalised by the scaled profile length so texel density matches across
// and along the surface. Adjacent copies are joined by two triangles per
// profile line segment.
func Extrude(p *profile.Profile, c curve.Evaluator, opts ExtrudeOptions) (*Buffers, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	uSpan := p.ArcLength() * opts.Scale
	if !(uSpan > 0) {
		return nil, fmt.Errorf("%w %q: zero arc length", profile.ErrInvalidProfile, p.Name())
	}
	vLength, err := c.ArcLength(opts.Precision)
	if err != nil {
		return nil, fmt.Errorf("curve arc length: %w", err)
	}

	n := p.VertexCount()
	b := newBuffers((opts.Segments+1)*n, opts.Segments*p.LineCount()*3)

	for s := 0; s <= opts.Segments; s++ {
		t := float32(s) / float32(opts.Segments)
		frame, err := c.Evaluate(t)
		if err != nil {
			return nil, fmt.Errorf("evaluating curve at t=%v: %w", t, err)
		}
		v := t * vLength / uSpan
		for i := 0; i < n; i++ {
			pv := p.Vertex(i)
			b.Vertices = append(b.Vertices, frame.ToWorldPosition(pv.Point.Scale(opts.Scale).Vec3(0)))
			b.Normals = append(b.Normals, frame.ToWorldDirection(pv.Normal.Vec3(0)))
			b.UVs = append(b.UVs, math.Vec2{X: pv.U, Y: v})
		}
	}

	for s := 0; s < opts.Segments; s++ {
		root := s * n
		next := (s + 1) * n
		for i := 0; i < p.SegmentCount(); i++ {
			la, lb := p.Segment(i)
			a0, b0 := root+la, root+lb
			a1, b1 := next+la, next+lb
			b.addTriangle(a0, a1, b1, opts.ReverseWinding)
			b.addTriangle(a0, b1, b0, opts.ReverseWinding)
		}
	}

	return b, nil
}
