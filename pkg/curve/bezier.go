package curve

import (
	"github.com/Faultbox/roadmesh/pkg/math"
)

// Anchor is one end of a Bézier road segment. Forward and Scale define the
// handle: it points along Forward from the start anchor, and against Forward
// into the end anchor.
type Anchor struct {
	Position math.Vec3
	Forward  math.Vec3
	Up       math.Vec3
	Scale    float32
}

// AnchorFromFrame builds an anchor from a frame's position and axes.
func AnchorFromFrame(f math.Frame, scale float32) Anchor {
	return Anchor{Position: f.Position, Forward: f.Forward(), Up: f.Up(), Scale: scale}
}

// Bezier is a cubic Bézier path between two anchors.
type Bezier struct {
	Start Anchor
	End   Anchor
}

// NewBezier creates a Bézier path between two anchors.
func NewBezier(start, end Anchor) *Bezier {
	return &Bezier{Start: start, End: end}
}

// ControlPoints returns P0..P3.
func (b *Bezier) ControlPoints() [4]math.Vec3 {
	return [4]math.Vec3{
		b.Start.Position,
		b.Start.Position.Add(b.Start.Forward.Scale(b.Start.Scale)),
		b.End.Position.Sub(b.End.Forward.Scale(b.End.Scale)),
		b.End.Position,
	}
}

// Degenerate reports whether all control points coincide, in which case the
// path has no direction anywhere and every frame uses the fallback tangent.
func (b *Bezier) Degenerate() bool {
	p := b.ControlPoints()
	return p[0].Distance(p[1]) < math.Epsilon &&
		p[0].Distance(p[2]) < math.Epsilon &&
		p[0].Distance(p[3]) < math.Epsilon
}

// Evaluate returns the frame at t using De Casteljau's construction.
//
// The tangent is the difference of the two quadratic points of the last
// step. When that is shorter than math.Epsilon the tangent falls back, in
// order, to the difference of the outer linear points, the chord P3-P0,
// Start.Forward, and finally world +Z. The up vector is the normalized lerp of
// the anchors' up vectors; math.QuatLookRotation handles a zero or parallel
// up.
func (b *Bezier) Evaluate(t float32) (math.Frame, error) {
	if err := CheckT(t); err != nil {
		return math.Frame{}, err
	}
	position, tangent := b.sample(t)
	up := b.Start.Up.Lerp(b.End.Up, t).Normalize()
	return math.NewFrame(position, math.QuatLookRotation(tangent, up)), nil
}

// Tangent returns the unit tangent at t and whether it came from the
// fallback chain.
func (b *Bezier) Tangent(t float32) (math.Vec3, bool, error) {
	if err := CheckT(t); err != nil {
		return math.Vec3{}, false, err
	}
	s := deCasteljau(b.ControlPoints(), t)
	_, tangent := b.sample(t)
	return tangent, s.e.Sub(s.d).IsZero(), nil
}

// ArcLength approximates the length with precision chords.
func (b *Bezier) ArcLength(precision int) (float32, error) {
	return SampledLength(b, precision)
}

type casteljau struct {
	a, c     math.Vec3 // outer points of the linear step (a, b, c)
	d, e     math.Vec3 // quadratic step
	position math.Vec3
}

func deCasteljau(p [4]math.Vec3, t float32) casteljau {
	a := p[0].Lerp(p[1], t)
	b := p[1].Lerp(p[2], t)
	c := p[2].Lerp(p[3], t)
	d := a.Lerp(b, t)
	e := b.Lerp(c, t)
	return casteljau{a: a, c: c, d: d, e: e, position: d.Lerp(e, t)}
}

func (b *Bezier) sample(t float32) (math.Vec3, math.Vec3) {
	p := b.ControlPoints()
	s := deCasteljau(p, t)

	candidates := [...]math.Vec3{
		s.e.Sub(s.d),
		s.c.Sub(s.a),
		p[3].Sub(p[0]),
		b.Start.Forward,
		math.Forward,
	}
	for _, c := range candidates {
		if n := c.Normalize(); !n.IsZero() {
			return s.position, n
		}
	}
	return s.position, math.Forward
}
