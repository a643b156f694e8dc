// Package gizmo answers read-only debug queries about curves, profiles, and
// meshes. Every query returns plain line segments; drawing them is up to the
// caller.
package gizmo

import (
	"fmt"

	"github.com/Faultbox/roadmesh/pkg/curve"
	"github.com/Faultbox/roadmesh/pkg/math"
	"github.com/Faultbox/roadmesh/pkg/mesh"
	"github.com/Faultbox/roadmesh/pkg/profile"
)

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// Palette used by the queries.
var (
	White  = Color{1, 1, 1, 1}
	Gray   = Color{0.5, 0.5, 0.5, 1}
	Red    = Color{1, 0, 0, 1}
	Green  = Color{0, 1, 0, 1}
	Blue   = Color{0, 0, 1, 1}
	Cyan   = Color{0, 1, 1, 1}
	Yellow = Color{1, 1, 0, 1}
)

// Line is a colored segment in world space.
type Line struct {
	From, To math.Vec3
	Color    Color
}

// CurveLines samples c at detail+1 points and joins them.
func CurveLines(c curve.Evaluator, detail int, color Color) ([]Line, error) {
	if detail < 1 {
		return nil, fmt.Errorf("%w: detail=%d, need at least 1", curve.ErrParameterOutOfRange, detail)
	}
	prev, err := c.Evaluate(0)
	if err != nil {
		return nil, err
	}
	lines := make([]Line, 0, detail)
	for i := 1; i <= detail; i++ {
		next, err := c.Evaluate(float32(i) / float32(detail))
		if err != nil {
			return nil, err
		}
		lines = append(lines, Line{From: prev.Position, To: next.Position, Color: color})
		prev = next
	}
	return lines, nil
}

// BezierLines returns the path in white plus both handles in gray.
func BezierLines(b *curve.Bezier, detail int) ([]Line, error) {
	lines, err := CurveLines(b, detail, White)
	if err != nil {
		return nil, err
	}
	p := b.ControlPoints()
	return append(lines,
		Line{From: p[0], To: p[1], Color: Gray},
		Line{From: p[3], To: p[2], Color: Gray},
	), nil
}

// FrameAxes draws the frame's local X, Y, and Z axes in red, green, and blue.
func FrameAxes(f math.Frame, size float32) []Line {
	return []Line{
		{From: f.Position, To: f.ToWorldPosition(math.Right.Scale(size)), Color: Red},
		{From: f.Position, To: f.ToWorldPosition(math.Up.Scale(size)), Color: Green},
		{From: f.Position, To: f.ToWorldPosition(math.Forward.Scale(size)), Color: Blue},
	}
}

// ProfileOutline places the profile's line segments in f, scaled by scale.
func ProfileOutline(p *profile.Profile, f math.Frame, scale float32) []Line {
	lines := make([]Line, 0, p.SegmentCount())
	for i := 0; i < p.SegmentCount(); i++ {
		a, b := p.Segment(i)
		lines = append(lines, Line{
			From:  f.ToWorldPosition(p.Vertex(a).Point.Scale(scale).Vec3(0)),
			To:    f.ToWorldPosition(p.Vertex(b).Point.Scale(scale).Vec3(0)),
			Color: Cyan,
		})
	}
	return lines
}

// Overlay is the debug view of a single parameter along a sweep.
type Overlay struct {
	T       float32
	Frame   math.Frame
	Axes    []Line
	Outline []Line
}

// Lines returns all lines of the overlay.
func (o Overlay) Lines() []Line {
	return append(append([]Line(nil), o.Axes...), o.Outline...)
}

// Inspect evaluates c at t and returns the frame, its axes, and the profile
// outline as it would be placed by the extruder.
func Inspect(p *profile.Profile, c curve.Evaluator, t, scale float32) (Overlay, error) {
	f, err := c.Evaluate(t)
	if err != nil {
		return Overlay{}, err
	}
	axisSize := p.ArcLength() * scale * 0.25
	if axisSize <= 0 {
		axisSize = 1
	}
	return Overlay{
		T:       t,
		Frame:   f,
		Axes:    FrameAxes(f, axisSize),
		Outline: ProfileOutline(p, f, scale),
	}, nil
}

// WireCircle draws a circle of radius in the frame's local XY plane using
// detail chords.
func WireCircle(f math.Frame, radius float32, detail int, color Color) []Line {
	lines := make([]Line, 0, detail)
	for i := 0; i < detail; i++ {
		from := math.UnitCircle(mesh.RingAngle(i, detail)).Scale(radius)
		to := math.UnitCircle(mesh.RingAngle((i+1)%detail, detail)).Scale(radius)
		lines = append(lines, Line{
			From:  f.ToWorldPosition(from.Vec3(0)),
			To:    f.ToWorldPosition(to.Vec3(0)),
			Color: color,
		})
	}
	return lines
}

// RingLines draws the inner and outer edge of a ring placed at f.
func RingLines(f math.Frame, opts mesh.RingOptions) []Line {
	if opts.Segments < 3 {
		return nil
	}
	lines := WireCircle(f, opts.InnerRadius, opts.Segments, White)
	return append(lines, WireCircle(f, opts.OuterRadius(), opts.Segments, White)...)
}
