package gizmo

import (
	"errors"
	"testing"

	"github.com/Faultbox/roadmesh/pkg/curve"
	"github.com/Faultbox/roadmesh/pkg/math"
	"github.com/Faultbox/roadmesh/pkg/mesh"
	"github.com/Faultbox/roadmesh/pkg/profile"
)

func road() *curve.Bezier {
	return curve.NewBezier(
		curve.Anchor{Position: math.Vec3{}, Forward: math.Forward, Up: math.Up, Scale: 2},
		curve.Anchor{Position: math.Vec3{X: 4, Z: 6}, Forward: math.Right, Up: math.Up, Scale: 2},
	)
}

func near(a, b math.Vec3) bool {
	return a.Distance(b) < 1e-4
}

func TestBezierLines(t *testing.T) {
	b := road()
	lines, err := BezierLines(b, 10)
	if err != nil {
		t.Fatalf("BezierLines: %v", err)
	}
	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 10 path + 2 handles", len(lines))
	}
	if lines[0].From != b.Start.Position || lines[9].To != b.End.Position {
		t.Error("path should run from start anchor to end anchor")
	}
	for i := 1; i < 10; i++ {
		if lines[i].From != lines[i-1].To {
			t.Errorf("path line %d is not connected to the previous one", i)
		}
	}
	p := b.ControlPoints()
	if lines[10].To != p[1] || lines[11].To != p[2] || lines[10].Color != Gray {
		t.Error("handles should join P0-P1 and P3-P2 in gray")
	}
}

func TestCurveLinesRejectsDetail(t *testing.T) {
	if _, err := CurveLines(road(), 0, White); !errors.Is(err, curve.ErrParameterOutOfRange) {
		t.Errorf("expected ErrParameterOutOfRange, got %v", err)
	}
}

func TestFrameAxes(t *testing.T) {
	f := math.FrameLookingAt(math.Vec3{Y: 1}, math.Right)
	axes := FrameAxes(f, 2)
	if len(axes) != 3 {
		t.Fatalf("got %d axes", len(axes))
	}
	if !near(axes[2].To, math.Vec3{X: 2, Y: 1}) || axes[2].Color != Blue {
		t.Errorf("forward axis = %+v, want blue towards +X", axes[2])
	}
	if !near(axes[1].To, math.Vec3{Y: 3}) || axes[1].Color != Green {
		t.Errorf("up axis = %+v, want green towards +Y", axes[1])
	}
}

func TestInspect(t *testing.T) {
	p := profile.Road()
	c := road()
	const scale = 0.1

	o, err := Inspect(p, c, 0.5, scale)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	want, _ := c.Evaluate(0.5)
	if o.Frame != want {
		t.Errorf("overlay frame = %v, want %v", o.Frame, want)
	}
	if len(o.Outline) != p.SegmentCount() {
		t.Errorf("outline has %d lines, want %d", len(o.Outline), p.SegmentCount())
	}
	if len(o.Lines()) != len(o.Axes)+len(o.Outline) {
		t.Error("Lines() should concatenate axes and outline")
	}

	// The outline must match the vertices the extruder places at the same t.
	b, err := mesh.Extrude(p, c, mesh.ExtrudeOptions{Segments: 2, Scale: scale, Precision: 16})
	if err != nil {
		t.Fatalf("Extrude: %v", err)
	}
	a, _ := p.Segment(0)
	if got := b.Vertices[p.VertexCount()+a]; !near(o.Outline[0].From, got) {
		t.Errorf("outline start %v does not match mesh vertex %v", o.Outline[0].From, got)
	}
}

func TestInspectRejectsT(t *testing.T) {
	if _, err := Inspect(profile.Road(), road(), 1.5, 0.1); !errors.Is(err, curve.ErrParameterOutOfRange) {
		t.Errorf("expected ErrParameterOutOfRange, got %v", err)
	}
}

func TestRingLines(t *testing.T) {
	opts := mesh.RingOptions{InnerRadius: 1, Thickness: 0.5, Segments: 8}
	lines := RingLines(math.NewFrame(math.Vec3{}, math.QuatIdentity()), opts)
	if len(lines) != 16 {
		t.Fatalf("got %d lines, want 16", len(lines))
	}
	if lines[7].To != lines[0].From {
		t.Error("inner circle should close")
	}
	if r := lines[8].From.Length(); r < 1.4999 || r > 1.5001 {
		t.Errorf("outer radius = %v, want 1.5", r)
	}
	if RingLines(math.Frame{}, mesh.RingOptions{Segments: 2}) != nil {
		t.Error("invalid ring should draw nothing")
	}
}

func TestBoundsWireframe(t *testing.T) {
	b := mesh.Bounds{Min: math.Vec3{X: -1, Y: -1, Z: -1}, Max: math.Vec3{X: 1, Y: 1, Z: 1}}
	lines := BoundsWireframe(b, 0.5, Yellow)
	if len(lines) != BoundsEdgeCount {
		t.Fatalf("got %d edges, want %d", len(lines), BoundsEdgeCount)
	}
	for i, l := range lines {
		if d := l.From.Distance(l.To); d < 2.9999 || d > 3.0001 {
			t.Errorf("edge %d length = %v, want 3", i, d)
		}
	}
}

func TestMeshWireframe(t *testing.T) {
	lines := MeshWireframe(mesh.Quad(), White)
	// 4 outer edges plus the shared diagonal.
	if len(lines) != 5 {
		t.Errorf("got %d edges, want 5", len(lines))
	}
}
