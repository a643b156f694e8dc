package curve

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/roadmesh/pkg/math"
)

func near(a, b math.Vec3, tol float32) bool {
	return a.Distance(b) <= tol
}

func straight() *Bezier {
	return NewBezier(
		Anchor{Position: math.Vec3{}, Forward: math.Forward, Up: math.Up, Scale: 1},
		Anchor{Position: math.Vec3{Z: 10}, Forward: math.Forward, Up: math.Up, Scale: 1},
	)
}

func bent() *Bezier {
	return NewBezier(
		Anchor{Position: math.Vec3{X: 0.1, Y: 0.3, Z: -0.7}, Forward: math.Forward, Up: math.Up, Scale: 3},
		Anchor{Position: math.Vec3{X: 7.3, Y: 1.1, Z: 5.9}, Forward: math.Right, Up: math.Vec3{X: 0.2, Y: 1}, Scale: 2},
	)
}

func TestBezierControlPoints(t *testing.T) {
	p := straight().ControlPoints()
	want := [4]math.Vec3{{}, {Z: 1}, {Z: 9}, {Z: 10}}
	if p != want {
		t.Errorf("ControlPoints() = %v, want %v", p, want)
	}
}

func TestBezierEndpointsExact(t *testing.T) {
	b := bent()

	start, err := b.Evaluate(0)
	if err != nil {
		t.Fatalf("Evaluate(0): %v", err)
	}
	if start.Position != b.Start.Position {
		t.Errorf("Evaluate(0) = %v, want exactly %v", start.Position, b.Start.Position)
	}

	end, err := b.Evaluate(1)
	if err != nil {
		t.Fatalf("Evaluate(1): %v", err)
	}
	if end.Position != b.End.Position {
		t.Errorf("Evaluate(1) = %v, want exactly %v", end.Position, b.End.Position)
	}
}

func TestBezierEndTangents(t *testing.T) {
	b := bent()

	start, _ := b.Evaluate(0)
	if got := start.Forward(); !near(got, math.Forward, 1e-5) {
		t.Errorf("start tangent = %v, want start forward %v", got, math.Forward)
	}
	end, _ := b.Evaluate(1)
	if got := end.Forward(); !near(got, math.Right, 1e-5) {
		t.Errorf("end tangent = %v, want end forward %v", got, math.Right)
	}
}

func TestBezierStraightFrames(t *testing.T) {
	b := straight()
	for _, tt := range []float32{0, 0.25, 0.5, 0.75, 1} {
		f, err := b.Evaluate(tt)
		if err != nil {
			t.Fatalf("Evaluate(%v): %v", tt, err)
		}
		if !near(f.Forward(), math.Forward, 1e-5) {
			t.Errorf("t=%v: forward = %v, want +Z", tt, f.Forward())
		}
		if !near(f.Up(), math.Up, 1e-5) {
			t.Errorf("t=%v: up = %v, want +Y", tt, f.Up())
		}
	}
}

func TestBezierTangentFollowsIncreasingT(t *testing.T) {
	b := bent()
	const step = 1e-3
	for _, tt := range []float32{0.1, 0.5, 0.9} {
		f, _ := b.Evaluate(tt)
		g, _ := b.Evaluate(tt + step)
		travel := g.Position.Sub(f.Position).Normalize()
		if travel.Dot(f.Forward()) < 0.99 {
			t.Errorf("t=%v: tangent %v does not follow travel %v", tt, f.Forward(), travel)
		}
	}
}

func TestBezierUpInterpolation(t *testing.T) {
	b := NewBezier(
		Anchor{Position: math.Vec3{}, Forward: math.Forward, Up: math.Up, Scale: 1},
		Anchor{Position: math.Vec3{Z: 10}, Forward: math.Forward, Up: math.Right, Scale: 1},
	)
	f, _ := b.Evaluate(0.5)
	want := math.Vec3{X: 1, Y: 1}.Normalize()
	if !near(f.Up(), want, 1e-5) {
		t.Errorf("mid up = %v, want %v", f.Up(), want)
	}
}

func TestBezierRejectsOutOfRange(t *testing.T) {
	b := straight()
	for _, tt := range []float32{-0.01, 1.01, float32(gomath.NaN())} {
		if _, err := b.Evaluate(tt); !errors.Is(err, ErrParameterOutOfRange) {
			t.Errorf("Evaluate(%v): expected ErrParameterOutOfRange, got %v", tt, err)
		}
	}
}

func TestBezierArcLength(t *testing.T) {
	got, err := straight().ArcLength(DefaultPrecision)
	if err != nil {
		t.Fatalf("ArcLength: %v", err)
	}
	if gomath.Abs(float64(got-10)) > 1e-4 {
		t.Errorf("straight ArcLength = %v, want 10", got)
	}

	chord, _ := bent().ArcLength(1)
	b := bent()
	if want := b.Start.Position.Distance(b.End.Position); gomath.Abs(float64(chord-want)) > 1e-5 {
		t.Errorf("ArcLength(1) = %v, want chord %v", chord, want)
	}
}

func TestBezierArcLengthRefines(t *testing.T) {
	b := bent()
	var prev float32
	for _, precision := range []int{1, 2, 4, 8, 16, 32} {
		got, err := b.ArcLength(precision)
		if err != nil {
			t.Fatalf("ArcLength(%d): %v", precision, err)
		}
		if got+1e-5 < prev {
			t.Errorf("ArcLength(%d) = %v shrank from %v", precision, got, prev)
		}
		prev = got
	}
}

func TestBezierArcLengthRejectsPrecision(t *testing.T) {
	if _, err := straight().ArcLength(0); !errors.Is(err, ErrParameterOutOfRange) {
		t.Errorf("expected ErrParameterOutOfRange, got %v", err)
	}
}

func TestBezierDegenerate(t *testing.T) {
	anchor := Anchor{Position: math.Vec3{X: 1, Y: 2, Z: 3}, Forward: math.Right, Up: math.Up, Scale: 0}
	b := NewBezier(anchor, anchor)

	if !b.Degenerate() {
		t.Error("coincident anchors with zero handles should be degenerate")
	}
	for _, tt := range []float32{0, 0.5, 1} {
		f, err := b.Evaluate(tt)
		if err != nil {
			t.Fatalf("Evaluate(%v): %v", tt, err)
		}
		if !f.Position.IsFinite() {
			t.Errorf("t=%v: position not finite: %v", tt, f.Position)
		}
		if !near(f.Forward(), math.Right, 1e-5) {
			t.Errorf("t=%v: fallback tangent = %v, want start forward %v", tt, f.Forward(), math.Right)
		}
	}

	length, err := b.ArcLength(DefaultPrecision)
	if err != nil || length != 0 {
		t.Errorf("ArcLength = %v, %v; want 0, nil", length, err)
	}
}

func TestBezierDegenerateWithoutForward(t *testing.T) {
	anchor := Anchor{Position: math.Vec3{}, Up: math.Up}
	f, err := NewBezier(anchor, anchor).Evaluate(0.3)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !near(f.Forward(), math.Forward, 1e-5) {
		t.Errorf("fallback tangent = %v, want world +Z", f.Forward())
	}
}

func TestBezierZeroHandleFallback(t *testing.T) {
	b := NewBezier(
		Anchor{Position: math.Vec3{}, Forward: math.Forward, Up: math.Up, Scale: 0},
		Anchor{Position: math.Vec3{X: 10}, Forward: math.Forward, Up: math.Up, Scale: 0},
	)
	if b.Degenerate() {
		t.Fatal("distinct anchors should not be degenerate")
	}

	tangent, fallback, err := b.Tangent(0)
	if err != nil {
		t.Fatalf("Tangent: %v", err)
	}
	if !fallback {
		t.Error("zero-length handle at t=0 should use the fallback tangent")
	}
	if !near(tangent, math.Right, 1e-5) {
		t.Errorf("fallback tangent = %v, want +X", tangent)
	}

	if _, fallback, _ := b.Tangent(0.5); fallback {
		t.Error("mid-curve tangent should not need the fallback")
	}
}

func TestAnchorFromFrame(t *testing.T) {
	f := math.FrameLookingAt(math.Vec3{X: 4}, math.Right)
	a := AnchorFromFrame(f, 2)
	if a.Position != f.Position || !near(a.Forward, math.Right, 1e-5) || !near(a.Up, math.Up, 1e-5) || a.Scale != 2 {
		t.Errorf("AnchorFromFrame = %+v", a)
	}
}
