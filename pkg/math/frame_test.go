package math

import (
	"math"
	"testing"
)

func TestFrameToWorld(t *testing.T) {
	f := NewFrame(Vec3{1, 2, 3}, QuatFromAxisAngle(Up, float32(math.Pi/2)))

	// Local +Z rotates onto world +X before the offset is applied.
	if got := f.ToWorldPosition(Forward); !approxVec3(got, Vec3{2, 2, 3}, 1e-5) {
		t.Errorf("ToWorldPosition = %v, want (2, 2, 3)", got)
	}
	if got := f.ToWorldDirection(Forward); !approxVec3(got, Right, 1e-5) {
		t.Errorf("ToWorldDirection = %v, want %v", got, Right)
	}
}

func TestFrameLookingAt(t *testing.T) {
	f := FrameLookingAt(Vec3{}, Vec3{0, 0, -5})
	if got := f.Forward(); !approxVec3(got, Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("Forward = %v, want (0, 0, -1)", got)
	}
	if got := f.Up(); !approxVec3(got, Up, 1e-5) {
		t.Errorf("Up = %v, want %v", got, Up)
	}
	// Facing -Z in a left-handed frame puts local right on world -X.
	if got := f.Right(); !approxVec3(got, Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("Right = %v, want (-1, 0, 0)", got)
	}
}

func TestFrameCompose(t *testing.T) {
	parent := FrameLookingAt(Vec3{10, 0, 0}, Right)
	child := NewFrame(Vec3{0, 0, 2}, QuatIdentity())

	world := parent.Compose(child)
	if !approxVec3(world.Position, Vec3{12, 0, 0}, 1e-5) {
		t.Errorf("composed position = %v, want (12, 0, 0)", world.Position)
	}

	p := Vec3{0.5, 1, 0}
	if got, want := world.ToWorldPosition(p), parent.ToWorldPosition(child.ToWorldPosition(p)); !approxVec3(got, want, 1e-5) {
		t.Errorf("composition mismatch: %v vs %v", got, want)
	}
}

func TestFrameMatrix(t *testing.T) {
	f := FrameLookingAtUp(Vec3{1, -2, 3}, Vec3{1, 1, 0}, Forward)
	p := Vec3{0.25, 0.5, -1}

	if got, want := f.Matrix().TransformPoint(p), f.ToWorldPosition(p); !approxVec3(got, want, 1e-5) {
		t.Errorf("Matrix().TransformPoint = %v, want %v", got, want)
	}
}
