package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	n := Quat{X: 1, Y: 2, Z: 3, W: 4}.Normalize()

	length := float32(math.Sqrt(float64(n.Dot(n))))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Up, float32(math.Pi/2))

	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotate(t *testing.T) {
	// 90 degrees around Y takes +Z onto +X
	q := QuatFromAxisAngle(Up, float32(math.Pi/2))
	got := q.Rotate(Forward)
	if !approxVec3(got, Right, 1e-5) {
		t.Errorf("Rotate(+Z) = %v, want %v", got, Right)
	}

	back := q.Conjugate().Rotate(got)
	if !approxVec3(back, Forward, 1e-5) {
		t.Errorf("Conjugate should undo the rotation, got %v", back)
	}
}

func TestQuatMulOrder(t *testing.T) {
	yaw := QuatFromAxisAngle(Up, float32(math.Pi/2))
	pitch := QuatFromAxisAngle(Right, float32(math.Pi/2))

	v := Vec3{0, 0, 1}
	combined := yaw.Mul(pitch).Rotate(v)
	sequential := yaw.Rotate(pitch.Rotate(v))
	if !approxVec3(combined, sequential, 1e-5) {
		t.Errorf("Mul should apply the right operand first: %v vs %v", combined, sequential)
	}
}

func TestQuatLookRotation(t *testing.T) {
	tests := []struct {
		name    string
		forward Vec3
		up      Vec3
	}{
		{"identity", Forward, Up},
		{"right", Right, Up},
		{"backward", Vec3{0, 0, -1}, Up},
		{"diagonal", Vec3{1, 1, 1}, Up},
		{"tilted up", Vec3{0, 0, 1}, Vec3{1, 1, 0}},
		{"straight up", Up, Up},
		{"straight down", Vec3{0, -1, 0}, Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := QuatLookRotation(tt.forward, tt.up)

			gotForward := q.Rotate(Forward)
			if !approxVec3(gotForward, tt.forward.Normalize(), 1e-5) {
				t.Errorf("local +Z maps to %v, want %v", gotForward, tt.forward.Normalize())
			}

			gotUp := q.Rotate(Up)
			if absf(gotUp.Dot(gotForward)) > 1e-5 {
				t.Errorf("up %v is not orthogonal to forward %v", gotUp, gotForward)
			}
			if absf(gotUp.Length()-1) > 1e-5 {
				t.Errorf("up should stay unit length, got %v", gotUp.Length())
			}
		})
	}
}

func TestQuatLookRotationKeepsUp(t *testing.T) {
	q := QuatLookRotation(Right, Up)
	if got := q.Rotate(Up); !approxVec3(got, Up, 1e-5) {
		t.Errorf("horizontal look should keep world up, got %v", got)
	}
}

func TestQuatLookRotationZeroForward(t *testing.T) {
	if q := QuatLookRotation(Vec3{}, Up); q != QuatIdentity() {
		t.Errorf("zero forward should give identity, got %v", q)
	}
}

func TestQuatToMat4(t *testing.T) {
	m := QuatIdentity().ToMat4()

	identity := Identity()
	for i := 0; i < 16; i++ {
		if math.Abs(float64(m[i]-identity[i])) > 0.0001 {
			t.Errorf("Identity quat should produce identity matrix, element %d: got %v, want %v", i, m[i], identity[i])
		}
	}
}

func TestQuatToMat4MatchesRotate(t *testing.T) {
	q := QuatLookRotation(Vec3{1, 2, 3}, Up)
	v := Vec3{0.5, -1, 2}

	if got, want := q.ToMat4().TransformDirection(v), q.Rotate(v); !approxVec3(got, want, 1e-5) {
		t.Errorf("matrix rotation %v disagrees with quaternion rotation %v", got, want)
	}
}
