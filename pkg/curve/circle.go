package curve

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/roadmesh/pkg/math"
)

// Circle is a closed circular path of the given radius around Center, lying
// in the plane perpendicular to Up. t=0 and t=1 meet at the same point, so a
// profile swept along it closes into a loop.
type Circle struct {
	Center math.Vec3
	Radius float32
	Up     math.Vec3
}

// NewCircle creates a circle in the horizontal plane.
func NewCircle(center math.Vec3, radius float32) *Circle {
	return &Circle{Center: center, Radius: radius, Up: math.Up}
}

// Evaluate returns the frame at t, travelling counter-clockwise when viewed
// from above (from +Up).
func (c *Circle) Evaluate(t float32) (math.Frame, error) {
	if err := CheckT(t); err != nil {
		return math.Frame{}, err
	}
	if err := c.checkRadius(); err != nil {
		return math.Frame{}, err
	}

	basis := math.QuatLookRotation(c.planeAxis(), c.Up)
	angle := 2 * gomath.Pi * float64(t)
	if t == 1 {
		angle = 0
	}
	cos, sin := float32(gomath.Cos(angle)), float32(gomath.Sin(angle))

	// Local plane coordinates: +Z is the start direction from the centre,
	// +X its quarter turn. Moving from +Z towards -X is counter-clockwise
	// seen from +Y in a left-handed frame.
	radial := basis.Rotate(math.Vec3{X: -sin, Z: cos})
	tangent := basis.Rotate(math.Vec3{X: -cos, Z: -sin})

	position := c.Center.Add(radial.Scale(c.Radius))
	return math.FrameLookingAtUp(position, tangent, c.Up), nil
}

// ArcLength returns the circumference. The circle is exact, so precision is
// only validated.
func (c *Circle) ArcLength(precision int) (float32, error) {
	if err := CheckPrecision(precision); err != nil {
		return 0, err
	}
	if err := c.checkRadius(); err != nil {
		return 0, err
	}
	return float32(2 * gomath.Pi * float64(c.Radius)), nil
}

func (c *Circle) checkRadius() error {
	if !(c.Radius > 0) {
		return fmt.Errorf("%w: radius=%v, need > 0", ErrParameterOutOfRange, c.Radius)
	}
	return nil
}

// planeAxis returns a direction in the circle's plane used as angle zero.
func (c *Circle) planeAxis() math.Vec3 {
	up := c.Up.Normalize()
	if up.IsZero() {
		up = math.Up
	}
	axis := math.Forward.Sub(up.Scale(up.Dot(math.Forward)))
	if axis.IsZero() {
		axis = math.Right.Sub(up.Scale(up.Dot(math.Right)))
	}
	return axis.Normalize()
}
