// Package curve evaluates oriented frames along the paths a profile is swept
// over.
package curve

import (
	"errors"
	"fmt"

	"github.com/Faultbox/roadmesh/pkg/math"
)

// DefaultPrecision is the number of chords used to approximate arc length.
const DefaultPrecision = 16

// ErrParameterOutOfRange is returned for parameters outside their valid
// domain. Values are never clamped.
var ErrParameterOutOfRange = errors.New("parameter out of range")

// Evaluator produces frames along a path parameterised by t in [0, 1].
type Evaluator interface {
	// Evaluate returns the frame at t. Its local +Z is the path tangent.
	Evaluate(t float32) (math.Frame, error)
	// ArcLength approximates the path length using precision chords.
	ArcLength(precision int) (float32, error)
}

// CheckT reports whether t lies in [0, 1].
func CheckT(t float32) error {
	if !(t >= 0 && t <= 1) {
		return fmt.Errorf("%w: t=%v not in [0, 1]", ErrParameterOutOfRange, t)
	}
	return nil
}

// CheckPrecision reports whether precision is at least one chord.
func CheckPrecision(precision int) error {
	if precision < 1 {
		return fmt.Errorf("%w: precision=%d, need at least 1", ErrParameterOutOfRange, precision)
	}
	return nil
}

// SampledLength sums the chord lengths between precision+1 samples taken at
// t = i/precision. The last sample is exactly t = 1.
func SampledLength(e Evaluator, precision int) (float32, error) {
	if err := CheckPrecision(precision); err != nil {
		return 0, err
	}

	prev, err := e.Evaluate(0)
	if err != nil {
		return 0, err
	}
	var distance float32
	for i := 1; i <= precision; i++ {
		next, err := e.Evaluate(float32(i) / float32(precision))
		if err != nil {
			return 0, err
		}
		distance += prev.Position.Distance(next.Position)
		prev = next
	}
	return distance, nil
}
