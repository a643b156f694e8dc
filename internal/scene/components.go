package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/roadmesh/internal/logger"
	"github.com/Faultbox/roadmesh/pkg/curve"
	"github.com/Faultbox/roadmesh/pkg/mesh"
	"github.com/Faultbox/roadmesh/pkg/profile"
)

// RoadSegment sweeps a profile along a curve. Fields may be replaced
// between updates; the next Update picks them up.
type RoadSegment struct {
	Profile *profile.Profile
	Curve   curve.Evaluator
	Options mesh.ExtrudeOptions
}

// NewRoadSegment creates a road segment with default sweep options.
func NewRoadSegment(p *profile.Profile, c curve.Evaluator) *RoadSegment {
	return &RoadSegment{Profile: p, Curve: c, Options: mesh.DefaultExtrudeOptions()}
}

// Regenerate extrudes the profile. A Bézier whose control points all
// coincide still produces a mesh, but it collapses to a point.
func (r *RoadSegment) Regenerate() (*mesh.Buffers, error) {
	if r.Profile == nil {
		return nil, fmt.Errorf("%w: no profile assigned", profile.ErrInvalidProfile)
	}
	if r.Curve == nil {
		return nil, fmt.Errorf("%w: no curve assigned", mesh.ErrParameterOutOfRange)
	}
	if b, ok := r.Curve.(*curve.Bezier); ok && b.Degenerate() {
		logger.Warn("road curve is degenerate, using fallback orientation",
			zap.String("profile", r.Profile.Name()),
			zap.Any("position", b.Start.Position))
	}
	return mesh.Extrude(r.Profile, r.Curve, r.Options)
}

// RingComponent builds a flat annulus.
type RingComponent struct {
	Options mesh.RingOptions
}

// NewRingComponent creates a ring with default options.
func NewRingComponent() *RingComponent {
	return &RingComponent{Options: mesh.DefaultRingOptions()}
}

// Regenerate builds the ring.
func (r *RingComponent) Regenerate() (*mesh.Buffers, error) {
	return mesh.Ring(r.Options)
}

// QuadComponent is a fixed unit quad.
type QuadComponent struct{}

// Regenerate returns a new quad.
func (QuadComponent) Regenerate() (*mesh.Buffers, error) {
	return mesh.Quad(), nil
}
