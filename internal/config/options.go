package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/roadmesh/internal/logger"
	"github.com/Faultbox/roadmesh/pkg/curve"
	"github.com/Faultbox/roadmesh/pkg/export"
	"github.com/Faultbox/roadmesh/pkg/gizmo"
	"github.com/Faultbox/roadmesh/pkg/math"
	"github.com/Faultbox/roadmesh/pkg/mesh"
	"github.com/Faultbox/roadmesh/pkg/profile"
)

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Anchor converts the config to a curve anchor.
func (a AnchorConfig) Anchor() curve.Anchor {
	return curve.Anchor{
		Position: vec3(a.Position),
		Forward:  vec3(a.Forward),
		Up:       vec3(a.Up),
		Scale:    a.Scale,
	}
}

// ExtrudeOptions returns the sweep options of the road.
func (r RoadConfig) ExtrudeOptions() mesh.ExtrudeOptions {
	return mesh.ExtrudeOptions{
		Segments:       r.Segments,
		Scale:          r.Scale,
		Precision:      r.Precision,
		ReverseWinding: r.ReverseWinding,
	}
}

// Evaluator builds the curve the road follows.
func (r RoadConfig) Evaluator() (curve.Evaluator, error) {
	switch r.Curve {
	case "", CurveBezier:
		return curve.NewBezier(r.Start.Anchor(), r.End.Anchor()), nil
	case CurveCircle:
		if !(r.Circle.Radius > 0) {
			return nil, fmt.Errorf("%w: circle radius=%v, need > 0", curve.ErrParameterOutOfRange, r.Circle.Radius)
		}
		return curve.NewCircle(vec3(r.Circle.Center), r.Circle.Radius), nil
	}
	return nil, fmt.Errorf("unknown curve %q (want %s or %s)", r.Curve, CurveBezier, CurveCircle)
}

// LoadProfile loads the configured profile asset, or the built-in road
// profile when none is set.
func (r RoadConfig) LoadProfile() (*profile.Profile, error) {
	if r.Profile == "" {
		return profile.Road(), nil
	}
	return profile.Load(r.Profile)
}

// Options converts the config to ring options.
func (r RingConfig) Options() (mesh.RingOptions, error) {
	uv, err := mesh.ParseUVProjection(r.UV)
	if err != nil {
		return mesh.RingOptions{}, err
	}
	return mesh.RingOptions{
		InnerRadius:    r.InnerRadius,
		Thickness:      r.Thickness,
		Segments:       r.Segments,
		UV:             uv,
		ReverseWinding: r.ReverseWinding,
	}, nil
}

// PreviewOptions converts the config to rasteriser options.
func (p PreviewConfig) PreviewOptions() (gizmo.PreviewOptions, error) {
	view, err := gizmo.ParseView(p.View)
	if err != nil {
		return gizmo.PreviewOptions{}, err
	}
	opts := gizmo.DefaultPreviewOptions()
	opts.View = view
	opts.Width, opts.Height = p.Width, p.Height
	return opts, nil
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(section string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", section, err))
		}
	}

	add("road", c.Road.ExtrudeOptions().Validate())
	_, err := c.Road.Evaluator()
	add("road", err)
	if c.Road.InspectT < 0 || c.Road.InspectT > 1 {
		add("road", fmt.Errorf("%w: inspect_t=%v", curve.ErrParameterOutOfRange, c.Road.InspectT))
	}

	ring, err := c.Ring.Options()
	if err == nil {
		err = ring.Validate()
	}
	add("ring", err)

	_, err = export.ParseFormat(c.Output.Format)
	add("output", err)
	if c.Output.Dir == "" {
		add("output", errors.New("dir must not be empty"))
	}
	if c.Output.Preview.Enabled {
		_, err = c.Output.Preview.PreviewOptions()
		add("output.preview", err)
		if c.Output.Preview.Width <= 0 || c.Output.Preview.Height <= 0 {
			add("output.preview", fmt.Errorf("invalid size %dx%d", c.Output.Preview.Width, c.Output.Preview.Height))
		}
	}

	if c.Watch.Interval < 0 || c.Watch.Debounce < 0 {
		add("watch", errors.New("durations must not be negative"))
	}

	_, err = logger.ParseLevel(c.Logging.Level)
	add("logging", err)

	return errors.Join(errs...)
}
