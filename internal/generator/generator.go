// Package generator builds a scene from configuration and keeps it in sync
// when the configuration or profile asset changes.
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/roadmesh/internal/config"
	"github.com/Faultbox/roadmesh/internal/logger"
	"github.com/Faultbox/roadmesh/internal/scene"
	"github.com/Faultbox/roadmesh/pkg/curve"
	"github.com/Faultbox/roadmesh/pkg/gizmo"
	"github.com/Faultbox/roadmesh/pkg/mesh"
)

// Kind selects a component built from configuration.
type Kind string

const (
	KindRoad Kind = "road"
	KindRing Kind = "ring"
	KindQuad Kind = "quad"
)

// Generator owns a scene with one component per requested kind.
type Generator struct {
	cfg   *config.Config
	scene *scene.Scene
	kinds []Kind

	road *scene.RoadSegment
	ring *scene.RingComponent

	log *zap.Logger
}

// New builds components for kinds from cfg. Sinks receive every mesh on
// Update.
func New(cfg *config.Config, kinds []Kind, sinks ...scene.Sink) (*Generator, error) {
	g := &Generator{
		cfg:   cfg,
		kinds: kinds,
		log:   logger.Named("generator"),
	}
	g.scene = scene.New(scene.WithLogger(logger.Named("scene")))
	for _, s := range sinks {
		g.scene.AddSink(s)
	}

	for _, k := range kinds {
		switch k {
		case KindRoad:
			g.road = &scene.RoadSegment{}
			g.scene.Add(string(KindRoad), g.road)
		case KindRing:
			g.ring = &scene.RingComponent{}
			g.scene.Add(string(KindRing), g.ring)
		case KindQuad:
			g.scene.Add(string(KindQuad), scene.QuadComponent{})
		default:
			return nil, fmt.Errorf("unknown component kind %q", k)
		}
	}

	if err := g.Apply(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

// Apply pushes cfg into the components. On error nothing is changed, so the
// previous parameters stay in effect.
func (g *Generator) Apply(cfg *config.Config) error {
	var road scene.RoadSegment
	if g.road != nil {
		p, err := cfg.Road.LoadProfile()
		if err != nil {
			return fmt.Errorf("road profile: %w", err)
		}
		c, err := cfg.Road.Evaluator()
		if err != nil {
			return fmt.Errorf("road curve: %w", err)
		}
		road = scene.RoadSegment{Profile: p, Curve: c, Options: cfg.Road.ExtrudeOptions()}
	}

	var ringOpts mesh.RingOptions
	if g.ring != nil {
		opts, err := cfg.Ring.Options()
		if err != nil {
			return fmt.Errorf("ring: %w", err)
		}
		ringOpts = opts
	}

	if g.road != nil {
		*g.road = road
		g.log.Debug("road configured",
			zap.String("profile", road.Profile.Name()),
			zap.Int("segments", road.Options.Segments),
			zap.Float32("scale", road.Options.Scale))
	}
	if g.ring != nil {
		g.ring.Options = ringOpts
	}
	g.cfg = cfg
	return nil
}

// Config returns the configuration currently applied.
func (g *Generator) Config() *config.Config {
	return g.cfg
}

// Scene returns the underlying scene.
func (g *Generator) Scene() *scene.Scene {
	return g.scene
}

// Update regenerates every component once.
func (g *Generator) Update() (scene.Stats, error) {
	return g.scene.Update()
}

// WatchedFiles returns the input files whose edits should trigger a reload.
func (g *Generator) WatchedFiles() []string {
	var files []string
	if p := g.cfg.Path(); p != "" {
		files = append(files, p)
	}
	if g.road != nil && g.cfg.Road.Profile != "" {
		files = append(files, g.cfg.Road.Profile)
	}
	return files
}

// Reload re-reads the config file, when there is one, and the profile asset,
// then regenerates. If reading fails the previous parameters and meshes are
// kept.
func (g *Generator) Reload() (scene.Stats, error) {
	cfg := g.cfg
	if path := g.cfg.Path(); path != "" {
		next, err := config.LoadFile(path)
		if err != nil {
			return scene.Stats{}, err
		}
		cfg = next
	}
	if err := g.Apply(cfg); err != nil {
		return scene.Stats{}, err
	}
	return g.Update()
}

// Inspect returns the debug overlay of the road at the configured t.
func (g *Generator) Inspect() (gizmo.Overlay, error) {
	if g.road == nil {
		return gizmo.Overlay{}, fmt.Errorf("no road component")
	}
	return gizmo.Inspect(g.road.Profile, g.road.Curve, g.cfg.Road.InspectT, g.road.Options.Scale)
}

// boundsPadding pads the scene bounding box in the preview.
const boundsPadding = 0.05

// PreviewLines collects gizmo lines for every component with a mesh: its
// world-space wireframe, the ring edges, the padded scene bounds and, for
// the road, the curve and the inspect overlay.
func (g *Generator) PreviewLines() ([]gizmo.Line, error) {
	var lines []gizmo.Line
	for _, name := range g.scene.Names() {
		b := g.scene.Buffers(name)
		if b == nil {
			continue
		}
		f, err := g.scene.WorldFrame(name)
		if err != nil {
			return nil, err
		}
		lines = append(lines, gizmo.MeshWireframe(b.Transform(f), gizmo.Gray)...)
		if name == string(KindRing) && g.ring != nil {
			lines = append(lines, gizmo.RingLines(f, g.ring.Options)...)
		}
	}
	if bounds, ok := g.scene.Bounds(); ok {
		lines = append(lines, gizmo.BoundsWireframe(bounds, boundsPadding, gizmo.Yellow)...)
	}

	if g.road != nil && g.scene.Buffers(string(KindRoad)) != nil {
		var path []gizmo.Line
		var err error
		if b, ok := g.road.Curve.(*curve.Bezier); ok {
			path, err = gizmo.BezierLines(b, 4*g.road.Options.Segments)
		} else {
			path, err = gizmo.CurveLines(g.road.Curve, 4*g.road.Options.Segments, gizmo.White)
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, path...)

		o, err := g.Inspect()
		if err != nil {
			return nil, err
		}
		lines = append(lines, o.Lines()...)
	}
	return lines, nil
}

// WritePreview renders PreviewLines to preview.png in the output directory
// and returns the path.
func (g *Generator) WritePreview() (string, error) {
	opts, err := g.cfg.Output.Preview.PreviewOptions()
	if err != nil {
		return "", err
	}
	lines, err := g.PreviewLines()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(g.cfg.Output.Dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(g.cfg.Output.Dir, "preview.png")
	if err := gizmo.RenderPNG(path, lines, opts); err != nil {
		return "", fmt.Errorf("preview: %w", err)
	}
	return path, nil
}
