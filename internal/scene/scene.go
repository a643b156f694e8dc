// Package scene keeps named mesh components up to date and pushes their
// buffers to sinks.
package scene

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/roadmesh/internal/logger"
	"github.com/Faultbox/roadmesh/pkg/math"
	"github.com/Faultbox/roadmesh/pkg/mesh"
)

// ErrUnknownComponent is returned when a name is not in the scene.
var ErrUnknownComponent = errors.New("unknown component")

// Component produces a mesh from its current parameters. Regenerate is
// called once per Update and must build fresh buffers every time.
type Component interface {
	Regenerate() (*mesh.Buffers, error)
}

// Sink receives regenerated meshes, e.g. an exporter or a renderer upload.
type Sink interface {
	Upload(name string, b *mesh.Buffers) error
}

// entry is a component with its placement and last good mesh.
type entry struct {
	name      string
	component Component
	frame     math.Frame
	buffers   *mesh.Buffers
	err       error
	version   int
}

// Scene holds components by name. It is not safe for concurrent use; one
// goroutine owns it and calls Update.
type Scene struct {
	root    math.Frame
	entries map[string]*entry
	order   []string
	sinks   []Sink
	log     *zap.Logger
}

// Option configures a Scene.
type Option func(*Scene)

// WithLogger sets the logger used for regeneration warnings.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scene) { s.log = l }
}

// WithRoot places the whole scene in f.
func WithRoot(f math.Frame) Option {
	return func(s *Scene) { s.root = f }
}

// New creates an empty scene at the world origin.
func New(opts ...Option) *Scene {
	s := &Scene{
		root:    math.NewFrame(math.Vec3{}, math.QuatIdentity()),
		entries: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Named("scene")
	}
	return s
}

// AddSink registers a sink for every following Update.
func (s *Scene) AddSink(sink Sink) {
	s.sinks = append(s.sinks, sink)
}

// Add places c in the scene under name and returns the name. An empty name
// gets a generated one. Adding an existing name replaces that component and
// drops its buffers.
func (s *Scene) Add(name string, c Component) string {
	if name == "" {
		name = "mesh-" + uuid.NewString()
	}
	if _, ok := s.entries[name]; !ok {
		s.order = append(s.order, name)
	}
	s.entries[name] = &entry{
		name:      name,
		component: c,
		frame:     math.NewFrame(math.Vec3{}, math.QuatIdentity()),
	}
	return name
}

// Remove drops a component and its buffers.
func (s *Scene) Remove(name string) error {
	if _, ok := s.entries[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	delete(s.entries, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// SetFrame places a component relative to the scene root.
func (s *Scene) SetFrame(name string, f math.Frame) error {
	e, ok := s.entries[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	e.frame = f
	return nil
}

// WorldFrame returns the component's frame in world space.
func (s *Scene) WorldFrame(name string) (math.Frame, error) {
	e, ok := s.entries[name]
	if !ok {
		return math.Frame{}, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return s.root.Compose(e.frame), nil
}

// Component returns the component registered under name.
func (s *Scene) Component(name string) (Component, bool) {
	e, ok := s.entries[name]
	if !ok {
		return nil, false
	}
	return e.component, true
}

// Names returns component names in insertion order.
func (s *Scene) Names() []string {
	return append([]string(nil), s.order...)
}

// Buffers returns the last good local-space mesh of a component. It is nil
// until a regeneration succeeds.
func (s *Scene) Buffers(name string) *mesh.Buffers {
	if e, ok := s.entries[name]; ok {
		return e.buffers
	}
	return nil
}

// Err returns the error of the component's most recent regeneration.
func (s *Scene) Err(name string) error {
	if e, ok := s.entries[name]; ok {
		return e.err
	}
	return nil
}

// Version counts successful regenerations of a component.
func (s *Scene) Version(name string) int {
	if e, ok := s.entries[name]; ok {
		return e.version
	}
	return 0
}

// Stats summarises one Update.
type Stats struct {
	Regenerated int
	Failed      int
	Vertices    int
	Triangles   int
}

// Update regenerates every component once, in insertion order, and uploads
// each new mesh in world space to every sink. A component that fails keeps
// its previous buffers and is skipped for upload. The returned error joins
// all failures; the scene stays usable either way.
func (s *Scene) Update() (Stats, error) {
	var stats Stats
	var errs []error

	for _, name := range s.order {
		e := s.entries[name]

		b, err := e.component.Regenerate()
		if err == nil {
			err = b.Validate()
		}
		if err != nil {
			e.err = err
			stats.Failed++
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			s.log.Warn("regeneration failed, keeping previous mesh",
				zap.String("component", name),
				zap.Bool("has_previous", e.buffers != nil),
				zap.Error(err))
			continue
		}

		e.buffers = b
		e.err = nil
		e.version++
		stats.Regenerated++
		stats.Vertices += b.VertexCount()
		stats.Triangles += b.TriangleCount()
		s.log.Debug("regenerated",
			zap.String("component", name),
			zap.Int("vertices", b.VertexCount()),
			zap.Int("triangles", b.TriangleCount()))

		if len(s.sinks) == 0 {
			continue
		}
		world := b.Transform(s.root.Compose(e.frame))
		for _, sink := range s.sinks {
			if err := sink.Upload(name, world); err != nil {
				errs = append(errs, fmt.Errorf("%s: upload: %w", name, err))
				s.log.Error("upload failed", zap.String("component", name), zap.Error(err))
			}
		}
	}

	return stats, errors.Join(errs...)
}

// Bounds returns the world-space bounds of every component that has a mesh.
func (s *Scene) Bounds() (mesh.Bounds, bool) {
	var out mesh.Bounds
	found := false
	for _, name := range s.order {
		e := s.entries[name]
		if e.buffers == nil || e.buffers.IsEmpty() {
			continue
		}
		b := e.buffers.Transform(s.root.Compose(e.frame)).Bounds()
		if !found {
			out, found = b, true
			continue
		}
		out.Min = math.Vec3{X: min(out.Min.X, b.Min.X), Y: min(out.Min.Y, b.Min.Y), Z: min(out.Min.Z, b.Min.Z)}
		out.Max = math.Vec3{X: max(out.Max.X, b.Max.X), Y: max(out.Max.Y, b.Max.Y), Z: max(out.Max.Z, b.Max.Z)}
	}
	return out, found
}
