// Package profile defines the 2D cross-sections that are swept along a path
// to build road meshes.
package profile

import (
	"errors"
	"fmt"

	"github.com/Faultbox/roadmesh/pkg/math"
)

// ErrInvalidProfile is returned when a profile's line indices are malformed.
var ErrInvalidProfile = errors.New("invalid profile")

// Vertex is one point of the cross-section.
type Vertex struct {
	Point  math.Vec2 // position in profile space
	Normal math.Vec2 // outward surface normal in profile space
	U      float32   // texture U coordinate
}

// Profile is an immutable cross-section: ordered vertices plus index pairs
// naming which vertices form visible edges. Vertex order is identity;
// LineIndices refer to it.
type Profile struct {
	name        string
	vertices    []Vertex
	lineIndices []int
}

// New validates and builds a profile. The slices are copied.
func New(name string, vertices []Vertex, lineIndices []int) (*Profile, error) {
	p := &Profile{
		name:        name,
		vertices:    append([]Vertex(nil), vertices...),
		lineIndices: append([]int(nil), lineIndices...),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustNew is like New but panics on an invalid profile. Intended for
// profiles authored in code.
func MustNew(name string, vertices []Vertex, lineIndices []int) *Profile {
	p, err := New(name, vertices, lineIndices)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate checks that LineIndices has even length and that every index
// refers to an existing vertex.
func (p *Profile) Validate() error {
	if len(p.lineIndices)%2 != 0 {
		return fmt.Errorf("%w %q: odd number of line indices (%d)", ErrInvalidProfile, p.name, len(p.lineIndices))
	}
	for i, idx := range p.lineIndices {
		if idx < 0 || idx >= len(p.vertices) {
			return fmt.Errorf("%w %q: line index %d at position %d out of range [0, %d)",
				ErrInvalidProfile, p.name, idx, i, len(p.vertices))
		}
	}
	return nil
}

// Name returns the profile's name.
func (p *Profile) Name() string { return p.name }

// VertexCount returns the number of vertices.
func (p *Profile) VertexCount() int { return len(p.vertices) }

// LineCount returns the number of line indices (twice the segment count).
func (p *Profile) LineCount() int { return len(p.lineIndices) }

// SegmentCount returns the number of line segments.
func (p *Profile) SegmentCount() int { return len(p.lineIndices) / 2 }

// Vertex returns the i-th vertex.
func (p *Profile) Vertex(i int) Vertex { return p.vertices[i] }

// LineIndices returns a copy of the line indices.
func (p *Profile) LineIndices() []int {
	return append([]int(nil), p.lineIndices...)
}

// Segment returns the vertex indices of the i-th line segment.
func (p *Profile) Segment(i int) (a, b int) {
	return p.lineIndices[2*i], p.lineIndices[2*i+1]
}

// ArcLength returns the summed length of all line segments.
func (p *Profile) ArcLength() float32 {
	var distance float32
	for i := 0; i < len(p.lineIndices); i += 2 {
		a := p.vertices[p.lineIndices[i]].Point
		b := p.vertices[p.lineIndices[i+1]].Point
		distance += a.Distance(b)
	}
	return distance
}
