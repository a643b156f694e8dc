// Package mesh builds triangulated surfaces by sweeping profiles along curves,
// plus a few primitive shapes built directly.
package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/roadmesh/pkg/curve"
	"github.com/Faultbox/roadmesh/pkg/math"
)

var (
	// ErrParameterOutOfRange is returned for invalid build options.
	ErrParameterOutOfRange = curve.ErrParameterOutOfRange

	// ErrInvalidMesh is returned by Validate for buffers that break the
	// parallel-array or index-range invariants.
	ErrInvalidMesh = errors.New("invalid mesh")
)

// Buffers holds the output of one mesh generation. Vertices, Normals, and UVs
// are parallel; Triangles is a flat list of index triples into them.
// Buffers are always built from scratch and handed over as a full
// replacement, never a delta.
type Buffers struct {
	Vertices  []math.Vec3
	Normals   []math.Vec3
	UVs       []math.Vec2
	Triangles []uint32
}

// Vertex is an interleaved vertex, the layout renderers usually upload.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

func newBuffers(vertexCount, indexCount int) *Buffers {
	return &Buffers{
		Vertices:  make([]math.Vec3, 0, vertexCount),
		Normals:   make([]math.Vec3, 0, vertexCount),
		UVs:       make([]math.Vec2, 0, vertexCount),
		Triangles: make([]uint32, 0, indexCount),
	}
}

// VertexCount returns the number of vertices.
func (b *Buffers) VertexCount() int {
	return len(b.Vertices)
}

// TriangleCount returns the number of triangles.
func (b *Buffers) TriangleCount() int {
	return len(b.Triangles) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (b *Buffers) IsEmpty() bool {
	return len(b.Vertices) == 0
}

// Triangle returns the vertex indices of the i-th triangle.
func (b *Buffers) Triangle(i int) (uint32, uint32, uint32) {
	return b.Triangles[3*i], b.Triangles[3*i+1], b.Triangles[3*i+2]
}

// Validate checks the parallel-array and index-range invariants.
func (b *Buffers) Validate() error {
	n := len(b.Vertices)
	if len(b.Normals) != n || len(b.UVs) != n {
		return fmt.Errorf("%w: %d vertices, %d normals, %d uvs", ErrInvalidMesh, n, len(b.Normals), len(b.UVs))
	}
	if len(b.Triangles)%3 != 0 {
		return fmt.Errorf("%w: %d triangle indices is not a multiple of 3", ErrInvalidMesh, len(b.Triangles))
	}
	for i, idx := range b.Triangles {
		if int(idx) >= n {
			return fmt.Errorf("%w: index %d at position %d exceeds vertex count %d", ErrInvalidMesh, idx, i, n)
		}
	}
	return nil
}

// Bounds returns the bounding box of all vertices. An empty mesh has a zero
// box.
func (b *Buffers) Bounds() Bounds {
	if len(b.Vertices) == 0 {
		return Bounds{}
	}
	bounds := Bounds{Min: b.Vertices[0], Max: b.Vertices[0]}
	for _, v := range b.Vertices[1:] {
		bounds.Min = math.Vec3{X: min(bounds.Min.X, v.X), Y: min(bounds.Min.Y, v.Y), Z: min(bounds.Min.Z, v.Z)}
		bounds.Max = math.Vec3{X: max(bounds.Max.X, v.X), Y: max(bounds.Max.Y, v.Y), Z: max(bounds.Max.Z, v.Z)}
	}
	return bounds
}

// Interleave packs the parallel arrays into one vertex slice.
func (b *Buffers) Interleave() []Vertex {
	out := make([]Vertex, len(b.Vertices))
	for i := range b.Vertices {
		out[i] = Vertex{
			Position: b.Vertices[i].Array(),
			Normal:   b.Normals[i].Array(),
			TexCoord: [2]float32{b.UVs[i].X, b.UVs[i].Y},
		}
	}
	return out
}

// Clone returns a deep copy.
func (b *Buffers) Clone() *Buffers {
	return &Buffers{
		Vertices:  append([]math.Vec3(nil), b.Vertices...),
		Normals:   append([]math.Vec3(nil), b.Normals...),
		UVs:       append([]math.Vec2(nil), b.UVs...),
		Triangles: append([]uint32(nil), b.Triangles...),
	}
}

// Transform returns a copy with positions and normals moved from f's local
// space into world space. UVs and triangles are shared with b.
func (b *Buffers) Transform(f math.Frame) *Buffers {
	out := &Buffers{
		Vertices:  make([]math.Vec3, len(b.Vertices)),
		Normals:   make([]math.Vec3, len(b.Normals)),
		UVs:       b.UVs,
		Triangles: b.Triangles,
	}
	m := f.Matrix()
	for i, v := range b.Vertices {
		out.Vertices[i] = m.TransformPoint(v)
	}
	for i, n := range b.Normals {
		out.Normals[i] = m.TransformDirection(n)
	}
	return out
}

// addTriangle appends a triangle, swapping the last two corners when
// reverse is set.
func (b *Buffers) addTriangle(i0, i1, i2 int, reverse bool) {
	if reverse {
		i1, i2 = i2, i1
	}
	b.Triangles = append(b.Triangles, uint32(i0), uint32(i1), uint32(i2))
}
