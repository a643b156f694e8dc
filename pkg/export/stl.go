package export

import (
	"fmt"

	"github.com/Faultbox/roadmesh/pkg/math"
	"github.com/Faultbox/roadmesh/pkg/mesh"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Triangles converts b into sdfx triangles, one per index triple. Vertex
// normals and UVs are dropped; STL only stores a face normal derived from
// the vertex order.
func Triangles(b *mesh.Buffers) []*sdf.Triangle3 {
	tris := make([]*sdf.Triangle3, 0, b.TriangleCount())
	for i := 0; i < b.TriangleCount(); i++ {
		i0, i1, i2 := b.Triangle(i)
		tris = append(tris, &sdf.Triangle3{
			toVec(b.Vertices[i0]),
			toVec(b.Vertices[i1]),
			toVec(b.Vertices[i2]),
		})
	}
	return tris
}

// SaveSTL writes b to path as binary STL.
func SaveSTL(path string, b *mesh.Buffers) error {
	if err := render.SaveSTL(path, Triangles(b)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func toVec(v math.Vec3) v3.Vec {
	return v3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}
