package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/roadmesh/pkg/mesh"
)

// WriteOBJ writes b as a Wavefront OBJ object. Every vertex carries a
// position, texture coordinate, and normal under the same index.
func WriteOBJ(w io.Writer, name string, b *mesh.Buffers) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# roadmesh\n")
	fmt.Fprintf(bw, "o %s\n", name)
	for _, v := range b.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	for _, uv := range b.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
	}
	for _, n := range b.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
	}
	// OBJ indices are 1-based.
	for i := 0; i < b.TriangleCount(); i++ {
		i0, i1, i2 := b.Triangle(i)
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n",
			i0+1, i0+1, i0+1, i1+1, i1+1, i1+1, i2+1, i2+1, i2+1)
	}
	return bw.Flush()
}

// SaveOBJ writes b to path as OBJ.
func SaveOBJ(path, name string, b *mesh.Buffers) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteOBJ(f, name, b); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
