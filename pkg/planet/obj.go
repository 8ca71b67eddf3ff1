package planet

import (
	"bufio"
	"fmt"
	"io"
)

// WriteOBJ writes the planet as a Wavefront OBJ. Every polygon corner
// becomes its own vertex so per-face colors (as vertex colors), UVs and
// smooth or flat normals survive the export.
func (p *Planet) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	normals := p.CornerNormals()

	fmt.Fprintf(bw, "# planet: %d vertices, %d polygons\n", len(p.Vertices), p.Mesh.Len())

	for i, id := range p.Mesh.IDs() {
		poly := p.Mesh.Poly(id)
		r := float32(poly.Color.R) / 255
		g := float32(poly.Color.G) / 255
		b := float32(poly.Color.B) / 255
		for _, v := range poly.Vertices {
			pos := p.Vertices[v]
			fmt.Fprintf(bw, "v %g %g %g %g %g %g\n", pos.X, pos.Y, pos.Z, r, g, b)
		}
		for _, uv := range poly.UVs {
			fmt.Fprintf(bw, "vt %g %g\n", uv.X, uv.Y)
		}
		for _, n := range normals[i] {
			fmt.Fprintf(bw, "vn %g %g %g\n", n.X, n.Y, n.Z)
		}
	}

	for i := range p.Mesh.Len() {
		base := i*3 + 1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", base, base, base, base+1, base+1, base+1, base+2, base+2, base+2)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing obj: %w", err)
	}
	return nil
}
