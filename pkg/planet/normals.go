package planet

import (
	"github.com/Faultbox/planetgen/pkg/math"
)

// FaceNormal returns the unit normal of a polygon from its winding.
func (p *Planet) FaceNormal(v [3]int) math.Vec3 {
	a, b, c := p.Vertices[v[0]], p.Vertices[v[1]], p.Vertices[v[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// CornerNormals returns one normal per polygon corner, indexed like
// Mesh.IDs(). Polygons with SmoothNormals share the averaged normal of all
// smooth polygons around each vertex; the others keep their face normal.
func (p *Planet) CornerNormals() [][3]math.Vec3 {
	ids := p.Mesh.IDs()
	faces := make([]math.Vec3, len(ids))

	// Sum smooth face normals per vertex index
	sums := make(map[int]math.Vec3)
	for i, id := range ids {
		poly := p.Mesh.Poly(id)
		faces[i] = p.FaceNormal(poly.Vertices)
		if !poly.SmoothNormals {
			continue
		}
		for _, v := range poly.Vertices {
			sums[v] = sums[v].Add(faces[i])
		}
	}

	out := make([][3]math.Vec3, len(ids))
	for i, id := range ids {
		poly := p.Mesh.Poly(id)
		for c, v := range poly.Vertices {
			if poly.SmoothNormals {
				out[i][c] = sums[v].Normalize()
			} else {
				out[i][c] = faces[i]
			}
		}
	}
	return out
}
