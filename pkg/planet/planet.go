// Package planet holds a planet mesh: the vertex buffer plus the polygon
// arena, and the geometry passes that reshape regions of it.
package planet

import (
	stdmath "math"

	"github.com/Faultbox/planetgen/pkg/math"
	"github.com/Faultbox/planetgen/pkg/region"
)

// Planet is a closed triangle mesh centered on the origin.
type Planet struct {
	Vertices []math.Vec3
	Mesh     *region.Mesh
}

// New builds a planet from a vertex buffer and triangle list and computes
// the neighbor graph.
func New(vertices []math.Vec3, faces [][3]int) *Planet {
	p := &Planet{
		Vertices: append([]math.Vec3(nil), vertices...),
		Mesh:     region.NewMesh(),
	}
	for _, f := range faces {
		p.Mesh.Add(f[0], f[1], f[2])
	}
	p.CalculateNeighbors()
	return p
}

// icosahedronFaces winds every face counter-clockwise seen from outside.
var icosahedronFaces = [][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

// Icosahedron returns the 12-vertex, 20-face seed planet with every vertex
// at the given radius.
func Icosahedron(radius float32) *Planet {
	t := float32((1 + stdmath.Sqrt(5)) / 2)
	raw := []math.Vec3{
		{X: -1, Y: t}, {X: 1, Y: t}, {X: -1, Y: -t}, {X: 1, Y: -t},
		{Y: -1, Z: t}, {Y: 1, Z: t}, {Y: -1, Z: -t}, {Y: 1, Z: -t},
		{X: t, Z: -1}, {X: t, Z: 1}, {X: -t, Z: -1}, {X: -t, Z: 1},
	}
	verts := make([]math.Vec3, len(raw))
	for i, v := range raw {
		verts[i] = v.WithLength(radius)
	}
	return New(verts, icosahedronFaces)
}

// CalculateNeighbors rebuilds the neighbor graph from shared vertex pairs.
func (p *Planet) CalculateNeighbors() {
	ids := p.Mesh.IDs()
	for _, id := range ids {
		poly := p.Mesh.Poly(id)
		poly.Neighbors = poly.Neighbors[:0]
	}
	p.Mesh.ConnectNeighbors(ids)
}

// Poly resolves a polygon handle.
func (p *Planet) Poly(id region.PolyID) *region.Polygon {
	return p.Mesh.Poly(id)
}

// All returns a set holding every polygon of the planet.
func (p *Planet) All() *region.PolySet {
	return region.NewPolySet(p.Mesh, p.Mesh.IDs()...)
}

// GetPolysInSphere returns the members of source with at least one vertex
// within radius of center.
func (p *Planet) GetPolysInSphere(center math.Vec3, radius float32, source *region.PolySet) *region.PolySet {
	out := region.NewPolySet(p.Mesh)
	for _, id := range source.IDs() {
		for _, v := range p.Mesh.Poly(id).Vertices {
			if p.Vertices[v].Distance(center) <= radius {
				out.Add(id)
				break
			}
		}
	}
	return out
}

// CloneVertices appends a copy of each listed vertex and returns the new
// indices, parallel to verts.
func (p *Planet) CloneVertices(verts []int) []int {
	out := make([]int, len(verts))
	for i, v := range verts {
		p.Vertices = append(p.Vertices, p.Vertices[v])
		out[i] = len(p.Vertices) - 1
	}
	return out
}
