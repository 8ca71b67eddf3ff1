// Package region groups planet triangles into regions and derives region
// boundaries, erosion rings and per-vertex inward directions.
//
// Polygons live in a Mesh arena and refer to each other through PolyID
// handles, so the cyclic neighbor graph never holds pointers.
package region

import (
	"image/color"

	"github.com/Faultbox/planetgen/pkg/math"
)

// PolyID is a stable handle to a Polygon inside a Mesh.
type PolyID int32

// NoPoly marks an absent polygon handle.
const NoPoly PolyID = -1

// MaxNeighbors is the number of edges a triangle can share.
const MaxNeighbors = 3

// DefaultColor is assigned to new polygons so unpainted faces stand out.
var DefaultColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// Polygon is a triangle on the planet mesh.
type Polygon struct {
	Vertices      [3]int       // Vertex indices, winding defines the outward side
	UVs           [3]math.Vec2 // Per-corner UVs; Y carries the ambient occlusion term
	Neighbors     []PolyID     // Edge-adjacent polygons, at most MaxNeighbors
	Color         color.RGBA
	SmoothNormals bool
}

func newPolygon(a, b, c int) Polygon {
	return Polygon{
		Vertices:      [3]int{a, b, c},
		Neighbors:     make([]PolyID, 0, MaxNeighbors),
		Color:         DefaultColor,
		SmoothNormals: true,
	}
}

// SharedVertices counts the vertices of p that also appear in other.
func (p *Polygon) SharedVertices(other *Polygon) int {
	shared := 0
	for _, v := range p.Vertices {
		if other.HasVertex(v) {
			shared++
		}
	}
	return shared
}

// IsNeighborOf reports whether p and other share an edge (exactly two vertices).
func (p *Polygon) IsNeighborOf(other *Polygon) bool {
	return p.SharedVertices(other) == 2
}

// HasVertex reports whether v is one of the polygon's corners.
func (p *Polygon) HasVertex(v int) bool {
	return p.Vertices[0] == v || p.Vertices[1] == v || p.Vertices[2] == v
}

// HasNeighbor reports whether id is in the neighbor list.
func (p *Polygon) HasNeighbor(id PolyID) bool {
	for _, n := range p.Neighbors {
		if n == id {
			return true
		}
	}
	return false
}

// ReplaceNeighbor overwrites the first neighbor equal to old with replacement.
// Nothing happens if old is not a neighbor. Only this polygon's list changes;
// the caller keeps the graph symmetric.
func (p *Polygon) ReplaceNeighbor(old, replacement PolyID) {
	for i, n := range p.Neighbors {
		if n == old {
			p.Neighbors[i] = replacement
			return
		}
	}
}
