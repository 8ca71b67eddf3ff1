package region

import "fmt"

// Mesh is the arena that owns every Polygon of a planet.
// Vertex positions are owned by the caller; the mesh only stores indices.
type Mesh struct {
	polys []Polygon
}

// NewMesh creates an empty polygon arena.
func NewMesh() *Mesh {
	return &Mesh{}
}

// Add appends a triangle and returns its handle.
func (m *Mesh) Add(a, b, c int) PolyID {
	m.polys = append(m.polys, newPolygon(a, b, c))
	return PolyID(len(m.polys) - 1)
}

// Len returns the number of polygons.
func (m *Mesh) Len() int {
	return len(m.polys)
}

// Poly resolves a handle. The pointer stays valid until the next Add.
func (m *Mesh) Poly(id PolyID) *Polygon {
	if id < 0 || int(id) >= len(m.polys) {
		panic(fmt.Sprintf("region: polygon %d out of range (mesh has %d)", id, len(m.polys)))
	}
	return &m.polys[id]
}

// IDs returns every handle in creation order.
func (m *Mesh) IDs() []PolyID {
	ids := make([]PolyID, len(m.polys))
	for i := range m.polys {
		ids[i] = PolyID(i)
	}
	return ids
}

// Link records a and b as neighbors of each other. Existing links are kept.
func (m *Mesh) Link(a, b PolyID) {
	pa, pb := m.Poly(a), m.Poly(b)
	if !pa.HasNeighbor(b) {
		pa.Neighbors = append(pa.Neighbors, b)
	}
	if !pb.HasNeighbor(a) {
		pb.Neighbors = append(pb.Neighbors, a)
	}
}

// ReplaceNeighbor swaps old for replacement in the neighbor list of self.
func (m *Mesh) ReplaceNeighbor(self, old, replacement PolyID) {
	m.Poly(self).ReplaceNeighbor(old, replacement)
}

// ConnectNeighbors links every pair in ids that shares a vertex pair.
// Pairs are matched through an edge map, so the cost is linear in len(ids).
func (m *Mesh) ConnectNeighbors(ids []PolyID) {
	seen := make(map[EdgeKeyVerts]PolyID, len(ids)*3)
	for _, id := range ids {
		p := m.Poly(id)
		for i := range 3 {
			key := VertsKey(p.Vertices[i], p.Vertices[(i+1)%3])
			other, ok := seen[key]
			if !ok {
				seen[key] = id
				continue
			}
			if other != id {
				m.Link(id, other)
			}
		}
	}
}

// EdgeKeyVerts identifies an undirected mesh edge by its sorted vertex pair.
type EdgeKeyVerts struct {
	A, B int
}

// VertsKey builds the undirected key for the edge a-b.
func VertsKey(a, b int) EdgeKeyVerts {
	if a > b {
		a, b = b, a
	}
	return EdgeKeyVerts{A: a, B: b}
}
