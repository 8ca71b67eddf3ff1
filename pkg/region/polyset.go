package region

import "image/color"

// NoThreshold is the StitchedVertexThreshold of a set that was not created
// by stitching. Every vertex index exceeds it.
const NoThreshold = -1

// PolySet is a region: a set of polygons of one Mesh, kept in insertion order.
type PolySet struct {
	mesh  *Mesh
	ids   []PolyID
	index map[PolyID]int

	// StitchedVertexThreshold is the last vertex index that existed before
	// the stitch that produced this set. Higher indices are new geometry.
	StitchedVertexThreshold int
}

// NewPolySet creates a set over m holding ids.
func NewPolySet(m *Mesh, ids ...PolyID) *PolySet {
	s := &PolySet{
		mesh:                    m,
		index:                   make(map[PolyID]int, len(ids)),
		StitchedVertexThreshold: NoThreshold,
	}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Mesh returns the arena the set's handles refer to.
func (s *PolySet) Mesh() *Mesh {
	return s.mesh
}

// Clone returns an independent copy, threshold included.
func (s *PolySet) Clone() *PolySet {
	c := NewPolySet(s.mesh, s.ids...)
	c.StitchedVertexThreshold = s.StitchedVertexThreshold
	return c
}

// Add inserts id and reports whether it was new.
func (s *PolySet) Add(id PolyID) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	return true
}

// Remove deletes id and reports whether it was present.
func (s *PolySet) Remove(id PolyID) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	delete(s.index, id)
	s.ids = append(s.ids[:i], s.ids[i+1:]...)
	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
	return true
}

// Contains reports membership.
func (s *PolySet) Contains(id PolyID) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of members.
func (s *PolySet) Len() int {
	return len(s.ids)
}

// IDs returns the members in insertion order. The slice must not be modified.
func (s *PolySet) IDs() []PolyID {
	return s.ids
}

// Union adds every member of other to s.
func (s *PolySet) Union(other *PolySet) {
	for _, id := range other.ids {
		s.Add(id)
	}
}

// Difference returns the members of s that are not in other.
func (s *PolySet) Difference(other *PolySet) *PolySet {
	out := NewPolySet(s.mesh)
	for _, id := range s.ids {
		if !other.Contains(id) {
			out.Add(id)
		}
	}
	return out
}

// CreateEdgeSet returns the boundary of the region: one Edge for every
// neighbor link that leaves the set.
func (s *PolySet) CreateEdgeSet() *EdgeSet {
	edges := NewEdgeSet()
	for _, id := range s.ids {
		for _, n := range s.mesh.Poly(id).Neighbors {
			if s.Contains(n) {
				continue
			}
			edges.Add(NewEdge(s.mesh, id, n))
		}
	}
	return edges
}

// RemoveEdges returns the region shrunk by one ring: every polygon touching
// the boundary is dropped, including polygons that touch it with a single
// vertex.
func (s *PolySet) RemoveEdges() *PolySet {
	boundary := make(map[int]struct{})
	for _, v := range s.CreateEdgeSet().GetUniqueVertices() {
		boundary[v] = struct{}{}
	}

	out := NewPolySet(s.mesh)
	for _, id := range s.ids {
		touches := false
		for _, v := range s.mesh.Poly(id).Vertices {
			if _, ok := boundary[v]; ok {
				touches = true
				break
			}
		}
		if !touches {
			out.Add(id)
		}
	}
	return out
}

// Erode applies RemoveEdges up to steps times and returns the rings that were
// peeled off, outermost first. It stops early once nothing is left or the
// region has no boundary to peel.
func (s *PolySet) Erode(steps int) []*PolySet {
	var rings []*PolySet
	current := s
	for range steps {
		if current.Len() == 0 {
			break
		}
		inner := current.RemoveEdges()
		if inner.Len() == current.Len() {
			break
		}
		rings = append(rings, current.Difference(inner))
		current = inner
	}
	return rings
}

// GetUniqueVertices returns every vertex used by the members, in order of
// first appearance.
func (s *PolySet) GetUniqueVertices() []int {
	seen := make(map[int]struct{}, len(s.ids)*3)
	var verts []int
	for _, id := range s.ids {
		for _, v := range s.mesh.Poly(id).Vertices {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			verts = append(verts, v)
		}
	}
	return verts
}

// ApplyAmbientOcclusionTerm writes an occlusion value into the V channel of
// every corner: aoNew for vertices above StitchedVertexThreshold, aoOriginal
// for the rest.
func (s *PolySet) ApplyAmbientOcclusionTerm(aoOriginal, aoNew float32) {
	for _, id := range s.ids {
		p := s.mesh.Poly(id)
		for i, v := range p.Vertices {
			ao := aoOriginal
			if v > s.StitchedVertexThreshold {
				ao = aoNew
			}
			p.UVs[i].Y = ao
		}
	}
}

// ApplyColor paints every member.
func (s *PolySet) ApplyColor(c color.RGBA) {
	for _, id := range s.ids {
		s.mesh.Poly(id).Color = c
	}
}
