package region

import "fmt"

// EdgeKey identifies an Edge by the polygon pair it separates.
type EdgeKey struct {
	Inner, Outer PolyID
}

// Edge is one boundary segment of a region, between a member polygon (Inner)
// and a non-member neighbor (Outer).
//
// InnerVerts and OuterVerts start out equal. After EdgeSet.Split the inner
// side points at freshly cloned vertices while OuterVerts keeps the original
// indices as the lookup key.
type Edge struct {
	Inner PolyID
	Outer PolyID

	InnerVerts [2]int
	OuterVerts [2]int

	// InwardVertex is the corner of Inner that is not on the edge.
	InwardVertex int
}

// NewEdge builds the boundary record between two neighboring polygons.
// It panics if inner and outer do not share exactly two vertices.
func NewEdge(m *Mesh, inner, outer PolyID) *Edge {
	ip, op := m.Poly(inner), m.Poly(outer)

	e := &Edge{Inner: inner, Outer: outer, InwardVertex: -1}

	shared := 0
	inward := 0
	for _, v := range ip.Vertices {
		if op.HasVertex(v) {
			if shared < 2 {
				e.InnerVerts[shared] = v
			}
			shared++
		} else {
			e.InwardVertex = v
			inward++
		}
	}
	if shared != 2 || inward != 1 {
		panic(fmt.Sprintf("region: polygons %d and %d share %d vertices, want 2", inner, outer, shared))
	}

	// Keep the pair in the inner polygon's rotational order. Collection order
	// is already correct except when the edge is v[2]->v[0].
	if e.InnerVerts[0] == ip.Vertices[0] && e.InnerVerts[1] == ip.Vertices[2] {
		e.InnerVerts[0], e.InnerVerts[1] = e.InnerVerts[1], e.InnerVerts[0]
	}

	e.OuterVerts = e.InnerVerts
	return e
}

// Key returns the identity of the edge inside an EdgeSet.
func (e *Edge) Key() EdgeKey {
	return EdgeKey{Inner: e.Inner, Outer: e.Outer}
}
