package region

import (
	"testing"
)

func TestNewEdgeWinding(t *testing.T) {
	// Inner polygon is (10, 11, 12); each case shares a different pair.
	tests := []struct {
		name       string
		outer      [3]int
		wantVerts  [2]int
		wantInward int
	}{
		{"edge v0-v1", [3]int{11, 10, 20}, [2]int{10, 11}, 12},
		{"edge v1-v2", [3]int{12, 11, 20}, [2]int{11, 12}, 10},
		{"edge v2-v0", [3]int{10, 12, 20}, [2]int{12, 10}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMesh()
			inner := m.Add(10, 11, 12)
			outer := m.Add(tt.outer[0], tt.outer[1], tt.outer[2])

			e := NewEdge(m, inner, outer)
			if e.InnerVerts != tt.wantVerts {
				t.Errorf("InnerVerts = %v, want %v", e.InnerVerts, tt.wantVerts)
			}
			if e.OuterVerts != e.InnerVerts {
				t.Errorf("OuterVerts = %v, want copy of %v", e.OuterVerts, e.InnerVerts)
			}
			if e.InwardVertex != tt.wantInward {
				t.Errorf("InwardVertex = %d, want %d", e.InwardVertex, tt.wantInward)
			}

			// The pair must follow the inner polygon's 0->1->2 rotation.
			verts := m.Poly(inner).Vertices
			first := indexOf(verts, e.InnerVerts[0])
			if verts[(first+1)%3] != e.InnerVerts[1] {
				t.Errorf("InnerVerts %v out of winding order for %v", e.InnerVerts, verts)
			}
		})
	}
}

func TestNewEdgeNotNeighbors(t *testing.T) {
	m := NewMesh()
	a := m.Add(0, 1, 2)
	b := m.Add(0, 3, 4)
	c := m.Add(5, 6, 7)

	expectPanic(t, func() { NewEdge(m, a, b) })
	expectPanic(t, func() { NewEdge(m, a, c) })
	expectPanic(t, func() { NewEdge(m, a, a) })
}

func TestEdgeKey(t *testing.T) {
	q := newQuad()
	e := NewEdge(q.mesh, q.first, q.second)
	if got := e.Key(); got != (EdgeKey{Inner: q.first, Outer: q.second}) {
		t.Errorf("Key() = %v", got)
	}
}

func indexOf(verts [3]int, v int) int {
	for i, x := range verts {
		if x == v {
			return i
		}
	}
	return -1
}
