package region

import (
	"github.com/Faultbox/planetgen/pkg/math"
)

// octahedron is a closed mesh with six degree-4 vertices. Face 0 is the
// "center" triangle, faces 1-6 form the ring around it and face 7 (3,4,5)
// is the opposite face that stays outside the region.
type octahedron struct {
	mesh      *Mesh
	positions []math.Vec3
	center    PolyID
	ring      []PolyID
	opposite  PolyID
}

func newOctahedron() *octahedron {
	m := NewMesh()
	o := &octahedron{
		mesh: m,
		positions: []math.Vec3{
			{X: 1}, {Y: 1}, {Z: 1},
			{Z: -1}, {Y: -1}, {X: -1},
		},
	}
	faces := [][3]int{
		{0, 1, 2}, // center
		{1, 0, 3}, // shares 0-1
		{2, 1, 5}, // shares 1-2
		{0, 2, 4}, // shares 2-0
		{3, 0, 4}, // touches 0
		{5, 1, 3}, // touches 1
		{4, 2, 5}, // touches 2
		{3, 4, 5}, // opposite
	}
	var ids []PolyID
	for _, f := range faces {
		ids = append(ids, m.Add(f[0], f[1], f[2]))
	}
	m.ConnectNeighbors(ids)

	o.center = ids[0]
	o.ring = ids[1:7]
	o.opposite = ids[7]
	return o
}

// region returns the center and its ring: everything but the opposite face.
func (o *octahedron) region() *PolySet {
	s := NewPolySet(o.mesh, o.center)
	for _, id := range o.ring {
		s.Add(id)
	}
	return s
}

// quad is a unit square split along its 0-2 diagonal.
type quad struct {
	mesh      *Mesh
	positions []math.Vec3
	first     PolyID
	second    PolyID
}

func newQuad() *quad {
	m := NewMesh()
	q := &quad{
		mesh: m,
		positions: []math.Vec3{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
		},
	}
	q.first = m.Add(0, 1, 2)
	q.second = m.Add(0, 2, 3)
	m.Link(q.first, q.second)
	return q
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[int]int, len(a))
	for _, v := range a {
		set[v]++
	}
	for _, v := range b {
		if set[v] == 0 {
			return false
		}
		set[v]--
	}
	return true
}

func expectPanic(t interface{ Fatal(...any) }, fn func()) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	fn()
}
