package region

import (
	"fmt"

	"github.com/Faultbox/planetgen/pkg/math"
)

// EdgeSet is the boundary of a region: every Edge between a member polygon
// and a non-member neighbor. A boundary may consist of several loops.
//
// Edges are deduplicated by EdgeKey. Iteration follows insertion order, but
// callers should only rely on the set of edges, not their order.
type EdgeSet struct {
	edges []*Edge
	index map[EdgeKey]int
}

// NewEdgeSet creates an empty edge set.
func NewEdgeSet() *EdgeSet {
	return &EdgeSet{index: make(map[EdgeKey]int)}
}

// Add inserts e unless an edge with the same key is present.
// It reports whether the edge was added.
func (s *EdgeSet) Add(e *Edge) bool {
	key := e.Key()
	if _, ok := s.index[key]; ok {
		return false
	}
	s.index[key] = len(s.edges)
	s.edges = append(s.edges, e)
	return true
}

// Contains reports whether an edge between inner and outer is present.
func (s *EdgeSet) Contains(inner, outer PolyID) bool {
	_, ok := s.index[EdgeKey{Inner: inner, Outer: outer}]
	return ok
}

// Len returns the number of edges.
func (s *EdgeSet) Len() int {
	return len(s.edges)
}

// Edges returns the edges in insertion order. The slice must not be modified.
func (s *EdgeSet) Edges() []*Edge {
	return s.edges
}

// Split remaps the inner side of every edge through a vertex correspondence
// table: InnerVerts[i] becomes newVertices[j] where oldVertices[j] equals
// OuterVerts[i]. OuterVerts is left alone so the split can be repeated.
//
// The table must cover every boundary vertex; Split panics otherwise, since
// a half-remapped edge would corrupt the geometry built on it.
func (s *EdgeSet) Split(oldVertices, newVertices []int) {
	if len(oldVertices) != len(newVertices) {
		panic(fmt.Sprintf("region: split table mismatch: %d old vertices, %d new", len(oldVertices), len(newVertices)))
	}

	lookup := make(map[int]int, len(oldVertices))
	for i := len(oldVertices) - 1; i >= 0; i-- {
		// First occurrence wins, as with a linear index search.
		lookup[oldVertices[i]] = newVertices[i]
	}

	for _, e := range s.edges {
		for i := range 2 {
			nv, ok := lookup[e.OuterVerts[i]]
			if !ok {
				panic(fmt.Sprintf("region: split table has no entry for vertex %d", e.OuterVerts[i]))
			}
			e.InnerVerts[i] = nv
		}
	}
}

// GetUniqueVertices returns every distinct outer vertex of the boundary in
// order of first appearance.
func (s *EdgeSet) GetUniqueVertices() []int {
	seen := make(map[int]struct{}, len(s.edges))
	var verts []int
	for _, e := range s.edges {
		for _, v := range e.OuterVerts {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			verts = append(verts, v)
		}
	}
	return verts
}

// inwardSum accumulates the inward vectors touching one boundary vertex.
type inwardSum struct {
	sum   math.Vec3
	count int
}

// GetInwardDirections returns, for each inner boundary vertex, the average
// direction from its edges toward the region interior.
//
// A vertex whose contributions cancel out maps to the zero vector; callers
// should check Length() before using a direction.
func (s *EdgeSet) GetInwardDirections(positions []math.Vec3) map[int]math.Vec3 {
	sums := s.accumulateInward(positions)
	return finalizeInward(sums)
}

func (s *EdgeSet) accumulateInward(positions []math.Vec3) map[int]*inwardSum {
	sums := make(map[int]*inwardSum, len(s.edges))
	for _, e := range s.edges {
		center := math.Midpoint(positions[e.InnerVerts[0]], positions[e.InnerVerts[1]])
		inward := positions[e.InwardVertex].Sub(center).Normalize()

		for _, v := range e.InnerVerts {
			acc, ok := sums[v]
			if !ok {
				acc = &inwardSum{}
				sums[v] = acc
			}
			acc.sum = acc.sum.Add(inward)
			acc.count++
		}
	}
	return sums
}

func finalizeInward(sums map[int]*inwardSum) map[int]math.Vec3 {
	dirs := make(map[int]math.Vec3, len(sums))
	for v, acc := range sums {
		dirs[v] = acc.sum.Div(float32(acc.count)).Normalize()
	}
	return dirs
}
