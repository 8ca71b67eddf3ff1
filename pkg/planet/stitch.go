package planet

import (
	"github.com/Faultbox/planetgen/pkg/region"
)

// minDirection is the shortest inward direction Inset will follow.
const minDirection = 1e-6

// StitchPolys detaches polys from the rest of the mesh along their boundary.
//
// Boundary vertices are cloned and the members are moved onto the clones.
// Each boundary edge gets a quad of two new triangles joining the original
// vertices (outer side) to the clones (inner side). The returned set holds
// the new triangles; its StitchedVertexThreshold is the last index that
// existed before cloning. The returned edges have been split onto the clones.
//
// Each quad is linked only to the quads beside it in the same boundary
// loop, so a loop that touches another one at a single vertex keeps every
// stitch triangle at MaxNeighbors.
func (p *Planet) StitchPolys(polys *region.PolySet) (*region.PolySet, *region.EdgeSet) {
	stitched := region.NewPolySet(p.Mesh)
	stitched.StitchedVertexThreshold = len(p.Vertices) - 1

	edges := polys.CreateEdgeSet()
	next := p.nextBoundaryEdges(polys, edges)
	original := edges.GetUniqueVertices()
	cloned := p.CloneVertices(original)
	edges.Split(original, cloned)

	outerSides := make([]region.PolyID, edges.Len())
	innerSides := make([]region.PolyID, edges.Len())
	for i, e := range edges.Edges() {
		outerSide := p.Mesh.Add(e.OuterVerts[0], e.OuterVerts[1], e.InnerVerts[0])
		innerSide := p.Mesh.Add(e.OuterVerts[1], e.InnerVerts[1], e.InnerVerts[0])

		p.Mesh.ReplaceNeighbor(e.Inner, e.Outer, innerSide)
		p.Mesh.ReplaceNeighbor(e.Outer, e.Inner, outerSide)
		p.Mesh.Poly(outerSide).Neighbors = append(p.Mesh.Poly(outerSide).Neighbors, e.Outer)
		p.Mesh.Poly(innerSide).Neighbors = append(p.Mesh.Poly(innerSide).Neighbors, e.Inner)

		outerSides[i], innerSides[i] = outerSide, innerSide
		stitched.Add(outerSide)
		stitched.Add(innerSide)
	}

	remap := make(map[int]int, len(original))
	for i, v := range original {
		remap[v] = cloned[i]
	}
	for _, id := range polys.IDs() {
		poly := p.Mesh.Poly(id)
		for i, v := range poly.Vertices {
			if nv, ok := remap[v]; ok {
				poly.Vertices[i] = nv
			}
		}
	}

	for i := range outerSides {
		// Diagonal inside the quad, then the side edge shared with the next quad.
		p.Mesh.Link(outerSides[i], innerSides[i])
		if j := next[i]; j >= 0 {
			p.Mesh.Link(innerSides[i], outerSides[j])
		}
	}

	return stitched, edges
}

type edgeStart struct {
	poly region.PolyID
	from int
}

// nextBoundaryEdges returns, for every edge of edges, the index of the edge
// that follows it in its boundary loop, or -1 when the loop is open.
// Edges run in the winding of their member polygon, so the successor of
// a->b starts at b. It is found by fanning around b through members until a
// member whose edge leaving b is on the boundary.
func (p *Planet) nextBoundaryEdges(polys *region.PolySet, edges *region.EdgeSet) []int {
	starts := make(map[edgeStart]int, edges.Len())
	for i, e := range edges.Edges() {
		starts[edgeStart{e.Inner, e.OuterVerts[0]}] = i
	}

	next := make([]int, edges.Len())
	for i, e := range edges.Edges() {
		next[i] = -1
		pivot := e.OuterVerts[1]
		cur := e.Inner
		for range polys.Len() {
			if j, ok := starts[edgeStart{cur, pivot}]; ok {
				next[i] = j
				break
			}
			n, ok := p.memberAcross(polys, cur, pivot)
			if !ok {
				break
			}
			cur = n
		}
	}
	return next
}

// memberAcross returns the member neighbor of id across the edge that leaves
// pivot in id's winding.
func (p *Planet) memberAcross(polys *region.PolySet, id region.PolyID, pivot int) (region.PolyID, bool) {
	poly := p.Mesh.Poly(id)
	far := -1
	for k, v := range poly.Vertices {
		if v == pivot {
			far = poly.Vertices[(k+1)%3]
		}
	}
	if far < 0 {
		return region.NoPoly, false
	}
	for _, n := range poly.Neighbors {
		other := p.Mesh.Poly(n)
		if polys.Contains(n) && other.HasVertex(pivot) && other.HasVertex(far) {
			return n, true
		}
	}
	return region.NoPoly, false
}

// Extrude stitches polys and raises them by height along the planet normal.
// A negative height sinks them. It returns the new side walls.
func (p *Planet) Extrude(polys *region.PolySet, height float32) *region.PolySet {
	sides, _ := p.StitchPolys(polys)
	for _, v := range polys.GetUniqueVertices() {
		pos := p.Vertices[v]
		p.Vertices[v] = pos.WithLength(pos.Length() + height)
	}
	return sides
}

// Inset stitches polys and pulls their new boundary toward the region
// interior by amount, keeping every moved vertex at its original radius.
// It returns the new border strip.
func (p *Planet) Inset(polys *region.PolySet, amount float32) *region.PolySet {
	sides, edges := p.StitchPolys(polys)
	for v, dir := range edges.GetInwardDirections(p.Vertices) {
		if dir.Length() < minDirection {
			continue
		}
		pos := p.Vertices[v]
		p.Vertices[v] = pos.Add(dir.Scale(amount)).WithLength(pos.Length())
	}
	return sides
}
