// Package terrain runs the terrain passes that turn a bare planet into
// continents, oceans, cliffs and hills.
package terrain

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Faultbox/planetgen/pkg/region"
)

// Kind classifies a generated region.
type Kind string

// Region kinds.
const (
	KindContinent Kind = "continent"
	KindLand      Kind = "land"
	KindOcean     Kind = "ocean"
	KindShore     Kind = "shore"
	KindCliff     Kind = "cliff"
	KindTerrace   Kind = "terrace"
	KindHill      Kind = "hill"
)

// regionNamespace scopes region IDs so they are stable for a given seed.
var regionNamespace = uuid.MustParse("6f0c5b8e-2f4a-4f43-9a55-3b1d8e2c7a10")

// Region is a named group of polygons produced by one pass.
type Region struct {
	ID    uuid.UUID
	Name  string
	Kind  Kind
	Polys *region.PolySet
}

func newRegion(seed uint64, kind Kind, index int, polys *region.PolySet) *Region {
	name := fmt.Sprintf("%s-%d", kind, index)
	return &Region{
		ID:    uuid.NewSHA1(regionNamespace, []byte(fmt.Sprintf("%d/%s", seed, name))),
		Name:  name,
		Kind:  kind,
		Polys: polys,
	}
}
