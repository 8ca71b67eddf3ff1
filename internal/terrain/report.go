package terrain

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Report summarizes a generation run for tooling.
type Report struct {
	Seed     uint64         `yaml:"seed"`
	Vertices int            `yaml:"vertices"`
	Polygons int            `yaml:"polygons"`
	Regions  []RegionReport `yaml:"regions"`
}

// RegionReport describes one region.
type RegionReport struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Kind          Kind   `yaml:"kind"`
	Polygons      int    `yaml:"polygons"`
	Vertices      int    `yaml:"vertices"`
	BoundaryEdges int    `yaml:"boundary_edges"`
}

// BuildReport measures every region of res against the final mesh.
func BuildReport(res *Result) *Report {
	r := &Report{
		Seed:     res.Seed,
		Vertices: len(res.Planet.Vertices),
		Polygons: res.Planet.Mesh.Len(),
	}
	for _, reg := range res.Regions {
		r.Regions = append(r.Regions, RegionReport{
			ID:            reg.ID.String(),
			Name:          reg.Name,
			Kind:          reg.Kind,
			Polygons:      reg.Polys.Len(),
			Vertices:      len(reg.Polys.GetUniqueVertices()),
			BoundaryEdges: reg.Polys.CreateEdgeSet().Len(),
		})
	}
	return r
}

// WriteYAML encodes the report.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}
