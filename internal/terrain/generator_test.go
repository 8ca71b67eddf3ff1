package terrain

import (
	"bytes"
	"errors"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/planetgen/internal/config"
	"github.com/Faultbox/planetgen/pkg/planet"
	"github.com/Faultbox/planetgen/pkg/region"
)

func testConfig(seed uint64) *config.Config {
	cfg := config.Default()
	cfg.Terrain.Seed = seed
	return cfg
}

func generate(t *testing.T, cfg *config.Config) *Result {
	t.Helper()
	res, err := NewGenerator(cfg, nil).Generate(planet.Icosahedron(cfg.Planet.Radius))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return res
}

func TestGenerateEmptyPlanet(t *testing.T) {
	g := NewGenerator(testConfig(1), nil)

	if _, err := g.Generate(nil); !errors.Is(err, ErrEmptyPlanet) {
		t.Errorf("expected ErrEmptyPlanet for nil planet, got %v", err)
	}
	empty := planet.New(nil, nil)
	if _, err := g.Generate(empty); !errors.Is(err, ErrEmptyPlanet) {
		t.Errorf("expected ErrEmptyPlanet for empty planet, got %v", err)
	}
}

func TestGeneratePaintsEverything(t *testing.T) {
	res := generate(t, testConfig(3))
	p := res.Planet

	for _, id := range p.Mesh.IDs() {
		if p.Poly(id).Color == region.DefaultColor {
			t.Errorf("polygon %d was never painted", id)
		}
	}
	if res.Land.Len()+res.Ocean.Len() != 20 {
		t.Errorf("land and ocean should partition the 20 seed faces, got %d+%d",
			res.Land.Len(), res.Ocean.Len())
	}
}

func TestGenerateKeepsGraphSymmetric(t *testing.T) {
	res := generate(t, testConfig(5))
	p := res.Planet

	for _, id := range p.Mesh.IDs() {
		poly := p.Poly(id)
		for _, n := range poly.Neighbors {
			if !p.Poly(n).HasNeighbor(id) {
				t.Errorf("link %d->%d is not symmetric", id, n)
			}
			if !poly.IsNeighborOf(p.Poly(n)) {
				t.Errorf("polygons %d and %d are linked but share no edge", id, n)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := generate(t, testConfig(11))
	b := generate(t, testConfig(11))

	if len(a.Planet.Vertices) != len(b.Planet.Vertices) {
		t.Fatalf("vertex counts differ: %d vs %d", len(a.Planet.Vertices), len(b.Planet.Vertices))
	}
	for i := range a.Planet.Vertices {
		if a.Planet.Vertices[i] != b.Planet.Vertices[i] {
			t.Fatalf("vertex %d differs: %v vs %v", i, a.Planet.Vertices[i], b.Planet.Vertices[i])
		}
	}
	if len(a.Regions) != len(b.Regions) {
		t.Fatalf("region counts differ")
	}
	for i := range a.Regions {
		if a.Regions[i].ID != b.Regions[i].ID {
			t.Errorf("region %d ID differs", i)
		}
	}
}

func TestGenerateNoContinents(t *testing.T) {
	cfg := testConfig(1)
	cfg.Terrain.Continents = 0

	res := generate(t, cfg)
	if res.Land.Len() != 0 {
		t.Errorf("expected no land, got %d", res.Land.Len())
	}
	if len(res.RegionsOf(KindHill)) != 0 {
		t.Error("hills need land")
	}
	if len(res.RegionsOf(KindOcean)) != 1 {
		t.Error("expected a single ocean region")
	}
}

func TestGenerateAllLand(t *testing.T) {
	cfg := testConfig(1)
	cfg.Terrain.Continents = 1
	cfg.Terrain.ContinentSizeMin = 10
	cfg.Terrain.ContinentSizeMax = 10
	cfg.Terrain.Hills = 0

	res := generate(t, cfg)
	if res.Ocean.Len() != 0 {
		t.Errorf("expected no ocean, got %d", res.Ocean.Len())
	}
	// A closed surface has no boundary, so nothing gets stitched.
	if res.Planet.Mesh.Len() != 20 {
		t.Errorf("expected the mesh to stay at 20 faces, got %d", res.Planet.Mesh.Len())
	}
	if n := len(res.RegionsOf(KindTerrace)); n != 1 {
		t.Errorf("expected a single highland terrace, got %d", n)
	}
	for _, v := range res.Planet.Vertices {
		if l := v.Length(); l < 1.049 || l > 1.051 {
			t.Errorf("vertex at radius %v, want 1.05", l)
		}
	}
}

func TestGenerateShoreAmbientOcclusion(t *testing.T) {
	res := generate(t, testConfig(3))

	for _, reg := range res.RegionsOf(KindCliff) {
		threshold := reg.Polys.StitchedVertexThreshold
		for _, id := range reg.Polys.IDs() {
			poly := res.Planet.Poly(id)
			if poly.SmoothNormals {
				t.Errorf("cliff poly %d should use flat normals", id)
			}
			for i, v := range poly.Vertices {
				want := float32(1)
				if v > threshold {
					want = 0
				}
				if poly.UVs[i].Y != want {
					t.Errorf("cliff poly %d vertex %d: ao %v, want %v", id, v, poly.UVs[i].Y, want)
				}
			}
		}
	}
}

func TestReport(t *testing.T) {
	res := generate(t, testConfig(3))
	report := BuildReport(res)

	if report.Polygons != res.Planet.Mesh.Len() {
		t.Errorf("report polygons = %d, want %d", report.Polygons, res.Planet.Mesh.Len())
	}
	if len(report.Regions) != len(res.Regions) {
		t.Fatalf("report regions = %d, want %d", len(report.Regions), len(res.Regions))
	}

	var buf bytes.Buffer
	if err := report.WriteYAML(&buf); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	var decoded Report
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding report: %v", err)
	}
	if decoded.Seed != 3 || len(decoded.Regions) != len(report.Regions) {
		t.Errorf("decoded report = seed %d, %d regions", decoded.Seed, len(decoded.Regions))
	}
	if decoded.Regions[0].ID != res.Regions[0].ID.String() {
		t.Errorf("region ID mismatch: %s vs %s", decoded.Regions[0].ID, res.Regions[0].ID)
	}
}

func TestBlend(t *testing.T) {
	a := config.MustParseColor("#000000").ToRGBA()
	b := config.MustParseColor("#ffffff").ToRGBA()

	if got := blend(a, b, 0); got != a {
		t.Errorf("blend(t=0) = %v", got)
	}
	if got := blend(a, b, 1); got != b {
		t.Errorf("blend(t=1) = %v", got)
	}
	if got := blend(a, b, 0.5); got.R != 128 {
		t.Errorf("blend(t=0.5).R = %d, want 128", got.R)
	}
}

func TestOnSphere(t *testing.T) {
	cfg := testConfig(9)
	cfg.Planet.Radius = 3
	g := NewGenerator(cfg, nil)

	for range 100 {
		if l := g.onSphere().Length(); l < 2.999 || l > 3.001 {
			t.Fatalf("point at radius %v, want 3", l)
		}
	}
}
