package terrain

import (
	"errors"
	"image/color"
	stdmath "math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/config"
	"github.com/Faultbox/planetgen/pkg/math"
	"github.com/Faultbox/planetgen/pkg/planet"
	"github.com/Faultbox/planetgen/pkg/region"
)

// ErrEmptyPlanet is returned when the planet has no polygons to work on.
var ErrEmptyPlanet = errors.New("terrain: planet has no polygons")

// Result is the output of one generation run.
type Result struct {
	Seed    uint64
	Planet  *planet.Planet
	Land    *region.PolySet
	Ocean   *region.PolySet
	Regions []*Region
}

// RegionsOf returns the regions of one kind, in creation order.
func (r *Result) RegionsOf(kind Kind) []*Region {
	var out []*Region
	for _, reg := range r.Regions {
		if reg.Kind == kind {
			out = append(out, reg)
		}
	}
	return out
}

// Generator runs the terrain passes. A Generator is not safe for concurrent
// use; each run mutates the planet it is given.
type Generator struct {
	terrain config.TerrainConfig
	colors  config.ColorConfig
	radius  float32
	log     *zap.Logger
	rng     *rand.Rand
	regions []*Region
}

// NewGenerator creates a generator seeded from cfg.Terrain.Seed.
func NewGenerator(cfg *config.Config, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	seed := cfg.Terrain.Seed
	return &Generator{
		terrain: cfg.Terrain,
		colors:  cfg.Colors,
		radius:  cfg.Planet.Radius,
		log:     log,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Generate shapes p in place and returns the regions it created.
func (g *Generator) Generate(p *planet.Planet) (*Result, error) {
	if p == nil || p.Mesh.Len() == 0 {
		return nil, ErrEmptyPlanet
	}
	start := time.Now()
	g.regions = nil

	all := p.All()
	land := g.continents(p, all)
	ocean := all.Difference(land)

	g.log.Info("continents placed",
		zap.Int("continents", g.terrain.Continents),
		zap.Int("land_polys", land.Len()),
		zap.Int("ocean_polys", ocean.Len()))

	g.oceans(p, ocean)
	g.land(p, land)
	g.terraces(land)
	g.hills(p, land)

	g.log.Info("terrain generated",
		zap.Int("vertices", len(p.Vertices)),
		zap.Int("polygons", p.Mesh.Len()),
		zap.Int("regions", len(g.regions)),
		zap.Duration("took", time.Since(start)))

	return &Result{Seed: g.terrain.Seed, Planet: p, Land: land, Ocean: ocean, Regions: g.regions}, nil
}

// continents unions a random sphere selection per continent.
func (g *Generator) continents(p *planet.Planet, all *region.PolySet) *region.PolySet {
	land := region.NewPolySet(p.Mesh)
	for i := range g.terrain.Continents {
		size := g.between(g.terrain.ContinentSizeMin, g.terrain.ContinentSizeMax) * g.radius
		polys := p.GetPolysInSphere(g.onSphere(), size, all)
		land.Union(polys)
		g.add(KindContinent, i, polys)
		g.log.Debug("continent", zap.Int("index", i), zap.Float32("size", size), zap.Int("polys", polys.Len()))
	}
	return land
}

// oceans pulls the coastline in and sinks the sea floor.
func (g *Generator) oceans(p *planet.Planet, ocean *region.PolySet) {
	if ocean.Len() == 0 {
		return
	}
	ocean.ApplyColor(g.colors.Ocean.ToRGBA())

	shore := p.Inset(ocean, g.terrain.OceanInset*g.radius)
	g.paintSides(shore, g.colors.Seabed.ToRGBA())
	g.add(KindShore, 0, shore)

	walls := p.Extrude(ocean, g.terrain.OceanDepth*g.radius)
	g.paintSides(walls, g.colors.Seabed.ToRGBA())
	g.add(KindOcean, 0, ocean)

	g.log.Debug("oceans", zap.Int("shore_polys", shore.Len()), zap.Int("wall_polys", walls.Len()))
}

// land raises every continent and paints its cliffs.
func (g *Generator) land(p *planet.Planet, land *region.PolySet) {
	if land.Len() == 0 {
		return
	}
	land.ApplyColor(g.colors.Land.ToRGBA())
	cliffs := p.Extrude(land, g.terrain.LandHeight*g.radius)
	g.paintSides(cliffs, g.colors.Cliff.ToRGBA())
	g.add(KindLand, 0, land)
	g.add(KindCliff, 0, cliffs)
}

// terraces tints the land ring by ring, from the coast toward the highland
// color in the interior.
func (g *Generator) terraces(land *region.PolySet) {
	steps := g.terrain.ErosionSteps
	if steps == 0 || land.Len() == 0 {
		return
	}
	rings := land.Erode(steps)

	remaining := land.Clone()
	for i, ring := range rings {
		t := float32(i+1) / float32(steps+1)
		ring.ApplyColor(blend(g.colors.Land.ToRGBA(), g.colors.Highland.ToRGBA(), t))
		g.add(KindTerrace, i, ring)
		remaining = remaining.Difference(ring)
	}
	if remaining.Len() > 0 {
		remaining.ApplyColor(g.colors.Highland.ToRGBA())
		g.add(KindTerrace, len(rings), remaining)
	}

	g.log.Debug("terraces", zap.Int("rings", len(rings)), zap.Int("highland_polys", remaining.Len()))
}

// hills raises random patches of land.
func (g *Generator) hills(p *planet.Planet, land *region.PolySet) {
	if g.terrain.Hills > 0 && land.Len() == 0 {
		g.log.Warn("no land for hills", zap.Int("hills", g.terrain.Hills))
		return
	}
	for i := range g.terrain.Hills {
		size := g.between(g.terrain.HillSizeMin, g.terrain.HillSizeMax) * g.radius
		hill := p.GetPolysInSphere(g.onSphere().Scale(1+g.terrain.LandHeight), size, land)
		if hill.Len() == 0 {
			g.log.Debug("hill missed land", zap.Int("index", i))
			continue
		}
		hill.ApplyColor(g.colors.Hill.ToRGBA())
		sides := p.Extrude(hill, g.terrain.HillHeight*g.radius)
		g.paintSides(sides, g.colors.Cliff.ToRGBA())
		g.add(KindHill, i, hill)
	}
}

// paintSides shades stitched walls: flat normals, one color and the
// occlusion gradient from their old edge to their new one.
func (g *Generator) paintSides(sides *region.PolySet, c color.RGBA) {
	sides.ApplyColor(c)
	sides.ApplyAmbientOcclusionTerm(g.terrain.AOOriginal, g.terrain.AONew)
	for _, id := range sides.IDs() {
		sides.Mesh().Poly(id).SmoothNormals = false
	}
}

func (g *Generator) add(kind Kind, index int, polys *region.PolySet) {
	g.regions = append(g.regions, newRegion(g.terrain.Seed, kind, index, polys))
}

func (g *Generator) between(lo, hi float32) float32 {
	return lo + g.rng.Float32()*(hi-lo)
}

// onSphere returns a uniformly distributed point on the planet's surface.
func (g *Generator) onSphere() math.Vec3 {
	z := g.rng.Float64()*2 - 1
	phi := g.rng.Float64() * 2 * stdmath.Pi
	r := stdmath.Sqrt(1 - z*z)
	return math.Vec3{
		X: float32(r * stdmath.Cos(phi)),
		Y: float32(r * stdmath.Sin(phi)),
		Z: float32(z),
	}.Scale(g.radius)
}

func blend(a, b color.RGBA, t float32) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
