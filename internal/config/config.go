// Package config handles generator configuration loading and management.
package config

// Config holds all generator settings.
type Config struct {
	Planet  PlanetConfig  `yaml:"planet"`
	Terrain TerrainConfig `yaml:"terrain"`
	Colors  ColorConfig   `yaml:"colors"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// PlanetConfig holds the base mesh settings.
type PlanetConfig struct {
	Radius float32 `yaml:"radius"`
}

// TerrainConfig holds the terrain pass parameters. Sizes are sphere radii
// and heights are radial offsets, both in planet units.
type TerrainConfig struct {
	Seed             uint64  `yaml:"seed"`
	Continents       int     `yaml:"continents"`
	ContinentSizeMin float32 `yaml:"continent_size_min"`
	ContinentSizeMax float32 `yaml:"continent_size_max"`
	LandHeight       float32 `yaml:"land_height"`
	OceanInset       float32 `yaml:"ocean_inset"`
	OceanDepth       float32 `yaml:"ocean_depth"`
	Hills            int     `yaml:"hills"`
	HillSizeMin      float32 `yaml:"hill_size_min"`
	HillSizeMax      float32 `yaml:"hill_size_max"`
	HillHeight       float32 `yaml:"hill_height"`
	ErosionSteps     int     `yaml:"erosion_steps"`
	AOOriginal       float32 `yaml:"ao_original"` // Occlusion term for pre-stitch vertices
	AONew            float32 `yaml:"ao_new"`      // Occlusion term for stitched vertices
}

// ColorConfig holds region colors as #rrggbb or #rrggbbaa.
type ColorConfig struct {
	Land     Color `yaml:"land"`
	Highland Color `yaml:"highland"`
	Hill     Color `yaml:"hill"`
	Cliff    Color `yaml:"cliff"`
	Ocean    Color `yaml:"ocean"`
	Seabed   Color `yaml:"seabed"`
}

// OutputConfig holds output file paths. Empty paths disable the output.
type OutputConfig struct {
	OBJPath    string `yaml:"obj_path"`
	ReportPath string `yaml:"report_path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Planet: PlanetConfig{
			Radius: 1,
		},
		Terrain: TerrainConfig{
			Seed:             1,
			Continents:       6,
			ContinentSizeMin: 0.6,
			ContinentSizeMax: 1.0,
			LandHeight:       0.05,
			OceanInset:       0.05,
			OceanDepth:       -0.02,
			Hills:            4,
			HillSizeMin:      0.2,
			HillSizeMax:      0.5,
			HillHeight:       0.05,
			ErosionSteps:     2,
			AOOriginal:       1,
			AONew:            0,
		},
		Colors: ColorConfig{
			Land:     MustParseColor("#4d9933"),
			Highland: MustParseColor("#8c7a59"),
			Hill:     MustParseColor("#66804d"),
			Cliff:    MustParseColor("#7a6652"),
			Ocean:    MustParseColor("#1a4dcc"),
			Seabed:   MustParseColor("#143a8c"),
		},
		Output: OutputConfig{
			OBJPath:    "planet.obj",
			ReportPath: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
