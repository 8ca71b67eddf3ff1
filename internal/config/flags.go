package config

import (
	"flag"
	"strconv"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSeed       = seedVar("seed", "Random seed (overrides the configured seed)")
	flagContinents = flag.Int("continents", -1, "Number of continents")
	flagErosion    = flag.Int("erosion", -1, "Number of erosion terraces")
	flagOut        = flag.String("out", "", "OBJ output path")
	flagReport     = flag.String("report", "", "Region report output path")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config directory")
)

// seedFlag is a uint64 flag that remembers whether it was given, so that
// every seed including 0 can be chosen.
type seedFlag struct {
	value uint64
	set   bool
}

func seedVar(name, usage string) *seedFlag {
	s := &seedFlag{}
	flag.Var(s, name, usage)
	return s
}

func (s *seedFlag) String() string {
	if s == nil || !s.set {
		return ""
	}
	return strconv.FormatUint(s.value, 10)
}

func (s *seedFlag) Set(v string) error {
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return err
	}
	s.value, s.set = n, true
	return nil
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if flagSeed.set {
		cfg.Terrain.Seed = flagSeed.value
	}
	if *flagContinents >= 0 {
		cfg.Terrain.Continents = *flagContinents
	}
	if *flagErosion >= 0 {
		cfg.Terrain.ErosionSteps = *flagErosion
	}
	if *flagOut != "" {
		cfg.Output.OBJPath = *flagOut
	}
	if *flagReport != "" {
		cfg.Output.ReportPath = *flagReport
	}
}
