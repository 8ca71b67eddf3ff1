package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate reports every setting that would make generation fail or
// produce nonsense, combined into one error.
func (c *Config) Validate() error {
	var err error
	t := c.Terrain

	if c.Planet.Radius <= 0 {
		err = multierr.Append(err, fmt.Errorf("planet.radius must be positive, got %v", c.Planet.Radius))
	}
	if t.Continents < 0 {
		err = multierr.Append(err, fmt.Errorf("terrain.continents must not be negative, got %d", t.Continents))
	}
	if t.Hills < 0 {
		err = multierr.Append(err, fmt.Errorf("terrain.hills must not be negative, got %d", t.Hills))
	}
	if t.ErosionSteps < 0 {
		err = multierr.Append(err, fmt.Errorf("terrain.erosion_steps must not be negative, got %d", t.ErosionSteps))
	}
	err = multierr.Append(err, checkRange("terrain.continent_size", t.ContinentSizeMin, t.ContinentSizeMax))
	err = multierr.Append(err, checkRange("terrain.hill_size", t.HillSizeMin, t.HillSizeMax))

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level))
	}

	return err
}

func checkRange(name string, lo, hi float32) error {
	if lo < 0 {
		return fmt.Errorf("%s_min must not be negative, got %v", name, lo)
	}
	if lo > hi {
		return fmt.Errorf("%s_min %v exceeds %s_max %v", name, lo, name, hi)
	}
	return nil
}
