// Package main is the entry point for the planet generator.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/planetgen/internal/config"
	"github.com/Faultbox/planetgen/internal/logger"
	"github.com/Faultbox/planetgen/internal/terrain"
	"github.com/Faultbox/planetgen/pkg/planet"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== planetgen ===", zap.Uint64("seed", cfg.Terrain.Seed))
	logger.Sugar.Debugf("Config: %+v", cfg)

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			logger.Fatal("saving config failed", zap.Error(err))
		}
		logger.Info("saved config", zap.String("path", path))
	}

	if err := run(cfg); err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
}

func run(cfg *config.Config) error {
	if cfg.Output.OBJPath == "" && cfg.Output.ReportPath == "" {
		logger.Warn("no output paths configured; the planet will not be written")
	}

	p := planet.Icosahedron(cfg.Planet.Radius)
	logger.Debug("seed mesh built",
		zap.Int("vertices", len(p.Vertices)),
		zap.Int("polygons", p.Mesh.Len()))

	res, err := terrain.NewGenerator(cfg, logger.Named("terrain")).Generate(p)
	if err != nil {
		return err
	}

	if path := cfg.Output.OBJPath; path != "" {
		if err := writeFile(path, p.WriteOBJ); err != nil {
			return err
		}
		logger.Info("wrote mesh", zap.String("path", path))
	}

	if path := cfg.Output.ReportPath; path != "" {
		if err := writeFile(path, terrain.BuildReport(res).WriteYAML); err != nil {
			return err
		}
		logger.Info("wrote region report", zap.String("path", path), zap.Int("regions", len(res.Regions)))
	}

	return nil
}

// writeFile creates path (and its directory) and streams into it.
func writeFile(path string, write func(w io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
