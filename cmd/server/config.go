package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/Ko-stant/house-layout-engine/internal/geometry"
	"github.com/Ko-stant/house-layout-engine/internal/layout"
)

// ServerConfig holds the settings read from the environment
type ServerConfig struct {
	Port            string
	ConfigPath      string
	Preset          string
	Seed            int64
	FootprintPath   string
	MetricsInterval time.Duration
}

// LoadServerConfigFromEnv reads APP_PORT, LAYOUT_CONFIG, LAYOUT_PRESET,
// LAYOUT_SEED, FOOTPRINT_FILE and METRICS_INTERVAL through getenv.
func LoadServerConfigFromEnv(getenv func(string) string) (ServerConfig, error) {
	cfg := ServerConfig{
		Port:          getenv("APP_PORT"),
		ConfigPath:    getenv("LAYOUT_CONFIG"),
		Preset:        getenv("LAYOUT_PRESET"),
		FootprintPath: getenv("FOOTPRINT_FILE"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Preset == "" {
		cfg.Preset = "default"
	}

	if raw := getenv("LAYOUT_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid LAYOUT_SEED %q: %w", raw, err)
		}
		cfg.Seed = seed
	}
	if raw := getenv("METRICS_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid METRICS_INTERVAL %q: %w", raw, err)
		}
		cfg.MetricsInterval = interval
	}
	return cfg, nil
}

// LayoutConfig resolves the generation config: a config file wins over a
// preset. The seed is applied on top of either.
func (c ServerConfig) LayoutConfig() (layout.Config, error) {
	var cfg layout.Config
	var err error
	if c.ConfigPath != "" {
		cfg, err = layout.LoadConfigFromFile(c.ConfigPath)
	} else {
		cfg, err = layout.Preset(c.Preset)
	}
	if err != nil {
		return cfg, err
	}
	if c.Seed != 0 {
		cfg.Seed = c.Seed
	}
	return cfg, nil
}

// Footprint loads the authored outline, or returns nil when none is configured.
func (c ServerConfig) Footprint() (*geometry.TileSet, error) {
	if c.FootprintPath == "" {
		return nil, nil
	}
	def, err := geometry.LoadFootprintFromFile(c.FootprintPath)
	if err != nil {
		return nil, err
	}
	tiles, err := def.TileSet()
	if err != nil {
		return nil, fmt.Errorf("footprint %s: %w", c.FootprintPath, err)
	}
	return &tiles, nil
}
