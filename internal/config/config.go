// Package config loads the optional YAML tuning file. Every field has
// a working default, so a missing file is not an error.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mpetrov/caliber/internal/engine"
)

// Config is the full application configuration.
type Config struct {
	Engine    engine.Config `yaml:"engine"`
	Server    Server        `yaml:"server"`
	Snapshots Snapshots     `yaml:"snapshots"`
}

// Server configures the HTTP facade.
type Server struct {
	Addr string `yaml:"addr"`
}

// Snapshots configures persistence behavior.
type Snapshots struct {
	// Keep bounds how many snapshots survive pruning.
	Keep int `yaml:"keep"`
	// AutosaveMinutes saves a snapshot periodically while serving.
	// Zero disables periodic saves; a snapshot is always written on
	// shutdown.
	AutosaveMinutes int `yaml:"autosave_minutes"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Engine: engine.DefaultConfig(),
		Server: Server{Addr: ":8080"},
		Snapshots: Snapshots{
			Keep:            10,
			AutosaveMinutes: 5,
		},
	}
}

// Load reads the configuration at path, filling unset fields with
// defaults. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := validate(cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg Config) error {
	p := cfg.Engine.BKT
	for name, v := range map[string]float64{
		"learn": p.Learn, "slip": p.Slip, "guess": p.Guess, "forget": p.Forget,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("bkt %s out of range: %f", name, v)
		}
	}
	if cfg.Engine.EloK <= 0 {
		return fmt.Errorf("elo_k must be positive: %f", cfg.Engine.EloK)
	}
	if cfg.Engine.MaxExposure <= 0 || cfg.Engine.MaxExposure > 1 {
		return fmt.Errorf("max_exposure out of range: %f", cfg.Engine.MaxExposure)
	}
	if cfg.Snapshots.Keep < 1 {
		return fmt.Errorf("snapshots.keep must be at least 1: %d", cfg.Snapshots.Keep)
	}
	return nil
}
