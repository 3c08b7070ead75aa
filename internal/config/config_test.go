package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Engine.MaxExposure != 0.3 {
		t.Errorf("max_exposure = %f, want default 0.3", cfg.Engine.MaxExposure)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %s, want :8080", cfg.Server.Addr)
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
	if cfg.Engine.BKT.Learn != 0.3 {
		t.Errorf("bkt learn = %f, want default 0.3", cfg.Engine.BKT.Learn)
	}
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caliber.yaml")
	body := []byte("engine:\n  elo_k: 24\n  max_exposure: 0.5\nserver:\n  addr: \":9000\"\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine.EloK != 24 {
		t.Errorf("elo_k = %f, want 24", cfg.Engine.EloK)
	}
	if cfg.Engine.MaxExposure != 0.5 {
		t.Errorf("max_exposure = %f, want 0.5", cfg.Engine.MaxExposure)
	}
	// Untouched sections keep their defaults.
	if cfg.Engine.BKT.Guess != 0.25 {
		t.Errorf("bkt guess = %f, want default 0.25", cfg.Engine.BKT.Guess)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("addr = %s, want :9000", cfg.Server.Addr)
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caliber.yaml")
	if err := os.WriteFile(path, []byte("engine:\n  elo_k: -3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("negative elo_k should be rejected")
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caliber.yaml")
	if err := os.WriteFile(path, []byte("engine: [malformed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml should be rejected")
	}
}
