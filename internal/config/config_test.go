package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("SCAN_LIMIT", "")
	t.Setenv("SCAN_MODE", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scan.Limit != 25 {
		t.Errorf("default limit = %d, want 25", cfg.Scan.Limit)
	}
	if cfg.Scan.MinMarketCap != 5 {
		t.Errorf("default min market cap = %v, want 5", cfg.Scan.MinMarketCap)
	}
	if cfg.Schedule.Mode != "once" {
		t.Errorf("default mode = %q, want once", cfg.Schedule.Mode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("scan:\n  limit: 50\n  chart_dir: out/charts\nschedule:\n  mode: daemon\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SCAN_LIMIT", "100")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scan.Limit != 100 {
		t.Errorf("env override lost, limit = %d, want 100", cfg.Scan.Limit)
	}
	if cfg.Scan.ChartDir != "out/charts" {
		t.Errorf("chart_dir = %q, want out/charts", cfg.Scan.ChartDir)
	}
	if cfg.AI.APIKey != "test-key" {
		t.Errorf("api key = %q, want test-key", cfg.AI.APIKey)
	}
	if cfg.Schedule.Mode != "daemon" {
		t.Errorf("mode = %q, want daemon", cfg.Schedule.Mode)
	}
}

func TestValidate_RejectsUnsupportedLimit(t *testing.T) {
	base := func(limit int) *Config {
		cfg := &Config{}
		cfg.Scan.Limit = limit
		cfg.Scan.MinMarketCap = 5
		cfg.Schedule.Mode = "once"
		return cfg
	}
	for _, limit := range []int{7, 30, 1000} {
		if err := base(limit).Validate(); err == nil {
			t.Errorf("Validate() accepted limit %d", limit)
		}
	}
	for _, limit := range SupportedLimits {
		if err := base(limit).Validate(); err != nil {
			t.Errorf("Validate() rejected supported limit %d: %v", limit, err)
		}
	}
}
