package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `{"width": 12, "height": 9, "wrap": false, "seed_mode": "noise", "workers": 4}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Width != 12 || config.Height != 9 || config.Wrap || config.SeedMode != SeedModeNoise || config.Workers != 4 {
		t.Fatalf("file values not applied: %+v", config)
	}
	if config.FrameRate != DefaultConfig().FrameRate || config.HistorySize != DefaultConfig().HistorySize {
		t.Fatalf("defaults lost: %+v", config)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("missing file err = %v, want not-exist", err)
	}

	if _, err := LoadConfig(writeConfig(t, `{"width": `)); err == nil {
		t.Fatalf("malformed JSON should fail")
	}

	if _, err := LoadConfig(writeConfig(t, `{"width": 0}`)); errors.Cause(err) != ErrInvalidConfig {
		t.Fatalf("zero width err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Second }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"unknown seed mode", func(c *Config) { c.SeedMode = "glider-gun" }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.2 }},
		{"zero noise scale", func(c *Config) { c.NoiseScale = 0 }},
		{"negative injection", func(c *Config) { c.InjectionCount = -3 }},
		{"zero stagnation threshold", func(c *Config) { c.StagnationThreshold = 0 }},
		{"empty history", func(c *Config) { c.HistorySize = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)
			if err := config.Validate(); errors.Cause(err) != ErrInvalidConfig {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestCycleDetector(t *testing.T) {
	d := NewCycleDetector(3)

	for _, h := range []string{"a", "b", "c"} {
		if p := d.Observe(h); p != 0 {
			t.Fatalf("first sighting of %s reported period %d", h, p)
		}
	}
	if p := d.Observe("c"); p != 1 {
		t.Fatalf("still life period = %d, want 1", p)
	}
	if p := d.Observe("a"); p != 0 {
		t.Fatalf("a should have aged out, got period %d", p)
	}
	if p := d.Observe("c"); p != 2 {
		t.Fatalf("oscillator period = %d, want 2", p)
	}

	d.Reset()
	if p := d.Observe("c"); p != 0 {
		t.Fatalf("Reset kept history, got period %d", p)
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 50, 200, 100*time.Millisecond)
	if s.Density != 25 || s.AveragePopulation != 50 || s.TotalGenerations != 1 {
		t.Fatalf("unexpected stats after first update: %+v", s)
	}
	if s.GenerationsPerSecond < 9.99 || s.GenerationsPerSecond > 10.01 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}

	s.Update(2, 150, 200, 0)
	if s.AveragePopulation < 59.99 || s.AveragePopulation > 60.01 {
		t.Fatalf("AveragePopulation = %v, want 60", s.AveragePopulation)
	}
}
