package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

const (
	// SeedModeRandom seeds every cell independently with RandomDensity
	SeedModeRandom = "random"
	// SeedModeNoise seeds cells where Perlin noise exceeds NoiseThreshold
	SeedModeNoise = "noise"
)

// ErrInvalidConfig is the cause of every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	Wrap                bool          `json:"wrap"`
	FrameRate           time.Duration `json:"frame_rate"`
	MaxGenerations      int           `json:"max_generations"`
	Workers             int           `json:"workers"`
	Seed                int64         `json:"seed"`
	SeedMode            string        `json:"seed_mode"`
	RandomDensity       float64       `json:"random_density"`
	NoiseScale          float64       `json:"noise_scale"`
	NoiseThreshold      float64       `json:"noise_threshold"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	InjectionCount      int           `json:"injection_count"`
	HistorySize         int           `json:"history_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		Wrap:                true,
		FrameRate:           150 * time.Millisecond,
		MaxGenerations:      1000,
		Workers:             1,
		Seed:                0, // 0 picks a time-based seed
		SeedMode:            SeedModeRandom,
		RandomDensity:       0.15,
		NoiseScale:          8,
		NoiseThreshold:      0.1,
		AutoRestart:         true,
		StagnationThreshold: 5,
		InjectionCount:      3,
		HistorySize:         5,
	}
}

// LoadConfig loads configuration from JSON file, overlaying the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting the driver cannot run with
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "grid must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must not be negative, got %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Workers < 1:
		return errors.Wrapf(ErrInvalidConfig, "workers must be at least 1, got %d", c.Workers)
	case c.SeedMode != SeedModeRandom && c.SeedMode != SeedModeNoise:
		return errors.Wrapf(ErrInvalidConfig, "unknown seed_mode %q", c.SeedMode)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random_density must be within [0,1], got %v", c.RandomDensity)
	case c.NoiseScale <= 0:
		return errors.Wrapf(ErrInvalidConfig, "noise_scale must be positive, got %v", c.NoiseScale)
	case c.StagnationThreshold < 1:
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	case c.InjectionCount < 0:
		return errors.Wrapf(ErrInvalidConfig, "injection_count must not be negative, got %d", c.InjectionCount)
	case c.HistorySize < 1:
		return errors.Wrapf(ErrInvalidConfig, "history_size must be at least 1, got %d", c.HistorySize)
	}
	return nil
}
