// Package config loads the command-line settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb/hillclimb"
)

// Environment variables consulted by Load.
const (
	EnvConfigPath = "HILLCLIMB_CONFIG"
	EnvInput      = "HILLCLIMB_INPUT"
	EnvAlgorithm  = "HILLCLIMB_ALGORITHM"
	EnvLogLevel   = "HILLCLIMB_LOG_LEVEL"

	// DefaultPath is read when neither an explicit path nor EnvConfigPath is set.
	DefaultPath = "hillclimb.yaml"
)

// ErrInvalid indicates a configuration value failed validation.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the command settings.
type Config struct {
	// Input is the grid file path; "-" reads standard input.
	Input string `yaml:"input"`
	// Part selects the answer to print: 1, 2, or 0 for both.
	Part int `yaml:"part"`
	// Algorithm is "dijkstra" or "bfs".
	Algorithm string `yaml:"algorithm"`
	// Render prints the route from S to E below the answers.
	Render   bool   `yaml:"render"`
	LogLevel string `yaml:"log_level"`
}

// Load reads the YAML file at path, applies environment overrides and
// defaults, and validates the result. An empty path falls back to
// EnvConfigPath and then DefaultPath; a missing DefaultPath is not an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv(EnvAlgorithm); v != "" {
		cfg.Algorithm = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Input == "" {
		cfg.Input = "-"
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = string(hillclimb.Dijkstra)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = zerolog.InfoLevel.String()
	}
}

// Validate checks the part number, algorithm and log level.
func (c *Config) Validate() error {
	if c.Part < 0 || c.Part > 2 {
		return fmt.Errorf("%w: part must be 0, 1 or 2, got %d", ErrInvalid, c.Part)
	}
	if _, err := hillclimb.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}
