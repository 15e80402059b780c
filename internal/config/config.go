// Package config holds the grader's run configuration: built-in defaults,
// optionally overlaid by a YAML file, then by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every configuration validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full run configuration.
type Config struct {
	// Seed drives every random choice: flounder walks and tile scrambles.
	Seed int64 `yaml:"seed"`

	// FlounderGiveUp bounds flounder's random walk; 0 selects the default.
	FlounderGiveUp int `yaml:"flounder_give_up" validate:"gte=0"`

	// MaxExpansions bounds every search run; 0 means unlimited.
	MaxExpansions int `yaml:"max_expansions" validate:"gte=0"`

	// RunTimeout bounds the wall-clock time of every search run; 0 means unlimited.
	RunTimeout time.Duration `yaml:"run_timeout" validate:"gte=0"`

	// Concurrency is the number of students graded at once.
	Concurrency int `yaml:"concurrency" validate:"gte=1,lte=64"`

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`
	NoColor   bool   `yaml:"no_color"`

	// Debounce coalesces bursts of file events in watch mode.
	Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
}

var validate = validator.New()

// Default returns the built-in configuration: unlimited, sequential runs
// with a fixed seed.
func Default() Config {
	return Config{
		Seed:        1,
		Concurrency: 1,
		LogLevel:    "warn",
		LogFormat:   "text",
		Debounce:    200 * time.Millisecond,
	}
}

// Load overlays the YAML file at path on the defaults and validates the
// result. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(src, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
