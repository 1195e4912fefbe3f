// Package config loads and validates the YAML settings shared by the
// front-ends, the tuner and the stress tool.
package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/plus3/autotris/tetris"
)

// Config is the on-disk configuration.
type Config struct {
	// Seed seeds the bag shuffle. Zero picks a time based seed.
	Seed     uint64         `yaml:"seed"`
	Autoplay bool           `yaml:"autoplay"`
	Ghost    bool           `yaml:"ghost"`
	Timing   tetris.Timing  `yaml:"timing"`
	Weights  tetris.Weights `yaml:"weights"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Ghost:   true,
		Timing:  tetris.DefaultTiming(),
		Weights: tetris.DefaultWeights(),
	}
}

// Load reads path over the defaults, so a file only needs the keys it changes.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "validating %s", path)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0o644), "writing config")
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var result *multierror.Error

	positive := func(name string, d time.Duration) {
		if d <= 0 {
			result = multierror.Append(result, fmt.Errorf("timing.%s must be positive, got %s", name, d))
		}
	}
	positive("fall_interval", c.Timing.FallInterval)
	positive("soft_fall_interval", c.Timing.SoftFallInterval)
	positive("autoplay_interval", c.Timing.AutoplayInterval)

	if c.Timing.SoftFallInterval > c.Timing.FallInterval {
		result = multierror.Append(result, fmt.Errorf("timing.soft_fall_interval %s exceeds fall_interval %s",
			c.Timing.SoftFallInterval, c.Timing.FallInterval))
	}

	names := [tetris.WeightCount]string{"line_clear", "height_difference", "height", "holes", "horizontal_holes"}
	for i, w := range c.Weights.Vector() {
		if w < 0 || math.IsNaN(float64(w)) {
			result = multierror.Append(result, fmt.Errorf("weights.%s must be a non-negative number, got %v", names[i], w))
		}
	}

	return result.ErrorOrNil()
}

// GameOptions translates the configuration into game options.
func (c Config) GameOptions() []tetris.Option {
	opts := []tetris.Option{
		tetris.WithTiming(c.Timing),
		tetris.WithWeights(c.Weights),
		tetris.WithAutoplay(c.Autoplay),
	}
	if c.Seed != 0 {
		opts = append(opts, tetris.WithSeed(c.Seed))
	}
	return opts
}
