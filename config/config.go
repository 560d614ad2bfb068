// Package config loads solver and scene settings from YAML.
package config

import (
	"math"
	"os"

	"github.com/osuushi/separator/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Bounds struct {
	MinX float64 `yaml:"min_x"`
	MinY float64 `yaml:"min_y"`
	MaxX float64 `yaml:"max_x"`
	MaxY float64 `yaml:"max_y"`
}

type Config struct {
	// "running" or "static"
	Policy string `yaml:"policy"`
	// Zero compares coordinates exactly
	Tolerance   float64 `yaml:"tolerance"`
	BoundedLine bool    `yaml:"bounded_line"`
	Workers     int     `yaml:"workers"`
	Bounds      Bounds  `yaml:"bounds"`
	// Zero seeds random scenes from the clock
	Seed int64 `yaml:"seed"`
}

func Default() Config {
	return Config{
		Policy:  internal.RunningMinimum.String(),
		Workers: 4,
		Bounds:  Bounds{MinX: -10, MinY: -10, MaxX: 10, MaxY: 10},
	}
}

// Load reads a YAML file on top of the defaults. Fields missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %q", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %q", path)
	}
	return cfg, nil
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parsing yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := ParsePolicy(c.Policy); err != nil {
		return err
	}
	if math.IsNaN(c.Tolerance) || c.Tolerance < 0 {
		return errors.Errorf("tolerance must not be negative, got %v", c.Tolerance)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if !(c.Bounds.MinX < c.Bounds.MaxX && c.Bounds.MinY < c.Bounds.MaxY) {
		return errors.Errorf("bounds are empty: %+v", c.Bounds)
	}
	return nil
}

func ParsePolicy(name string) (internal.ThresholdPolicy, error) {
	for _, policy := range []internal.ThresholdPolicy{internal.RunningMinimum, internal.StaticThreshold} {
		if policy.String() == name {
			return policy, nil
		}
	}
	return 0, errors.Errorf("unknown policy %q, expected %q or %q", name, internal.RunningMinimum, internal.StaticThreshold)
}

// Options converts the config into solver options. The config must be valid.
func (c Config) Options() internal.Options {
	policy, _ := ParsePolicy(c.Policy)
	return internal.Options{
		Policy:      policy,
		Comparer:    internal.Tolerant(c.Tolerance),
		BoundedLine: c.BoundedLine,
	}
}
