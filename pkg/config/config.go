// Package config handles sumbench configuration via YAML files and
// environment variables.
//
// Configuration Precedence (highest to lowest):
//  1. Command-line flags (--size, --budget, etc.)
//  2. Environment variables (SUMBENCH_*)
//  3. Config file (sumbench.yaml)
//  4. Built-in defaults
//
// Environment Variables (all use SUMBENCH_ prefix):
//   - SUMBENCH_SIZE=10000000
//   - SUMBENCH_SEED=0            (0 = nondeterministic)
//   - SUMBENCH_BUDGET=1s
//   - SUMBENCH_MAX_TRIALS=100
//   - SUMBENCH_WARMUP=true
//   - SUMBENCH_CC=clang          (C compiler override)
//   - SUMBENCH_DISABLE=c/ffi,yaegi/loop
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultSize is the number of float64 samples in the shared input array.
const DefaultSize = 10_000_000

// Config holds all sumbench configuration.
type Config struct {
	// Size is the length of the generated input array.
	Size int `yaml:"size"`

	// Seed seeds the generator when non-zero; 0 means nondeterministic.
	Seed uint64 `yaml:"seed"`

	// Budget is the per-variant wall-clock sampling budget. In YAML it is
	// a duration string ("1s", "250ms").
	Budget time.Duration `yaml:"-"`

	// MaxTrials caps timed trials per variant.
	MaxTrials int `yaml:"max_trials"`

	// Warmup enables the untimed warm-up call before sampling.
	Warmup bool `yaml:"warmup"`

	// CC overrides the C compiler used for the native variant.
	CC string `yaml:"cc"`

	// Disable lists variant labels to skip; skipped variants appear in
	// the table as absent rows.
	Disable []string `yaml:"disable"`

	// Sorted additionally prints the table sorted by best time.
	Sorted bool `yaml:"sorted"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Size:      DefaultSize,
		Budget:    1 * time.Second,
		MaxTrials: 100,
		Warmup:    true,
		Sorted:    true,
	}
}

// FindConfigFile returns the first config file that exists, or "".
// Search order: $SUMBENCH_CONFIG, ./sumbench.yaml, ~/.config/sumbench/sumbench.yaml.
func FindConfigFile() string {
	if p := os.Getenv("SUMBENCH_CONFIG"); p != "" {
		return p
	}
	candidates := []string{"sumbench.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, home+"/.config/sumbench/sumbench.yaml")
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// LoadFromFile reads path (when non-empty), applies environment overrides
// on top, and validates. An empty path loads defaults plus environment.
func LoadFromFile(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
		var file struct {
			Config `yaml:",inline"`
			Budget string `yaml:"budget"`
		}
		file.Config = *cfg
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
		*cfg = file.Config
		if file.Budget != "" {
			d, err := time.ParseDuration(file.Budget)
			if err != nil {
				return nil, fmt.Errorf("config: parsing budget %q: %w", file.Budget, err)
			}
			cfg.Budget = d
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SUMBENCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Size = n
		}
	}
	if v := os.Getenv("SUMBENCH_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v := os.Getenv("SUMBENCH_BUDGET"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Budget = d
		}
	}
	if v := os.Getenv("SUMBENCH_MAX_TRIALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTrials = n
		}
	}
	if v := os.Getenv("SUMBENCH_WARMUP"); v != "" {
		switch strings.ToLower(v) {
		case "true", "1", "yes", "on":
			c.Warmup = true
		case "false", "0", "no", "off":
			c.Warmup = false
		}
	}
	if v := os.Getenv("SUMBENCH_CC"); v != "" {
		c.CC = v
	}
	if v := os.Getenv("SUMBENCH_DISABLE"); v != "" {
		c.Disable = nil
		for _, label := range strings.Split(v, ",") {
			if label = strings.TrimSpace(label); label != "" {
				c.Disable = append(c.Disable, label)
			}
		}
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("config: size must be >= 0, got %d", c.Size)
	}
	if c.Budget <= 0 {
		return fmt.Errorf("config: budget must be positive, got %s", c.Budget)
	}
	if c.MaxTrials <= 0 {
		return fmt.Errorf("config: max_trials must be positive, got %d", c.MaxTrials)
	}
	return nil
}

// Disabled reports whether the given variant label is disabled.
func (c *Config) Disabled(label string) bool {
	for _, d := range c.Disable {
		if d == label {
			return true
		}
	}
	return false
}
