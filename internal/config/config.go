// Package config loads the registry console configuration from a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied by Config.Validate.
const (
	DefaultAddress       = ":8080"
	DefaultCacheTTL      = 5 * time.Minute
	DefaultCacheCapacity = 256
	DefaultProbeTimeout  = 3 * time.Second
)

// Config is the root configuration structure.
type Config struct {
	// Address the HTTP facade listens on
	Address string `yaml:"address"`

	// Namespace restricts operations to a single namespace when set
	Namespace string `yaml:"namespace,omitempty"`

	// Validation configures the source validation layer
	Validation ValidationConfig `yaml:"validation"`

	// Debug enables development logging
	Debug bool `yaml:"debug,omitempty"`
}

// ValidationConfig configures the validation cache and probes.
type ValidationConfig struct {
	// CacheTTL is how long repository validation results are served
	// without re-checking
	CacheTTL time.Duration `yaml:"cacheTTL,omitempty"`

	// CacheCapacity bounds the number of cached repository results
	CacheCapacity int `yaml:"cacheCapacity,omitempty"`

	// ProbeTimeout bounds each best-effort content probe
	ProbeTimeout time.Duration `yaml:"probeTimeout,omitempty"`

	// DisableProbes turns off all speculative network probes
	DisableProbes bool `yaml:"disableProbes,omitempty"`
}

// Load reads and parses a configuration file. A missing path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- path comes from an operator-supplied flag
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Address == "" {
		c.Address = DefaultAddress
	}
	if c.Validation.CacheTTL < 0 {
		return fmt.Errorf("validation.cacheTTL must not be negative")
	}
	if c.Validation.CacheTTL == 0 {
		c.Validation.CacheTTL = DefaultCacheTTL
	}
	if c.Validation.CacheCapacity < 0 {
		return fmt.Errorf("validation.cacheCapacity must not be negative")
	}
	if c.Validation.CacheCapacity == 0 {
		c.Validation.CacheCapacity = DefaultCacheCapacity
	}
	if c.Validation.ProbeTimeout < 0 {
		return fmt.Errorf("validation.probeTimeout must not be negative")
	}
	if c.Validation.ProbeTimeout == 0 {
		c.Validation.ProbeTimeout = DefaultProbeTimeout
	}
	return nil
}
