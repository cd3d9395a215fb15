// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seqguard/internal/rules"
)

// Config holds seqguard settings loaded from a YAML file.
type Config struct {
	// Execution
	Threads int    `yaml:"threads"` // 0 = all CPUs
	Mode    string `yaml:"mode"`    // batch | stream

	// Output
	Output       string `yaml:"output"` // text | json
	FailExitCode int    `yaml:"fail_exit_code"`

	// Rule constants
	Encoding       string        `yaml:"encoding"` // phred33 | phred64
	Quality        QualityConfig `yaml:"quality"`
	CanonicalBases string        `yaml:"canonical_bases"`
	HeaderPrefixes string        `yaml:"header_prefixes"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// QualityConfig overrides the encoding's code point bounds when non-zero.
type QualityConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Threads:        0,
		Mode:           "batch",
		Output:         "text",
		FailExitCode:   1,
		Encoding:       rules.EncodingPhred33,
		CanonicalBases: rules.DefaultCanonical,
		HeaderPrefixes: rules.DefaultHeaderPrefixes,
		LogLevel:       "warn",
	}
}

// Load reads path over the defaults and applies environment overrides.
// An empty path yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies SEQGUARD_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SEQGUARD_THREADS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SEQGUARD_THREADS: %w", err)
		}
		c.Threads = n
	}
	if v := os.Getenv("SEQGUARD_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("SEQGUARD_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	return nil
}

// Params resolves the rule constants described by the config.
func (c *Config) Params() (rules.Params, error) {
	lo, hi, err := rules.QualityRange(c.Encoding)
	if err != nil {
		return rules.Params{}, err
	}
	if c.Quality.Min != 0 {
		lo = rune(c.Quality.Min)
	}
	if c.Quality.Max != 0 {
		hi = rune(c.Quality.Max)
	}
	p := rules.Params{
		MinQual:        lo,
		MaxQual:        hi,
		Canonical:      strings.ToUpper(c.CanonicalBases),
		HeaderPrefixes: c.HeaderPrefixes,
	}
	return p, p.Validate()
}

// Validate checks settings that do not depend on the rule constants.
func (c *Config) Validate() error {
	if c.Threads < 0 {
		return fmt.Errorf("threads must be ≥ 0")
	}
	switch c.Mode {
	case "batch", "stream":
	default:
		return fmt.Errorf("invalid mode %q", c.Mode)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output %q", c.Output)
	}
	if c.FailExitCode < 0 || c.FailExitCode > 255 {
		return fmt.Errorf("fail exit code must be between 0 and 255")
	}
	_, err := c.Params()
	return err
}
