// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqguard/internal/rules"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seqguard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, rules.DefaultParams(), p)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
threads: 4
mode: stream
output: json
encoding: phred64
quality:
  max: 104
canonical_bases: acgtu
fail_exit_code: 7
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Threads)
	assert.Equal(t, "stream", cfg.Mode)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 7, cfg.FailExitCode)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep defaults")

	p, err := cfg.Params()
	require.NoError(t, err)
	assert.Equal(t, rune(64), p.MinQual)
	assert.Equal(t, rune(104), p.MaxQual)
	assert.Equal(t, "ACGTU", p.Canonical)
	assert.Equal(t, "@>", p.HeaderPrefixes)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "threads: [1, 2"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("env beats file", func(t *testing.T) {
		t.Setenv("SEQGUARD_THREADS", "3")
		t.Setenv("SEQGUARD_MODE", "stream")
		cfg, err := Load(writeConfig(t, "threads: 8\nmode: batch\n"))
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.Threads)
		assert.Equal(t, "stream", cfg.Mode)
	})

	t.Run("bad thread count", func(t *testing.T) {
		t.Setenv("SEQGUARD_THREADS", "many")
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("log level", func(t *testing.T) {
		t.Setenv("SEQGUARD_LOG_LEVEL", "debug")
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"negative threads": func(c *Config) { c.Threads = -1 },
		"bad mode":         func(c *Config) { c.Mode = "turbo" },
		"bad output":       func(c *Config) { c.Output = "xml" },
		"bad exit code":    func(c *Config) { c.FailExitCode = 300 },
		"bad encoding":     func(c *Config) { c.Encoding = "solexa" },
		"empty canonical":  func(c *Config) { c.CanonicalBases = "" },
		"inverted range":   func(c *Config) { c.Quality = QualityConfig{Min: 100, Max: 40} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
