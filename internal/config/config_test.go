package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, DefaultCacheTTL, cfg.Validation.CacheTTL)
	assert.Equal(t, DefaultCacheCapacity, cfg.Validation.CacheCapacity)
	assert.Equal(t, DefaultProbeTimeout, cfg.Validation.ProbeTimeout)
	assert.False(t, cfg.Validation.DisableProbes)
	assert.Empty(t, cfg.Namespace)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `
address: ":9090"
namespace: tools
debug: true
validation:
  cacheTTL: 10m
  cacheCapacity: 64
  probeTimeout: 1s
  disableProbes: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Address)
	assert.Equal(t, "tools", cfg.Namespace)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 10*time.Minute, cfg.Validation.CacheTTL)
	assert.Equal(t, 64, cfg.Validation.CacheCapacity)
	assert.Equal(t, time.Second, cfg.Validation.ProbeTimeout)
	assert.True(t, cfg.Validation.DisableProbes)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "namespace: tools\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "tools", cfg.Namespace)
	assert.Equal(t, DefaultAddress, cfg.Address)
	assert.Equal(t, DefaultCacheTTL, cfg.Validation.CacheTTL)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "address: [broken")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config")
}

func TestValidateRejectsNegatives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "negative cache ttl", cfg: Config{Validation: ValidationConfig{CacheTTL: -time.Second}}},
		{name: "negative cache capacity", cfg: Config{Validation: ValidationConfig{CacheCapacity: -1}}},
		{name: "negative probe timeout", cfg: Config{Validation: ValidationConfig{ProbeTimeout: -time.Second}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := tt.cfg
			assert.Error(t, cfg.Validate())
		})
	}
}
