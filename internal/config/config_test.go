package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stateboard/stateboard/internal/config"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.Listen)
	assert.Equal(t, config.DriverMemory, cfg.Store.Driver)
	assert.Equal(t, config.MirrorOff, cfg.Mirror)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
listen: ":9090"
log:
  level: debug
  format: json
store:
  driver: redis
  redis:
    addr: "redis:6379"
    db: 2
mirror: resync
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, config.DriverRedis, cfg.Store.Driver)
	assert.Equal(t, "redis:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, 2, cfg.Store.Redis.DB)
	assert.Equal(t, config.MirrorResync, cfg.Mirror)

	// Untouched fields keep their defaults.
	assert.Equal(t, "stateboard.db", cfg.Store.Path)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	_, err := config.Load(writeConfig(t, "store:\n  driver: dynamo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dynamo")
}

func TestLoad_RejectsUnknownMirrorMode(t *testing.T) {
	_, err := config.Load(writeConfig(t, "mirror: shadow\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shadow")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
