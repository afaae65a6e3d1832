package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "database:\n  path: "+filepath.Join(dir, "data", "marina.db")+"\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultDocks, cfg.Marina.Docks)
	assert.Equal(t, "Reservations", cfg.Sheets.SheetName)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL())
	assert.Equal(t, 30*time.Minute, cfg.SessionTimeout())
	assert.Equal(t, 24*time.Hour, cfg.BackupInterval())

	rate, burst := cfg.RateLimit()
	assert.Equal(t, float64(10), rate)
	assert.Equal(t, 20, burst)
}

func TestLoadExpandsEnv(t *testing.T) {
	t.Setenv("MARINA_API_KEY", "secret-key")
	dir := t.TempDir()
	path := writeConfig(t, `
server:
  port: 9090
  api_key: ${MARINA_API_KEY}
database:
  path: `+filepath.Join(dir, "marina.db")+`
marina:
  docks: ["102", "112"]
redis:
  enabled: true
  address: localhost:6379
  cache_ttl_seconds: 60
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "secret-key", cfg.Server.APIKey)
	assert.Equal(t, []string{"102", "112"}, cfg.Marina.Docks)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.CacheTTL())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}
