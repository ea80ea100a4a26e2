package providers

import (
	"gritd/internal/structures"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYaml = `
webServer:
  host: 127.0.0.1
  port: 9000
persistence:
  driver: file
  filePath: /tmp/grit/storage.json
  compress: true
  refreshInterval: 30s
logger:
  level: debug
  mode: 0644
  dir: /tmp/grit/logs
tracker:
  timeZone: Europe/Berlin
cache:
  enabled: true
  size: 8
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfigProvider_ReadsFile(t *testing.T) {
	path := writeConfig(t, testConfigYaml)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, AppName, conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, 9000, conf.WebServer.Port)
	assert.Equal(t, "/tmp/grit/storage.json", conf.Persistence.FilePath)
	assert.True(t, conf.Persistence.Compress)
	assert.Equal(t, 30*time.Second, conf.Persistence.RefreshInterval)
	assert.Equal(t, "Europe/Berlin", conf.Tracker.TimeZone)
	assert.Equal(t, 7, conf.Tracker.TrendDays)
	assert.Equal(t, time.Minute, conf.Cache.TTL)
}

func TestNewConfigProvider_EnvOverrides(t *testing.T) {
	path := writeConfig(t, testConfigYaml)
	t.Setenv("GRIT_STORAGE_PATH", "/tmp/other/grit.db")
	t.Setenv("GRIT_STORAGE_DRIVER", "sqlite")
	t.Setenv("GRIT_LOG_LEVEL", "warn")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other/grit.db", conf.Persistence.FilePath)
	assert.Equal(t, "sqlite", conf.Persistence.Driver)
	assert.Equal(t, "warn", conf.Logger.Level)
}

func TestNewConfigProvider_DotEnv(t *testing.T) {
	path := writeConfig(t, testConfigYaml)
	envFile := filepath.Join(filepath.Dir(path), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("GRIT_TIMEZONE=UTC\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("GRIT_TIMEZONE") })

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "UTC", conf.Tracker.TimeZone)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}

func TestNewConfigProvider_InvalidConfig(t *testing.T) {
	path := writeConfig(t, `
webServer:
  host: 127.0.0.1
persistence:
  driver: redis
  filePath: /tmp/grit.json
logger:
  dir: /tmp/logs
`)
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}
