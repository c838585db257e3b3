package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL())
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.RefreshTokenTTL())
	assert.Equal(t, 15*time.Minute, cfg.Storage.URLTTL())
	assert.Equal(t, 5*time.Minute, cfg.Storage.URLRefreshMargin())
	assert.Equal(t, 200*time.Millisecond, cfg.Scheduler.BatchDelay())
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "02:00", cfg.Scheduler.DailyRunTime)
}

func TestLoadConfig(t *testing.T) {
	yaml := `
server:
  port: 9000
database:
  host: db.internal
  database: propo_test
scheduler:
  enabled: false
  daily_run_time: "04:30"
  batch_size: 10
rate_limit:
  enabled: false
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "propo_test", cfg.Database.Database)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "04:30", cfg.Scheduler.DailyRunTime)
	assert.Equal(t, 10, cfg.Scheduler.BatchSize)
	assert.False(t, cfg.RateLimit.Enabled)

	// Untouched sections keep defaults.
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 15, cfg.Storage.URLTTLMinutes)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoad_DefaultPathFallsBackWhenAbsent(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoad_DefaultPathReadsConfigYAML(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("config.yaml", []byte("server:\n  port: 9100\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "env-db")
	t.Setenv("ACCESS_TOKEN_SECRET", "env-secret")
	t.Setenv("STORAGE_ROOT", "/var/propo")

	cfg := FromEnv()

	assert.Equal(t, "env-db", cfg.Database.Host)
	assert.Equal(t, "env-secret", cfg.Auth.AccessTokenSecret)
	assert.Equal(t, "/var/propo", cfg.Storage.Root)
}
