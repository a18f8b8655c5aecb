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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BACKEND_URL", "PORT", "GIN_MODE", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3007, cfg.Server.Port)
	assert.Equal(t, DefaultBackendURL, cfg.Backend.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 120*time.Second, cfg.FileProxy.Timeout)
	assert.Equal(t, int64(512<<20), cfg.FileProxy.MaxSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  port: 9000
  mode: release
backend:
  base_url: http://backend.local
  timeout: 5s
file_proxy:
  timeout: 1m
logging:
  level: debug
  format: console
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "http://backend.local", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, time.Minute, cfg.FileProxy.Timeout)

	t.Setenv("BACKEND_URL", "http://override.local")
	t.Setenv("PORT", "8081")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://override.local", cfg.Backend.BaseURL)
	assert.Equal(t, 8081, cfg.Server.Port)
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig(writeConfig(t, "server: [unclosed"))
	assert.Error(t, err)

	t.Setenv("PORT", "eighty")
	_, err = LoadConfig(writeConfig(t, ""))
	assert.Error(t, err)
}
