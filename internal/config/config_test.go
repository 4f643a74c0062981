package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"textkit/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
environment: production
http:
  addr: ":9090"
  requestTimeout: 5s
jwt:
  secret: test-secret
gracefulShutdownTimeout: 3s
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
	require.Equal(t, "test-secret", cfg.JWT.Secret)
	require.Equal(t, 3*time.Second, cfg.GracefulShutdownTimeout)

	// unset fields fall back to env-defaults
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, time.Minute, cfg.HTTP.ReadTimeout)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, `
http:
  addr: ":9090"
`)

	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Addr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
