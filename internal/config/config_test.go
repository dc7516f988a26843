package config_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lorrc/restaurant-console/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(context.Background(), map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, ":5000", cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.AccessTokenTTL)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.True(t, cfg.DevAPI.Seed)
	assert.False(t, cfg.UsesDatabase())
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadFrom_SessionFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)

	t.Run("defaults to the user config directory", func(t *testing.T) {
		cfg, err := config.LoadFrom(context.Background(), map[string]string{})
		require.NoError(t, err)

		want := config.DefaultSessionFile()
		require.NotEmpty(t, want)
		assert.Equal(t, want, cfg.Session.File)
		assert.Equal(t, "session.json", filepath.Base(cfg.Session.File))
		assert.Equal(t, "restaurant-console", filepath.Base(filepath.Dir(cfg.Session.File)))
		assert.True(t, strings.HasPrefix(cfg.Session.File, dir))
	})

	t.Run("explicit file wins", func(t *testing.T) {
		cfg, err := config.LoadFrom(context.Background(), map[string]string{"CONSOLE_SESSION_FILE": "/tmp/ops/session.json"})
		require.NoError(t, err)
		assert.Equal(t, "/tmp/ops/session.json", cfg.Session.File)
	})

	t.Run("in memory opts out", func(t *testing.T) {
		cfg, err := config.LoadFrom(context.Background(), map[string]string{
			"CONSOLE_SESSION_FILE":      "/tmp/ops/session.json",
			"CONSOLE_SESSION_IN_MEMORY": "true",
		})
		require.NoError(t, err)
		assert.Empty(t, cfg.Session.File)
	})
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(context.Background(), map[string]string{
		"API_BASE_URL":         "https://api.example.com/api",
		"API_TIMEOUT":          "3s",
		"CORS_ALLOWED_ORIGINS": "http://localhost:3000,http://localhost:5173",
		"DATABASE_URL":         "postgres://u:p@db:5432/console",
		"LOG_FORMAT":           "text",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.UsesDatabase())
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Run("bad base url", func(t *testing.T) {
		_, err := config.LoadFrom(context.Background(), map[string]string{"API_BASE_URL": "localhost:5000"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API_BASE_URL must start with")
	})

	t.Run("production requires strong secret and invite code", func(t *testing.T) {
		_, err := config.LoadFrom(context.Background(), map[string]string{
			"APP_ENV":    "production",
			"JWT_SECRET": "short",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET must be at least 32 characters")
		assert.Contains(t, err.Error(), "REGISTRATION_INVITE_CODE must be set")
	})

	t.Run("unparseable duration", func(t *testing.T) {
		_, err := config.LoadFrom(context.Background(), map[string]string{"API_TIMEOUT": "soon"})
		require.Error(t, err)
	})
}

func TestConfig_StringRedactsSecrets(t *testing.T) {
	cfg, err := config.LoadFrom(context.Background(), map[string]string{
		"DATABASE_URL":             "postgres://user:hunter2@db:5432/console",
		"REGISTRATION_INVITE_CODE": "letmein",
	})
	require.NoError(t, err)

	s := cfg.String()
	assert.NotContains(t, s, "hunter2")
	assert.NotContains(t, s, "letmein")
	assert.Contains(t, s, "@db:5432/console")
}
