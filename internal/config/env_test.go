package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	env, err := LoadEnv(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, DriverMySQL, env.DBDriver)
	assert.Equal(t, defaultMySQLDSN, env.DBDSN)
	assert.Equal(t, time.Hour, env.AccessTTL)
	assert.Equal(t, 5*24*time.Hour, env.RefreshTTL)
	assert.Contains(t, env.CORSAllowedOrigins, "http://localhost:3000")
}

func TestLoadEnvFromEnvironment(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("ACCESS_TOKEN_TTL", "1800")
	t.Setenv("REFRESH_TOKEN_TTL", "48h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://ats.example.com, ,https://admin.example.com")

	env, err := LoadEnv(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":9090", env.AppAddr)
	assert.Equal(t, DriverPostgres, env.DBDriver)
	assert.Equal(t, defaultPostgresDSN, env.DBDSN)
	assert.Equal(t, 30*time.Minute, env.AccessTTL)
	assert.Equal(t, 48*time.Hour, env.RefreshTTL)
	assert.Equal(t, []string{"https://ats.example.com", "https://admin.example.com"}, env.CORSAllowedOrigins)
}

func TestLoadEnvConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "app:\n  addr: \":7000\"\njwt:\n  secret: from-file\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	t.Setenv("LOG_LEVEL", "warn")

	env, err := LoadEnv(dir)
	require.NoError(t, err)
	assert.Equal(t, ":7000", env.AppAddr)
	assert.Equal(t, "from-file", env.JWTSecret)
	assert.Equal(t, "warn", env.LogLevel)
}

func TestLoadEnvRejectsBadValues(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	_, err := LoadEnv(t.TempDir())
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("ACCESS_TOKEN_TTL", "-5")
	_, err = LoadEnv(t.TempDir())
	assert.Error(t, err)
}
