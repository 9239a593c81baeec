package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "DATABASE_PATH", "APP_ENV", "REQUEST_TIMEOUT", "STORAGE_TIMEOUT",
	} {
		t.Setenv(key, "") // регистрирует откат исходного значения
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "foodly.db", cfg.DatabasePath)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.StorageTimeout)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_PATH", "/var/lib/foodly/data.db")
	t.Setenv("APP_ENV", "production")
	t.Setenv("REQUEST_TIMEOUT", "10s")
	t.Setenv("STORAGE_TIMEOUT", "2s")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "/var/lib/foodly/data.db", cfg.DatabasePath)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.StorageTimeout)
}
