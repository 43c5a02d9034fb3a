package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-app/wayfarer/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.DriverFile, cfg.StoreDriver)
	assert.Equal(t, "wayfarer.json", cfg.DataPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, int64(10<<20), cfg.MaxBodyBytes)
	assert.Empty(t, cfg.SuggestAPIURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("DATA_PATH", "/tmp/wayfarer.db")
	t.Setenv("SUGGEST_API_URL", "https://suggest.example.com/v1")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, config.DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "/tmp/wayfarer.db", cfg.DataPath)
	assert.Equal(t, "https://suggest.example.com/v1", cfg.SuggestAPIURL)
}

func TestLoad_UnknownStoreDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")

	_, err := config.Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "STORE_DRIVER")
}

func TestLoad_InvalidMaxBodyBytes(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "-1")

	_, err := config.Load()

	assert.Error(t, err)
}
