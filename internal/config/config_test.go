package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDatabaseEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DATABASE_URL", "POSTGRES_URL", "PGDATABASE_URL", "PGHOST", "PGPORT", "PGUSER", "PGPASSWORD", "PGDATABASE"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearDatabaseEnv(t)
	t.Setenv("WEATHER_API_KEY", "secret")
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("WEATHER_BASE_URL", "")
	t.Setenv("DB_AUTO_MIGRATE", "")
	t.Setenv("SERVER_READ_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.WeatherAPIKey)
	assert.Equal(t, "https://api.openweathermap.org", cfg.WeatherBaseURL)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.AutoMigrate)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.Equal(t, "postgres://postgres@localhost:5432/picnic?sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_MissingWeatherKey(t *testing.T) {
	clearDatabaseEnv(t)
	t.Setenv("WEATHER_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WeatherAPIKey")
}

func TestLoad_DatabaseURLPriority(t *testing.T) {
	clearDatabaseEnv(t)
	t.Setenv("WEATHER_API_KEY", "secret")
	t.Setenv("POSTGRES_URL", "postgres://second")
	t.Setenv("DATABASE_URL", "postgres://first")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://first", cfg.DatabaseURL)
}

func TestLoad_DatabaseURLFromParts(t *testing.T) {
	clearDatabaseEnv(t)
	t.Setenv("WEATHER_API_KEY", "secret")
	t.Setenv("PGHOST", "db")
	t.Setenv("PGUSER", "app")
	t.Setenv("PGPASSWORD", "pass")
	t.Setenv("PGDATABASE", "picnics")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://app:pass@db:5432/picnics?sslmode=disable", cfg.DatabaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	clearDatabaseEnv(t)
	t.Setenv("WEATHER_API_KEY", "secret")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SERVER_READ_TIMEOUT", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AutoMigrate)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	clearDatabaseEnv(t)
	t.Setenv("WEATHER_API_KEY", "secret")
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}
