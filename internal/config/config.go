package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DatabaseURL    string `validate:"required"`
	AutoMigrate    bool   // DB_AUTO_MIGRATE: создавать таблицы при старте (dev/tests)
	WeatherAPIKey  string `validate:"required"`
	WeatherBaseURL string `validate:"required,url"`
	ServerPort     string `validate:"required,numeric"`
	Environment    string `validate:"required"`
	LogLevel       string `validate:"required,oneof=trace debug info warn error"`
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// IsProduction возвращает true для ENV=production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load читает переменные окружения (после godotenv) и валидирует результат.
// WEATHER_API_KEY обязателен, значения по умолчанию у него нет.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{
		DatabaseURL:    databaseURL(k),
		AutoMigrate:    k.Bool("db_auto_migrate"),
		WeatherAPIKey:  k.String("weather_api_key"),
		WeatherBaseURL: getString(k, "weather_base_url", "https://api.openweathermap.org"),
		ServerPort:     getString(k, "port", "8080"),
		Environment:    getString(k, "env", "development"),
		LogLevel:       strings.ToLower(getString(k, "log_level", "info")),
		ReadTimeout:    getSeconds(k, "server_read_timeout", 15),
		WriteTimeout:   getSeconds(k, "server_write_timeout", 15),
		IdleTimeout:    getSeconds(k, "server_idle_timeout", 60),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// databaseURL проверяет переменные в порядке приоритета:
// DATABASE_URL, POSTGRES_URL, PGDATABASE_URL, затем сборка из PG* частей.
func databaseURL(k *koanf.Koanf) string {
	for _, key := range []string{"database_url", "postgres_url", "pgdatabase_url"} {
		if v := k.String(key); v != "" {
			return v
		}
	}

	pgHost := k.String("pghost")
	if pgHost == "" {
		return "postgres://postgres@localhost:5432/picnic?sslmode=disable"
	}
	pgPort := getString(k, "pgport", "5432")
	pgUser := getString(k, "pguser", "postgres")
	pgPassword := k.String("pgpassword")
	pgDatabase := getString(k, "pgdatabase", "picnic")

	if pgPassword != "" {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDatabase)
	}
	return fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=disable",
		pgUser, pgHost, pgPort, pgDatabase)
}

func getString(k *koanf.Koanf, key, defaultValue string) string {
	if value := k.String(key); value != "" {
		return value
	}
	return defaultValue
}

func getSeconds(k *koanf.Koanf, key string, defaultValue int) time.Duration {
	if k.Exists(key) {
		if seconds := k.Int(key); seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultValue) * time.Second
}
