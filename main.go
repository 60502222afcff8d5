package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"picnicapi/server/internal/api"
	"picnicapi/server/internal/config"
	"picnicapi/server/internal/database"
	"picnicapi/server/internal/logger"
	"picnicapi/server/internal/models"
	"picnicapi/server/internal/services"
)

func main() {
	// .env необязателен: в production переменные задаются окружением
	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "development")
		bootLog.Fatal().Err(err).Msg("❌ Configuration error")
	}

	log := logger.New(cfg.LogLevel, cfg.Environment)
	if envLoaded {
		log.Info().Msg("✅ Переменные окружения загружены из .env файла")
	}
	log.Info().
		Str("env", cfg.Environment).
		Str("database_url", maskDatabaseURL(cfg.DatabaseURL)).
		Str("weather_base_url", cfg.WeatherBaseURL).
		Msg("📋 Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ PostgreSQL connection failed")
	}
	defer func() {
		if err := database.ClosePostgres(db); err != nil {
			log.Warn().Err(err).Msg("⚠️ Failed to close database")
		}
	}()

	if cfg.AutoMigrate {
		if err := models.AutoMigrate(db); err != nil {
			log.Fatal().Err(err).Msg("❌ Migration failed")
		}
		log.Info().Msg("✅ Database migrations completed")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to get sql.DB")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.NewRouter(api.Dependencies{
		Validator:     services.NewWeatherClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, log),
		Cities:        services.NewCityService(db),
		Users:         services.NewUserService(db),
		Picnics:       services.NewPicnicService(db),
		Registrations: services.NewRegistrationService(db),
		Health:        sqlDB.PingContext,
		Now:           time.Now,
		Log:           log,
	})

	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go logMemoryStats(ctx, log)

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.ServerPort).Msgf("🚀 Server starting, API доступен на http://0.0.0.0:%s/api/v1", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			log.Error().Err(err).Msg("❌ Failed to start server")
		}
	case <-ctx.Done():
		log.Info().Msg("🛑 Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("❌ Graceful shutdown failed")
		return
	}
	log.Info().Msg("✅ Server stopped")
}

// maskDatabaseURL скрывает логин и пароль: postgres://***@host:5432/db
func maskDatabaseURL(databaseURL string) string {
	idx := strings.LastIndex(databaseURL, "@")
	schemeIdx := strings.Index(databaseURL, "://")
	if idx < 0 || schemeIdx < 0 || idx < schemeIdx {
		return databaseURL
	}
	return databaseURL[:schemeIdx+3] + "***@" + databaseURL[idx+1:]
}

// logMemoryStats раз в 5 минут пишет статистику памяти на уровне debug
func logMemoryStats(ctx context.Context, log zerolog.Logger) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			heapAllocMB := float64(m.HeapAlloc) / 1024 / 1024
			numGoroutines := runtime.NumGoroutine()
			log.Debug().
				Float64("heap_alloc_mb", heapAllocMB).
				Float64("sys_mb", float64(m.Sys)/1024/1024).
				Uint32("num_gc", m.NumGC).
				Int("goroutines", numGoroutines).
				Msg("💾 Memory Stats")

			if numGoroutines > 100 {
				log.Warn().Int("goroutines", numGoroutines).Msg("⚠️ High number of goroutines detected")
			}
		}
	}
}
