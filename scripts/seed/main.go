// Команда seed заполняет базу демо-данными: города, пользователи, пикники
// и записи на них. Города проверяются через погодный API так же, как в POST /cities/.
//
//	go run ./scripts/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"picnicapi/server/internal/config"
	"picnicapi/server/internal/database"
	"picnicapi/server/internal/logger"
	"picnicapi/server/internal/models"
	"picnicapi/server/internal/services"
)

var seedCities = []string{"London", "Moscow", "Berlin"}

var seedUsers = []models.User{
	{Name: "Ivan", Surname: "Petrov", Age: 28},
	{Name: "Anna", Surname: "Smirnova", Age: 34},
	{Name: "John", Surname: "Smith", Age: 19},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Configuration error: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("❌ Seed failed")
	}
	log.Info().Msg("✅ Seed completed")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	db, err := database.ConnectPostgres(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer database.ClosePostgres(db)

	if err := models.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	weather := services.NewWeatherClient(cfg.WeatherBaseURL, cfg.WeatherAPIKey, log)
	cities := services.NewCityService(db)
	users := services.NewUserService(db)
	picnics := services.NewPicnicService(db)
	registrations := services.NewRegistrationService(db)

	var cityIDs []uint
	for _, name := range seedCities {
		temperature, err := weather.GetTemperature(ctx, name)
		if err != nil {
			log.Warn().Err(err).Str("city", name).Msg("⚠️ Пропускаем город: погодный API не ответил")
			continue
		}
		city, created, err := cities.GetOrCreate(ctx, &models.City{
			Name:    models.CapitalizeName(name),
			Weather: fmt.Sprintf("%.2f", temperature),
		})
		if err != nil {
			return err
		}
		log.Info().Uint("city_id", city.ID).Str("city", city.Name).Bool("created", created).Msg("🏙️ Город")
		cityIDs = append(cityIDs, city.ID)
	}
	if len(cityIDs) == 0 {
		return fmt.Errorf("no cities seeded")
	}

	var userIDs []uint
	for i := range seedUsers {
		user := seedUsers[i]
		if err := users.Create(ctx, &user); err != nil {
			return err
		}
		userIDs = append(userIDs, user.ID)
	}
	log.Info().Int("count", len(userIDs)).Msg("👤 Пользователи созданы")

	// по пикнику на город: через неделю, две и т.д. в 12:00 UTC
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for i, cityID := range cityIDs {
		picnic := &models.Picnic{
			CityID: cityID,
			Time:   today.AddDate(0, 0, 7*(i+1)).Add(12 * time.Hour),
		}
		if err := picnics.Create(ctx, picnic); err != nil {
			return err
		}
		for _, userID := range userIDs[:i%len(userIDs)+1] {
			if err := registrations.Create(ctx, &models.PicnicRegistration{UserID: userID, PicnicID: picnic.ID}); err != nil {
				return err
			}
		}
		log.Info().Uint("picnic_id", picnic.ID).Time("time", picnic.Time).Msg("🧺 Пикник создан")
	}
	return nil
}
