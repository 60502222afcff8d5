package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"picnicapi/server/internal/errs"
	"picnicapi/server/internal/models"
	"picnicapi/server/internal/services"
)

type CityController struct {
	validator CityValidator
	cities    CityStore
	log       zerolog.Logger
}

func NewCityController(validator CityValidator, cities CityStore, log zerolog.Logger) *CityController {
	return &CityController{validator: validator, cities: cities, log: log}
}

// CreateCity регистрирует город, если погодный API его знает.
// Повторный запрос с тем же именем возвращает уже сохраненную запись.
// POST /api/v1/cities/?city=London
func (cc *CityController) CreateCity(c *gin.Context) {
	name := strings.TrimSpace(c.Query("city"))
	if name == "" {
		respondError(c, cc.log, errs.NewBadRequestError("city parameter is required",
			errs.FieldError{Field: "city", Error: "is required"}))
		return
	}

	ctx := c.Request.Context()
	exists, err := cc.validator.CheckCityExists(ctx, name)
	if err != nil {
		// Ошибка погодного API не отличается от несуществующего города
		cc.log.Warn().Err(err).Str("city", name).Msg("⚠️ city check failed")
		exists = false
	}
	if !exists {
		respondError(c, cc.log, errs.NewBadRequestError("city parameter must be an existing city",
			errs.FieldError{Field: "city", Error: "unknown city"}))
		return
	}

	city := &models.City{Name: models.CapitalizeName(name)}
	// Погоду запрашиваем только для нового города
	existing, err := cc.cities.GetByName(ctx, city.Name)
	if err == nil {
		c.JSON(http.StatusOK, existing)
		return
	}
	if !errors.Is(err, services.ErrNotFound) {
		respondError(c, cc.log, err)
		return
	}

	temperature, err := cc.validator.GetTemperature(ctx, name)
	if err != nil {
		respondError(c, cc.log, fmt.Errorf("get temperature for %q: %w", city.Name, err))
		return
	}
	city.Weather = fmt.Sprintf("%.2f", temperature)

	saved, created, err := cc.cities.GetOrCreate(ctx, city)
	if err != nil {
		respondError(c, cc.log, err)
		return
	}
	if created {
		cc.log.Info().Uint("city_id", saved.ID).Str("city", saved.Name).Msg("✅ city created")
	}

	c.JSON(http.StatusOK, saved)
}

// GetCities возвращает список городов, q - фильтр по имени
// GET /api/v1/cities/?q=London
func (cc *CityController) GetCities(c *gin.Context) {
	name := models.CapitalizeName(strings.TrimSpace(c.Query("q")))

	cities, err := cc.cities.List(c.Request.Context(), name)
	if err != nil {
		respondError(c, cc.log, err)
		return
	}

	c.JSON(http.StatusOK, cities)
}
