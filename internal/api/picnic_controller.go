package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"picnicapi/server/internal/errs"
	"picnicapi/server/internal/models"
	"picnicapi/server/internal/services"
)

type PicnicController struct {
	picnics       PicnicStore
	cities        CityStore
	users         UserStore
	registrations RegistrationStore
	now           func() time.Time
	log           zerolog.Logger
}

func NewPicnicController(picnics PicnicStore, cities CityStore, users UserStore, registrations RegistrationStore, now func() time.Time, log zerolog.Logger) *PicnicController {
	if now == nil {
		now = time.Now
	}
	return &PicnicController{
		picnics:       picnics,
		cities:        cities,
		users:         users,
		registrations: registrations,
		now:           now,
		log:           log,
	}
}

// PicnicResponse - пикник с названием города
type PicnicResponse struct {
	ID   uint      `json:"id"`
	City string    `json:"city"`
	Time time.Time `json:"time"`
}

// PicnicWithUsersResponse - элемент списка GET /picnics/
type PicnicWithUsersResponse struct {
	PicnicResponse
	Users []models.User `json:"users"`
}

// RegistrationResponse - ответ POST /user-registration/
type RegistrationResponse struct {
	ID          uint   `json:"id"`
	UserSurname string `json:"user_surname"`
	PicnicID    uint   `json:"picnic_id"`
}

// Указатели: required проверяет наличие параметра, city_id=0 допустим
type createPicnicQuery struct {
	CityID   *uint  `form:"city_id" binding:"required"`
	DateTime string `form:"datetime" binding:"required"`
}

type registerQuery struct {
	UserID   *uint `form:"user_id" binding:"required"`
	PicnicID *uint `form:"picnic_id" binding:"required"`
}

// GetPicnics возвращает пикники с городом и записанными пользователями.
// datetime - точное время пикника, past=false скрывает прошедшие.
// GET /api/v1/picnics/?datetime=2026-06-01T12:00:00Z&past=false
func (pc *PicnicController) GetPicnics(c *gin.Context) {
	ctx := c.Request.Context()
	filter := services.PicnicFilter{IncludePast: true, Now: pc.now()}

	if raw := c.Query("datetime"); raw != "" {
		t, err := parseDateTime(raw)
		if err != nil {
			respondError(c, pc.log, errs.NewBadRequestError(err.Error(),
				errs.FieldError{Field: "datetime", Error: "invalid datetime"}))
			return
		}
		filter.Time = &t
	}

	past, err := strconv.ParseBool(c.DefaultQuery("past", "true"))
	if err != nil {
		respondError(c, pc.log, errs.NewBadRequestError("past parameter must be a boolean",
			errs.FieldError{Field: "past", Error: "must be true or false"}))
		return
	}
	filter.IncludePast = past

	picnics, err := pc.picnics.List(ctx, filter)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}

	// Город и участники запрашиваются отдельно для каждого пикника
	response := make([]PicnicWithUsersResponse, 0, len(picnics))
	for _, picnic := range picnics {
		cityName, err := pc.cityName(ctx, picnic.CityID)
		if err != nil {
			respondError(c, pc.log, err)
			return
		}
		users, err := pc.registrations.ListUsersByPicnic(ctx, picnic.ID)
		if err != nil {
			respondError(c, pc.log, err)
			return
		}
		response = append(response, PicnicWithUsersResponse{
			PicnicResponse: PicnicResponse{ID: picnic.ID, City: cityName, Time: picnic.Time},
			Users:          users,
		})
	}

	c.JSON(http.StatusOK, response)
}

// CreatePicnic добавляет пикник. Существование city_id не проверяется.
// POST /api/v1/picnics/?city_id=1&datetime=2026-06-01T12:00:00Z
func (pc *PicnicController) CreatePicnic(c *gin.Context) {
	var query createPicnicQuery
	if err := bindQuery(c, &query); err != nil {
		respondError(c, pc.log, err)
		return
	}
	t, err := parseDateTime(query.DateTime)
	if err != nil {
		respondError(c, pc.log, errs.NewBadRequestError(err.Error(),
			errs.FieldError{Field: "datetime", Error: "invalid datetime"}))
		return
	}

	ctx := c.Request.Context()
	picnic := &models.Picnic{CityID: *query.CityID, Time: t}
	if err := pc.picnics.Create(ctx, picnic); err != nil {
		respondError(c, pc.log, err)
		return
	}

	cityName, err := pc.cityName(ctx, picnic.CityID)
	if err != nil {
		respondError(c, pc.log, err)
		return
	}

	c.JSON(http.StatusOK, PicnicResponse{ID: picnic.ID, City: cityName, Time: picnic.Time})
}

// RegisterToPicnic записывает пользователя на пикник.
// Существование пользователя и пикника не проверяется, повторная запись разрешена.
// POST /api/v1/user-registration/?user_id=1&picnic_id=1
func (pc *PicnicController) RegisterToPicnic(c *gin.Context) {
	var query registerQuery
	if err := bindQuery(c, &query); err != nil {
		respondError(c, pc.log, err)
		return
	}

	ctx := c.Request.Context()
	registration := &models.PicnicRegistration{UserID: *query.UserID, PicnicID: *query.PicnicID}
	if err := pc.registrations.Create(ctx, registration); err != nil {
		respondError(c, pc.log, err)
		return
	}

	surname := ""
	user, err := pc.users.GetByID(ctx, registration.UserID)
	switch {
	case err == nil:
		surname = user.Surname
	case errors.Is(err, services.ErrNotFound):
		pc.log.Warn().Uint("user_id", registration.UserID).Msg("⚠️ registration for unknown user")
	default:
		respondError(c, pc.log, err)
		return
	}

	c.JSON(http.StatusOK, RegistrationResponse{
		ID:          registration.ID,
		UserSurname: surname,
		PicnicID:    registration.PicnicID,
	})
}

// cityName возвращает пустую строку, если города с таким ID нет
func (pc *PicnicController) cityName(ctx context.Context, cityID uint) (string, error) {
	city, err := pc.cities.GetByID(ctx, cityID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("lookup city %d: %w", cityID, err)
	}
	return city.Name, nil
}
