package api

import (
	"context"

	"picnicapi/server/internal/models"
	"picnicapi/server/internal/services"
)

// CityValidator проверяет город через внешний погодный API
// (реализация: services.WeatherClient)
type CityValidator interface {
	CheckCityExists(ctx context.Context, name string) (bool, error)
	GetTemperature(ctx context.Context, name string) (float64, error)
}

// CityStore реализуется services.CityService
type CityStore interface {
	GetByName(ctx context.Context, name string) (*models.City, error)
	GetByID(ctx context.Context, id uint) (*models.City, error)
	GetOrCreate(ctx context.Context, city *models.City) (*models.City, bool, error)
	List(ctx context.Context, name string) ([]models.City, error)
}

// UserStore реализуется services.UserService
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// PicnicStore реализуется services.PicnicService
type PicnicStore interface {
	Create(ctx context.Context, picnic *models.Picnic) error
	List(ctx context.Context, filter services.PicnicFilter) ([]models.Picnic, error)
}

// RegistrationStore реализуется services.RegistrationService
type RegistrationStore interface {
	Create(ctx context.Context, registration *models.PicnicRegistration) error
	ListUsersByPicnic(ctx context.Context, picnicID uint) ([]models.User, error)
}
