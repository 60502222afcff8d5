package services

import (
	"context"
	"errors"
	"fmt"

	"picnicapi/server/internal/models"

	"gorm.io/gorm"
)

// CityService управляет таблицей cities
type CityService struct {
	db *gorm.DB
}

// NewCityService создает новый экземпляр CityService
func NewCityService(db *gorm.DB) *CityService {
	return &CityService{db: db}
}

// GetByName ищет город по точному имени
func (s *CityService) GetByName(ctx context.Context, name string) (*models.City, error) {
	var city models.City
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&city).Error; err != nil {
		return nil, fmt.Errorf("city %q: %w", name, notFound(err))
	}
	return &city, nil
}

// GetByID ищет город по ID
func (s *CityService) GetByID(ctx context.Context, id uint) (*models.City, error) {
	var city models.City
	if err := s.db.WithContext(ctx).First(&city, id).Error; err != nil {
		return nil, fmt.Errorf("city %d: %w", id, notFound(err))
	}
	return &city, nil
}

// Create сохраняет новый город
func (s *CityService) Create(ctx context.Context, city *models.City) error {
	if err := s.db.WithContext(ctx).Create(city).Error; err != nil {
		return fmt.Errorf("failed to create city %q: %w", city.Name, err)
	}
	return nil
}

// GetOrCreate возвращает существующий город с таким именем или создает новый.
// created=false означает, что запись уже была в БД.
func (s *CityService) GetOrCreate(ctx context.Context, city *models.City) (*models.City, bool, error) {
	existing, err := s.GetByName(ctx, city.Name)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	if err := s.Create(ctx, city); err != nil {
		// Параллельный запрос мог создать тот же город между SELECT и INSERT
		if existing, getErr := s.GetByName(ctx, city.Name); getErr == nil {
			return existing, false, nil
		}
		return nil, false, err
	}
	return city, true, nil
}

// List возвращает все города или только город с именем name (если не пусто)
func (s *CityService) List(ctx context.Context, name string) ([]models.City, error) {
	query := s.db.WithContext(ctx).Order("id")
	if name != "" {
		query = query.Where("name = ?", name)
	}

	cities := []models.City{}
	if err := query.Find(&cities).Error; err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}
