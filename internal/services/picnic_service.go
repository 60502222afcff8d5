package services

import (
	"context"
	"fmt"
	"time"

	"picnicapi/server/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PicnicFilter - условия выборки пикников.
// Time: только пикники ровно в это время. IncludePast=false отбрасывает
// пикники раньше Now.
type PicnicFilter struct {
	Time        *time.Time
	IncludePast bool
	Now         time.Time
}

// PicnicService управляет таблицей picnics
type PicnicService struct {
	db *gorm.DB
}

// NewPicnicService создает новый экземпляр PicnicService
func NewPicnicService(db *gorm.DB) *PicnicService {
	return &PicnicService{db: db}
}

// Create сохраняет пикник. Время приводится к UTC.
func (s *PicnicService) Create(ctx context.Context, picnic *models.Picnic) error {
	picnic.Time = picnic.Time.UTC()
	if err := s.db.WithContext(ctx).Create(picnic).Error; err != nil {
		return fmt.Errorf("failed to create picnic: %w", err)
	}
	return nil
}

// GetByID ищет пикник по ID
func (s *PicnicService) GetByID(ctx context.Context, id uint) (*models.Picnic, error) {
	var picnic models.Picnic
	if err := s.db.WithContext(ctx).First(&picnic, id).Error; err != nil {
		return nil, fmt.Errorf("picnic %d: %w", id, notFound(err))
	}
	return &picnic, nil
}

// List возвращает пикники по фильтру в порядке добавления
func (s *PicnicService) List(ctx context.Context, filter PicnicFilter) ([]models.Picnic, error) {
	query := s.db.WithContext(ctx).Order("id")
	if filter.Time != nil {
		query = query.Where(clause.Eq{Column: "time", Value: filter.Time.UTC()})
	}
	if !filter.IncludePast {
		query = query.Where(clause.Gte{Column: "time", Value: filter.Now.UTC()})
	}

	picnics := []models.Picnic{}
	if err := query.Find(&picnics).Error; err != nil {
		return nil, fmt.Errorf("failed to list picnics: %w", err)
	}
	return picnics, nil
}
