package services

import (
	"context"
	"fmt"

	"picnicapi/server/internal/models"

	"gorm.io/gorm"
)

// RegistrationService управляет записями пользователей на пикники.
// Существование пользователя и пикника не проверяется.
type RegistrationService struct {
	db *gorm.DB
}

// NewRegistrationService создает новый экземпляр RegistrationService
func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

// Create записывает пользователя на пикник
func (s *RegistrationService) Create(ctx context.Context, registration *models.PicnicRegistration) error {
	if err := s.db.WithContext(ctx).Create(registration).Error; err != nil {
		return fmt.Errorf("failed to register user %d to picnic %d: %w",
			registration.UserID, registration.PicnicID, err)
	}
	return nil
}

// ListUsersByPicnic возвращает пользователей, записанных на пикник, в порядке записи.
// Записи с несуществующим пользователем пропускаются; повторная запись дает
// пользователя в списке повторно.
func (s *RegistrationService) ListUsersByPicnic(ctx context.Context, picnicID uint) ([]models.User, error) {
	users := []models.User{}
	err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Select("users.*").
		Joins("JOIN picnic_registrations ON picnic_registrations.user_id = users.id").
		Where("picnic_registrations.picnic_id = ?", picnicID).
		Order("picnic_registrations.id").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users of picnic %d: %w", picnicID, err)
	}
	return users, nil
}
