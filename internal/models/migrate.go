package models

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate создает таблицы в БД.
// Вызывается только при DB_AUTO_MIGRATE=true и в тестах: в production схема
// поддерживается вне сервиса.
func AutoMigrate(db *gorm.DB) error {
	for _, model := range []interface{}{&City{}, &User{}, &Picnic{}, &PicnicRegistration{}} {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("auto migrate %T: %w", model, err)
		}
	}
	return nil
}
