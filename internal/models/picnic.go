package models

import "time"

// Picnic - пикник в городе. Существование CityID не проверяется.
type Picnic struct {
	ID     uint      `json:"id" gorm:"primaryKey"`
	CityID uint      `json:"city_id" gorm:"not null;index"`
	Time   time.Time `json:"time" gorm:"column:time;not null;index"`
}

// TableName указывает имя таблицы
func (Picnic) TableName() string {
	return "picnics"
}

// PicnicRegistration - запись пользователя на пикник.
// Уникальности пары (user_id, picnic_id) нет: повторная запись создает новую строку.
type PicnicRegistration struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	UserID   uint `json:"user_id" gorm:"not null;index"`
	PicnicID uint `json:"picnic_id" gorm:"not null;index"`
}

// TableName указывает имя таблицы
func (PicnicRegistration) TableName() string {
	return "picnic_registrations"
}
