package models

// User - пользователь, который может записываться на пикники.
// После создания не изменяется и не удаляется.
type User struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"type:varchar(255);not null"`
	Surname string `json:"surname" gorm:"type:varchar(255);not null"`
	Age     int    `json:"age" gorm:"not null"`
}

// TableName указывает имя таблицы
func (User) TableName() string {
	return "users"
}
