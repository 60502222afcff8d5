package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// City - город, подтвержденный внешним погодным API.
// Weather хранит температуру, полученную при создании записи.
type City struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"type:varchar(255);uniqueIndex;not null"`
	Weather string `json:"weather" gorm:"type:varchar(32);not null;default:''"`
}

// TableName указывает имя таблицы
func (City) TableName() string {
	return "cities"
}

// CapitalizeName приводит название к виду "London": первая буква заглавная,
// остальные строчные. Так имена хранятся в таблице cities.
func CapitalizeName(name string) string {
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(first)) + strings.ToLower(name[size:])
}
