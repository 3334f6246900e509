package models

import "time"

type SpokenLanguage struct {
	Code        string    `gorm:"column:iso_639_1;primaryKey;size:2" json:"iso_639_1" example:"en"` // ISO 639-1
	Name        string    `gorm:"not null;size:255" json:"name" example:"English"`                  // native name as sent by TMDB
	EnglishName string    `gorm:"not null;size:255" json:"english_name" example:"English"`
	CreatedAt   time.Time `json:"created_at"`
}

func (SpokenLanguage) TableName() string {
	return "spoken_languages"
}
