package models

import "time"

// Genre is keyed by its TMDB id.
type Genre struct {
	ID        int       `gorm:"primaryKey;autoIncrement:false" json:"id" example:"18"`
	Name      string    `gorm:"not null;size:255" json:"name" example:"Drame"`
	CreatedAt time.Time `json:"created_at"`
}

func (Genre) TableName() string {
	return "genres"
}
