package models

import "time"

// Recommendation links a user to a movie. Users live in another service;
// UserID is only a reference.
type Recommendation struct {
	ID        uint      `gorm:"primaryKey" json:"id" example:"1"`
	UserID    uint      `gorm:"not null;index" json:"user_id" example:"7"`
	MovieID   int       `gorm:"not null;index" json:"movie_id" example:"550"`
	Movie     *Movie    `gorm:"foreignKey:MovieID;constraint:OnDelete:CASCADE" json:"movie,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
