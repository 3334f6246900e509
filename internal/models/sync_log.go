package models

import (
	"time"
)

const (
	SyncStatusSuccess = "success"
	SyncStatusFailed  = "failed"
)

type SyncLog struct {
	ID             uint      `gorm:"primaryKey" json:"id" example:"1"`
	RunID          string    `gorm:"size:36;uniqueIndex" json:"run_id" example:"5f0c6d7e-1b7a-4c57-9a57-3f1f0f6d2f10"`
	Status         string    `gorm:"index;size:16" json:"status" example:"success"`
	FromID         int       `json:"from_id" example:"1"`
	ToID           int       `json:"to_id" example:"99"`
	LastID         int       `json:"last_id" example:"99"`
	MoviesCreated  int       `json:"movies_created" example:"20"`
	MoviesExisting int       `json:"movies_existing" example:"5"`
	SeriesCreated  int       `json:"series_created" example:"18"`
	SeriesExisting int       `json:"series_existing" example:"2"`
	Skipped        int       `json:"skipped" example:"0"`
	ErrorMessage   string    `gorm:"type:text" json:"error_message,omitempty"`
	StartedAt      time.Time `json:"started_at"`
	SyncedAt       time.Time `gorm:"index" json:"synced_at"`
}

func (SyncLog) TableName() string {
	return "sync_logs"
}
