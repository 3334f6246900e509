package repository

import (
	"context"
	"errors"

	"movia-backend/internal/database"
	"movia-backend/internal/models"

	"gorm.io/gorm"
)

type SyncLogRepository interface {
	Create(ctx context.Context, log *models.SyncLog) error
	GetLast(ctx context.Context) (*models.SyncLog, error)
}

type syncLogRepository struct {
	base
}

func NewSyncLogRepository(db *database.Database) SyncLogRepository {
	return &syncLogRepository{base: newBase(db)}
}

func (r *syncLogRepository) Create(ctx context.Context, log *models.SyncLog) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(log).Error
}

func (r *syncLogRepository) GetLast(ctx context.Context) (*models.SyncLog, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var log models.SyncLog
	err := r.db.WithContext(ctx).Order("synced_at DESC, id DESC").First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
