package repository

import (
	"context"

	"movia-backend/internal/database"
	"movia-backend/internal/models"
)

type RecommendationRepository interface {
	Create(ctx context.Context, rec *models.Recommendation) error
	FindByUser(ctx context.Context, userID uint) ([]models.Recommendation, error)
}

type recommendationRepository struct {
	base
}

func NewRecommendationRepository(db *database.Database) RecommendationRepository {
	return &recommendationRepository{base: newBase(db)}
}

func (r *recommendationRepository) Create(ctx context.Context, rec *models.Recommendation) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Movie").Create(rec).Error
}

func (r *recommendationRepository) FindByUser(ctx context.Context, userID uint) ([]models.Recommendation, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var recs []models.Recommendation
	err := r.db.WithContext(ctx).
		Preload("Movie").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&recs).Error
	return recs, err
}
