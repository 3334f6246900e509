package repository

import (
	"context"
	"errors"

	"movia-backend/internal/database"
	"movia-backend/internal/models"

	"gorm.io/gorm"
)

type SeriesRepository interface {
	FindOrCreate(ctx context.Context, series *models.Series, rel models.Relations) (*models.Series, bool, error)
	FindByID(ctx context.Context, id int) (*models.Series, error)
	FindAll(ctx context.Context, page, limit int, search string) ([]models.Series, int64, error)
}

type seriesRepository struct {
	base
}

func NewSeriesRepository(db *database.Database) SeriesRepository {
	return &seriesRepository{base: newBase(db)}
}

func (r *seriesRepository) FindOrCreate(ctx context.Context, series *models.Series, rel models.Relations) (*models.Series, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	row := *series
	row.Genres, row.ProductionCompanies, row.ProductionCountries, row.SpokenLanguages = nil, nil, nil, nil

	var created bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = findOrCreate(tx, "id", row.ID, &row)
		if err != nil || !created {
			return err
		}
		return attachRelations(tx, &row, rel)
	})
	if err != nil {
		return nil, false, err
	}
	return &row, created, nil
}

func (r *seriesRepository) FindByID(ctx context.Context, id int) (*models.Series, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var series models.Series
	err := preloadRelations(r.db.WithContext(ctx)).First(&series, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &series, nil
}

func (r *seriesRepository) FindAll(ctx context.Context, page, limit int, search string) ([]models.Series, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var series []models.Series
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Series{})
	if search != "" {
		pattern := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(original_name) LIKE LOWER(?)", pattern, pattern)
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, size := paginate(page, limit)
	err := preloadRelations(query).
		Order("popularity DESC, id").
		Offset(offset).Limit(size).
		Find(&series).Error
	if err != nil {
		return nil, 0, err
	}

	return series, total, nil
}
